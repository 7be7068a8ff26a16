package interfaces

import (
	"context"

	"github.com/kagamino/repoforge/pkg/domain/model"
)

type UseCase interface {
	Provision(ctx context.Context, req model.ProvisioningRequest) (*model.ProvisioningResult, error)
}
