package mock

import (
	"context"

	"github.com/kagamino/repoforge/pkg/domain/interfaces"
	"github.com/kagamino/repoforge/pkg/domain/model"
)

// UseCaseMock implements interfaces.UseCase.
type UseCaseMock struct {
	ProvisionFunc func(ctx context.Context, req model.ProvisioningRequest) (*model.ProvisioningResult, error)

	Calls struct {
		Provision []model.ProvisioningRequest
	}
}

var _ interfaces.UseCase = (*UseCaseMock)(nil)

func (x *UseCaseMock) Provision(ctx context.Context, req model.ProvisioningRequest) (*model.ProvisioningResult, error) {
	x.Calls.Provision = append(x.Calls.Provision, req)
	if x.ProvisionFunc != nil {
		return x.ProvisionFunc(ctx, req)
	}
	return &model.ProvisioningResult{Succeeded: true}, nil
}
