// Package secrets provides the optional secret-store backends. Backend
// failures are reported to the caller but never abort a provisioning
// run.
package secrets

import (
	"context"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/kagamino/repoforge/pkg/domain/interfaces"
	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/kagamino/repoforge/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// GCPStore creates secrets in Google Cloud Secret Manager with a first
// version holding the supplied value.
type GCPStore struct {
	projectID string
}

var _ interfaces.SecretStore = (*GCPStore)(nil)

func NewGCPStore(projectID string) (*GCPStore, error) {
	if projectID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GCP project ID is empty")
	}
	return &GCPStore{projectID: projectID}, nil
}

func (x *GCPStore) Name() string {
	return "gcp-secret-manager"
}

func (x *GCPStore) CreateSecret(ctx context.Context, name, value string) error {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to create secret manager client", goerr.V("project", x.projectID))
	}
	defer safe.Close(client)

	secret, err := client.CreateSecret(ctx, &secretmanagerpb.CreateSecretRequest{
		Parent:   "projects/" + x.projectID,
		SecretId: name,
		Secret: &secretmanagerpb.Secret{
			Replication: &secretmanagerpb.Replication{
				Replication: &secretmanagerpb.Replication_Automatic_{
					Automatic: &secretmanagerpb.Replication_Automatic{},
				},
			},
		},
	})
	if err != nil {
		return goerr.Wrap(err, "failed to create secret",
			goerr.V("project", x.projectID),
			goerr.V("secret", name),
		)
	}

	if _, err := client.AddSecretVersion(ctx, &secretmanagerpb.AddSecretVersionRequest{
		Parent: secret.GetName(),
		Payload: &secretmanagerpb.SecretPayload{
			Data: []byte(value),
		},
	}); err != nil {
		return goerr.Wrap(err, "failed to add secret version", goerr.V("secret", name))
	}

	return nil
}
