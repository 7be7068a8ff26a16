package config

import (
	"log/slog"

	"github.com/kagamino/repoforge/pkg/domain/interfaces"
	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/kagamino/repoforge/pkg/infra/secrets"
	"github.com/urfave/cli/v3"
)

// SecretStore configures the optional secret backends. Both are
// independent; either, both or neither may be enabled.
type SecretStore struct {
	gcpProject string
	vaultAddr  string
	vaultToken types.VaultToken `masq:"secret"`
	vaultMount string
}

func (x *SecretStore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gcp-project",
			Usage:       "GCP project ID for Secret Manager (optional)",
			Category:    "Secret store",
			Destination: &x.gcpProject,
			Sources:     cli.EnvVars("REPOFORGE_GCP_PROJECT"),
		},
		&cli.StringFlag{
			Name:        "vault-addr",
			Usage:       "Vault server address (optional)",
			Category:    "Secret store",
			Destination: &x.vaultAddr,
			Sources:     cli.EnvVars("REPOFORGE_VAULT_ADDR", "VAULT_ADDR"),
		},
		&cli.StringFlag{
			Name:        "vault-token",
			Usage:       "Vault token",
			Category:    "Secret store",
			Destination: (*string)(&x.vaultToken),
			Sources:     cli.EnvVars("REPOFORGE_VAULT_TOKEN", "VAULT_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "vault-mount",
			Usage:       "Vault KV v2 mount path",
			Category:    "Secret store",
			Value:       "secret",
			Destination: &x.vaultMount,
			Sources:     cli.EnvVars("REPOFORGE_VAULT_MOUNT"),
		},
	}
}

func (x *SecretStore) Stores() ([]interfaces.SecretStore, error) {
	var stores []interfaces.SecretStore

	if x.gcpProject != "" {
		store, err := secrets.NewGCPStore(x.gcpProject)
		if err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}

	if x.vaultAddr != "" {
		store, err := secrets.NewVaultStore(x.vaultAddr, x.vaultToken, x.vaultMount)
		if err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}

	return stores, nil
}

func (x *SecretStore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("gcpProject", x.gcpProject),
		slog.String("vaultAddr", x.vaultAddr),
		slog.Int("vaultToken.len", len(x.vaultToken)),
		slog.String("vaultMount", x.vaultMount),
	)
}
