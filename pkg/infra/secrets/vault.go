package secrets

import (
	"context"

	"github.com/kagamino/repoforge/pkg/domain/interfaces"
	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"

	vault "github.com/hashicorp/vault/api"
)

// VaultStore writes a KV v2 secret under the configured mount. The
// secret name is used as the path within the mount and the value is
// stored under the "value" key.
type VaultStore struct {
	addr  string
	token types.VaultToken
	mount string
}

var _ interfaces.SecretStore = (*VaultStore)(nil)

func NewVaultStore(addr string, token types.VaultToken, mount string) (*VaultStore, error) {
	if addr == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "vault address is empty")
	}
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "vault token is empty")
	}
	if mount == "" {
		mount = "secret"
	}

	return &VaultStore{addr: addr, token: token, mount: mount}, nil
}

func (x *VaultStore) Name() string {
	return "vault"
}

func (x *VaultStore) CreateSecret(ctx context.Context, name, value string) error {
	cfg := vault.DefaultConfig()
	cfg.Address = x.addr

	client, err := vault.NewClient(cfg)
	if err != nil {
		return goerr.Wrap(err, "failed to create vault client", goerr.V("addr", x.addr))
	}
	client.SetToken(string(x.token))

	if _, err := client.KVv2(x.mount).Put(ctx, name, map[string]interface{}{
		"value": value,
	}); err != nil {
		return goerr.Wrap(err, "failed to write vault secret",
			goerr.V("mount", x.mount),
			goerr.V("path", name),
		)
	}

	return nil
}
