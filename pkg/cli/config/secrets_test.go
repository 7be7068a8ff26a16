package config_test

import (
	"testing"

	"github.com/kagamino/repoforge/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestSecretStoreFlags(t *testing.T) {
	storeConfig := &config.SecretStore{}
	flags := storeConfig.Flags()

	gt.V(t, len(flags)).Equal(4)

	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}

	gt.True(t, names["gcp-project"])
	gt.True(t, names["vault-addr"])
	gt.True(t, names["vault-token"])
	gt.True(t, names["vault-mount"])
}

func TestSecretStoreStores(t *testing.T) {
	t.Run("no backends configured yields no stores", func(t *testing.T) {
		storeConfig := &config.SecretStore{}
		stores, err := storeConfig.Stores()
		gt.NoError(t, err)
		gt.V(t, len(stores)).Equal(0)
	})
}
