package config_test

import (
	"context"
	"testing"

	"github.com/kagamino/repoforge/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestGitHubFlags(t *testing.T) {
	githubConfig := &config.GitHub{}
	flags := githubConfig.Flags()

	gt.V(t, len(flags)).Equal(4)

	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}

	gt.True(t, names["github-token"])
	gt.True(t, names["github-app-id"])
	gt.True(t, names["github-app-install-id"])
	gt.True(t, names["github-app-private-key"])
}

func TestGitHubNew(t *testing.T) {
	t.Run("no credentials fails", func(t *testing.T) {
		githubConfig := &config.GitHub{}
		_, err := githubConfig.New(context.Background())
		gt.Error(t, err)
	})
}
