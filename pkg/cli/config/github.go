package config

import (
	"context"
	"log/slog"

	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/kagamino/repoforge/pkg/infra/githubapi"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// GitHub selects the API authentication: a personal access token, or a
// GitHub App installation when no token is given.
type GitHub struct {
	token      types.GitHubToken         `masq:"secret"`
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("REPOFORGE_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID (used when no token is set)",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("REPOFORGE_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("REPOFORGE_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("REPOFORGE_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (x GitHub) New(ctx context.Context) (*githubapi.Client, error) {
	if x.token != "" {
		return githubapi.New(ctx, x.token)
	}
	if x.appID != 0 {
		return githubapi.NewApp(x.appID, x.installID, x.privateKey)
	}
	return nil, goerr.Wrap(types.ErrInvalidOption, "either a GitHub token or GitHub App credentials are required")
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}
