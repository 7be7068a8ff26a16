package cli

import (
	"context"

	"github.com/kagamino/repoforge/pkg/cli/config"
	"github.com/kagamino/repoforge/pkg/infra"
)

// setupClients builds the infra client bag from the per-integration
// configs. The GitHub client is mandatory; the rest are attached only
// when configured.
func setupClients(ctx context.Context, githubConfig *config.GitHub, secretConfig *config.SecretStore, slackConfig *config.Slack, auditConfig *config.Audit) (*infra.Clients, error) {
	gh, err := githubConfig.New(ctx)
	if err != nil {
		return nil, err
	}

	options := []infra.Option{
		infra.WithGitHub(gh),
	}

	stores, err := secretConfig.Stores()
	if err != nil {
		return nil, err
	}
	for _, store := range stores {
		options = append(options, infra.WithSecretStore(store))
	}

	if slackConfig.Enabled() {
		notifier, err := slackConfig.New(nil)
		if err != nil {
			return nil, err
		}
		options = append(options, infra.WithNotifier(notifier))
	}

	sinks, err := auditConfig.Sinks(ctx)
	if err != nil {
		return nil, err
	}
	for _, sink := range sinks {
		options = append(options, infra.WithAuditSink(sink))
	}

	return infra.New(options...), nil
}
