package config

import (
	"log/slog"

	"github.com/kagamino/repoforge/pkg/infra/notify"
	"github.com/urfave/cli/v3"
)

type Slack struct {
	webhookURL string `masq:"secret"`
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL for completion notification (optional)",
			Category:    "Notification",
			Destination: &x.webhookURL,
			Sources:     cli.EnvVars("REPOFORGE_SLACK_WEBHOOK_URL", "SLACK_WEBHOOK_URL"),
		},
	}
}

func (x *Slack) Enabled() bool {
	return x.webhookURL != ""
}

func (x *Slack) New(httpClient notify.HTTPClient) (*notify.SlackClient, error) {
	return notify.NewSlack(x.webhookURL, httpClient)
}

func (x *Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("webhookURL.len", len(x.webhookURL)),
	)
}
