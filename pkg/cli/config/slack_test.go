package config_test

import (
	"testing"

	"github.com/kagamino/repoforge/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestSlackFlags(t *testing.T) {
	slackConfig := &config.Slack{}
	flags := slackConfig.Flags()

	gt.V(t, len(flags)).Equal(1)
	gt.V(t, flags[0].Names()[0]).Equal("slack-webhook-url")
	gt.False(t, slackConfig.Enabled())
}
