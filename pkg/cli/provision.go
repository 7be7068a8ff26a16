package cli

import (
	"context"
	"log/slog"

	"github.com/kagamino/repoforge/pkg/cli/config"
	"github.com/kagamino/repoforge/pkg/controller/wizard"
	"github.com/kagamino/repoforge/pkg/domain/model"
	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/kagamino/repoforge/pkg/usecase"
	"github.com/kagamino/repoforge/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func provisionCommand() *cli.Command {
	var (
		org             string
		repo            string
		description     string
		topics          []string
		defaultBranch   string
		teams           []string
		labels          []string
		codeOwners      []string
		category        string
		region          string
		addWebhook      bool
		files           []string
		requiredReviews int64
		statusChecks    []string
		strict          bool
		interactive     bool
		secretName      string
		secretValue     string

		githubConfig config.GitHub
		secretConfig config.SecretStore
		slackConfig  config.Slack
		auditConfig  config.Audit
		sentryConfig config.Sentry
	)

	provisionFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "org",
			Usage:       "GitHub organization name",
			Sources:     cli.EnvVars("REPOFORGE_ORG"),
			Destination: &org,
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "New repository name",
			Destination: &repo,
		},
		&cli.StringFlag{
			Name:        "description",
			Usage:       "Repository description",
			Destination: &description,
		},
		&cli.StringSliceFlag{
			Name:        "topic",
			Usage:       "Repository topic (repeatable)",
			Destination: &topics,
		},
		&cli.StringFlag{
			Name:        "default-branch",
			Usage:       "Default branch name",
			Value:       "main",
			Destination: &defaultBranch,
		},
		&cli.StringSliceFlag{
			Name:        "team",
			Usage:       "Team slug to add with push permission (repeatable, normal category only)",
			Destination: &teams,
		},
		&cli.StringSliceFlag{
			Name:        "label",
			Usage:       "Label as name:color, e.g. bug:d73a4a (repeatable)",
			Destination: &labels,
		},
		&cli.StringSliceFlag{
			Name:        "code-owner",
			Usage:       "Code owner GitHub username (repeatable)",
			Destination: &codeOwners,
		},
		&cli.StringFlag{
			Name:        "category",
			Usage:       "Repository category [sox|banking|normal]",
			Value:       "normal",
			Destination: &category,
		},
		&cli.StringFlag{
			Name:        "region",
			Usage:       "Region [china|north-america]",
			Value:       "north-america",
			Destination: &region,
		},
		&cli.BoolFlag{
			Name:        "webhook",
			Usage:       "Register the Cloud Build webhook",
			Destination: &addWebhook,
		},
		&cli.StringSliceFlag{
			Name:        "file",
			Usage:       "Boilerplate file tag to commit (repeatable), or 'all'",
			Destination: &files,
		},
		&cli.Int64Flag{
			Name:        "required-reviews",
			Usage:       "Required approving review count for branch protection",
			Value:       1,
			Destination: &requiredReviews,
		},
		&cli.StringSliceFlag{
			Name:        "status-check",
			Usage:       "Required status check context (repeatable)",
			Destination: &statusChecks,
		},
		&cli.BoolFlag{
			Name:        "strict",
			Usage:       "Require branches to be up to date before merging",
			Destination: &strict,
		},
		&cli.BoolFlag{
			Name:        "interactive",
			Aliases:     []string{"i"},
			Usage:       "Collect the request through interactive prompts",
			Destination: &interactive,
		},
		&cli.StringFlag{
			Name:        "secret-name",
			Usage:       "Name of a secret to create in the configured secret stores",
			Destination: &secretName,
		},
		&cli.StringFlag{
			Name:        "secret-value",
			Usage:       "Value of the secret",
			Sources:     cli.EnvVars("REPOFORGE_SECRET_VALUE"),
			Destination: &secretValue,
		},
	}

	return &cli.Command{
		Name:    "provision",
		Aliases: []string{"p"},
		Usage:   "Create and configure a repository",
		Flags: slice.Flatten(
			provisionFlags,
			githubConfig.Flags(),
			secretConfig.Flags(),
			slackConfig.Flags(),
			auditConfig.Flags(),
			sentryConfig.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sentryConfig.Configure(ctx); err != nil {
				return err
			}

			var req model.ProvisioningRequest
			if interactive {
				built, warnings, err := wizard.Run(ctx)
				if err != nil {
					return err
				}
				for _, warning := range warnings {
					logging.From(ctx).Warn(warning)
				}
				req = *built
			} else {
				parsedLabels, labelErrs := model.ParseLabels(labels)
				for _, err := range labelErrs {
					logging.From(ctx).Warn("Skipping invalid label", slog.Any("error", err))
				}

				fileSet := model.BoilerplateSet{}
				for _, name := range files {
					if name == "all" {
						for _, tag := range model.Boilerplates() {
							fileSet.Add(tag)
						}
						continue
					}
					tag, err := model.ParseBoilerplate(name)
					if err != nil {
						return err
					}
					fileSet.Add(tag)
				}

				req = model.ProvisioningRequest{
					Org:           types.OrgName(org),
					Repo:          types.RepoName(repo),
					Description:   description,
					Topics:        topics,
					DefaultBranch: types.BranchName(defaultBranch),
					Teams:         toTeamSlugs(teams),
					Labels:        parsedLabels,
					CodeOwners:    toUserNames(codeOwners),
					Category:      types.Category(category),
					Region:        types.Region(region),
					AddWebhook:    addWebhook,
					Files:         fileSet,
					Protection: model.ProtectionPolicy{
						RequiredReviews: int(requiredReviews),
						StatusChecks:    statusChecks,
						Strict:          strict,
					},
				}
				if secretName != "" {
					req.Secret = &model.SecretSeed{Name: secretName, Value: secretValue}
				}

				if err := req.Validate(); err != nil {
					return err
				}
			}

			logging.From(ctx).Info("Starting provisioning",
				slog.Any("request", req),
				slog.Any("github", githubConfig),
				slog.Any("secrets", secretConfig),
				slog.Any("slack", slackConfig),
				slog.Any("audit", auditConfig),
			)

			clients, err := setupClients(ctx, &githubConfig, &secretConfig, &slackConfig, &auditConfig)
			if err != nil {
				return err
			}

			result, runErr := usecase.New(clients).Provision(ctx, req)
			if result != nil {
				for _, step := range result.Steps {
					logging.From(ctx).Info("Step finished",
						slog.String("step", string(step.Step)),
						slog.String("status", string(step.Status)),
						slog.String("note", step.Note),
					)
				}
			}

			return runErr
		},
	}
}

func toTeamSlugs(values []string) []types.TeamSlug {
	out := make([]types.TeamSlug, 0, len(values))
	for _, v := range values {
		out = append(out, types.TeamSlug(v))
	}
	return out
}

func toUserNames(values []string) []types.UserName {
	out := make([]types.UserName, 0, len(values))
	for _, v := range values {
		out = append(out, types.UserName(v))
	}
	return out
}
