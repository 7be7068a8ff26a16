package model

import (
	"log/slog"

	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ProvisioningRequest is the complete input of one provisioning run.
// It is built once by the CLI flags, the wizard or the web form, and
// passed by value into the orchestrator. It is never mutated afterwards.
type ProvisioningRequest struct {
	Org           types.OrgName
	Repo          types.RepoName
	Description   string
	Topics        []string
	DefaultBranch types.BranchName
	Teams         []types.TeamSlug
	Labels        []Label
	CodeOwners    []types.UserName
	Category      types.Category
	Region        types.Region
	AddWebhook    bool
	Files         BoilerplateSet
	Protection    ProtectionPolicy
	Secret        *SecretSeed
}

// SecretSeed is an ad hoc secret created in the configured secret
// stores at the end of a run. Supplied at run time, never persisted.
type SecretSeed struct {
	Name  string
	Value string `masq:"secret"`
}

// ProtectionPolicy is the branch protection applied to the default
// branch. RequiredReviews is configurable because the policy escalated
// from 1 to 2 reviewers over time.
type ProtectionPolicy struct {
	RequiredReviews int
	StatusChecks    []string
	Strict          bool
}

func (x ProvisioningRequest) Validate() error {
	if x.Org == "" {
		return goerr.Wrap(types.ErrInvalidRequest, "organization name is required")
	}
	if x.Repo == "" {
		return goerr.Wrap(types.ErrInvalidRequest, "repository name is required")
	}
	if x.DefaultBranch == "" {
		return goerr.Wrap(types.ErrInvalidRequest, "default branch is required")
	}
	if err := x.Category.Validate(); err != nil {
		return err
	}
	if err := x.Region.Validate(); err != nil {
		return err
	}
	if x.Protection.RequiredReviews < 1 {
		return goerr.Wrap(types.ErrInvalidRequest, "required review count must be 1 or more",
			goerr.V("count", x.Protection.RequiredReviews),
		)
	}
	if x.Category.Restricted() && len(x.CodeOwners) == 0 {
		return goerr.Wrap(types.ErrInvalidRequest, "restricted category needs at least one code owner",
			goerr.V("category", x.Category),
		)
	}
	return nil
}

func (x ProvisioningRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("org", x.Org.String()),
		slog.String("repo", x.Repo.String()),
		slog.String("branch", x.DefaultBranch.String()),
		slog.String("category", x.Category.String()),
		slog.String("region", x.Region.String()),
		slog.Int("topics", len(x.Topics)),
		slog.Int("teams", len(x.Teams)),
		slog.Int("labels", len(x.Labels)),
		slog.Int("code_owners", len(x.CodeOwners)),
		slog.Bool("webhook", x.AddWebhook),
		slog.Any("files", x.Files.List()),
	)
}
