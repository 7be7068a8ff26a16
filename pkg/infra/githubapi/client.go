package githubapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/kagamino/repoforge/pkg/domain/interfaces"
	"github.com/kagamino/repoforge/pkg/domain/model"
	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/kagamino/repoforge/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

// Client implements interfaces.GitHubClient with the GitHub REST API.
type Client struct {
	gh *github.Client
}

var _ interfaces.GitHubClient = (*Client)(nil)

// New creates a client authenticated with a personal access token.
func New(ctx context.Context, token types.GitHubToken) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "github token is empty")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	return &Client{
		gh: github.NewClient(oauth2.NewClient(ctx, ts)),
	}, nil
}

// NewApp creates a client authenticated as a GitHub App installation.
func NewApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	itr, err := ghinstallation.New(http.DefaultTransport, int64(appID), int64(installID), []byte(pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create github installation transport")
	}

	return &Client{
		gh: github.NewClient(&http.Client{Transport: itr}),
	}, nil
}

func (x *Client) CreateRepository(ctx context.Context, input *interfaces.CreateRepositoryInput) error {
	logging.From(ctx).Info("Creating repository",
		slog.String("org", input.Org.String()),
		slog.String("repo", input.Repo.String()),
	)

	repo := &github.Repository{
		Name:          github.String(input.Repo.String()),
		Description:   github.String(input.Description),
		Private:       github.Bool(input.Private),
		AutoInit:      github.Bool(input.AutoInit),
		DefaultBranch: github.String(input.DefaultBranch.String()),
	}

	if _, _, err := x.gh.Repositories.Create(ctx, input.Org.String(), repo); err != nil {
		return goerr.Wrap(err, "failed to create repository",
			goerr.V("org", input.Org),
			goerr.V("repo", input.Repo),
		)
	}

	return nil
}

func (x *Client) ReplaceTopics(ctx context.Context, org types.OrgName, repo types.RepoName, topics []string) error {
	if _, _, err := x.gh.Repositories.ReplaceAllTopics(ctx, org.String(), repo.String(), topics); err != nil {
		return goerr.Wrap(err, "failed to replace topics",
			goerr.V("repo", repo),
			goerr.V("topics", topics),
		)
	}
	return nil
}

func (x *Client) CreateLabel(ctx context.Context, org types.OrgName, repo types.RepoName, label model.Label) error {
	input := &github.Label{
		Name:  github.String(label.Name),
		Color: github.String(label.Color),
	}
	if _, _, err := x.gh.Issues.CreateLabel(ctx, org.String(), repo.String(), input); err != nil {
		return goerr.Wrap(err, "failed to create label",
			goerr.V("repo", repo),
			goerr.V("label", label.Name),
		)
	}
	return nil
}

func (x *Client) CreateWebhook(ctx context.Context, org types.OrgName, repo types.RepoName, input *interfaces.CreateWebhookInput) error {
	hook := &github.Hook{
		Name: github.String("web"),
		Config: map[string]interface{}{
			"url":          input.URL,
			"content_type": input.ContentType,
		},
		Events: input.Events,
		Active: github.Bool(true),
	}

	if _, _, err := x.gh.Repositories.CreateHook(ctx, org.String(), repo.String(), hook); err != nil {
		return goerr.Wrap(err, "failed to create webhook",
			goerr.V("repo", repo),
			goerr.V("url", input.URL),
		)
	}
	return nil
}

func (x *Client) AddCollaborator(ctx context.Context, org types.OrgName, repo types.RepoName, user types.UserName, permission interfaces.Permission) error {
	opt := &github.RepositoryAddCollaboratorOptions{
		Permission: string(permission),
	}
	if _, _, err := x.gh.Repositories.AddCollaborator(ctx, org.String(), repo.String(), user.String(), opt); err != nil {
		return goerr.Wrap(err, "failed to add collaborator",
			goerr.V("repo", repo),
			goerr.V("user", user),
			goerr.V("permission", permission),
		)
	}
	return nil
}

func (x *Client) AddTeam(ctx context.Context, org types.OrgName, repo types.RepoName, team types.TeamSlug, permission interfaces.Permission) error {
	opt := &github.TeamAddTeamRepoOptions{
		Permission: string(permission),
	}
	if _, err := x.gh.Teams.AddTeamRepoBySlug(ctx, org.String(), team.String(), org.String(), repo.String(), opt); err != nil {
		return goerr.Wrap(err, "failed to add team",
			goerr.V("repo", repo),
			goerr.V("team", team),
			goerr.V("permission", permission),
		)
	}
	return nil
}

func (x *Client) ProtectBranch(ctx context.Context, org types.OrgName, repo types.RepoName, branch types.BranchName, policy model.ProtectionPolicy) error {
	req := &github.ProtectionRequest{
		RequiredPullRequestReviews: &github.PullRequestReviewsEnforcementRequest{
			RequiredApprovingReviewCount: policy.RequiredReviews,
			DismissStaleReviews:          true,
			RequireCodeOwnerReviews:      true,
		},
		EnforceAdmins: true,
		Restrictions:  nil,
	}
	if len(policy.StatusChecks) > 0 {
		req.RequiredStatusChecks = &github.RequiredStatusChecks{
			Strict:   policy.Strict,
			Contexts: policy.StatusChecks,
		}
	}

	logging.From(ctx).Info("Applying branch protection",
		slog.String("repo", repo.String()),
		slog.String("branch", branch.String()),
		slog.Int("required_reviews", policy.RequiredReviews),
		slog.Any("status_checks", policy.StatusChecks),
	)

	if _, _, err := x.gh.Repositories.UpdateBranchProtection(ctx, org.String(), repo.String(), branch.String(), req); err != nil {
		return goerr.Wrap(err, "failed to update branch protection",
			goerr.V("repo", repo),
			goerr.V("branch", branch),
		)
	}
	return nil
}

func (x *Client) CommitFile(ctx context.Context, org types.OrgName, repo types.RepoName, input *interfaces.CommitFileInput) error {
	opt := &github.RepositoryContentFileOptions{
		Message: github.String(input.Message),
		Content: input.Content,
		Branch:  github.String(input.Branch.String()),
	}
	if _, _, err := x.gh.Repositories.CreateFile(ctx, org.String(), repo.String(), input.Path, opt); err != nil {
		return goerr.Wrap(err, "failed to commit file",
			goerr.V("repo", repo),
			goerr.V("path", input.Path),
		)
	}
	return nil
}
