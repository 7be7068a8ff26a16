package interfaces

import (
	"context"

	"github.com/kagamino/repoforge/pkg/domain/model"
	"github.com/kagamino/repoforge/pkg/domain/types"
)

// Permission is the collaborator permission granted on the repository.
type Permission string

const (
	PermissionAdmin Permission = "admin"
	PermissionPush  Permission = "push"
)

type CreateRepositoryInput struct {
	Org           types.OrgName
	Repo          types.RepoName
	Description   string
	DefaultBranch types.BranchName
	Private       bool
	AutoInit      bool
}

type CreateWebhookInput struct {
	URL         string
	ContentType string
	Events      []string
}

type CommitFileInput struct {
	Path    string
	Message string
	Content []byte
	Branch  types.BranchName
}

// GitHubClient covers every remote call of the provisioning pipeline.
// Each method is a single one-shot API call without retry.
type GitHubClient interface {
	CreateRepository(ctx context.Context, input *CreateRepositoryInput) error
	ReplaceTopics(ctx context.Context, org types.OrgName, repo types.RepoName, topics []string) error
	CreateLabel(ctx context.Context, org types.OrgName, repo types.RepoName, label model.Label) error
	CreateWebhook(ctx context.Context, org types.OrgName, repo types.RepoName, input *CreateWebhookInput) error
	AddCollaborator(ctx context.Context, org types.OrgName, repo types.RepoName, user types.UserName, permission Permission) error
	AddTeam(ctx context.Context, org types.OrgName, repo types.RepoName, team types.TeamSlug, permission Permission) error
	ProtectBranch(ctx context.Context, org types.OrgName, repo types.RepoName, branch types.BranchName, policy model.ProtectionPolicy) error
	CommitFile(ctx context.Context, org types.OrgName, repo types.RepoName, input *CommitFileInput) error
}

// SecretStore creates a versioned secret in an external backend.
type SecretStore interface {
	Name() string
	CreateSecret(ctx context.Context, name, value string) error
}

// Notifier posts a completion message to a chat webhook.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// AuditSink records one audit line per provisioning run.
type AuditSink interface {
	Name() string
	Write(ctx context.Context, rec *model.AuditRecord) error
}
