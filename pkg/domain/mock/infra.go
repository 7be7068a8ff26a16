// Package mock provides hand-written mocks in moq style: function
// fields per method plus recorded call arguments.
package mock

import (
	"context"

	"github.com/kagamino/repoforge/pkg/domain/interfaces"
	"github.com/kagamino/repoforge/pkg/domain/model"
	"github.com/kagamino/repoforge/pkg/domain/types"
)

type CreateRepositoryCall struct {
	Input *interfaces.CreateRepositoryInput
}

type ReplaceTopicsCall struct {
	Org    types.OrgName
	Repo   types.RepoName
	Topics []string
}

type CreateLabelCall struct {
	Org   types.OrgName
	Repo  types.RepoName
	Label model.Label
}

type CreateWebhookCall struct {
	Org   types.OrgName
	Repo  types.RepoName
	Input *interfaces.CreateWebhookInput
}

type AddCollaboratorCall struct {
	Org        types.OrgName
	Repo       types.RepoName
	User       types.UserName
	Permission interfaces.Permission
}

type AddTeamCall struct {
	Org        types.OrgName
	Repo       types.RepoName
	Team       types.TeamSlug
	Permission interfaces.Permission
}

type ProtectBranchCall struct {
	Org    types.OrgName
	Repo   types.RepoName
	Branch types.BranchName
	Policy model.ProtectionPolicy
}

type CommitFileCall struct {
	Org   types.OrgName
	Repo  types.RepoName
	Input *interfaces.CommitFileInput
}

// GitHubClientMock implements interfaces.GitHubClient. A nil function
// field means the call succeeds and is only recorded.
type GitHubClientMock struct {
	CreateRepositoryFunc func(ctx context.Context, input *interfaces.CreateRepositoryInput) error
	ReplaceTopicsFunc    func(ctx context.Context, org types.OrgName, repo types.RepoName, topics []string) error
	CreateLabelFunc      func(ctx context.Context, org types.OrgName, repo types.RepoName, label model.Label) error
	CreateWebhookFunc    func(ctx context.Context, org types.OrgName, repo types.RepoName, input *interfaces.CreateWebhookInput) error
	AddCollaboratorFunc  func(ctx context.Context, org types.OrgName, repo types.RepoName, user types.UserName, permission interfaces.Permission) error
	AddTeamFunc          func(ctx context.Context, org types.OrgName, repo types.RepoName, team types.TeamSlug, permission interfaces.Permission) error
	ProtectBranchFunc    func(ctx context.Context, org types.OrgName, repo types.RepoName, branch types.BranchName, policy model.ProtectionPolicy) error
	CommitFileFunc       func(ctx context.Context, org types.OrgName, repo types.RepoName, input *interfaces.CommitFileInput) error

	Calls struct {
		CreateRepository []CreateRepositoryCall
		ReplaceTopics    []ReplaceTopicsCall
		CreateLabel      []CreateLabelCall
		CreateWebhook    []CreateWebhookCall
		AddCollaborator  []AddCollaboratorCall
		AddTeam          []AddTeamCall
		ProtectBranch    []ProtectBranchCall
		CommitFile       []CommitFileCall
	}

	// Order records the method names in call order.
	Order []string
}

var _ interfaces.GitHubClient = (*GitHubClientMock)(nil)

func (x *GitHubClientMock) CreateRepository(ctx context.Context, input *interfaces.CreateRepositoryInput) error {
	x.Calls.CreateRepository = append(x.Calls.CreateRepository, CreateRepositoryCall{Input: input})
	x.Order = append(x.Order, "CreateRepository")
	if x.CreateRepositoryFunc != nil {
		return x.CreateRepositoryFunc(ctx, input)
	}
	return nil
}

func (x *GitHubClientMock) ReplaceTopics(ctx context.Context, org types.OrgName, repo types.RepoName, topics []string) error {
	x.Calls.ReplaceTopics = append(x.Calls.ReplaceTopics, ReplaceTopicsCall{Org: org, Repo: repo, Topics: topics})
	x.Order = append(x.Order, "ReplaceTopics")
	if x.ReplaceTopicsFunc != nil {
		return x.ReplaceTopicsFunc(ctx, org, repo, topics)
	}
	return nil
}

func (x *GitHubClientMock) CreateLabel(ctx context.Context, org types.OrgName, repo types.RepoName, label model.Label) error {
	x.Calls.CreateLabel = append(x.Calls.CreateLabel, CreateLabelCall{Org: org, Repo: repo, Label: label})
	x.Order = append(x.Order, "CreateLabel")
	if x.CreateLabelFunc != nil {
		return x.CreateLabelFunc(ctx, org, repo, label)
	}
	return nil
}

func (x *GitHubClientMock) CreateWebhook(ctx context.Context, org types.OrgName, repo types.RepoName, input *interfaces.CreateWebhookInput) error {
	x.Calls.CreateWebhook = append(x.Calls.CreateWebhook, CreateWebhookCall{Org: org, Repo: repo, Input: input})
	x.Order = append(x.Order, "CreateWebhook")
	if x.CreateWebhookFunc != nil {
		return x.CreateWebhookFunc(ctx, org, repo, input)
	}
	return nil
}

func (x *GitHubClientMock) AddCollaborator(ctx context.Context, org types.OrgName, repo types.RepoName, user types.UserName, permission interfaces.Permission) error {
	x.Calls.AddCollaborator = append(x.Calls.AddCollaborator, AddCollaboratorCall{Org: org, Repo: repo, User: user, Permission: permission})
	x.Order = append(x.Order, "AddCollaborator")
	if x.AddCollaboratorFunc != nil {
		return x.AddCollaboratorFunc(ctx, org, repo, user, permission)
	}
	return nil
}

func (x *GitHubClientMock) AddTeam(ctx context.Context, org types.OrgName, repo types.RepoName, team types.TeamSlug, permission interfaces.Permission) error {
	x.Calls.AddTeam = append(x.Calls.AddTeam, AddTeamCall{Org: org, Repo: repo, Team: team, Permission: permission})
	x.Order = append(x.Order, "AddTeam")
	if x.AddTeamFunc != nil {
		return x.AddTeamFunc(ctx, org, repo, team, permission)
	}
	return nil
}

func (x *GitHubClientMock) ProtectBranch(ctx context.Context, org types.OrgName, repo types.RepoName, branch types.BranchName, policy model.ProtectionPolicy) error {
	x.Calls.ProtectBranch = append(x.Calls.ProtectBranch, ProtectBranchCall{Org: org, Repo: repo, Branch: branch, Policy: policy})
	x.Order = append(x.Order, "ProtectBranch")
	if x.ProtectBranchFunc != nil {
		return x.ProtectBranchFunc(ctx, org, repo, branch, policy)
	}
	return nil
}

func (x *GitHubClientMock) CommitFile(ctx context.Context, org types.OrgName, repo types.RepoName, input *interfaces.CommitFileInput) error {
	x.Calls.CommitFile = append(x.Calls.CommitFile, CommitFileCall{Org: org, Repo: repo, Input: input})
	x.Order = append(x.Order, "CommitFile")
	if x.CommitFileFunc != nil {
		return x.CommitFileFunc(ctx, org, repo, input)
	}
	return nil
}

// SecretStoreMock implements interfaces.SecretStore.
type SecretStoreMock struct {
	NameValue        string
	CreateSecretFunc func(ctx context.Context, name, value string) error

	Calls struct {
		CreateSecret []struct {
			Name  string
			Value string
		}
	}
}

var _ interfaces.SecretStore = (*SecretStoreMock)(nil)

func (x *SecretStoreMock) Name() string {
	if x.NameValue == "" {
		return "mock"
	}
	return x.NameValue
}

func (x *SecretStoreMock) CreateSecret(ctx context.Context, name, value string) error {
	x.Calls.CreateSecret = append(x.Calls.CreateSecret, struct {
		Name  string
		Value string
	}{Name: name, Value: value})
	if x.CreateSecretFunc != nil {
		return x.CreateSecretFunc(ctx, name, value)
	}
	return nil
}

// NotifierMock implements interfaces.Notifier.
type NotifierMock struct {
	NotifyFunc func(ctx context.Context, text string) error

	Calls struct {
		Notify []string
	}
}

var _ interfaces.Notifier = (*NotifierMock)(nil)

func (x *NotifierMock) Notify(ctx context.Context, text string) error {
	x.Calls.Notify = append(x.Calls.Notify, text)
	if x.NotifyFunc != nil {
		return x.NotifyFunc(ctx, text)
	}
	return nil
}

// AuditSinkMock implements interfaces.AuditSink.
type AuditSinkMock struct {
	NameValue string
	WriteFunc func(ctx context.Context, rec *model.AuditRecord) error

	Calls struct {
		Write []*model.AuditRecord
	}
}

var _ interfaces.AuditSink = (*AuditSinkMock)(nil)

func (x *AuditSinkMock) Name() string {
	if x.NameValue == "" {
		return "mock"
	}
	return x.NameValue
}

func (x *AuditSinkMock) Write(ctx context.Context, rec *model.AuditRecord) error {
	x.Calls.Write = append(x.Calls.Write, rec)
	if x.WriteFunc != nil {
		return x.WriteFunc(ctx, rec)
	}
	return nil
}
