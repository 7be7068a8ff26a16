package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	OrgName    string
	RepoName   string
	BranchName string
	TeamSlug   string
	UserName   string

	GitHubToken         string
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string

	VaultToken string

	RunID string
)

func (x OrgName) String() string    { return string(x) }
func (x RepoName) String() string   { return string(x) }
func (x BranchName) String() string { return string(x) }
func (x TeamSlug) String() string   { return string(x) }
func (x UserName) String() string   { return string(x) }

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x VaultToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x VaultToken) String() string {
	return "***********"
}
