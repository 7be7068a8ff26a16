// Package wizard collects a ProvisioningRequest through interactive
// terminal prompts. It is a thin input surface; all policy lives in the
// orchestrator.
package wizard

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/kagamino/repoforge/pkg/domain/model"
	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Run walks through the provisioning questions and returns the built
// request. Malformed label lines are returned as warnings, not errors.
func Run(ctx context.Context) (*model.ProvisioningRequest, []string, error) {
	var (
		org          string
		repo         string
		description  string
		topics       string
		branch       = "main"
		teams        string
		labelLines   string
		codeowners   string
		category     types.Category
		region       types.Region
		addWebhook   bool
		files        []model.Boilerplate
		reviews      = "1"
		statusChecks string
		strict       bool
		secretName   string
		secretValue  string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("GitHub organization").
				Validate(required("organization name")).
				Value(&org),
			huh.NewInput().
				Title("Repository name").
				Validate(required("repository name")).
				Value(&repo),
			huh.NewInput().
				Title("Description").
				Value(&description),
			huh.NewInput().
				Title("Topics (comma-separated)").
				Value(&topics),
			huh.NewInput().
				Title("Default branch").
				Value(&branch),
		),
		huh.NewGroup(
			huh.NewSelect[types.Category]().
				Title("Repository category").
				Options(categoryOptions()...).
				Value(&category),
			huh.NewSelect[types.Region]().
				Title("Region").
				Options(regionOptions()...).
				Value(&region),
			huh.NewInput().
				Title("Team slugs (comma-separated)").
				Description("Used for normal repositories").
				Value(&teams),
			huh.NewInput().
				Title("Code owners (comma-separated GitHub usernames)").
				Description("Required for sox/banking repositories").
				Value(&codeowners),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Labels (one name:color per line, e.g. bug:d73a4a)").
				Value(&labelLines),
			huh.NewMultiSelect[model.Boilerplate]().
				Title("Boilerplate files").
				Options(boilerplateOptions()...).
				Value(&files),
			huh.NewConfirm().
				Title("Register Cloud Build webhook?").
				Value(&addWebhook),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Required approving reviews").
				Validate(positiveInt).
				Value(&reviews),
			huh.NewInput().
				Title("Required status checks (comma-separated contexts)").
				Value(&statusChecks),
			huh.NewConfirm().
				Title("Require branches to be up to date before merging?").
				Value(&strict),
			huh.NewInput().
				Title("Secret name (leave empty to skip secret stores)").
				Value(&secretName),
			huh.NewInput().
				Title("Secret value").
				EchoMode(huh.EchoModePassword).
				Value(&secretValue),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, nil, goerr.Wrap(err, "wizard aborted")
	}

	labels, labelErrs := model.ParseLabels(strings.Split(labelLines, "\n"))
	warnings := make([]string, 0, len(labelErrs))
	for _, err := range labelErrs {
		warnings = append(warnings, err.Error())
	}

	reviewCount, err := strconv.Atoi(strings.TrimSpace(reviews))
	if err != nil {
		return nil, warnings, goerr.Wrap(err, "required reviews must be a number", goerr.V("value", reviews))
	}

	req := &model.ProvisioningRequest{
		Org:           types.OrgName(strings.TrimSpace(org)),
		Repo:          types.RepoName(strings.TrimSpace(repo)),
		Description:   strings.TrimSpace(description),
		Topics:        splitList(topics),
		DefaultBranch: types.BranchName(strings.TrimSpace(branch)),
		Teams:         toTeams(splitList(teams)),
		Labels:        labels,
		CodeOwners:    toUsers(splitList(codeowners)),
		Category:      category,
		Region:        region,
		AddWebhook:    addWebhook,
		Files:         model.NewBoilerplateSet(files...),
		Protection: model.ProtectionPolicy{
			RequiredReviews: reviewCount,
			StatusChecks:    splitList(statusChecks),
			Strict:          strict,
		},
	}
	if name := strings.TrimSpace(secretName); name != "" {
		req.Secret = &model.SecretSeed{Name: name, Value: secretValue}
	}

	if err := req.Validate(); err != nil {
		return nil, warnings, err
	}

	return req, warnings, nil
}

func categoryOptions() []huh.Option[types.Category] {
	var opts []huh.Option[types.Category]
	for _, c := range types.Categories() {
		opts = append(opts, huh.NewOption(c.String(), c))
	}
	return opts
}

func regionOptions() []huh.Option[types.Region] {
	var opts []huh.Option[types.Region]
	for _, r := range types.Regions() {
		opts = append(opts, huh.NewOption(r.String(), r))
	}
	return opts
}

func boilerplateOptions() []huh.Option[model.Boilerplate] {
	var opts []huh.Option[model.Boilerplate]
	for _, tag := range model.Boilerplates() {
		opts = append(opts, huh.NewOption(tag.Path(), tag))
	}
	return opts
}

func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return goerr.New(name + " is required")
		}
		return nil
	}
}

func positiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return goerr.New("must be a number")
	}
	if n < 1 {
		return goerr.New("must be 1 or more")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func toTeams(values []string) []types.TeamSlug {
	out := make([]types.TeamSlug, 0, len(values))
	for _, v := range values {
		out = append(out, types.TeamSlug(v))
	}
	return out
}

func toUsers(values []string) []types.UserName {
	out := make([]types.UserName, 0, len(values))
	for _, v := range values {
		out = append(out, types.UserName(v))
	}
	return out
}
