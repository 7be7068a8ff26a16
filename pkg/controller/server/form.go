package server

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/kagamino/repoforge/pkg/domain/model"
	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/kagamino/repoforge/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type formPage struct {
	Categories   []types.Category
	Regions      []types.Region
	Boilerplates []model.Boilerplate
}

type resultPage struct {
	Repo     types.RepoName
	Org      types.OrgName
	Warnings []string
	Result   *model.ProvisioningResult
	RunErr   error
}

func renderForm(w http.ResponseWriter, r *http.Request) {
	data := &formPage{
		Categories:   types.Categories(),
		Regions:      types.Regions(),
		Boilerplates: model.Boilerplates(),
	}
	if err := pages.ExecuteTemplate(w, "index.html", data); err != nil {
		logging.From(r.Context()).Error("fail to render form", slog.Any("error", err))
	}
}

func renderResult(w http.ResponseWriter, r *http.Request, data *resultPage) {
	if data.RunErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
	if err := pages.ExecuteTemplate(w, "result.html", data); err != nil {
		logging.From(r.Context()).Error("fail to render result", slog.Any("error", err))
	}
}

// parseRequest builds a ProvisioningRequest from the submitted form.
// Malformed label entries are collected as warnings and dropped; the
// rest of the request proceeds.
func parseRequest(r *http.Request) (model.ProvisioningRequest, []string, error) {
	if err := r.ParseForm(); err != nil {
		return model.ProvisioningRequest{}, nil, goerr.Wrap(err, "failed to parse form")
	}

	labels, labelErrs := model.ParseLabels(splitList(r.FormValue("labels")))
	warnings := make([]string, 0, len(labelErrs))
	for _, err := range labelErrs {
		warnings = append(warnings, err.Error())
	}

	files := model.BoilerplateSet{}
	for _, v := range r.Form["files"] {
		tag, err := model.ParseBoilerplate(v)
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		files.Add(tag)
	}

	branch := types.BranchName(strings.TrimSpace(r.FormValue("default_branch")))
	if branch == "" {
		branch = "main"
	}

	reviews := 1
	if v := strings.TrimSpace(r.FormValue("required_reviews")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return model.ProvisioningRequest{}, warnings, goerr.Wrap(err, "required_reviews must be a number", goerr.V("value", v))
		}
		reviews = n
	}

	req := model.ProvisioningRequest{
		Org:           types.OrgName(strings.TrimSpace(r.FormValue("org_name"))),
		Repo:          types.RepoName(strings.TrimSpace(r.FormValue("repo_name"))),
		Description:   strings.TrimSpace(r.FormValue("description")),
		Topics:        splitList(r.FormValue("topics")),
		DefaultBranch: branch,
		Teams:         teamSlugs(splitList(r.FormValue("team_slugs"))),
		Labels:        labels,
		CodeOwners:    userNames(splitList(r.FormValue("codeowners"))),
		Category:      types.Category(r.FormValue("category")),
		Region:        types.Region(r.FormValue("region")),
		AddWebhook:    r.FormValue("add_webhook") != "",
		Files:         files,
		Protection: model.ProtectionPolicy{
			RequiredReviews: reviews,
			StatusChecks:    splitList(r.FormValue("status_checks")),
			Strict:          r.FormValue("strict_checks") != "",
		},
	}

	if name := strings.TrimSpace(r.FormValue("secret_name")); name != "" {
		req.Secret = &model.SecretSeed{
			Name:  name,
			Value: r.FormValue("secret_value"),
		}
	}

	if err := req.Validate(); err != nil {
		return model.ProvisioningRequest{}, warnings, err
	}

	return req, warnings, nil
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

func teamSlugs(values []string) []types.TeamSlug {
	out := make([]types.TeamSlug, 0, len(values))
	for _, v := range values {
		out = append(out, types.TeamSlug(v))
	}
	return out
}

func userNames(values []string) []types.UserName {
	out := make([]types.UserName, 0, len(values))
	for _, v := range values {
		out = append(out, types.UserName(v))
	}
	return out
}
