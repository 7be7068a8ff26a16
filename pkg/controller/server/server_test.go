package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/kagamino/repoforge/pkg/controller/server"
	"github.com/kagamino/repoforge/pkg/domain/mock"
	"github.com/kagamino/repoforge/pkg/domain/model"
	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func postForm(t *testing.T, srv *server.Server, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/provision", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"org_name":  []string{"acme"},
		"repo_name": []string{"svc-x"},
		"category":  []string{"normal"},
		"region":    []string{"north-america"},
	}
}

func TestHealth(t *testing.T) {
	srv := server.New(&mock.UseCaseMock{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestForm(t *testing.T) {
	srv := server.New(&mock.UseCaseMock{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	body := rec.Body.String()
	for _, field := range []string{"org_name", "repo_name", "category", "region", "labels", "codeowners"} {
		gt.True(t, strings.Contains(body, field))
	}
	gt.True(t, strings.Contains(body, "sox"))
	gt.True(t, strings.Contains(body, "banking"))
	gt.True(t, strings.Contains(body, "china"))
}

func TestProvisionHandler(t *testing.T) {
	t.Run("minimal form builds a valid request", func(t *testing.T) {
		ucMock := &mock.UseCaseMock{}
		srv := server.New(ucMock)

		rec := postForm(t, srv, validForm())
		gt.V(t, rec.Code).Equal(http.StatusOK)

		gt.V(t, len(ucMock.Calls.Provision)).Equal(1)
		req := ucMock.Calls.Provision[0]
		gt.V(t, req.Org).Equal("acme")
		gt.V(t, req.Repo).Equal("svc-x")
		gt.V(t, req.DefaultBranch).Equal("main")
		gt.V(t, req.Protection.RequiredReviews).Equal(1)
	})

	t.Run("full form maps every field", func(t *testing.T) {
		ucMock := &mock.UseCaseMock{}
		srv := server.New(ucMock)

		form := url.Values{
			"org_name":         []string{"acme"},
			"repo_name":        []string{"svc-y"},
			"description":      []string{"payment service"},
			"topics":           []string{"go, payments"},
			"default_branch":   []string{"develop"},
			"team_slugs":       []string{"platform,sre"},
			"labels":           []string{"bug:d73a4a, feature:00ff00"},
			"codeowners":       []string{"alice,bob"},
			"category":         []string{"sox"},
			"region":           []string{"china"},
			"add_webhook":      []string{"on"},
			"files":            []string{"readme", "codeowners"},
			"required_reviews": []string{"2"},
			"status_checks":    []string{"ci/test"},
			"strict_checks":    []string{"on"},
			"secret_name":      []string{"deploy-key"},
			"secret_value":     []string{"s3cr3t"},
		}

		rec := postForm(t, srv, form)
		gt.V(t, rec.Code).Equal(http.StatusOK)

		req := ucMock.Calls.Provision[0]
		gt.V(t, req.Description).Equal("payment service")
		gt.V(t, req.Topics).Equal([]string{"go", "payments"})
		gt.V(t, req.DefaultBranch).Equal("develop")
		gt.V(t, req.Teams).Equal([]types.TeamSlug{"platform", "sre"})
		gt.V(t, req.Labels).Equal([]model.Label{
			{Name: "bug", Color: "d73a4a"},
			{Name: "feature", Color: "00ff00"},
		})
		gt.V(t, req.CodeOwners).Equal([]types.UserName{"alice", "bob"})
		gt.V(t, req.Category).Equal(types.CategorySox)
		gt.V(t, req.Region).Equal(types.RegionChina)
		gt.True(t, req.AddWebhook)
		gt.True(t, req.Files.Has(model.BoilerplateReadme))
		gt.True(t, req.Files.Has(model.BoilerplateCodeowners))
		gt.V(t, req.Protection.RequiredReviews).Equal(2)
		gt.V(t, req.Protection.StatusChecks).Equal([]string{"ci/test"})
		gt.True(t, req.Protection.Strict)
		gt.V(t, req.Secret.Name).Equal("deploy-key")
		gt.V(t, req.Secret.Value).Equal("s3cr3t")
	})

	t.Run("invalid category is rejected before the run", func(t *testing.T) {
		ucMock := &mock.UseCaseMock{}
		srv := server.New(ucMock)

		form := validForm()
		form.Set("category", "experimental")

		rec := postForm(t, srv, form)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.V(t, len(ucMock.Calls.Provision)).Equal(0)
	})

	t.Run("malformed labels become warnings, not errors", func(t *testing.T) {
		ucMock := &mock.UseCaseMock{}
		srv := server.New(ucMock)

		form := validForm()
		form.Set("labels", "bug:d73a4a, broken")

		rec := postForm(t, srv, form)
		gt.V(t, rec.Code).Equal(http.StatusOK)

		req := ucMock.Calls.Provision[0]
		gt.V(t, len(req.Labels)).Equal(1)
		gt.V(t, req.Labels[0].Name).Equal("bug")
	})

	t.Run("run failure renders the partial result with 500", func(t *testing.T) {
		ucMock := &mock.UseCaseMock{
			ProvisionFunc: func(ctx context.Context, req model.ProvisioningRequest) (*model.ProvisioningResult, error) {
				result := &model.ProvisioningResult{}
				result.Record(model.StepCreateRepo, model.StepDone, "acme/svc-x")
				result.Record(model.StepTopics, model.StepFailed, "boom")
				return result, goerr.New("boom")
			},
		}
		srv := server.New(ucMock)

		rec := postForm(t, srv, validForm())
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
		body := rec.Body.String()
		gt.True(t, strings.Contains(body, "replace-topics"))
		gt.True(t, strings.Contains(body, "failed"))
	})
}
