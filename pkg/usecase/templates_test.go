package usecase_test

import (
	"strings"
	"testing"

	"github.com/kagamino/repoforge/pkg/domain/model"
	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/kagamino/repoforge/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestRenderBoilerplate(t *testing.T) {
	req := baseRequest()
	req.CodeOwners = []types.UserName{"alice", "bob"}

	t.Run("every tag renders non-empty content", func(t *testing.T) {
		for _, tag := range model.Boilerplates() {
			content, err := usecase.RenderBoilerplate(tag, req)
			gt.NoError(t, err)
			gt.True(t, len(content) > 0)
		}
	})

	t.Run("readme includes repo and description", func(t *testing.T) {
		content, err := usecase.RenderBoilerplate(model.BoilerplateReadme, req)
		gt.NoError(t, err)
		text := string(content)
		gt.True(t, strings.Contains(text, "# svc-x"))
		gt.True(t, strings.Contains(text, "test service"))
		gt.True(t, strings.Contains(text, "north-america"))
		gt.True(t, strings.Contains(text, "normal"))
	})

	t.Run("codeowners lists every owner", func(t *testing.T) {
		content, err := usecase.RenderBoilerplate(model.BoilerplateCodeowners, req)
		gt.NoError(t, err)
		gt.V(t, string(content)).Equal("* @alice @bob\n")
	})

	t.Run("cloudbuild references the repo image", func(t *testing.T) {
		content, err := usecase.RenderBoilerplate(model.BoilerplateCloudBuild, req)
		gt.NoError(t, err)
		gt.True(t, strings.Contains(string(content), "gcr.io/$PROJECT_ID/svc-x:$COMMIT_SHA"))
	})

	t.Run("license names the org", func(t *testing.T) {
		content, err := usecase.RenderBoilerplate(model.BoilerplateLicense, req)
		gt.NoError(t, err)
		gt.True(t, strings.Contains(string(content), "Copyright (c) 2025 acme"))
	})

	t.Run("unknown tag fails", func(t *testing.T) {
		_, err := usecase.RenderBoilerplate(model.Boilerplate("makefile"), req)
		gt.Error(t, err)
	})
}
