package types_test

import (
	"testing"

	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestCategory(t *testing.T) {
	t.Run("known categories validate", func(t *testing.T) {
		for _, c := range types.Categories() {
			gt.NoError(t, c.Validate())
		}
	})

	t.Run("unknown category fails", func(t *testing.T) {
		gt.Error(t, types.Category("experimental").Validate())
	})

	t.Run("restricted categories", func(t *testing.T) {
		gt.True(t, types.CategorySox.Restricted())
		gt.True(t, types.CategoryBanking.Restricted())
		gt.False(t, types.CategoryNormal.Restricted())
	})
}

func TestRegion(t *testing.T) {
	t.Run("known regions validate", func(t *testing.T) {
		for _, r := range types.Regions() {
			gt.NoError(t, r.Validate())
		}
	})

	t.Run("unknown region fails", func(t *testing.T) {
		gt.Error(t, types.Region("antarctica").Validate())
	})
}
