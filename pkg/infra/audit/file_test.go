package audit_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kagamino/repoforge/pkg/domain/model"
	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/kagamino/repoforge/pkg/infra/audit"
	"github.com/m-mizutani/gt"
)

func TestFileSink(t *testing.T) {
	t.Run("empty path fails", func(t *testing.T) {
		_, err := audit.NewFileSink("")
		gt.Error(t, err)
	})

	t.Run("appends one line per record", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "audit.log")
		sink := gt.R1(audit.NewFileSink(path)).NoError(t)

		ctx := context.Background()
		rec1 := &model.AuditRecord{
			Timestamp:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Repo:       "svc-x",
			Org:        "acme",
			Category:   types.CategoryNormal,
			Region:     types.RegionNorthAmerica,
			CodeOwners: []string{"alice"},
		}
		rec2 := &model.AuditRecord{
			Timestamp: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			Repo:      "svc-y",
			Org:       "acme",
			Category:  types.CategorySox,
			Region:    types.RegionChina,
		}

		gt.NoError(t, sink.Write(ctx, rec1))
		gt.NoError(t, sink.Write(ctx, rec2))

		data := gt.R1(os.ReadFile(path)).NoError(t)
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		gt.V(t, len(lines)).Equal(2)
		gt.V(t, lines[0]).Equal(rec1.Line())
		gt.V(t, lines[1]).Equal(rec2.Line())
	})
}
