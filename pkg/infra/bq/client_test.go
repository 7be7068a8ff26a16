package bq_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kagamino/repoforge/pkg/domain/model"
	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/kagamino/repoforge/pkg/infra/bq"
	"github.com/kagamino/repoforge/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestInsertAuditRecord(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")
	tableID := "audit_test_" + time.Now().Format("20060102_150405")

	ctx := context.Background()
	client := gt.R1(bq.New(ctx, projectID, datasetID, tableID)).NoError(t)

	rec := &model.AuditRecord{
		Timestamp:  time.Now().UTC(),
		RunID:      types.RunID(uuid.NewString()),
		Repo:       "svc-x",
		Org:        "acme",
		Category:   types.CategoryNormal,
		Region:     types.RegionNorthAmerica,
		CodeOwners: []string{"alice"},
	}

	gt.NoError(t, client.Write(ctx, rec))

	// Second write reuses the created table.
	gt.NoError(t, client.Write(ctx, rec))
}
