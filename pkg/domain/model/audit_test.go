package model_test

import (
	"testing"
	"time"

	"github.com/kagamino/repoforge/pkg/domain/model"
	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestAuditRecordLine(t *testing.T) {
	rec := model.AuditRecord{
		Timestamp:  time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
		Repo:       "svc-x",
		Org:        "acme",
		Category:   types.CategorySox,
		Region:     types.RegionChina,
		CodeOwners: []string{"alice", "bob"},
	}

	gt.V(t, rec.Line()).Equal("2025-06-01T12:30:00Z | svc-x | acme | sox | china | alice,bob")
}
