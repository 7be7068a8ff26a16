package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/kagamino/repoforge/pkg/domain/types"
)

// AuditRecord is one line of the append-only audit log.
type AuditRecord struct {
	Timestamp  time.Time       `bigquery:"timestamp" json:"timestamp"`
	RunID      types.RunID     `bigquery:"run_id" json:"run_id"`
	Repo       types.RepoName  `bigquery:"repo" json:"repo"`
	Org        types.OrgName   `bigquery:"org" json:"org"`
	Category   types.Category  `bigquery:"category" json:"category"`
	Region     types.Region    `bigquery:"region" json:"region"`
	CodeOwners []string        `bigquery:"code_owners" json:"code_owners"`
}

// Line renders the pipe-delimited file format:
// timestamp | repo | org | category | region | code owners
func (x AuditRecord) Line() string {
	return fmt.Sprintf("%s | %s | %s | %s | %s | %s",
		x.Timestamp.Format(time.RFC3339),
		x.Repo,
		x.Org,
		x.Category,
		x.Region,
		strings.Join(x.CodeOwners, ","),
	)
}
