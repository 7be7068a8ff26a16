package bq

import "time"

type auditRow struct {
	Timestamp  time.Time `bigquery:"timestamp"`
	RunID      string    `bigquery:"run_id"`
	Repo       string    `bigquery:"repo"`
	Org        string    `bigquery:"org"`
	Category   string    `bigquery:"category"`
	Region     string    `bigquery:"region"`
	CodeOwners []string  `bigquery:"code_owners"`
}
