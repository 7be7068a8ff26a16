package config

import (
	"context"
	"log/slog"

	"github.com/kagamino/repoforge/pkg/domain/interfaces"
	"github.com/kagamino/repoforge/pkg/infra/audit"
	"github.com/kagamino/repoforge/pkg/infra/bq"
	"github.com/urfave/cli/v3"
)

// Audit configures the local audit log and the optional BigQuery
// mirror.
type Audit struct {
	path      string
	bqProject string
	bqDataset string
	bqTable   string
}

func (x *Audit) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "audit-log",
			Usage:       "Path of the append-only audit log file",
			Category:    "Audit",
			Value:       "repo_audit.log",
			Destination: &x.path,
			Sources:     cli.EnvVars("REPOFORGE_AUDIT_LOG"),
		},
		&cli.StringFlag{
			Name:        "audit-bq-project-id",
			Usage:       "BigQuery project ID for the audit mirror (optional)",
			Category:    "Audit",
			Destination: &x.bqProject,
			Sources:     cli.EnvVars("REPOFORGE_AUDIT_BQ_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "audit-bq-dataset-id",
			Usage:       "BigQuery dataset ID for the audit mirror",
			Category:    "Audit",
			Destination: &x.bqDataset,
			Sources:     cli.EnvVars("REPOFORGE_AUDIT_BQ_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "audit-bq-table-id",
			Usage:       "BigQuery table ID for the audit mirror",
			Category:    "Audit",
			Value:       "repository_audit",
			Destination: &x.bqTable,
			Sources:     cli.EnvVars("REPOFORGE_AUDIT_BQ_TABLE_ID"),
		},
	}
}

func (x *Audit) Sinks(ctx context.Context) ([]interfaces.AuditSink, error) {
	var sinks []interfaces.AuditSink

	if x.path != "" {
		sink, err := audit.NewFileSink(x.path)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	}

	if x.bqProject != "" {
		sink, err := bq.New(ctx, x.bqProject, x.bqDataset, x.bqTable)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	}

	return sinks, nil
}

func (x *Audit) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
		slog.String("bqProject", x.bqProject),
		slog.String("bqDataset", x.bqDataset),
		slog.String("bqTable", x.bqTable),
	)
}
