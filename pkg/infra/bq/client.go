package bq

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/kagamino/repoforge/pkg/domain/interfaces"
	"github.com/kagamino/repoforge/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client mirrors audit records to a BigQuery table. The table is
// created from the inferred record schema on first write if missing.
type Client struct {
	bqClient *bigquery.Client
	dataset  string
	tableID  string

	tableReady bool
}

var _ interfaces.AuditSink = (*Client)(nil)

func New(ctx context.Context, projectID, datasetID, tableID string, options ...option.ClientOption) (*Client, error) {
	bqClient, err := bigquery.NewClient(ctx, projectID, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client", goerr.V("projectID", projectID))
	}

	return &Client{
		bqClient: bqClient,
		dataset:  datasetID,
		tableID:  tableID,
	}, nil
}

func (x *Client) Name() string {
	return "bigquery"
}

func (x *Client) Write(ctx context.Context, rec *model.AuditRecord) error {
	if err := x.ensureTable(ctx); err != nil {
		return err
	}

	row := auditRow{
		Timestamp:  rec.Timestamp,
		RunID:      string(rec.RunID),
		Repo:       string(rec.Repo),
		Org:        string(rec.Org),
		Category:   string(rec.Category),
		Region:     string(rec.Region),
		CodeOwners: rec.CodeOwners,
	}

	inserter := x.bqClient.Dataset(x.dataset).Table(x.tableID).Inserter()
	if err := inserter.Put(ctx, row); err != nil {
		return goerr.Wrap(err, "failed to insert audit record",
			goerr.V("dataset", x.dataset),
			goerr.V("table", x.tableID),
		)
	}

	return nil
}

// ensureTable creates the audit table when it does not exist yet.
func (x *Client) ensureTable(ctx context.Context) error {
	if x.tableReady {
		return nil
	}

	table := x.bqClient.Dataset(x.dataset).Table(x.tableID)
	if _, err := table.Metadata(ctx); err != nil {
		gErr, ok := err.(*googleapi.Error)
		if !ok || gErr.Code != 404 {
			return goerr.Wrap(err, "failed to get table metadata",
				goerr.V("dataset", x.dataset),
				goerr.V("table", x.tableID),
			)
		}

		schema, err := bigquery.InferSchema(auditRow{})
		if err != nil {
			return goerr.Wrap(err, "failed to infer audit schema")
		}
		if err := table.Create(ctx, &bigquery.TableMetadata{Schema: schema}); err != nil {
			return goerr.Wrap(err, "failed to create table",
				goerr.V("dataset", x.dataset),
				goerr.V("table", x.tableID),
			)
		}
	}

	x.tableReady = true
	return nil
}
