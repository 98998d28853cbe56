// Package warehouse streams the weapon table into BigQuery.
package warehouse

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ncth_weapons/internal/app"
	"ncth_weapons/internal/config"
	"ncth_weapons/internal/export"

	"cloud.google.com/go/bigquery"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// ExportedAtField records the run that produced a row. Every run appends,
// so this column tells runs apart.
const ExportedAtField = "exported_at"

// Publisher appends each run's rows to one BigQuery table, creating the
// table on first use
type Publisher struct {
	client    *bigquery.Client
	datasetID string
	tableID   string
	now       func() time.Time
}

// NewPublisher creates a BigQuery client for the given project
func NewPublisher(ctx context.Context, projectID, datasetID, tableID, credentialsFile string) (*Publisher, error) {
	client, err := bigquery.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create bigquery client: %w", err)
	}

	return &Publisher{
		client:    client,
		datasetID: datasetID,
		tableID:   tableID,
		now:       time.Now,
	}, nil
}

// Name identifies the publisher in logs
func (p *Publisher) Name() string {
	return "bigquery"
}

// Close releases the client
func (p *Publisher) Close() error {
	return p.client.Close()
}

// Publish ensures the table exists and streams rows into it
func (p *Publisher) Publish(ctx context.Context, rows []app.OutputRow) error {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultPublishTimeouts.BigQuery)
	defer cancel()

	table := p.client.Dataset(p.datasetID).Table(p.tableID)

	if err := ensureTable(ctx, table); err != nil {
		return err
	}

	if len(rows) == 0 {
		log.Debug().Msg("No rows to stream to BigQuery")
		return nil
	}

	savers := NewRowSavers(rows, p.now().UTC())
	if err := table.Inserter().Put(ctx, savers); err != nil {
		return fmt.Errorf("failed to insert rows into %s.%s: %w", p.datasetID, p.tableID, err)
	}

	log.Info().
		Str("dataset", p.datasetID).
		Str("table", p.tableID).
		Int("rows", len(savers)).
		Msg("Streamed rows to BigQuery")

	return nil
}

func ensureTable(ctx context.Context, table *bigquery.Table) error {
	_, err := table.Metadata(ctx)
	if err == nil {
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("failed to get table metadata: %w", err)
	}

	log.Info().
		Str("dataset", table.DatasetID).
		Str("table", table.TableID).
		Msg("Creating BigQuery table")

	if err := table.Create(ctx, &bigquery.TableMetadata{Schema: Schema()}); err != nil {
		return fmt.Errorf("failed to create table %s.%s: %w", table.DatasetID, table.TableID, err)
	}
	return nil
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}

// Schema derives the table schema from the export column model
func Schema() bigquery.Schema {
	schema := make(bigquery.Schema, 0, len(export.Columns)+1)
	for _, col := range export.Columns {
		schema = append(schema, &bigquery.FieldSchema{
			Name:        col.Name,
			Description: col.Header,
			Type:        fieldType(col.Kind),
			Required:    !col.Optional,
		})
	}
	schema = append(schema, &bigquery.FieldSchema{
		Name:     ExportedAtField,
		Type:     bigquery.TimestampFieldType,
		Required: true,
	})
	return schema
}

func fieldType(kind export.Kind) bigquery.FieldType {
	switch kind {
	case export.KindFloat:
		return bigquery.FloatFieldType
	case export.KindString:
		return bigquery.StringFieldType
	case export.KindBool:
		return bigquery.BooleanFieldType
	default:
		return bigquery.IntegerFieldType
	}
}

// RowSaver maps one output row to a BigQuery row
type RowSaver struct {
	Row        app.OutputRow
	ExportedAt time.Time
}

// NewRowSavers wraps rows for streaming, stamping them with one run time
func NewRowSavers(rows []app.OutputRow, exportedAt time.Time) []*RowSaver {
	savers := make([]*RowSaver, len(rows))
	for i, row := range rows {
		savers[i] = &RowSaver{Row: row, ExportedAt: exportedAt}
	}
	return savers
}

// Save implements bigquery.ValueSaver. The insert ID combines run time and
// weapon identifier so a retried insert of the same run is deduplicated.
func (s *RowSaver) Save() (map[string]bigquery.Value, string, error) {
	values := export.NativeValues(s.Row)

	record := make(map[string]bigquery.Value, len(values)+1)
	for i, col := range export.Columns {
		record[col.Name] = values[i]
	}
	record[ExportedAtField] = s.ExportedAt

	insertID := fmt.Sprintf("%d-%d", s.ExportedAt.UnixMilli(), s.Row.Index)
	return record, insertID, nil
}
