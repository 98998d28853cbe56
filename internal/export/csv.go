package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"ncth_weapons/internal/app"

	"github.com/rs/zerolog/log"
)

// CSVSink writes a header line and one line per row
type CSVSink struct {
	path string
	out  io.Writer
}

// NewCSVSink writes to path, or to out when path is empty
func NewCSVSink(path string, out io.Writer) *CSVSink {
	return &CSVSink{path: path, out: out}
}

// Write encodes rows as CSV
func (s *CSVSink) Write(ctx context.Context, rows []app.OutputRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.path == "" {
		return WriteCSV(s.out, rows)
	}

	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", s.path, err)
	}

	if err := WriteCSV(file, rows); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file %s: %w", s.path, err)
	}

	log.Debug().
		Str("path", s.path).
		Int("rows", len(rows)).
		Msg("Wrote CSV output")

	return nil
}

// WriteCSV encodes the header and rows to w
func WriteCSV(w io.Writer, rows []app.OutputRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(Record(row)); err != nil {
			return fmt.Errorf("failed to write CSV row for weapon %d: %w", row.Index, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}
