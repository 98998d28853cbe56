package export

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"ncth_weapons/internal/app"
)

// Format selects the output encoding
type Format string

const (
	FormatCSV    Format = "csv"
	FormatXLSX   Format = "xlsx"
	FormatSQLite Format = "sqlite"
)

// Sink writes the final ordered rows to their destination
type Sink interface {
	Write(ctx context.Context, rows []app.OutputRow) error
}

// ResolveFormat picks the output format from the -format flag value, or
// from the output file extension when the flag is empty. CSV is the
// fallback; XLSX and SQLite need an output file.
func ResolveFormat(flagValue, outputPath string) (Format, error) {
	var format Format

	switch strings.ToLower(strings.TrimSpace(flagValue)) {
	case "":
		format = formatFromExtension(outputPath)
	case "csv":
		format = FormatCSV
	case "xlsx", "excel":
		format = FormatXLSX
	case "sqlite", "sqlite3", "db":
		format = FormatSQLite
	default:
		return "", fmt.Errorf("unknown output format %q (expected csv, xlsx or sqlite)", flagValue)
	}

	if format != FormatCSV && outputPath == "" {
		return "", fmt.Errorf("%s output requires an output file", format)
	}

	return format, nil
}

func formatFromExtension(outputPath string) Format {
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".xlsx":
		return FormatXLSX
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}

// NewSink creates the sink for a format. An empty output path means stdout
// and is only valid for CSV.
func NewSink(format Format, outputPath string, stdout io.Writer) (Sink, error) {
	switch format {
	case FormatCSV:
		return NewCSVSink(outputPath, stdout), nil
	case FormatXLSX:
		if outputPath == "" {
			return nil, fmt.Errorf("xlsx output requires an output file")
		}
		return NewXLSXSink(outputPath), nil
	case FormatSQLite:
		if outputPath == "" {
			return nil, fmt.Errorf("sqlite output requires an output file")
		}
		return NewSQLiteSink(outputPath), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
