package export

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"ncth_weapons/internal/app"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// TableName is the SQLite table holding the exported rows
const TableName = "weapons"

// SQLiteSink recreates the weapons table on every run and inserts one row
// per weapon in output order
type SQLiteSink struct {
	path string
}

// NewSQLiteSink creates a sink writing to the database file at path
func NewSQLiteSink(path string) *SQLiteSink {
	return &SQLiteSink{path: path}
}

// Write replaces the table contents inside a single transaction
func (s *SQLiteSink) Write(ctx context.Context, rows []app.OutputRow) error {
	if strings.TrimSpace(s.path) == "" {
		return fmt.Errorf("storage path is required")
	}

	db, err := sql.Open("sqlite", filepath.Clean(s.path))
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sqlite db: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+TableName); err != nil {
		return fmt.Errorf("drop %s table: %w", TableName, err)
	}
	if _, err := tx.ExecContext(ctx, createTableSQL()); err != nil {
		return fmt.Errorf("create %s table: %w", TableName, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertSQL())
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, sqliteArgs(row)...); err != nil {
			return fmt.Errorf("insert weapon %d: %w", row.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	log.Debug().
		Str("path", s.path).
		Int("rows", len(rows)).
		Msg("Wrote SQLite output")

	return nil
}

func createTableSQL() string {
	defs := make([]string, len(Columns))
	for i, col := range Columns {
		def := col.Name + " " + sqliteType(col.Kind)
		if !col.Optional {
			def += " NOT NULL"
		}
		defs[i] = def
	}
	return fmt.Sprintf("CREATE TABLE %s (\n\t%s\n)", TableName, strings.Join(defs, ",\n\t"))
}

func insertSQL() string {
	names := make([]string, len(Columns))
	placeholders := make([]string, len(Columns))
	for i, col := range Columns {
		names[i] = col.Name
		placeholders[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		TableName, strings.Join(names, ", "), strings.Join(placeholders, ", "))
}

func sqliteType(kind Kind) string {
	switch kind {
	case KindFloat:
		return "REAL"
	case KindString:
		return "TEXT"
	default:
		return "INTEGER"
	}
}

// sqliteArgs stores booleans as 0/1 integers
func sqliteArgs(row app.OutputRow) []any {
	values := NativeValues(row)
	for i, v := range values {
		if b, ok := v.(bool); ok {
			if b {
				values[i] = int64(1)
			} else {
				values[i] = int64(0)
			}
		}
	}
	return values
}
