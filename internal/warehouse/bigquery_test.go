package warehouse

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"ncth_weapons/internal/app"
	"ncth_weapons/internal/export"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"
)

// Compile-time check that rows can be streamed
var _ bigquery.ValueSaver = (*RowSaver)(nil)

func TestSchema(t *testing.T) {
	schema := Schema()

	if len(schema) != len(export.Columns)+1 {
		t.Fatalf("Expected %d fields, got %d", len(export.Columns)+1, len(schema))
	}

	testCases := []struct {
		name     string
		typ      bigquery.FieldType
		required bool
	}{
		{"idx", bigquery.IntegerFieldType, true},
		{"name", bigquery.StringFieldType, true},
		{"rng", bigquery.FloatFieldType, true},
		{"att", bigquery.IntegerFieldType, false},
		{"recoil_total", bigquery.FloatFieldType, false},
		{"buyable", bigquery.BooleanFieldType, true},
		{"price", bigquery.IntegerFieldType, false},
		{ExportedAtField, bigquery.TimestampFieldType, true},
	}

	fields := make(map[string]*bigquery.FieldSchema)
	for _, field := range schema {
		fields[field.Name] = field
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			field, ok := fields[tc.name]
			if !ok {
				t.Fatalf("Field %s missing from schema", tc.name)
			}
			if field.Type != tc.typ {
				t.Errorf("Expected type %s, got %s", tc.typ, field.Type)
			}
			if field.Required != tc.required {
				t.Errorf("Expected required %v, got %v", tc.required, field.Required)
			}
		})
	}

	if schema[0].Description != "Index" {
		t.Errorf("Expected header as description, got %q", schema[0].Description)
	}
}

func TestRowSaver_Save(t *testing.T) {
	att := uint32(142)
	x := float32(-0.5)
	exportedAt := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	saver := &RowSaver{
		Row: app.OutputRow{
			Index:       1,
			Name:        "Glock 17",
			Category:    app.CategoryPistol,
			Weight:      0.9,
			APsToAttack: &att,
			RecoilX:     &x,
			Buyable:     true,
		},
		ExportedAt: exportedAt,
	}

	record, insertID, err := saver.Save()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(record) != len(export.Columns)+1 {
		t.Errorf("Expected %d values, got %d", len(export.Columns)+1, len(record))
	}
	if record["idx"] != int64(1) || record["name"] != "Glock 17" || record["type"] != "Pistol" {
		t.Errorf("Unexpected identity values %v %v %v", record["idx"], record["name"], record["type"])
	}
	if record["att"] != int64(142) {
		t.Errorf("Expected att 142, got %v", record["att"])
	}
	if record["bur"] != nil {
		t.Errorf("Expected null bur, got %v", record["bur"])
	}
	if record["weight"] != 0.9 || record["recoil_x"] != -0.5 {
		t.Errorf("Expected widened floats, got %v %v", record["weight"], record["recoil_x"])
	}
	if record["buyable"] != true {
		t.Errorf("Expected buyable true, got %v", record["buyable"])
	}
	if record[ExportedAtField] != exportedAt {
		t.Errorf("Expected exported_at %v, got %v", exportedAt, record[ExportedAtField])
	}

	expectedID := fmt.Sprintf("%d-1", exportedAt.UnixMilli())
	if insertID != expectedID {
		t.Errorf("Expected insert ID %s, got %s", expectedID, insertID)
	}
}

func TestNewRowSavers(t *testing.T) {
	exportedAt := time.Unix(1700000000, 0).UTC()
	rows := []app.OutputRow{{Index: 3}, {Index: 1}}

	savers := NewRowSavers(rows, exportedAt)

	if len(savers) != 2 {
		t.Fatalf("Expected 2 savers, got %d", len(savers))
	}
	if savers[0].Row.Index != 3 || savers[1].Row.Index != 1 {
		t.Errorf("Expected row order preserved")
	}
	for _, s := range savers {
		if !s.ExportedAt.Equal(exportedAt) {
			t.Errorf("Expected shared run time, got %v", s.ExportedAt)
		}
	}
}

func TestIsNotFound(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"not found", &googleapi.Error{Code: http.StatusNotFound}, true},
		{"wrapped not found", fmt.Errorf("metadata: %w", &googleapi.Error{Code: http.StatusNotFound}), true},
		{"forbidden", &googleapi.Error{Code: http.StatusForbidden}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isNotFound(tc.err); got != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}
