package sheets

import (
	"context"
	"fmt"
	"strings"

	"ncth_weapons/internal/app"
	"ncth_weapons/internal/config"
	"ncth_weapons/internal/export"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// WeaponTableManager replaces the contents of one tab with the weapon table.
// Separated from infrastructure concerns for better testability.
type WeaponTableManager struct {
	api SheetsAPI
}

// NewWeaponTableManager creates a new weapon table manager with the given API client
func NewWeaponTableManager(api SheetsAPI) *WeaponTableManager {
	return &WeaponTableManager{
		api: api,
	}
}

// EnsureWeaponSheet creates the target tab if it doesn't exist
func (m *WeaponTableManager) EnsureWeaponSheet(ctx context.Context, spreadsheetID, sheetName string) error {
	exists, err := m.api.SheetExists(ctx, spreadsheetID, sheetName)
	if err != nil {
		return fmt.Errorf("failed to check if weapon sheet exists: %w", err)
	}

	if exists {
		return nil
	}

	log.Info().
		Str("sheet_name", sheetName).
		Msg("Creating weapon sheet")

	if err := m.api.CreateSheet(ctx, spreadsheetID, sheetName); err != nil {
		return fmt.Errorf("failed to create weapon sheet: %w", err)
	}
	return nil
}

// UpdateWeaponTable clears the tab and writes the header followed by rows
func (m *WeaponTableManager) UpdateWeaponTable(ctx context.Context, spreadsheetID, sheetName string, rows []app.OutputRow) error {
	if err := m.EnsureWeaponSheet(ctx, spreadsheetID, sheetName); err != nil {
		return err
	}

	values := GenerateWeaponTableValues(rows)

	if err := m.api.EnsureSheetCapacity(ctx, spreadsheetID, sheetName, len(values), len(export.Columns)); err != nil {
		return fmt.Errorf("failed to ensure capacity for weapon sheet: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(export.Columns))
	if err != nil {
		return err
	}
	if err := m.api.ClearRange(ctx, spreadsheetID, sheetRange(sheetName, "A:"+lastCol)); err != nil {
		return fmt.Errorf("failed to clear weapon sheet: %w", err)
	}

	if err := m.api.UpdateRange(ctx, spreadsheetID, sheetRange(sheetName, "A1"), values); err != nil {
		return fmt.Errorf("failed to write weapon table: %w", err)
	}

	log.Debug().
		Str("sheet_name", sheetName).
		Int("rows", len(rows)).
		Msg("Updated weapon sheet")

	return nil
}

// GenerateWeaponTableValues converts rows to sheet values, header first.
// Absent optionals become empty strings.
func GenerateWeaponTableValues(rows []app.OutputRow) [][]interface{} {
	values := make([][]interface{}, 0, len(rows)+1)

	header := make([]interface{}, len(export.Columns))
	for i, h := range export.Header() {
		header[i] = h
	}
	values = append(values, header)

	for _, row := range rows {
		cells := export.NativeValues(row)
		line := make([]interface{}, len(cells))
		for i, cell := range cells {
			if cell == nil {
				line[i] = ""
				continue
			}
			line[i] = cell
		}
		values = append(values, line)
	}

	return values
}

func sheetRange(sheetName, cells string) string {
	return fmt.Sprintf("'%s'!%s", strings.ReplaceAll(sheetName, "'", "''"), cells)
}

// Publisher pushes each run's table to a fixed spreadsheet tab
type Publisher struct {
	manager       *WeaponTableManager
	spreadsheetID string
	sheetName     string
}

// NewPublisher creates a publisher for the given spreadsheet tab
func NewPublisher(api SheetsAPI, spreadsheetID, sheetName string) *Publisher {
	return &Publisher{
		manager:       NewWeaponTableManager(api),
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}
}

// Name identifies the publisher in logs
func (p *Publisher) Name() string {
	return "sheets"
}

// Publish replaces the tab contents with rows
func (p *Publisher) Publish(ctx context.Context, rows []app.OutputRow) error {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultPublishTimeouts.Sheets)
	defer cancel()

	return p.manager.UpdateWeaponTable(ctx, p.spreadsheetID, p.sheetName, rows)
}
