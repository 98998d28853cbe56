package sheets

import (
	"context"
)

// SheetsAPI defines the interface for interacting with Google Sheets.
// This separates infrastructure concerns from the publishing logic.
type SheetsAPI interface {
	// UpdateRange updates values in a sheet range.
	// Accepts [][]interface{} as required by Google Sheets API.
	UpdateRange(ctx context.Context, spreadsheetID, range_ string, values [][]interface{}) error

	// ClearRange clears all values in a sheet range
	ClearRange(ctx context.Context, spreadsheetID, range_ string) error

	// CreateSheet creates a new sheet in the spreadsheet
	CreateSheet(ctx context.Context, spreadsheetID, sheetName string) error

	// SheetExists checks if a sheet with the given name exists
	SheetExists(ctx context.Context, spreadsheetID, sheetName string) (bool, error)

	// EnsureSheetCapacity ensures a sheet has at least the required number of rows and columns
	EnsureSheetCapacity(ctx context.Context, spreadsheetID, sheetName string, requiredRows, requiredCols int) error
}
