package sheets

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	rowBuffer = 100
	colBuffer = 10
)

// Client implements the SheetsAPI interface using Google Sheets API.
//
// Note: cell values are [][]interface{} as required by the Google Sheets API.
// Only this package builds them, from the export column model.
type Client struct {
	service *sheets.Service
}

// NewClient creates a new Google Sheets client with the provided credentials
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	service, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service: service,
	}, nil
}

// UpdateRange updates the specified sheet range with the provided values.
// Values are stored as sent (RAW input), so names are never parsed as formulas.
func (c *Client) UpdateRange(ctx context.Context, spreadsheetID, range_ string, values [][]interface{}) error {
	valueRange := &sheets.ValueRange{
		Values: values,
	}

	_, err := c.service.Spreadsheets.Values.Update(spreadsheetID, range_, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update range: %w", err)
	}

	return nil
}

// ClearRange clears all values in the specified sheet range
func (c *Client) ClearRange(ctx context.Context, spreadsheetID, range_ string) error {
	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, range_, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear range: %w", err)
	}

	return nil
}

// CreateSheet creates a new sheet with the specified name
func (c *Client) CreateSheet(ctx context.Context, spreadsheetID, sheetName string) error {
	req := &sheets.Request{
		AddSheet: &sheets.AddSheetRequest{
			Properties: &sheets.SheetProperties{
				Title: sheetName,
			},
		},
	}

	batchUpdate := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{req},
	}

	_, err := c.service.Spreadsheets.BatchUpdate(spreadsheetID, batchUpdate).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheetName, err)
	}

	return nil
}

// SheetExists checks if a sheet with the given name exists in the spreadsheet
func (c *Client) SheetExists(ctx context.Context, spreadsheetID, sheetName string) (bool, error) {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == sheetName {
			return true, nil
		}
	}

	return false, nil
}

// EnsureSheetCapacity ensures the sheet has at least the required number of rows and columns.
// Automatically adds a buffer for future growth.
func (c *Client) EnsureSheetCapacity(ctx context.Context, spreadsheetID, sheetName string, requiredRows, requiredCols int) error {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	var targetSheet *sheets.Sheet
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == sheetName {
			targetSheet = sheet
			break
		}
	}

	if targetSheet == nil {
		return fmt.Errorf("sheet %s not found", sheetName)
	}

	currentRows := int(targetSheet.Properties.GridProperties.RowCount)
	currentCols := int(targetSheet.Properties.GridProperties.ColumnCount)

	newRows, newCols, needsResize := planCapacity(currentRows, currentCols, requiredRows, requiredCols)
	if !needsResize {
		return nil
	}

	log.Debug().
		Str("sheet_name", sheetName).
		Int("current_rows", currentRows).
		Int("current_cols", currentCols).
		Int("required_rows", requiredRows).
		Int("required_cols", requiredCols).
		Int("new_rows", newRows).
		Int("new_cols", newCols).
		Msg("Expanding sheet capacity")

	req := &sheets.Request{
		UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
			Properties: &sheets.SheetProperties{
				SheetId: targetSheet.Properties.SheetId,
				GridProperties: &sheets.GridProperties{
					RowCount:    int64(newRows),
					ColumnCount: int64(newCols),
				},
			},
			Fields: "gridProperties.rowCount,gridProperties.columnCount",
		},
	}

	batchUpdate := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{req},
	}

	_, err = c.service.Spreadsheets.BatchUpdate(spreadsheetID, batchUpdate).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to resize sheet %s: %w", sheetName, err)
	}

	log.Info().
		Str("sheet_name", sheetName).
		Int("new_rows", newRows).
		Int("new_cols", newCols).
		Msg("Successfully expanded sheet capacity")

	return nil
}

// planCapacity returns the grid size needed to hold the required cells.
// Growth adds a buffer of rows and columns; shrinking never happens.
func planCapacity(currentRows, currentCols, requiredRows, requiredCols int) (rows, cols int, resize bool) {
	rows, cols = currentRows, currentCols

	if requiredRows > currentRows {
		rows = requiredRows + rowBuffer
		resize = true
	}
	if requiredCols > currentCols {
		cols = requiredCols + colBuffer
		resize = true
	}

	return rows, cols, resize
}
