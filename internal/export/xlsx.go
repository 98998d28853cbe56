package export

import (
	"context"
	"fmt"

	"ncth_weapons/internal/app"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet and tab name used by spreadsheet outputs
const SheetName = "NCTH Weapons"

// XLSXSink writes a single worksheet workbook
type XLSXSink struct {
	path string
}

// NewXLSXSink creates a sink that saves the workbook to path
func NewXLSXSink(path string) *XLSXSink {
	return &XLSXSink{path: path}
}

// Write builds the workbook with a bold frozen header row and an auto filter
// over the whole table
func (s *XLSXSink) Write(ctx context.Context, rows []app.OutputRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	for i, header := range Header() {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header %s: %w", header, err)
		}
	}

	for r, row := range rows {
		for c, value := range NativeValues(row) {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s for weapon %d: %w", cell, row.Index, err)
			}
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(Columns))
	if err != nil {
		return err
	}

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", fmt.Sprintf("%s1", lastCol), headerStyleID); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	filterRange := fmt.Sprintf("A1:%s%d", lastCol, len(rows)+1)
	if err := f.AutoFilter(SheetName, filterRange, nil); err != nil {
		return fmt.Errorf("failed to add auto filter: %w", err)
	}

	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", s.path, err)
	}

	log.Debug().
		Str("path", s.path).
		Int("rows", len(rows)).
		Msg("Wrote XLSX output")

	return nil
}
