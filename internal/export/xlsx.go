// Package export renders assembled records into a formatted spreadsheet.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/docgrid/docgrid/internal/extract"
)

// SheetName is the worksheet the records land on.
const SheetName = "Extracted Data"

var headers = []string{"#", "Key", "Value", "Comments"}

// column widths follow the original spreadsheet layout: narrow index, wide
// wrapped comments.
var columnWidths = map[string]float64{
	"A": 5,
	"B": 35,
	"C": 30,
	"D": 100,
}

// Writer writes records to .xlsx files.
type Writer struct{}

// NewWriter creates a spreadsheet writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFile renders the records into a spreadsheet at path. The record
// sequence must be non-empty; callers skip export when extraction produced
// nothing.
func (w *Writer) WriteFile(path string, records []extract.Record) error {
	if path == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	if len(records) == 0 {
		return fmt.Errorf("no records to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := w.writeHeader(f); err != nil {
		return err
	}
	if err := w.writeRows(f, records); err != nil {
		return err
	}
	if err := w.applyLayout(f, len(records)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save spreadsheet: %w", err)
	}
	return nil
}

func (w *Writer) writeHeader(f *excelize.File) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "D1", style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	return nil
}

func (w *Writer) writeRows(f *excelize.File, records []extract.Record) error {
	for i, rec := range records {
		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", row, err)
		}
		values := []interface{}{rec.Index, rec.Key, rec.Value, rec.Comment}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}
	}
	return nil
}

func (w *Writer) applyLayout(f *excelize.File, rowCount int) error {
	for col, width := range columnWidths {
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	wrap, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("failed to create comment style: %w", err)
	}
	last := fmt.Sprintf("D%d", rowCount+1)
	if err := f.SetCellStyle(SheetName, "D2", last, wrap); err != nil {
		return fmt.Errorf("failed to style comments column: %w", err)
	}
	return nil
}
