package docxtables

import (
	"fmt"
	"strconv"

	"github.com/scalehub/calibration-tools/pkg/docxtables/models"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet excelize creates in a new workbook.
const defaultSheet = "Sheet1"

// SheetName returns the workbook sheet name used for a table.
func SheetName(table models.Table) string {
	return fmt.Sprintf("Table %d", table.Index)
}

// ExportXLSX writes every row of every table to an Excel workbook at path,
// one sheet per table. A document without tables produces a workbook with
// a single empty sheet.
func ExportXLSX(doc *models.Document, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, table := range doc.Tables {
		sheet := SheetName(table)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}

		for rowIdx, row := range table.Rows {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
			if err != nil {
				return err
			}
			values := make([]interface{}, len(row.Cells))
			for colIdx, c := range row.Cells {
				values[colIdx] = parseValue(c.Text)
			}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

// parseValue converts cell text to int64 or float64 when the number prints
// back to the same text, so values like "007" or "10.10" stay strings.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(i, 10) == s {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && strconv.FormatFloat(f, 'f', -1, 64) == s {
		return f
	}
	return s
}
