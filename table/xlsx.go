package table

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes the table to a single worksheet in an Excel workbook, header first.
func WriteXLSX(w io.Writer, sheet string, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return err
		}
	}

	if err := setRow(f, sheet, 1, t.Header); err != nil {
		return err
	}

	for i, record := range t.Records {
		if err := setRow(f, sheet, i+2, record); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)

	return err
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	record := make([]any, len(values))
	for i, v := range values {
		record[i] = v
	}

	return f.SetSheetRow(sheet, cell, &record)
}
