// Package export renders tabular reports as CSV or XLSX files.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var ErrRaggedSheet = errors.New("export: row width does not match header")

// Sheet is a rectangular table with a header row.
type Sheet struct {
	Title  string
	Header []string
	Rows   [][]string
}

func (s Sheet) validate() error {
	for i, row := range s.Rows {
		if len(row) != len(s.Header) {
			return fmt.Errorf("%w: row %d has %d cells, header has %d", ErrRaggedSheet, i, len(row), len(s.Header))
		}
	}
	return nil
}

// CSV encodes the sheet with a header line followed by one line per row.
func CSV(s Sheet) ([]byte, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(s.Header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(s.Rows); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}

	return buf.Bytes(), nil
}

// XLSX encodes the sheet as a single-worksheet workbook named after Title.
func XLSX(s Sheet) ([]byte, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	name := s.Title
	if name == "" {
		name = "Sheet1"
	}
	if len(name) > 31 {
		name = name[:31]
	}
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return nil, fmt.Errorf("name worksheet: %w", err)
	}

	if err := writeRow(f, name, 1, s.Header); err != nil {
		return nil, err
	}
	for i, row := range s.Rows {
		if err := writeRow(f, name, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}

	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("row %d: %w", rowNum, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}
