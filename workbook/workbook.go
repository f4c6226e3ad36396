// Package workbook reads the .xlsx files that AggieEnterprise report
// runs produce. It wraps excelize with the small surface the report
// builder needs: open a file, pick a sheet, find the header row, and
// walk data rows addressing cells by column title.
//
// Cells are returned as formatted strings, exactly as a spreadsheet
// application would display them. Interpreting them (as money, dates,
// category labels) is the caller's job.
package workbook

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook is an open .xlsx file.
type Workbook struct {
	f    *excelize.File
	path string
}

// Open opens the workbook at path.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %q: %w", path, err)
	}
	return &Workbook{f: f, path: path}, nil
}

// Path returns the file the workbook was opened from.
func (w *Workbook) Path() string { return w.path }

// Close releases the underlying file.
func (w *Workbook) Close() error { return w.f.Close() }

// Sheet loads the named sheet. All rows are materialized up front;
// report sheets are a few hundred rows at most.
func (w *Workbook) Sheet(name string) (*Sheet, error) {
	if idx, _ := w.f.GetSheetIndex(name); idx < 0 {
		return nil, &MissingSheetError{Sheet: name}
	}
	rows, err := w.f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", name, err)
	}
	return &Sheet{name: name, rows: rows}, nil
}

// Sheet is one worksheet, fully loaded.
type Sheet struct {
	name string
	rows [][]string
}

// Name returns the sheet name.
func (s *Sheet) Name() string { return s.name }

// Len returns the number of rows with any content.
func (s *Sheet) Len() int { return len(s.rows) }

// Value returns the cell at the given zero-based row and column, or ""
// when the cell is outside the populated area. Sheets trim trailing
// empty cells per row, so short rows are normal.
func (s *Sheet) Value(row, col int) string {
	if row < 0 || row >= len(s.rows) {
		return ""
	}
	r := s.rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Locate scans the given column of the first within rows for a cell
// whose trimmed value equals marker, returning the zero-based row
// index. Report sheets carry a preamble of variable height above the
// header row, so the header is found by content, never by position.
func (s *Sheet) Locate(col int, marker string, within int) (int, error) {
	if within > len(s.rows) {
		within = len(s.rows)
	}
	for i := 0; i < within; i++ {
		if strings.TrimSpace(s.Value(i, col)) == marker {
			return i, nil
		}
	}
	return 0, &HeaderNotFoundError{Sheet: s.name, Marker: marker, Within: within}
}

// Ref converts zero-based row and column indices to an A1-style cell
// reference for error messages.
func Ref(row, col int) string {
	ref, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return fmt.Sprintf("(%d,%d)", row, col)
	}
	return ref
}
