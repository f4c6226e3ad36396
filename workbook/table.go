package workbook

import (
	"fmt"
	"iter"
	"strings"
)

// Table is a view of a sheet below a header row, with cells addressed
// by column title instead of position. Report layouts shuffle columns
// between AggieEnterprise releases; titles are the stable contract.
type Table struct {
	sheet  *Sheet
	header int
	cols   map[string]int
}

// TableAt builds a table whose header is the given zero-based row.
// Every requested column title must appear on that row, compared after
// trimming whitespace.
func (s *Sheet) TableAt(header int, columns ...string) (*Table, error) {
	if header < 0 || header >= len(s.rows) {
		return nil, fmt.Errorf("sheet %q has no row %d", s.name, header)
	}
	cols := make(map[string]int, len(columns))
	row := s.rows[header]
	for _, want := range columns {
		found := -1
		for i, cell := range row {
			if strings.TrimSpace(cell) == want {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, &MissingColumnError{Sheet: s.name, Column: want, Row: header}
		}
		cols[want] = found
	}
	return &Table{sheet: s, header: header, cols: cols}, nil
}

// Rows iterates the data rows below the header, in sheet order.
func (t *Table) Rows() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for i := t.header + 1; i < len(t.sheet.rows); i++ {
			if !yield(Record{table: t, row: i}) {
				return
			}
		}
	}
}

// Record is one data row of a table.
type Record struct {
	table *Table
	row   int
}

// Get returns the record's value under the given column title, "" when
// the row is shorter than the column.
func (r Record) Get(column string) string {
	return r.table.sheet.Value(r.row, r.table.cols[column])
}

// Ref returns the A1-style reference of the record's cell under the
// given column title, for error messages.
func (r Record) Ref(column string) string {
	return Ref(r.row, r.table.cols[column])
}

// Line returns the record's one-based row number, as spreadsheet
// applications display it.
func (r Record) Line() int { return r.row + 1 }
