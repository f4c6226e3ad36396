package workbook

import "fmt"

// MissingSheetError reports a workbook without an expected sheet.
type MissingSheetError struct {
	Sheet string
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("workbook has no sheet %q", e.Sheet)
}

// HeaderNotFoundError reports that the header marker never appeared in
// the scanned rows, usually a sign of a layout change or the wrong
// kind of export.
type HeaderNotFoundError struct {
	Sheet  string
	Marker string
	Within int
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q: no header row with %q in the first %d rows", e.Sheet, e.Marker, e.Within)
}

// MissingColumnError reports a header row without an expected column
// title.
type MissingColumnError struct {
	Sheet  string
	Column string
	Row    int // zero-based header row
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("sheet %q: header row %d has no column %q", e.Sheet, e.Row+1, e.Column)
}
