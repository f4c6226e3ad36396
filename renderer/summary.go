package renderer

import (
	"fmt"
	"strings"

	aggie "github.com/dave-doty/aggie-unterprise"
)

// SnapshotMarkdown renders one snapshot as a titled table, one row per
// project in Summary-sheet order. The project name column always comes
// first; the amount columns follow opts.Fields.
func SnapshotMarkdown(s *aggie.Snapshot, opts Options) string {
	fields := opts.fields(aggie.SummaryFields)
	f := opts.formatter()

	var b strings.Builder
	fmt.Fprintf(&b, "## Totals for %s:\n\n", s.Date())

	fmt.Fprint(&b, "| Project Name |")
	for _, fld := range fields {
		fmt.Fprintf(&b, " %s |", fld)
	}
	fmt.Fprintln(&b)
	fmt.Fprint(&b, "|:---|")
	for range fields {
		fmt.Fprint(&b, "---:|")
	}
	fmt.Fprintln(&b)

	for p := range s.Projects() {
		fmt.Fprintf(&b, "| %s |", p.Name)
		for _, fld := range fields {
			fmt.Fprintf(&b, " %s |", cell(f, p.Get(fld), opts.Cents))
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}
