package renderer

import (
	"fmt"
	"strings"

	aggie "github.com/dave-doty/aggie-unterprise"
)

// ReviewMarkdown renders the per-project changes between a review's two
// snapshots as a titled table. The Budget column never appears here,
// even when opts.Fields asks for it: budgets are expected constant
// between runs and every diff pins the budget delta to zero, so the
// column could only ever show a column of zeros.
func ReviewMarkdown(r *aggie.Review, opts Options) (string, error) {
	diffs, err := r.Diffs()
	if err != nil {
		return "", err
	}
	fields := withoutBudget(opts.fields(aggie.DiffFields))
	f := opts.formatter()

	var b strings.Builder
	fmt.Fprintf(&b, "## Differences from %s to %s:\n\n", r.Earlier().Date(), r.Later().Date())

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

	for i := range diffs {
		d := &diffs[i]
		fmt.Fprintf(&b, "| %s |", d.Name)
		for _, fld := range fields {
			fmt.Fprintf(&b, " %s |", cell(f, d.Get(fld), opts.Cents))
		}
		fmt.Fprintln(&b)
	}
	return b.String(), nil
}

func withoutBudget(fields []aggie.Field) []aggie.Field {
	out := make([]aggie.Field, 0, len(fields))
	for _, f := range fields {
		if f != aggie.Budget {
			out = append(out, f)
		}
	}
	return out
}
