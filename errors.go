package aggie

import (
	"fmt"
)

// The errors below are the fatal ways reading a report can go wrong.
// All of them abort the file being read; none of them leaves a partial
// Snapshot behind. Conditions the tool can work around (an unknown
// expense category, an internal project without the usual marker text)
// are logged as warnings instead and never surface as errors.

// SchemaError reports a report file whose structure differs from what
// AggieEnterprise is known to generate: a missing sheet or column, an
// unparsable run timestamp, a cell that should hold a number but does
// not, or a project type outside the two valid values. There is no safe
// partial interpretation of such a file.
type SchemaError struct {
	Path  string // report file
	Sheet string // sheet name, when known
	Cell  string // cell or column reference, when known
	Msg   string
	Err   error // underlying parse error, when any
}

func (e *SchemaError) Error() string {
	s := "report " + e.Path
	if e.Sheet != "" {
		s += ", sheet " + e.Sheet
	}
	if e.Cell != "" {
		s += ", cell " + e.Cell
	}
	s += ": " + e.Msg
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *SchemaError) Unwrap() error { return e.Err }

// DuplicateProjectError reports two Summary rows whose labels cleaned
// to the same canonical name. Without cleaning rules in play that means
// the report itself carries a duplicate; with rules it means the rules
// merged two distinct projects and need refining. Either way the two
// raw labels are named so the offending rows can be found.
type DuplicateProjectError struct {
	Name      string // the colliding canonical name
	FirstRaw  string // raw label of the row seen first
	SecondRaw string // raw label of the row seen second
	HasRules  bool   // whether any cleaning rules were supplied
}

func (e *DuplicateProjectError) Error() string {
	if !e.HasRules {
		return fmt.Sprintf("duplicate project %q: rows %q and %q name the same project in one report",
			e.Name, e.FirstRaw, e.SecondRaw)
	}
	return fmt.Sprintf("duplicate project %q: cleaning rules collapse %q and %q into one name; adjust the substring/suffix rules or map the names explicitly",
		e.Name, e.FirstRaw, e.SecondRaw)
}

// ProjectNotFoundError reports a Summary project with no matching rows
// on the Detail sheet. The two sheets of one report describe the same
// projects, so a missing counterpart means the report is inconsistent.
type ProjectNotFoundError struct {
	RawName string
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("no Detail rows found for project %q", e.RawName)
}

// EmptyNameError reports cleaning rules that reduced a project label to
// nothing. The rules are configuration, so this is a configuration
// error, not a data error.
type EmptyNameError struct {
	RawName string
}

func (e *EmptyNameError) Error() string {
	return fmt.Sprintf("cleaning rules reduce project label %q to an empty name", e.RawName)
}
