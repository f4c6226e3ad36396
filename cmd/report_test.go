package cmd

import (
	"context"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/google/subcommands"

	aggie "github.com/dave-doty/aggie-unterprise"
	"github.com/dave-doty/aggie-unterprise/renderer"
)

func snapshotAt(t *testing.T, year, month, day int) *aggie.Snapshot {
	t.Helper()
	when := time.Date(year, time.Month(month), day, 9, 15, 0, 0, time.UTC)
	s, err := aggie.NewSnapshot(when,
		aggie.Project{Name: "CAREER", Budget: aggie.M(500000), Expenses: aggie.M(100000), Balance: aggie.M(400000)},
	)
	if err != nil {
		t.Fatalf("NewSnapshot() error = %v", err)
	}
	return s
}

func TestReportDocument(t *testing.T) {
	june := snapshotAt(t, 2024, 6, 3)
	august := snapshotAt(t, 2024, 8, 5)

	// Section titles in order of appearance.
	titles := func(md string) []string {
		var out []string
		for _, line := range strings.Split(md, "\n") {
			if strings.HasPrefix(line, "## ") {
				out = append(out, line)
			}
		}
		return out
	}

	t.Run("Newest first", func(t *testing.T) {
		var c reportCmd
		md, err := c.document([]*aggie.Snapshot{august, june}, false, renderer.Options{})
		if err != nil {
			t.Fatalf("document() error = %v", err)
		}
		want := []string{
			"## Totals for 2024-08-05:",
			"## Differences from 2024-06-03 to 2024-08-05:",
			"## Totals for 2024-06-03:",
		}
		got := titles(md)
		if strings.Join(got, "|") != strings.Join(want, "|") {
			t.Errorf("sections = %v, want %v", got, want)
		}
	})

	t.Run("Oldest first keeps diff direction", func(t *testing.T) {
		// The display order flips; the subtraction never does.
		var c reportCmd
		md, err := c.document([]*aggie.Snapshot{june, august}, true, renderer.Options{})
		if err != nil {
			t.Fatalf("document() error = %v", err)
		}
		want := []string{
			"## Totals for 2024-06-03:",
			"## Differences from 2024-06-03 to 2024-08-05:",
			"## Totals for 2024-08-05:",
		}
		got := titles(md)
		if strings.Join(got, "|") != strings.Join(want, "|") {
			t.Errorf("sections = %v, want %v", got, want)
		}
	})

	t.Run("Totals only", func(t *testing.T) {
		c := reportCmd{noDiffs: true}
		md, err := c.document([]*aggie.Snapshot{august, june}, false, renderer.Options{})
		if err != nil {
			t.Fatalf("document() error = %v", err)
		}
		if strings.Contains(md, "## Differences") {
			t.Error("document() with noDiffs still renders differences")
		}
	})

	t.Run("Diffs only", func(t *testing.T) {
		c := reportCmd{noIndividual: true}
		md, err := c.document([]*aggie.Snapshot{august, june}, false, renderer.Options{})
		if err != nil {
			t.Fatalf("document() error = %v", err)
		}
		if strings.Contains(md, "## Totals") {
			t.Error("document() with noIndividual still renders totals")
		}
		if !strings.Contains(md, "## Differences from 2024-06-03 to 2024-08-05:") {
			t.Errorf("document() = %s, want the differences section", md)
		}
	})
}

func TestReportExecuteRejectsContradictoryFlags(t *testing.T) {
	c := &reportCmd{}
	f := flag.NewFlagSet("report", flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse([]string{"-nd", "-ni"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got, want := c.Execute(context.Background(), f), subcommands.ExitUsageError; got != want {
		t.Errorf("Execute(-nd -ni) = %v, want %v", got, want)
	}
}

func TestDiffExecuteRejectsOddArgCount(t *testing.T) {
	c := &diffCmd{}
	f := flag.NewFlagSet("diff", flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse([]string{"a.xlsx", "b.xlsx", "c.xlsx"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got, want := c.Execute(context.Background(), f), subcommands.ExitUsageError; got != want {
		t.Errorf("Execute(three files) = %v, want %v", got, want)
	}
}
