package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	aggie "github.com/dave-doty/aggie-unterprise"
	"github.com/dave-doty/aggie-unterprise/config"
	"github.com/dave-doty/aggie-unterprise/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	dir    string
	all    bool
	rules  ruleFlags
	output outputFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display per-project totals for the newest report" }
func (*summaryCmd) Usage() string {
	return `aggie-report summary [-d <dir> | <file.xlsx> ...] [flags]

  Prints the per-project totals table of the newest report, answering
  "where do the grants stand right now". Use -all for a totals table
  per report, or list files to summarize exactly those.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "d", "", "directory to search for .xlsx reports; mutually exclusive with listing files")
	f.BoolVar(&c.all, "all", false, "summarize every report found, newest first, not just the newest")
	c.rules.SetFlags(f)
	c.output.SetFlags(f)
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	paths, err := resolvePaths(c.dir, f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, err := config.Load(config.FileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	rules, err := c.rules.rules(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	opts, err := c.output.options(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	snapshots, err := aggie.LoadAll(paths, rules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	aggie.SortSnapshots(snapshots, false)
	// Explicit files mean the user chose what to see; otherwise only
	// the newest report unless -all asks for the history.
	if !c.all && f.NArg() == 0 {
		snapshots = snapshots[:1]
	}

	var b strings.Builder
	for _, s := range snapshots {
		b.WriteString(renderer.SnapshotMarkdown(s, opts))
		b.WriteString("\n")
	}
	if err := c.output.emit(b.String()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
