package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	aggie "github.com/dave-doty/aggie-unterprise"
	"github.com/dave-doty/aggie-unterprise/config"
	"github.com/dave-doty/aggie-unterprise/renderer"
)

// diffCmd holds the flags for the 'diff' subcommand.
type diffCmd struct {
	dir    string
	rules  ruleFlags
	output outputFlags
}

func (*diffCmd) Name() string     { return "diff" }
func (*diffCmd) Synopsis() string { return "display per-project differences between two reports" }
func (*diffCmd) Usage() string {
	return `aggie-report diff [<file.xlsx> <file.xlsx>]

  Compares two reports and prints how each project's figures changed,
  always later report minus earlier report; the run dates inside the
  files decide which is which, not the argument order. With no
  arguments it compares the two newest reports in the directory.
`
}

func (c *diffCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "d", "", "directory searched when no files are listed (default .)")
	c.rules.SetFlags(f)
	c.output.SetFlags(f)
}

func (c *diffCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var paths []string
	switch f.NArg() {
	case 0:
		dir := c.dir
		if dir == "" {
			dir = "."
		}
		all, err := aggie.FindReportFiles(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if len(all) < 2 {
			fmt.Fprintf(os.Stderr, "Error: need two reports to diff, found only %d in %q\n", len(all), dir)
			return subcommands.ExitFailure
		}
		paths = all
	case 2:
		paths = f.Args()
	default:
		fmt.Fprintln(os.Stderr, "Error: diff takes exactly two report files, or none")
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
	// Newest first; the two to compare are the front of the list.
	aggie.SortSnapshots(snapshots, false)
	later, earlier := snapshots[0], snapshots[1]

	md, err := renderer.ReviewMarkdown(aggie.NewReview(earlier, later), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := c.output.emit(md); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
