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

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	dir          string
	noDiffs      bool
	noIndividual bool
	ascending    bool
	rules        ruleFlags
	output       outputFlags
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "summarize grant reports and how they changed between runs"
}
func (*reportCmd) Usage() string {
	return `aggie-report report [-d <dir> | <file.xlsx> ...] [flags]

  Reads every AggieEnterprise .xlsx report in a directory (or just the
  files listed), sorts them by the date each report was generated, and
  prints a totals table per report plus a differences table per
  adjacent pair. With no arguments it processes the current directory.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "d", "", "directory to search for .xlsx reports; mutually exclusive with listing files")
	f.BoolVar(&c.noDiffs, "nd", false, "do not include differences between adjacent reports")
	f.BoolVar(&c.noIndividual, "ni", false, "do not include individual report totals")
	f.BoolVar(&c.ascending, "s", false, "sort reports oldest first instead of newest first")
	c.rules.SetFlags(f)
	c.output.SetFlags(f)
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.noDiffs && c.noIndividual {
		fmt.Fprintln(os.Stderr, "Error: -nd and -ni together leave nothing to print")
		return subcommands.ExitUsageError
	}

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

	fmt.Fprintln(os.Stderr, "Summarizing grant data from AggieEnterprise reports in these files:")
	fmt.Fprintf(os.Stderr, "  %s\n", strings.Join(paths, ", "))

	snapshots, err := aggie.LoadAll(paths, rules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	aggie.SortSnapshots(snapshots, c.ascending || cfg.Output.Ascending)

	md, err := c.document(snapshots, c.ascending || cfg.Output.Ascending, opts)
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

// document assembles the run's markdown in display order: each
// report's totals followed by the differences to the next report
// shown. Differences always subtract the earlier report from the
// later one, whichever way the display is sorted.
func (c *reportCmd) document(snapshots []*aggie.Snapshot, ascending bool, opts renderer.Options) (string, error) {
	var b strings.Builder
	for i, s := range snapshots {
		if !c.noIndividual {
			b.WriteString(renderer.SnapshotMarkdown(s, opts))
			b.WriteString("\n")
		}
		if !c.noDiffs && i+1 < len(snapshots) {
			earlier, later := s, snapshots[i+1]
			if !ascending {
				earlier, later = later, earlier
			}
			md, err := renderer.ReviewMarkdown(aggie.NewReview(earlier, later), opts)
			if err != nil {
				return "", err
			}
			b.WriteString(md)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
