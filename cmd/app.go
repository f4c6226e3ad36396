// Package cmd implements the CLI application to summarize grant
// reports.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	aggie "github.com/dave-doty/aggie-unterprise"
	"github.com/dave-doty/aggie-unterprise/config"
	"github.com/dave-doty/aggie-unterprise/renderer"
)

// Commands lists the subcommands. A main package registers them on a
// commander and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&reportCmd{},
	&summaryCmd{},
	&diffCmd{},
	&topicCmd{},
	&assistCmd{},
}

// multiFlag collects the values of a repeatable string flag in order.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }
func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

// ruleFlags are the cleaning-rule flags shared by every table-producing
// subcommand.
type ruleFlags struct {
	substrings     multiFlag
	suffixes       multiFlag
	substringsFile string
	suffixesFile   string
	namesFile      string
}

func (r *ruleFlags) SetFlags(f *flag.FlagSet) {
	f.Var(&r.substrings, "sb", "substring to delete from every project name; repeatable")
	f.Var(&r.suffixes, "sf", "substring truncating a project name at its first occurrence; repeatable")
	f.StringVar(&r.substringsFile, "sbf", "", "file with more -sb substrings, whitespace-delimited")
	f.StringVar(&r.suffixesFile, "ssf", "", "file with more -sf suffixes, whitespace-delimited")
	f.StringVar(&r.namesFile, "names", "", "JSON file mapping exact project names to replacements (default "+aggie.NamesFile+")")
}

// rules merges the flag-supplied rules with the settings file. Inline
// flag rules sort in front of configured ones, which matters for
// suffix rules where the first match wins; a rules-file path given as
// a flag replaces the configured one.
func (r *ruleFlags) rules(cfg config.Config) (aggie.CleaningRules, error) {
	suffixesFile := r.suffixesFile
	if suffixesFile == "" {
		suffixesFile = cfg.Clean.SuffixesFile
	}
	substringsFile := r.substringsFile
	if substringsFile == "" {
		substringsFile = cfg.Clean.SubstringsFile
	}

	suffixes, err := aggie.CombineWords(append(r.suffixes, cfg.Clean.Suffixes...), suffixesFile)
	if err != nil {
		return aggie.CleaningRules{}, err
	}
	substrings, err := aggie.CombineWords(append(r.substrings, cfg.Clean.Substrings...), substringsFile)
	if err != nil {
		return aggie.CleaningRules{}, err
	}

	namesPath := r.namesFile
	if namesPath == "" {
		namesPath = cfg.Clean.NamesFile
	}
	if namesPath == "" {
		namesPath = aggie.NamesFile
	}
	names, err := aggie.ReadNames(namesPath)
	if err != nil {
		return aggie.CleaningRules{}, err
	}

	return aggie.CleaningRules{Names: names, Suffixes: suffixes, Substrings: substrings}, nil
}

// outputFlags are the rendering flags shared by every table-producing
// subcommand.
type outputFlags struct {
	outFile string
	cents   bool
	columns string
}

func (o *outputFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&o.outFile, "o", "", "write raw markdown to this file instead of the screen")
	f.BoolVar(&o.cents, "c", false, "show cents instead of rounding to whole dollars")
	f.StringVar(&o.columns, "columns", "", "comma-separated amount columns to show, in order (e.g. Expenses,Salary,Balance)")
}

func (o *outputFlags) options(cfg config.Config) (renderer.Options, error) {
	opts := renderer.Options{
		Cents: o.cents || cfg.Output.Cents,
		Style: renderer.Style{
			Symbol:   cfg.Output.Symbol,
			Decimal:  cfg.Output.Decimal,
			Thousand: cfg.Output.Thousand,
		},
	}
	columns := o.columns
	if columns == "" && len(cfg.Output.Columns) > 0 {
		columns = strings.Join(cfg.Output.Columns, ",")
	}
	if columns != "" {
		fields, err := aggie.ParseFields(columns)
		if err != nil {
			return renderer.Options{}, err
		}
		opts.Fields = fields
	}
	return opts, nil
}

// emit delivers a finished markdown document: raw into the -o file, or
// pretty-printed to the screen.
func (o *outputFlags) emit(md string) error {
	if o.outFile != "" {
		if err := os.WriteFile(o.outFile, []byte(md), 0644); err != nil {
			return fmt.Errorf("could not write output file %q: %w", o.outFile, err)
		}
		fmt.Fprintf(os.Stderr, "Output written to %s\n", o.outFile)
		return nil
	}
	printMarkdown(md)
	return nil
}

// printMarkdown pretty-prints markdown to stdout, falling back to the
// raw text when the terminal renderer is unavailable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// resolvePaths turns the [-d dir | file ...] convention shared by the
// table-producing subcommands into a list of report files.
func resolvePaths(dir string, args []string) ([]string, error) {
	if dir != "" && len(args) > 0 {
		return nil, fmt.Errorf("-d and explicit report files are mutually exclusive")
	}
	if len(args) > 0 {
		return args, nil
	}
	if dir == "" {
		dir = "."
	}
	return aggie.FindReportFiles(dir)
}
