package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	aggie "github.com/dave-doty/aggie-unterprise"
	"github.com/dave-doty/aggie-unterprise/config"
	"github.com/dave-doty/aggie-unterprise/renderer"
)

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// Reports lists the report files available to the other functions.
var Reports = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Reports",
		Description: `Reports lists the AggieEnterprise report files in a directory together
		with the date and time each report was generated, newest first. Use it to discover
		what the other tools can be pointed at.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"directory": {
					Type:        genai.TypeString,
					Description: "Directory to look in. The current directory is the default.",
				},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown table of report files and their generation times.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		dir, err := stringArg(args, "directory", ".")
		if err != nil {
			return failure(id, "Reports", err)
		}
		snapshots, err := loadDirectory(dir)
		if err != nil {
			return failure(id, "Reports", err)
		}

		var b strings.Builder
		fmt.Fprintln(&b, "| Report | Generated |")
		fmt.Fprintln(&b, "|:---|:---|")
		for _, s := range snapshots {
			fmt.Fprintf(&b, "| %s | %s |\n", s.Source(), s.GeneratedAt().Format("2006-01-02 03:04 PM"))
		}
		return success(id, "Reports", b.String())
	},
}

// Totals renders the per-project totals of one report.
var Totals = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Totals",
		Description: `Totals reads one AggieEnterprise report file and returns the per-project
		figures: balance, expenses, expenses by category, and budget. Project names are the
		cleaned names the user knows their grants by.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"file": {
					Type:        genai.TypeString,
					Description: "Path of the .xlsx report file to read.",
				},
			},
			Required: []string{"file"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown table of per-project totals.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		file, err := stringArg(args, "file", "")
		if err != nil {
			return failure(id, "Totals", err)
		}
		s, err := loadReport(file)
		if err != nil {
			return failure(id, "Totals", err)
		}
		return success(id, "Totals", renderer.SnapshotMarkdown(s, renderer.Options{Cents: true}))
	},
}

// Differences renders the per-project changes between two reports.
var Differences = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Differences",
		Description: `Differences compares two AggieEnterprise report files and returns how each
		project's figures changed between them, always later report minus earlier report. The
		two files may be given in any order; their generation dates decide which is earlier.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"first": {
					Type:        genai.TypeString,
					Description: "Path of one .xlsx report file.",
				},
				"second": {
					Type:        genai.TypeString,
					Description: "Path of the other .xlsx report file.",
				},
			},
			Required: []string{"first", "second"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown table of per-project differences, later minus earlier.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		first, err := stringArg(args, "first", "")
		if err != nil {
			return failure(id, "Differences", err)
		}
		second, err := stringArg(args, "second", "")
		if err != nil {
			return failure(id, "Differences", err)
		}

		rules, err := loadRules()
		if err != nil {
			return failure(id, "Differences", err)
		}
		snapshots, err := aggie.LoadAll([]string{first, second}, rules)
		if err != nil {
			return failure(id, "Differences", err)
		}
		aggie.SortSnapshots(snapshots, true)

		review := aggie.NewReview(snapshots[0], snapshots[1])
		md, err := renderer.ReviewMarkdown(review, renderer.Options{Cents: true})
		if err != nil {
			return failure(id, "Differences", err)
		}
		return success(id, "Differences", md)
	},
}

// loadRules assembles cleaning rules the same way the report command
// does, minus the flags: the .aggie.toml settings plus the default
// names_to_clean.json if present.
func loadRules() (aggie.CleaningRules, error) {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		return aggie.CleaningRules{}, err
	}
	namesPath := cfg.Clean.NamesFile
	if namesPath == "" {
		namesPath = aggie.NamesFile
	}
	names, err := aggie.ReadNames(namesPath)
	if err != nil {
		return aggie.CleaningRules{}, err
	}
	suffixes, err := aggie.CombineWords(cfg.Clean.Suffixes, cfg.Clean.SuffixesFile)
	if err != nil {
		return aggie.CleaningRules{}, err
	}
	substrings, err := aggie.CombineWords(cfg.Clean.Substrings, cfg.Clean.SubstringsFile)
	if err != nil {
		return aggie.CleaningRules{}, err
	}
	return aggie.CleaningRules{Names: names, Suffixes: suffixes, Substrings: substrings}, nil
}

func loadReport(path string) (*aggie.Snapshot, error) {
	rules, err := loadRules()
	if err != nil {
		return nil, err
	}
	return aggie.FromFile(path, rules)
}

func loadDirectory(dir string) ([]*aggie.Snapshot, error) {
	paths, err := aggie.FindReportFiles(dir)
	if err != nil {
		return nil, err
	}
	rules, err := loadRules()
	if err != nil {
		return nil, err
	}
	snapshots, err := aggie.LoadAll(paths, rules)
	if err != nil {
		return nil, err
	}
	aggie.SortSnapshots(snapshots, false)
	return snapshots, nil
}

func stringArg(args map[string]any, key, def string) (string, error) {
	v, ok := args[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string as expected but %T", key, v)
	}
	return s, nil
}

func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func success(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}
