package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/charmbracelet/log"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/dave-doty/aggie-unterprise/cmd"
	"github.com/dave-doty/aggie-unterprise/docs"
)

func main() {
	// A .env file keeps GEMINI_API_KEY out of the shell profile;
	// not having one is fine.
	_ = godotenv.Load()
	log.SetReportTimestamp(false)

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion registers shell completion for every subcommand. It only
// does anything when the shell asks for completions (COMP_LINE is
// set); install with `COMP_INSTALL=1 aggie-report`.
func completion() {
	table := func(extra map[string]complete.Predictor) map[string]complete.Predictor {
		flags := map[string]complete.Predictor{
			"d":       predict.Dirs("*"),
			"o":       predict.Files("*"),
			"c":       predict.Nothing,
			"columns": predict.Nothing,
			"sb":      predict.Nothing,
			"sf":      predict.Nothing,
			"sbf":     predict.Files("*"),
			"ssf":     predict.Files("*"),
			"names":   predict.Files("*.json"),
		}
		for name, p := range extra {
			flags[name] = p
		}
		return flags
	}

	topics, _ := docs.GetAllTopics()

	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"report": {
				Flags: table(map[string]complete.Predictor{
					"nd": predict.Nothing,
					"ni": predict.Nothing,
					"s":  predict.Nothing,
				}),
				Args: predict.Files("*.xlsx"),
			},
			"summary": {
				Flags: table(map[string]complete.Predictor{
					"all": predict.Nothing,
				}),
				Args: predict.Files("*.xlsx"),
			},
			"diff": {
				Flags: table(nil),
				Args:  predict.Files("*.xlsx"),
			},
			"topic":  {Args: predict.Set(append(topics, "readme"))},
			"assist": {},
		},
	}
	root.Complete("aggie-report")
}
