package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"papertrade/cmd"
)

// completion describes the CLI for shell completion. It must be consulted
// before flag.Parse, so that COMP_LINE invocations exit early.
func completion() {
	trade := &complete.Command{Flags: map[string]complete.Predictor{
		"s": predict.Something,
		"q": predict.Something,
		"p": predict.Something,
	}}
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"status":  {},
			"history": {},
			"buy":     trade,
			"sell":    trade,
			"analyze": {Flags: map[string]complete.Predictor{
				"s":   predict.Something,
				"doc": predict.Files("*"),
			}},
			"assist": {Flags: map[string]complete.Predictor{
				"doc": predict.Files("*"),
			}},
			"topic": {Args: predict.Set{"readme", "trading", "strategy"}},
		},
		Flags: map[string]complete.Predictor{
			"portfolio-path": predict.Dirs("*"),
			"user":           predict.Something,
			"cash":           predict.Something,
			"currency":       predict.Set{"USD", "EUR"},
		},
	}
	c.Complete("pt")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
