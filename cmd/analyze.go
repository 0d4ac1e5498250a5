package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"papertrade/renderer"
	"papertrade/strategy"
)

type analyzeCmd struct {
	security string
	doc      string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyze a ticker against the strategy document" }
func (*analyzeCmd) Usage() string {
	return `pt analyze -s <ticker> [-doc <file>]

  Fetches the current quote for the ticker, derives the price/earnings
  ceiling from the strategy document, and prints the analyst verdict:
  SELL when the ratio exceeds the ceiling, BUY otherwise. Without -doc the
  default ceiling of 25 applies.

Usage Examples:
$ pt analyze -s TSLA -doc strategy.txt
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.security, "s", "", "Ticker symbol to analyze.")
	f.StringVar(&c.doc, "doc", "", "Path to the strategy document (plain text).")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.security == "" {
		fmt.Fprintln(os.Stderr, "Error: -s <ticker> is required.")
		return subcommands.ExitUsageError
	}

	retriever, err := loadRetriever(c.doc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	quote, err := quotes().Fetch(c.security)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	rules := retriever.Query("What is the price/earnings limit?")
	verdict := strategy.Decide(quote, rules)

	printMarkdown(renderer.Analysis(quote, rules, verdict))
	return subcommands.ExitSuccess
}

// loadRetriever builds a retriever from the strategy document, or a nil one
// (default rules) when no document is given.
func loadRetriever(path string) (*strategy.Retriever, error) {
	if path == "" {
		return nil, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read strategy document %q: %w", path, err)
	}
	return strategy.NewRetriever(string(content)), nil
}
