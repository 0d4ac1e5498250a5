package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"
	"papertrade/strategy"
)

type assistCmd struct {
	doc string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the strategy advisor" }
func (*assistCmd) Usage() string {
	return `pt assist [-doc <file>] [question...]

  Starts an interactive Gemini-backed chat grounded on the strategy document
  and the current wallet. Requires GEMINI_API_KEY in the environment.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.doc, "doc", "", "Path to the strategy document (plain text).")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	retriever, err := loadRetriever(c.doc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	rules := retriever.Query("What is the price/earnings limit?")

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	advisor := strategy.NewAdvisor()
	if err := advisor.Start(ctx, client, rules, ledger.Status()); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting advisor:", err)
		return subcommands.ExitFailure
	}

	if err := advisor.Run(ctx, os.Stdout, os.Stdin, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
