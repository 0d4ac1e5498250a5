// Package cmd implements the CLI application to trade against the simulated
// wallet.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"papertrade"
	"papertrade/marketdata"
)

// Commands lists every subcommand of the application.
// A main package will call Register on each, and Execute on the user-selected one.
var Commands = []subcommands.Command{
	&statusCmd{},
	&historyCmd{},
	&buyCmd{},
	&sellCmd{},
	&analyzeCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	portfolioPath = flag.String("portfolio-path", ".papertrade", "Path to the folder holding the per-user wallet files")
	userFlag      = flag.String("user", "default_user", "User identity owning the wallet")
	cashFlag      = flag.Float64("cash", 10000, "Initial cash for a brand-new wallet (ignored once a wallet is persisted)")
	currencyFlag  = flag.String("currency", "USD", "Wallet currency code")
)

// registry hands out one ledger instance per identity for this process.
// Created lazily so it picks up the -portfolio-path flag after parsing.
var registry *papertrade.Registry

// openLedger loads (or creates) the wallet for the -user flag.
//
// A corrupt wallet file is not fatal: the user gets a fresh wallet and a
// loud warning, exactly once, here.
func openLedger() (*papertrade.Ledger, error) {
	if err := papertrade.ValidateCurrency(*currencyFlag); err != nil {
		return nil, err
	}
	if registry == nil {
		registry = papertrade.NewRegistry(papertrade.NewStore(*portfolioPath))
	}
	initial := papertrade.M(*cashFlag, *currencyFlag)
	l, err := registry.Ledger(*userFlag, initial)
	if err != nil {
		var corrupt *papertrade.CorruptStateError
		if !errors.As(err, &corrupt) {
			return nil, err
		}
		log.Printf("warning: %v", corrupt)
	}
	return l, nil
}

// quotes returns the market data provider used by trading commands.
func quotes() marketdata.Provider {
	return marketdata.NewClient()
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// reportTradeError prints a trade failure and returns the exit status.
// A persistence failure is reported differently from a rejection, because
// the trade did apply in memory.
func reportTradeError(err error) subcommands.ExitStatus {
	var persist *papertrade.PersistError
	if errors.As(err, &persist) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", persist)
		fmt.Fprintln(os.Stderr, "The trade is applied for this session but may not survive a restart.")
		return subcommands.ExitFailure
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
