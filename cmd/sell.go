package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"papertrade/renderer"
)

type sellCmd struct {
	security string
	quantity int64
	price    float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell held shares for cash" }
func (*sellCmd) Usage() string {
	return `pt sell -s <ticker> [-q <quantity>] [-p <price>]

  Sells held shares at the given price. When -p is omitted, the current
  market price is fetched and used. The trade is rejected when fewer shares
  are held than requested.

Usage Examples:
$ pt sell -s TSLA -q 1 -p 250
$ pt sell -s TSLA
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.security, "s", "", "Ticker symbol to sell.")
	f.Int64Var(&c.quantity, "q", 1, "Number of shares to sell.")
	f.Float64Var(&c.price, "p", 0, "Unit price. Defaults to the current market price.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.security == "" {
		fmt.Fprintln(os.Stderr, "Error: -s <ticker> is required.")
		return subcommands.ExitUsageError
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	price, err := resolvePrice(c.security, c.price, ledger.Currency())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	tx, err := ledger.Sell(c.security, price, c.quantity)
	if err != nil {
		return reportTradeError(err)
	}

	fmt.Println(renderer.Transaction(tx))
	return subcommands.ExitSuccess
}
