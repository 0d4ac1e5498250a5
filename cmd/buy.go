package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"papertrade"
	"papertrade/renderer"
)

type buyCmd struct {
	security string
	quantity int64
	price    float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy shares with the wallet's cash" }
func (*buyCmd) Usage() string {
	return `pt buy -s <ticker> [-q <quantity>] [-p <price>]

  Buys shares at the given price. When -p is omitted, the current market
  price is fetched and used. The trade is rejected when cash cannot cover
  the total cost.

Usage Examples:
$ pt buy -s TSLA -q 2 -p 200
$ pt buy -s TSLA
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.security, "s", "", "Ticker symbol to buy.")
	f.Int64Var(&c.quantity, "q", 1, "Number of shares to buy.")
	f.Float64Var(&c.price, "p", 0, "Unit price. Defaults to the current market price.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	tx, err := ledger.Buy(c.security, price, c.quantity)
	if err != nil {
		return reportTradeError(err)
	}

	fmt.Println(renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

// resolvePrice uses the explicit price when given, the live quote otherwise.
func resolvePrice(ticker string, price float64, currency string) (papertrade.Money, error) {
	if price < 0 {
		return papertrade.Money{}, fmt.Errorf("price must not be negative, got %v", price)
	}
	if price > 0 {
		return papertrade.M(price, currency), nil
	}
	q, err := quotes().Fetch(ticker)
	if err != nil {
		return papertrade.Money{}, fmt.Errorf("could not fetch a price for %q: %w", ticker, err)
	}
	return papertrade.M(q.Price, currency), nil
}
