// Package renderer turns ledger and analysis state into markdown for the
// terminal.
package renderer

import (
	"fmt"
	"strings"
	"time"

	"papertrade"
	"papertrade/marketdata"
	"papertrade/strategy"
)

// Transaction renders a one-line confirmation of an executed trade.
func Transaction(tx papertrade.Transaction) string {
	switch tx.Action {
	case papertrade.ActionBuy:
		return fmt.Sprintf("Bought %d %s @ %s, balance %s", tx.Quantity, tx.Ticker, tx.Price, tx.BalanceAfter)
	case papertrade.ActionSell:
		return fmt.Sprintf("Sold %d %s @ %s, balance %s", tx.Quantity, tx.Ticker, tx.Price, tx.BalanceAfter)
	default:
		return string(tx.Action)
	}
}

// Status renders the portfolio dashboard for one ledger.
func Status(l *papertrade.Ledger) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio: %s\n\n", l.Identity())
	fmt.Fprintf(&b, "Available cash: **%s**\n\n", l.Cash())

	b.WriteString("## Holdings\n\n")
	empty := true
	for ticker, qty := range l.Holdings() {
		if empty {
			b.WriteString("| Ticker | Shares |\n|---|---:|\n")
			empty = false
		}
		fmt.Fprintf(&b, "| %s | %d |\n", ticker, qty)
	}
	if empty {
		b.WriteString("No stocks owned yet.\n")
	}
	return b.String()
}

// History renders a transaction list as a markdown table, newest last.
func History(identity string, transactions []papertrade.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# History: %s\n\n", identity)

	empty := true
	for _, tx := range transactions {
		if empty {
			b.WriteString("| Date | Action | Ticker | Price | Qty | Balance |\n")
			b.WriteString("|---|---|---|---:|---:|---:|\n")
			empty = false
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %s |\n",
			tx.Date.Format(time.DateTime), tx.Action, tx.Ticker, tx.Price, tx.Quantity, tx.BalanceAfter)
	}
	if empty {
		b.WriteString("No transactions yet.\n")
	}
	return b.String()
}

// Analysis renders the analyst verdict for a quote against the strategy rules.
func Analysis(q marketdata.Quote, rules strategy.Rules, verdict strategy.Verdict) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Analysis: %s\n\n", q.Name)
	b.WriteString("| Price | P/E | Ceiling |\n|---:|---:|---:|\n")
	fmt.Fprintf(&b, "| %s | %s | <%s |\n\n", q.Price.StringFixed(2), q.PE.StringFixed(1), rules.Limit)
	fmt.Fprintf(&b, "Analyst verdict: **%s**\n\n", verdict)
	fmt.Fprintf(&b, "Strategy context: %s\n", rules.Context)
	return b.String()
}
