package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"papertrade"
	"papertrade/marketdata"
	"papertrade/strategy"
)

func TestStatus(t *testing.T) {
	l := papertrade.NewLedger("alice", papertrade.M(10000, "USD"))
	if _, err := l.Buy("TSLA", papertrade.M(200, "USD"), 2); err != nil {
		t.Fatal(err)
	}

	md := Status(l)
	for _, want := range []string{"# Portfolio: alice", "$9,600.00", "| TSLA | 2 |"} {
		if !strings.Contains(md, want) {
			t.Errorf("Status() misses %q:\n%s", want, md)
		}
	}

	empty := papertrade.NewLedger("bob", papertrade.M(3000, "USD"))
	if md := Status(empty); !strings.Contains(md, "No stocks owned yet.") {
		t.Errorf("Status() on empty holdings:\n%s", md)
	}
}

func TestHistoryAndTransaction(t *testing.T) {
	l := papertrade.NewLedger("alice", papertrade.M(10000, "USD"))
	tx, err := l.Buy("TSLA", papertrade.M(200, "USD"), 1)
	if err != nil {
		t.Fatal(err)
	}

	if line := Transaction(tx); !strings.Contains(line, "Bought 1 TSLA @ $200.00") {
		t.Errorf("Transaction() = %q", line)
	}

	md := History("alice", []papertrade.Transaction{tx})
	for _, want := range []string{"# History: alice", "| BUY |", "| TSLA |", "$9,800.00"} {
		if !strings.Contains(md, want) {
			t.Errorf("History() misses %q:\n%s", want, md)
		}
	}

	if md := History("bob", nil); !strings.Contains(md, "No transactions yet.") {
		t.Errorf("History() on empty ledger:\n%s", md)
	}
}

func TestAnalysis(t *testing.T) {
	q := marketdata.Quote{
		Name:  "TSLA",
		Price: decimal.NewFromFloat(201.88),
		PE:    decimal.NewFromFloat(57.6),
	}
	rules := strategy.Rules{Context: "conservative approach", Limit: decimal.NewFromInt(20)}

	md := Analysis(q, rules, strategy.Decide(q, rules))
	for _, want := range []string{"# Analysis: TSLA", "201.88", "57.6", "<20", "**SELL**"} {
		if !strings.Contains(md, want) {
			t.Errorf("Analysis() misses %q:\n%s", want, md)
		}
	}
}
