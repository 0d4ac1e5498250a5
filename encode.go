package papertrade

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeLedger persists the whole ledger state as a single JSON object:
//
//	{"cash": 9800, "holdings": {"TSLA": 1}, "history": [...]}
//
// Keys are written in a canonical order (holdings sorted by ticker, history
// in chronological order) so that saving the same state twice produces the
// same bytes.
func EncodeLedger(w io.Writer, l *Ledger) error {
	var obj jsonObjectWriter
	obj.Append("cash", l.cash)

	var holdings jsonObjectWriter
	for ticker, qty := range l.Holdings() {
		holdings.Append(ticker, qty)
	}
	obj.Append("holdings", &holdings)

	history := l.history
	if history == nil {
		history = []Transaction{}
	}
	obj.Append("history", history)

	data, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}

// DecodeLedger reads a persisted ledger record and rebuilds an in-memory
// ledger for identity, stamping currency on all amounts. It rejects records
// that violate the ledger invariants (negative cash, non-positive holdings)
// so that a truncated or hand-mangled file is reported as corrupt instead of
// silently producing an unreachable state.
func DecodeLedger(r io.Reader, identity, currency string) (*Ledger, error) {
	var record struct {
		Cash     decimal.Decimal  `json:"cash"`
		Holdings map[string]int64 `json:"holdings"`
		History  []Transaction    `json:"history"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&record); err != nil {
		return nil, fmt.Errorf("could not decode ledger record: %w", err)
	}

	if record.Cash.IsNegative() {
		return nil, fmt.Errorf("ledger record has negative cash: %s", record.Cash)
	}

	l := NewLedger(identity, M(record.Cash, currency))
	for ticker, qty := range record.Holdings {
		if qty <= 0 {
			return nil, fmt.Errorf("ledger record holds %d %s, counts must be positive", qty, ticker)
		}
		l.holdings[NormalizeTicker(ticker)] = qty
	}
	for i := range record.History {
		record.History[i].stampCurrency(currency)
	}
	l.history = record.History
	return l, nil
}
