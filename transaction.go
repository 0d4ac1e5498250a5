package papertrade

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Action is a typed string naming the side of a trade.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

// ParseAction parses a string into an Action.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionBuy:
		return ActionBuy, nil
	case ActionSell:
		return ActionSell, nil
	default:
		return "", fmt.Errorf("unknown action: %q", s)
	}
}

// Transaction is one executed trade in a ledger's history. Records are
// append-only: once written they are never reordered or mutated.
type Transaction struct {
	Date         time.Time // execution time, truncated to the second
	Action       Action
	Ticker       string // normalized upper-case symbol
	Price        Money  // unit price at execution, caller supplied
	Quantity     int64  // share count, always positive
	BalanceAfter Money  // cash balance right after the trade applied
}

// Amount returns the total cash moved by this transaction.
func (t Transaction) Amount() Money { return t.Price.MulInt(t.Quantity) }

func (t Transaction) Equal(o Transaction) bool {
	return t.Date.Equal(o.Date) &&
		t.Action == o.Action &&
		t.Ticker == o.Ticker &&
		t.Price.Equal(o.Price) &&
		t.Quantity == o.Quantity &&
		t.BalanceAfter.Equal(o.BalanceAfter)
}

// MarshalJSON writes the record with a canonical field order so that the
// persisted form is stable across saves.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Date.Format(time.RFC3339))
	w.Append("action", t.Action)
	w.Append("ticker", t.Ticker)
	w.Append("price", t.Price)
	w.Append("qty", t.Quantity)
	w.Append("balance_after", t.BalanceAfter)
	return w.MarshalJSON()
}

// txRecord is a specialized struct for decoding json. Amounts come back as
// bare decimals, the owning ledger stamps its currency on them.
type txRecord struct {
	Date         string          `json:"date"`
	Action       string          `json:"action"`
	Ticker       string          `json:"ticker"`
	Price        decimal.Decimal `json:"price"`
	Qty          int64           `json:"qty"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp txRecord
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	date, err := time.Parse(time.RFC3339, temp.Date)
	if err != nil {
		return fmt.Errorf("invalid transaction date %q: %w", temp.Date, err)
	}
	action, err := ParseAction(temp.Action)
	if err != nil {
		return err
	}
	if temp.Qty <= 0 {
		return fmt.Errorf("transaction quantity must be positive, got %d", temp.Qty)
	}
	t.Date = date
	t.Action = action
	t.Ticker = temp.Ticker
	t.Price = M(temp.Price, "")
	t.Quantity = temp.Qty
	t.BalanceAfter = M(temp.BalanceAfter, "")
	return nil
}

// stampCurrency sets the currency on the record's weak amounts.
func (t *Transaction) stampCurrency(currency string) {
	t.Price.cur = currency
	t.BalanceAfter.cur = currency
}
