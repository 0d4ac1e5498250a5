package papertrade

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"maps"
	"slices"
	"strings"
	"time"
)

// Ledger owns one user's cash balance, share holdings and trade history.
//
// It is the sole authority on whether a trade succeeds, and the sole writer
// of its persisted state: every successful Buy or Sell appends exactly one
// Transaction and immediately saves the whole ledger.
//
// A Ledger is not safe for concurrent use; the Registry hands out one
// instance per identity within a process.
type Ledger struct {
	identity string
	currency string
	cash     Money
	holdings map[string]int64 // ticker -> share count, entries always positive
	history  []Transaction    // chronological, append-only

	store *Store           // nil for an in-memory ledger
	now   func() time.Time // injectable clock
}

// NewLedger creates a fresh in-memory ledger for identity, seeded with
// initialCash. It is not attached to any store; use Open for a persisted one.
func NewLedger(identity string, initialCash Money) *Ledger {
	return &Ledger{
		identity: identity,
		currency: initialCash.Currency(),
		cash:     initialCash,
		holdings: make(map[string]int64),
		now:      func() time.Time { return time.Now().Truncate(time.Second) },
	}
}

// Open returns the ledger persisted in store for identity, or a fresh one
// seeded with initialCash when none exists. Persisted state always wins over
// initialCash.
//
// When persisted state exists but is unreadable, Open falls back to a fresh
// ledger and returns it together with a *CorruptStateError: the ledger is
// usable, but the caller must surface the warning.
func Open(store *Store, identity string, initialCash Money) (*Ledger, error) {
	l, err := store.Load(identity, initialCash.Currency())
	if err == nil {
		return l, nil
	}
	l = NewLedger(identity, initialCash)
	l.store = store
	if errors.Is(err, fs.ErrNotExist) {
		return l, nil
	}
	return l, &CorruptStateError{Identity: identity, Path: store.file(identity), Err: err}
}

// Identity returns the opaque name of the ledger's owner.
func (l *Ledger) Identity() string { return l.identity }

// Currency returns the ledger's cash currency.
func (l *Ledger) Currency() string { return l.currency }

// Cash returns the current cash balance. It is never negative.
func (l *Ledger) Cash() Money { return l.cash }

// Holding returns the share count currently held for ticker, zero if none.
func (l *Ledger) Holding(ticker string) int64 {
	return l.holdings[NormalizeTicker(ticker)]
}

// Holdings iterates over held tickers and their share counts in ticker order.
func (l *Ledger) Holdings() iter.Seq2[string, int64] {
	return func(yield func(string, int64) bool) {
		tickers := slices.Collect(maps.Keys(l.holdings))
		slices.Sort(tickers)
		for _, ticker := range tickers {
			if !yield(ticker, l.holdings[ticker]) {
				return
			}
		}
	}
}

// History returns an iterator that yields each transaction in chronological
// order.
func (l *Ledger) History() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.history {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// NormalizeTicker maps a user-supplied symbol to its canonical form.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// checkOrder validates the common trade preconditions.
func checkOrder(ticker string, price Money, quantity int64) (string, error) {
	ticker = NormalizeTicker(ticker)
	if ticker == "" {
		return "", fmt.Errorf("ticker is missing")
	}
	if quantity <= 0 {
		return "", fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if price.IsNegative() {
		return "", fmt.Errorf("price must not be negative, got %s", price)
	}
	return ticker, nil
}

// Buy debits price*quantity from cash and credits quantity shares of ticker.
//
// It fails with *InsufficientFundsError when cash cannot cover the cost; no
// state changes and nothing is persisted. On success the appended Transaction
// is returned and the whole ledger is saved; if that save fails the trade
// stays applied in memory and the error is a *PersistError.
func (l *Ledger) Buy(ticker string, price Money, quantity int64) (Transaction, error) {
	ticker, err := checkOrder(ticker, price, quantity)
	if err != nil {
		return Transaction{}, err
	}

	cost := price.MulInt(quantity)
	if l.cash.LessThan(cost) {
		return Transaction{}, &InsufficientFundsError{
			Ticker:    ticker,
			Cost:      cost,
			Cash:      l.cash,
			Shortfall: cost.Sub(l.cash),
		}
	}

	l.cash = l.cash.Sub(cost)
	l.holdings[ticker] += quantity
	tx := Transaction{
		Date:         l.now(),
		Action:       ActionBuy,
		Ticker:       ticker,
		Price:        price,
		Quantity:     quantity,
		BalanceAfter: l.cash,
	}
	l.history = append(l.history, tx)
	return tx, l.persist()
}

// Sell credits price*quantity to cash and debits quantity shares of ticker.
// A sell that empties a position removes the ticker entry entirely.
//
// It fails with *InsufficientSharesError when fewer shares are held than
// requested; no state changes and nothing is persisted. Save failures are
// reported as for Buy.
func (l *Ledger) Sell(ticker string, price Money, quantity int64) (Transaction, error) {
	ticker, err := checkOrder(ticker, price, quantity)
	if err != nil {
		return Transaction{}, err
	}

	held := l.holdings[ticker]
	if held < quantity {
		return Transaction{}, &InsufficientSharesError{
			Ticker:    ticker,
			Requested: quantity,
			Held:      held,
		}
	}

	l.cash = l.cash.Add(price.MulInt(quantity))
	if held == quantity {
		delete(l.holdings, ticker)
	} else {
		l.holdings[ticker] = held - quantity
	}
	tx := Transaction{
		Date:         l.now(),
		Action:       ActionSell,
		Ticker:       ticker,
		Price:        price,
		Quantity:     quantity,
		BalanceAfter: l.cash,
	}
	l.history = append(l.history, tx)
	return tx, l.persist()
}

// persist saves the full ledger state after a successful mutation.
func (l *Ledger) persist() error {
	if l.store == nil {
		return nil
	}
	if err := l.store.Save(l); err != nil {
		return &PersistError{Identity: l.identity, Err: err}
	}
	return nil
}

// Status returns a one-line human readable summary of the ledger. Read-only.
func (l *Ledger) Status() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s | %s |", l.identity, l.cash)
	if len(l.holdings) == 0 {
		b.WriteString(" no holdings")
		return b.String()
	}
	for ticker, qty := range l.Holdings() {
		fmt.Fprintf(&b, " %s:%d", ticker, qty)
	}
	return b.String()
}
