package papertrade

import "fmt"

// InsufficientFundsError rejects a buy whose total cost exceeds the cash
// balance. The ledger is left untouched.
type InsufficientFundsError struct {
	Ticker    string
	Cost      Money // total cost of the rejected buy
	Cash      Money // cash balance at rejection time
	Shortfall Money // Cost - Cash
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds to buy %s: need %s, cash balance is %s, short %s",
		e.Ticker, e.Cost, e.Cash, e.Shortfall)
}

// InsufficientSharesError rejects a sell of more shares than are held.
// The ledger is left untouched.
type InsufficientSharesError struct {
	Ticker    string
	Requested int64
	Held      int64
}

func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("insufficient shares to sell %d %s: only %d held",
		e.Requested, e.Ticker, e.Held)
}

// CorruptStateError reports that the persisted state for an identity could
// not be read. The caller still gets a fresh ledger seeded from the initial
// cash, but must surface this as a warning, not a fresh-user silence.
type CorruptStateError struct {
	Identity string
	Path     string
	Err      error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("persisted state for %q is unreadable (%s), starting over: %v",
		e.Identity, e.Path, e.Err)
}

func (e *CorruptStateError) Unwrap() error { return e.Err }

// PersistError reports a durable write that failed after the in-memory
// mutation was already applied. This is the one place where memory and disk
// can diverge: the trade happened but may not survive a restart, so callers
// must not confuse it with a validation rejection.
type PersistError struct {
	Identity string
	Err      error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("trade applied but saving ledger for %q failed: %v", e.Identity, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
