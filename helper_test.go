package papertrade

import "time"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// testClock returns a deterministic clock that advances one minute per call.
func testClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		now := t
		t = t.Add(time.Minute)
		return now
	}
}

var testEpoch = time.Date(2025, time.August, 1, 10, 0, 0, 0, time.UTC)

// newTestLedger creates an in-memory ledger with a deterministic clock.
func newTestLedger(identity string, cash float64) *Ledger {
	l := NewLedger(identity, USD(cash))
	l.now = testClock(testEpoch)
	return l
}
