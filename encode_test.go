package papertrade

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeLedger_Canonical(t *testing.T) {
	l := newTestLedger("alice", 10000)
	if _, err := l.Buy("TSLA", USD(200), 1); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}

	want := `{"cash":9800,"holdings":{"TSLA":1},"history":[` +
		`{"date":"2025-08-01T10:00:00Z","action":"BUY","ticker":"TSLA","price":200,"qty":1,"balance_after":9800}` +
		`]}` + "\n"
	if buf.String() != want {
		t.Errorf("EncodeLedger() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestEncodeLedger_Empty(t *testing.T) {
	// A never-traded ledger still writes the full record shape, with an
	// empty array for the history rather than null.
	l := newTestLedger("alice", 10000)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}

	want := `{"cash":10000,"holdings":{},"history":[]}` + "\n"
	if buf.String() != want {
		t.Errorf("EncodeLedger() = %s, want %s", buf.String(), want)
	}
}

func TestDecodeLedger(t *testing.T) {
	record := `{
	  "cash": 10050.5,
	  "holdings": {"aapl": 3, "TSLA": 1},
	  "history": [
	    {"date":"2025-08-01T10:00:00Z","action":"BUY","ticker":"TSLA","price":200,"qty":1,"balance_after":9800}
	  ]
	}`

	l, err := DecodeLedger(strings.NewReader(record), "alice", "USD")
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if l.Identity() != "alice" {
		t.Errorf("identity = %q, want alice", l.Identity())
	}
	if !l.Cash().Equal(USD(10050.5)) {
		t.Errorf("cash = %s, want $10,050.50", l.Cash())
	}
	// Holdings keys are normalized on load.
	if got := l.Holding("AAPL"); got != 3 {
		t.Errorf("Holding(AAPL) = %d, want 3", got)
	}
	if len(l.history) != 1 {
		t.Fatalf("history length = %d, want 1", len(l.history))
	}
	tx := l.history[0]
	want := Transaction{
		Date:         testEpoch,
		Action:       ActionBuy,
		Ticker:       "TSLA",
		Price:        USD(200),
		Quantity:     1,
		BalanceAfter: USD(9800),
	}
	// Equal also checks that amounts come back stamped with the currency.
	if !tx.Equal(want) {
		t.Errorf("decoded transaction = %+v, want %+v", tx, want)
	}
	if !tx.Amount().Equal(USD(200)) {
		t.Errorf("decoded amount = %s, want $200.00", tx.Amount())
	}
}

func TestDecodeLedger_RejectsCorruptRecords(t *testing.T) {
	testCases := []struct {
		name   string
		record string
	}{
		{name: "not json", record: `this is not json`},
		{name: "truncated", record: `{"cash": 100, "holdings"`},
		{name: "negative cash", record: `{"cash": -1, "holdings": {}, "history": []}`},
		{name: "zero holding", record: `{"cash": 1, "holdings": {"TSLA": 0}, "history": []}`},
		{name: "negative holding", record: `{"cash": 1, "holdings": {"TSLA": -2}, "history": []}`},
		{name: "bad action", record: `{"cash": 1, "holdings": {}, "history": [{"date":"2025-08-01T10:00:00Z","action":"HOLD","ticker":"TSLA","price":1,"qty":1,"balance_after":1}]}`},
		{name: "bad date", record: `{"cash": 1, "holdings": {}, "history": [{"date":"yesterday","action":"BUY","ticker":"TSLA","price":1,"qty":1,"balance_after":1}]}`},
		{name: "zero qty", record: `{"cash": 1, "holdings": {}, "history": [{"date":"2025-08-01T10:00:00Z","action":"BUY","ticker":"TSLA","price":1,"qty":0,"balance_after":1}]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tc.record), "alice", "USD"); err == nil {
				t.Errorf("DecodeLedger() accepted a corrupt record")
			}
		})
	}
}

func TestEncodeLedger_RoundTripIdempotent(t *testing.T) {
	// save(load(save(L))) == save(L) for any ledger state L.
	l := newTestLedger("alice", 10000)
	if _, err := l.Buy("TSLA", USD(200.50), 3); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Buy("AAPL", USD(151.25), 2); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Sell("TSLA", USD(250), 1); err != nil {
		t.Fatal(err)
	}

	var first bytes.Buffer
	if err := EncodeLedger(&first, l); err != nil {
		t.Fatal(err)
	}

	reloaded, err := DecodeLedger(bytes.NewReader(first.Bytes()), "alice", "USD")
	if err != nil {
		t.Fatalf("DecodeLedger() on own output failed: %v", err)
	}

	var second bytes.Buffer
	if err := EncodeLedger(&second, reloaded); err != nil {
		t.Fatal(err)
	}

	if first.String() != second.String() {
		t.Errorf("round trip is not the identity:\nfirst:  %s\nsecond: %s",
			first.String(), second.String())
	}
}
