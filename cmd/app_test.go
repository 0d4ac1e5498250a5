package cmd

import (
	"testing"

	"papertrade"
)

func TestOpenLedgerGoesThroughRegistry(t *testing.T) {
	registry = nil
	*portfolioPath = t.TempDir()
	*userFlag = "alice"

	l1, err := openLedger()
	if err != nil {
		t.Fatalf("openLedger() returned %v", err)
	}
	l2, err := openLedger()
	if err != nil {
		t.Fatalf("openLedger() returned %v", err)
	}
	if l1 != l2 {
		t.Error("openLedger() built a second ledger for the same identity")
	}

	// Switching identity fetches a different ledger, not a mutated one.
	*userFlag = "bob"
	l3, err := openLedger()
	if err != nil {
		t.Fatalf("openLedger() returned %v", err)
	}
	if l3 == l1 {
		t.Error("openLedger() reused alice's ledger for bob")
	}
}

func TestResolvePrice(t *testing.T) {
	// An explicit positive price never hits the quote service.
	got, err := resolvePrice("TSLA", 200, "USD")
	if err != nil {
		t.Fatalf("resolvePrice() returned %v", err)
	}
	if want := papertrade.M(200, "USD"); !got.Equal(want) {
		t.Errorf("resolvePrice() = %s, want %s", got, want)
	}

	// A negative price is a usage error, not a trigger for a live fetch.
	if _, err := resolvePrice("TSLA", -1, "USD"); err == nil {
		t.Error("resolvePrice() accepted a negative price")
	}
}
