package marketdata

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

func testServer(t *testing.T, payload string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return &Client{base: srv.URL, client: srv.Client()}
}

func TestClient_Fetch(t *testing.T) {
	c := testServer(t, `{
	  "quoteResponse": {
	    "result": [
	      {"shortName": "Tesla, Inc.", "regularMarketPrice": 201.88, "trailingPE": 57.6}
	    ],
	    "error": null
	  }
	}`)

	q, err := c.Fetch("tsla")
	if err != nil {
		t.Fatalf("Fetch() returned an unexpected error: %v", err)
	}
	if q.Name != "Tesla, Inc." {
		t.Errorf("Name = %q, want Tesla, Inc.", q.Name)
	}
	if !q.Price.Equal(decimal.NewFromFloat(201.88)) {
		t.Errorf("Price = %s, want 201.88", q.Price)
	}
	if !q.PE.Equal(decimal.NewFromFloat(57.6)) {
		t.Errorf("PE = %s, want 57.6", q.PE)
	}
}

func TestClient_Fetch_NoTrailingPE(t *testing.T) {
	// Unprofitable companies come back without a trailingPE field.
	c := testServer(t, `{
	  "quoteResponse": {
	    "result": [{"shortName": "Example", "regularMarketPrice": 10.5}],
	    "error": null
	  }
	}`)

	q, err := c.Fetch("EXMP")
	if err != nil {
		t.Fatalf("Fetch() returned an unexpected error: %v", err)
	}
	if !q.PE.IsZero() {
		t.Errorf("PE = %s, want 0 when the source has none", q.PE)
	}
}

func TestClient_Fetch_UnknownTicker(t *testing.T) {
	c := testServer(t, `{"quoteResponse": {"result": [], "error": null}}`)

	_, err := c.Fetch("NOPE")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Fetch() error = %v, want ErrUnavailable", err)
	}
}
