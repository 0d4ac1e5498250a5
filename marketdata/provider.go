// Package marketdata fetches live quotes for the analysis step.
//
// The verdict logic only needs three things from a quote: the last price,
// the trailing valuation ratio, and a display name. Anything beyond that is
// out of scope for the simulation.
package marketdata

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrUnavailable reports that no quote could be produced for a ticker.
var ErrUnavailable = errors.New("quote unavailable")

// Quote is the market snapshot the analyst verdict runs on.
type Quote struct {
	Name  string          // normalized ticker symbol
	Price decimal.Decimal // last traded price
	PE    decimal.Decimal // trailing price/earnings, zero when the source has none
}

// Provider returns the current quote for a ticker, or an error wrapping
// ErrUnavailable when the ticker is unknown or the source is unreachable.
type Provider interface {
	Fetch(ticker string) (Quote, error)
}
