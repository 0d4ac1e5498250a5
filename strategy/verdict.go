package strategy

import (
	"papertrade/marketdata"
)

// Verdict is the analyst's conclusion for one quote.
type Verdict string

const (
	VerdictBuy  Verdict = "BUY"
	VerdictSell Verdict = "SELL"
)

// Decide issues the verdict for a quote against the rules: SELL when the
// valuation ratio exceeds the ceiling, BUY otherwise. A quote with no
// valuation ratio (zero) never exceeds the ceiling.
func Decide(q marketdata.Quote, rules Rules) Verdict {
	if q.PE.GreaterThan(rules.Limit) {
		return VerdictSell
	}
	return VerdictBuy
}
