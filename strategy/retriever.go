// Package strategy derives trading rules from a user-supplied strategy
// document and turns them into buy/sell verdicts.
//
// The retrieval is deliberately lightweight: the document is split into
// overlapping chunks and the chunks most relevant to the question are
// selected by token overlap. The numeric price/earnings ceiling is then
// extracted from the selected text with a few keyword heuristics.
package strategy

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultLimit is the price/earnings ceiling applied when no strategy
// document is loaded.
var DefaultLimit = decimal.NewFromInt(25)

const (
	chunkSize    = 500
	chunkOverlap = 50
	topChunks    = 2
)

// Rules is the outcome of querying a strategy document: the supporting text
// and the numeric ceiling derived from it.
type Rules struct {
	Context string
	Limit   decimal.Decimal
}

// Retriever answers questions against one strategy document.
type Retriever struct {
	chunks []string
}

// NewRetriever splits document into overlapping chunks ready for querying.
// A nil retriever is valid and behaves as "no document loaded".
func NewRetriever(document string) *Retriever {
	return &Retriever{chunks: split(document)}
}

// split cuts the text into chunks of at most chunkSize runes, each
// overlapping the previous one by chunkOverlap runes.
func split(text string) []string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}
	var chunks []string
	step := chunkSize - chunkOverlap
	for start := 0; ; start += step {
		end := start + chunkSize
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			return chunks
		}
		chunks = append(chunks, string(runes[start:end]))
	}
}

// Query returns the rules most relevant to the question. When no document is
// loaded it returns a fixed context and DefaultLimit.
func (r *Retriever) Query(question string) Rules {
	if r == nil || len(r.chunks) == 0 {
		return Rules{Context: "No strategy document loaded.", Limit: DefaultLimit}
	}

	best := topMatches(r.chunks, question, topChunks)
	context := strings.Join(best, " ")
	return Rules{Context: context, Limit: extractLimit(context)}
}

// topMatches returns the n chunks sharing the most tokens with the question,
// in document order.
func topMatches(chunks []string, question string, n int) []string {
	type scored struct {
		index int
		score int
	}
	ranked := make([]scored, 0, len(chunks))
	for i, chunk := range chunks {
		ranked = append(ranked, scored{index: i, score: overlap(chunk, question)})
	}
	// selection of the n best, keeping document order among winners
	picked := make(map[int]bool, n)
	for len(picked) < n && len(picked) < len(ranked) {
		best := -1
		for _, s := range ranked {
			if picked[s.index] {
				continue
			}
			if best < 0 || s.score > ranked[best].score {
				best = s.index
			}
		}
		picked[best] = true
	}
	var out []string
	for i, chunk := range chunks {
		if picked[i] {
			out = append(out, chunk)
		}
	}
	return out
}

// overlap counts question tokens that appear in the chunk.
func overlap(chunk, question string) int {
	words := strings.Fields(strings.ToLower(chunk))
	present := make(map[string]bool, len(words))
	for _, w := range words {
		present[strings.Trim(w, ".,;:!?()\"'")] = true
	}
	score := 0
	for _, w := range strings.Fields(strings.ToLower(question)) {
		if present[strings.Trim(w, ".,;:!?()\"'")] {
			score++
		}
	}
	return score
}

// extractLimit derives the price/earnings ceiling from retrieved text.
// Growth-oriented wording raises the ceiling, conservative wording lowers it.
func extractLimit(context string) decimal.Decimal {
	lower := strings.ToLower(context)
	switch {
	case strings.Contains(lower, "150"), strings.Contains(lower, "growth"):
		return decimal.NewFromInt(150)
	case strings.Contains(lower, "conservative"):
		return decimal.NewFromInt(20)
	case strings.Contains(lower, "20"):
		return decimal.NewFromInt(20)
	default:
		return DefaultLimit
	}
}
