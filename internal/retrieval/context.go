package retrieval

import (
	"encoding/json"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
)

// DefaultPerItemChars is the default per-item text cap in runes.
const DefaultPerItemChars = 1500

// DefaultTotalBytes is the default ceiling on the summed serialized
// size of the selected items.
const DefaultTotalBytes = 8000

// ContextBudget bounds what SelectContexts may hand downstream.
type ContextBudget struct {
	// PerItemChars truncates each item's text to this many runes.
	// Zero or negative disables per-item truncation.
	PerItemChars int

	// TotalBytes is the hard ceiling on the summed serialized item
	// sizes. Zero or negative disables the ceiling.
	TotalBytes int

	// MaxItems stops selection after this many accepted items.
	// Zero or negative means unbounded.
	MaxItems int
}

// DefaultContextBudget returns the budget the ask pipeline uses.
func DefaultContextBudget() ContextBudget {
	return ContextBudget{
		PerItemChars: DefaultPerItemChars,
		TotalBytes:   DefaultTotalBytes,
	}
}

// PassageLookup resolves a passage ID to its passage.
// (*Index).Passage satisfies it as a method value.
type PassageLookup func(id string) (domain.Passage, bool)

// SelectContexts walks ranked results in order and accepts items until
// a budget line is crossed. The accepted items are always a rank-order
// prefix: the first item whose serialized size would push the running
// total past TotalBytes is dropped entirely and selection stops there.
// Results whose passage cannot be resolved are skipped.
//
// Item size is the length of the item's JSON encoding, matching what
// the generation boundary actually transmits.
func SelectContexts(ranked []domain.ScoredPassage, lookup PassageLookup, budget ContextBudget) []domain.ContextItem {
	if lookup == nil {
		return nil
	}

	var items []domain.ContextItem
	total := 0

	for _, r := range ranked {
		if budget.MaxItems > 0 && len(items) >= budget.MaxItems {
			break
		}

		passage, ok := lookup(r.PassageID)
		if !ok {
			continue
		}

		item := domain.ContextItem{
			Text:  truncateRunes(passage.Text, budget.PerItemChars),
			URL:   passage.URL,
			Title: passage.Title,
		}

		if budget.TotalBytes > 0 {
			size := len(mustMarshal(item))
			if total+size > budget.TotalBytes {
				break
			}
			total += size
		}

		items = append(items, item)
	}

	return items
}

// ContextItemSize reports the serialized size of one item, as counted
// against ContextBudget.TotalBytes.
func ContextItemSize(item domain.ContextItem) int {
	return len(mustMarshal(item))
}

// mustMarshal encodes an item for sizing. A struct of plain strings
// cannot fail to encode.
func mustMarshal(item domain.ContextItem) []byte {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil
	}
	return raw
}

// truncateRunes caps s at max runes. Non-positive max leaves s alone.
func truncateRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
