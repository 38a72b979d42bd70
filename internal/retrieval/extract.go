package retrieval

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// ExtractKeySentences ranks the sentences of passageText by how many
// distinct query terms each contains (set intersection, not frequency
// weighted) and returns the top max in ranked order. Ties prefer the
// shorter sentence, then original sentence order.
//
// This is the fully local fallback used when no generation backend is
// available: deterministic, no network, no model.
func ExtractKeySentences(passageText, query string, max int) []string {
	if max <= 0 {
		return nil
	}

	// Coarser split than the chunker's: punctuation boundaries only.
	sentences := SentenceSegmenter{}.Segment(passageText)
	if len(sentences) == 0 {
		return nil
	}

	queryTerms := termSet(query)

	type rankedSentence struct {
		text    string
		overlap int
		length  int
	}

	ranked := make([]rankedSentence, 0, len(sentences))
	for _, sentence := range sentences {
		overlap := 0
		if len(queryTerms) > 0 {
			present := termSet(sentence)
			for t := range queryTerms {
				if _, ok := present[t]; ok {
					overlap++
				}
			}
		}
		ranked = append(ranked, rankedSentence{
			text:    sentence,
			overlap: overlap,
			length:  utf8.RuneCountInString(sentence),
		})
	}

	// Stable keeps original sentence order as the final tie-break.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].overlap != ranked[j].overlap {
			return ranked[i].overlap > ranked[j].overlap
		}
		return ranked[i].length < ranked[j].length
	})

	if max > len(ranked) {
		max = len(ranked)
	}

	out := make([]string, 0, max)
	for _, r := range ranked[:max] {
		out = append(out, strings.TrimSpace(r.text))
	}
	return out
}
