package retrieval

import (
	"math"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
)

// passageStats holds the per-passage term statistics the scorer reads.
type passageStats struct {
	passage  domain.Passage
	termFreq map[string]int
	length   int // token count, floored at 1
}

// Index holds read-only term statistics over one passage set. It is a
// pure function of the passages it was built from: never mutated, only
// rebuilt. Concurrent Score calls against one Index are safe.
type Index struct {
	stats   []passageStats // original passage order
	docFreq map[string]int
	byID    map[string]int // passage ID -> position in stats
}

// BuildIndex computes term statistics for the passage set in a single
// pass. Passage order is preserved; it is the scorer's tie-break.
func BuildIndex(passages []domain.Passage) *Index {
	ix := &Index{
		stats:   make([]passageStats, 0, len(passages)),
		docFreq: make(map[string]int),
		byID:    make(map[string]int, len(passages)),
	}

	for _, p := range passages {
		terms := Tokenize(p.Text)

		tf := make(map[string]int, len(terms))
		for _, t := range terms {
			tf[t]++
		}

		// Document frequency counts a term once per passage.
		for t := range tf {
			ix.docFreq[t]++
		}

		length := len(terms)
		if length < 1 {
			length = 1
		}

		ix.byID[p.ID] = len(ix.stats)
		ix.stats = append(ix.stats, passageStats{
			passage:  p,
			termFreq: tf,
			length:   length,
		})
	}

	return ix
}

// Size returns the number of indexed passages.
func (ix *Index) Size() int {
	return len(ix.stats)
}

// DocFreq returns the number of distinct passages containing term.
// Terms absent from the corpus have frequency 0.
func (ix *Index) DocFreq(term string) int {
	return ix.docFreq[term]
}

// IDF returns the smoothed inverse document frequency
// ln((N+1)/(df+1)) + 1, with N floored at 1 for an empty corpus.
// The additive smoothing keeps every weight positive, so even a term
// present in all passages still contributes.
func (ix *Index) IDF(term string) float64 {
	n := len(ix.stats)
	if n < 1 {
		n = 1
	}
	return math.Log(float64(n+1)/float64(ix.docFreq[term]+1)) + 1
}

// Passage returns the indexed passage with the given ID.
func (ix *Index) Passage(id string) (domain.Passage, bool) {
	pos, ok := ix.byID[id]
	if !ok {
		return domain.Passage{}, false
	}
	return ix.stats[pos].passage, true
}

// Passages returns the indexed passages in original order.
func (ix *Index) Passages() []domain.Passage {
	out := make([]domain.Passage, len(ix.stats))
	for i, st := range ix.stats {
		out[i] = st.passage
	}
	return out
}
