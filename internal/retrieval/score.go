package retrieval

import (
	"sort"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
)

// queryTerm is a distinct query term with its precomputed weights.
type queryTerm struct {
	term   string
	weight float64 // (qtf/qLen) * idf
	idf    float64
}

// Score ranks every indexed passage against the query using an
// unnormalised TF-IDF dot product:
//
//	score(d) = Σ_t qw(t) * (tf_d(t)/len_d) * idf(t)
//
// over the distinct query terms t, with qw(t) = (qtf(t)/qLen) * idf(t).
// The sort is descending by score and stable, so ties keep the
// original passage order (document order, then chunk index), which is
// the documented deterministic tie-break.
//
// Scoring never fails: an empty query, or a query sharing no terms
// with the corpus, yields all-zero scores in tie-break order, which
// callers treat as "no relevant results". An empty index yields an
// empty slice.
func (ix *Index) Score(query string) []domain.ScoredPassage {
	terms := Tokenize(query)

	qtf := make(map[string]int, len(terms))
	var distinct []string
	for _, t := range terms {
		if _, seen := qtf[t]; !seen {
			distinct = append(distinct, t)
		}
		qtf[t]++
	}

	qLen := len(terms)
	if qLen < 1 {
		qLen = 1
	}

	// Weights are evaluated in first-occurrence order so the float
	// summation order, and therefore the exact scores, are stable
	// across calls.
	weights := make([]queryTerm, 0, len(distinct))
	for _, t := range distinct {
		idf := ix.IDF(t)
		weights = append(weights, queryTerm{
			term:   t,
			weight: float64(qtf[t]) / float64(qLen) * idf,
			idf:    idf,
		})
	}

	results := make([]domain.ScoredPassage, 0, len(ix.stats))
	for _, st := range ix.stats {
		var score float64
		for _, w := range weights {
			if tf := st.termFreq[w.term]; tf > 0 {
				score += w.weight * (float64(tf) / float64(st.length)) * w.idf
			}
		}
		results = append(results, domain.ScoredPassage{
			PassageID:  st.passage.ID,
			Score:      score,
			DocumentID: st.passage.DocumentID,
			Title:      st.passage.Title,
			URL:        st.passage.URL,
			Index:      st.passage.Index,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}
