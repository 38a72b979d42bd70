package retrieval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
)

// TestScore_KoreanCorpus pins the reference ranking behaviour: the
// passage sharing a query term ranks first with a positive score, the
// unrelated passage scores exactly zero.
func TestScore_KoreanCorpus(t *testing.T) {
	ix := BuildIndex([]domain.Passage{
		passageFixture("p1", "두통이 심하면 병원에 가세요."),
		passageFixture("p2", "임신 중 입덧은 보통 20주 이전에 완화됩니다."),
	})

	results := ix.Score("입덧 20주")
	require.Len(t, results, 2)

	assert.Equal(t, "p2", results[0].PassageID)
	assert.Greater(t, results[0].Score, 0.0)

	assert.Equal(t, "p1", results[1].PassageID)
	assert.Zero(t, results[1].Score)

	// The winning score is the exact dot product: only "20주" matches
	// ("입덧" differs from the inflected "입덧은"), p2 has 7 terms.
	idf := math.Log(3.0/2.0) + 1
	want := (1.0 / 2.0 * idf) * (1.0 / 7.0) * idf
	assert.InDelta(t, want, results[0].Score, 1e-12)
}

func TestScore_EmptyCorpus(t *testing.T) {
	ix := BuildIndex(nil)

	results := ix.Score("any query at all")
	assert.Empty(t, results)
}

func TestScore_EmptyQuery(t *testing.T) {
	ix := BuildIndex([]domain.Passage{
		passageFixture("p1", "alpha bravo"),
		passageFixture("p2", "charlie delta"),
	})

	results := ix.Score("")
	require.Len(t, results, 2)

	// All-zero scores degenerate to tie-break order: the original
	// passage order.
	assert.Equal(t, "p1", results[0].PassageID)
	assert.Equal(t, "p2", results[1].PassageID)
	assert.Zero(t, results[0].Score)
	assert.Zero(t, results[1].Score)
}

// TestScore_RelevanceMonotonicity: a passage containing every query
// term must outrank one containing none, which scores zero.
func TestScore_RelevanceMonotonicity(t *testing.T) {
	ix := BuildIndex([]domain.Passage{
		passageFixture("none", "entirely unrelated content here"),
		passageFixture("all", "every query term present query term"),
	})

	results := ix.Score("query term")
	require.Len(t, results, 2)
	assert.Equal(t, "all", results[0].PassageID)
	assert.Greater(t, results[0].Score, 0.0)
	assert.Equal(t, "none", results[1].PassageID)
	assert.Zero(t, results[1].Score)
}

// TestScore_Deterministic: repeated calls return identical orderings
// and bit-identical scores.
func TestScore_Deterministic(t *testing.T) {
	ix := BuildIndex([]domain.Passage{
		passageFixture("p1", "shared words and some noise"),
		passageFixture("p2", "shared words appear here too"),
		passageFixture("p3", "completely different text body"),
		passageFixture("p4", "words shared shared words"),
	})

	first := ix.Score("shared words noise")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ix.Score("shared words noise"))
	}
}

// TestScore_TieBreakIsOriginalOrder: identical passages tie exactly and
// keep document order.
func TestScore_TieBreakIsOriginalOrder(t *testing.T) {
	ix := BuildIndex([]domain.Passage{
		passageFixture("first", "twin passage text"),
		passageFixture("second", "twin passage text"),
		passageFixture("third", "twin passage text"),
	})

	results := ix.Score("twin")
	require.Len(t, results, 3)
	assert.Equal(t, "first", results[0].PassageID)
	assert.Equal(t, "second", results[1].PassageID)
	assert.Equal(t, "third", results[2].PassageID)
	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Equal(t, results[1].Score, results[2].Score)
}

func TestScore_QueryTermFrequencyWeighting(t *testing.T) {
	ix := BuildIndex([]domain.Passage{
		passageFixture("p1", "alpha alpha alpha bravo"),
		passageFixture("p2", "alpha bravo bravo bravo"),
	})

	// Repeating a term in the query shifts weight toward passages
	// where that term is dense.
	heavyAlpha := ix.Score("alpha alpha bravo")
	require.Equal(t, "p1", heavyAlpha[0].PassageID)

	heavyBravo := ix.Score("alpha bravo bravo")
	require.Equal(t, "p2", heavyBravo[0].PassageID)
}

func TestScore_ZeroScoresSortLast(t *testing.T) {
	ix := BuildIndex([]domain.Passage{
		passageFixture("miss1", "nothing relevant"),
		passageFixture("hit", "the answer lives here"),
		passageFixture("miss2", "also irrelevant"),
	})

	results := ix.Score("answer")
	require.Len(t, results, 3)
	assert.Equal(t, "hit", results[0].PassageID)

	// Zero-scoring passages trail in original order.
	assert.Equal(t, "miss1", results[1].PassageID)
	assert.Equal(t, "miss2", results[2].PassageID)
}
