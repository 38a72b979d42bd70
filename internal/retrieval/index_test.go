package retrieval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
)

func passageFixture(id, text string) domain.Passage {
	return domain.Passage{ID: id, DocumentID: id, Text: text}
}

func TestBuildIndex(t *testing.T) {
	ix := BuildIndex([]domain.Passage{
		passageFixture("p1", "alpha bravo alpha"),
		passageFixture("p2", "bravo charlie"),
	})

	assert.Equal(t, 2, ix.Size())

	t.Run("document frequency counts a term once per passage", func(t *testing.T) {
		assert.Equal(t, 1, ix.DocFreq("alpha"))
		assert.Equal(t, 2, ix.DocFreq("bravo"))
		assert.Equal(t, 1, ix.DocFreq("charlie"))
		assert.Equal(t, 0, ix.DocFreq("delta"))
	})

	t.Run("idf follows the smoothed formula", func(t *testing.T) {
		// idf(t) = ln((N+1)/(df+1)) + 1 with N = 2.
		assert.InDelta(t, math.Log(3.0/2.0)+1, ix.IDF("alpha"), 1e-12)
		assert.InDelta(t, math.Log(3.0/3.0)+1, ix.IDF("bravo"), 1e-12)
		assert.InDelta(t, math.Log(3.0/1.0)+1, ix.IDF("delta"), 1e-12)
	})

	t.Run("passage lookup", func(t *testing.T) {
		p, ok := ix.Passage("p2")
		require.True(t, ok)
		assert.Equal(t, "bravo charlie", p.Text)

		_, ok = ix.Passage("missing")
		assert.False(t, ok)
	})

	t.Run("passages preserve input order", func(t *testing.T) {
		passages := ix.Passages()
		require.Len(t, passages, 2)
		assert.Equal(t, "p1", passages[0].ID)
		assert.Equal(t, "p2", passages[1].ID)
	})
}

func TestBuildIndex_Empty(t *testing.T) {
	ix := BuildIndex(nil)

	assert.Equal(t, 0, ix.Size())
	assert.Empty(t, ix.Passages())

	// N is floored at 1: idf(unknown) = ln(2/1) + 1.
	assert.InDelta(t, math.Log(2.0)+1, ix.IDF("anything"), 1e-12)
}

func TestBuildIndex_BlankPassage(t *testing.T) {
	// A passage with no extractable terms must not poison scoring
	// with a zero-length division.
	ix := BuildIndex([]domain.Passage{
		passageFixture("blank", "?!"),
		passageFixture("p1", "alpha"),
	})

	results := ix.Score("alpha")
	require.Len(t, results, 2)
	assert.Equal(t, "p1", results[0].PassageID)
	assert.Greater(t, results[0].Score, 0.0)
	assert.Zero(t, results[1].Score)
	assert.False(t, math.IsNaN(results[1].Score))
}
