package driving

import (
	"context"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
)

// AskService answers questions from the corpus.
type AskService interface {
	// Ask runs the full pipeline: chunk, index, score, budget, then
	// generate (or fall back to extraction). The returned Answer's
	// Source field records which path produced it; Ask only fails on
	// infrastructure errors, never on "no relevant results".
	Ask(ctx context.Context, question string, opts domain.AskOptions) (*domain.Answer, error)

	// Retrieve runs retrieval only and returns the positively scoring
	// passages in rank order, at most limit of them.
	Retrieve(ctx context.Context, query string, limit int) ([]domain.ScoredPassage, error)
}
