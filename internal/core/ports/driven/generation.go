package driven

import (
	"context"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
)

// GenerationService turns a question plus selected context passages
// into prose. This is an optional service - when nil or failing, the
// ask pipeline falls back to the extractive summariser.
//
// Implementations may include:
//   - The built-in answer service over an LLMClient
//   - A remote answer endpoint speaking the {question, contexts} contract
type GenerationService interface {
	// Answer produces an answer from the question and the given
	// context items. Implementations enforce their own serialized-size
	// ceiling by greedily accepting contexts in input order, and
	// report which items they actually used.
	Answer(ctx context.Context, question string, contexts []domain.ContextItem) (*domain.GenerationResult, error)
}
