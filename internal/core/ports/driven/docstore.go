package driven

import (
	"context"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
)

// DocumentStore persists the corpus document set.
//
// The document set is copy-on-write: every mutation installs a new
// complete set, and List always returns a snapshot of the set current
// at call time. Retrieval rebuilds its index from that snapshot, so a
// stale index can never outlive a mutation.
type DocumentStore interface {
	// Add stores a new document.
	Add(ctx context.Context, doc *domain.Document) error

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns all documents in insertion order.
	List(ctx context.Context) ([]domain.Document, error)

	// Delete removes a document by ID.
	Delete(ctx context.Context, id string) error

	// Replace swaps the entire document set atomically.
	Replace(ctx context.Context, docs []domain.Document) error
}
