package driving

import (
	"context"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
)

// CorpusService manages the corpus document set.
type CorpusService interface {
	// Add stores a new document with the given title, url, and
	// content. Content must be non-empty.
	Add(ctx context.Context, title, url, content string) (*domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns all documents in insertion order.
	List(ctx context.Context) ([]domain.Document, error)

	// Delete removes a document by ID.
	Delete(ctx context.Context, id string) error

	// ImportFeed fetches a feed and adds one document per item that
	// carries content. It returns the documents actually added.
	ImportFeed(ctx context.Context, url string) ([]domain.Document, error)

	// ImportDir walks a directory and adds one document per text file
	// (.txt, .md). It returns the documents actually added.
	ImportDir(ctx context.Context, dir string) ([]domain.Document, error)

	// ImportFile imports a single text file. A document previously
	// imported from the same path is replaced rather than duplicated.
	ImportFile(ctx context.Context, path string) (*domain.Document, error)
}
