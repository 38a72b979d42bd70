package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
	"github.com/custodia-labs/ansa-cli/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// Documents keep their insertion order. Every read hands out copies, so
// callers can never mutate the stored set through a returned value.
type DocumentStore struct {
	mu   sync.RWMutex
	docs []domain.Document
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Add stores a new document.
func (s *DocumentStore) Add(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.docs {
		if d.ID == doc.ID {
			return domain.ErrAlreadyExists
		}
	}
	s.docs = append(s.docs, *doc)
	return nil
}

// Get retrieves a document by ID.
func (s *DocumentStore) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.docs {
		if d.ID == id {
			doc := d
			return &doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns a snapshot of all documents in insertion order.
func (s *DocumentStore) List(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]domain.Document, len(s.docs))
	copy(snapshot, s.docs)
	return snapshot, nil
}

// Delete removes a document by ID.
func (s *DocumentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.docs {
		if d.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Replace swaps the entire document set atomically.
func (s *DocumentStore) Replace(_ context.Context, docs []domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = make([]domain.Document, len(docs))
	copy(s.docs, docs)
	return nil
}
