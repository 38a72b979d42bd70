package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
	"github.com/custodia-labs/ansa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ansa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ansa-cli/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// importExtensions are the file types ImportDir accepts.
var importExtensions = map[string]bool{
	".txt": true,
	".md":  true,
}

// CorpusService manages the corpus document set.
type CorpusService struct {
	docStore driven.DocumentStore
	fetcher  driven.FeedFetcher
}

// NewCorpusService creates a new corpus service.
// The fetcher parameter is optional (can be nil); feed import is then
// disabled.
func NewCorpusService(docStore driven.DocumentStore, fetcher driven.FeedFetcher) *CorpusService {
	return &CorpusService{
		docStore: docStore,
		fetcher:  fetcher,
	}
}

// Add stores a new document with the given title, url, and content.
func (s *CorpusService) Add(ctx context.Context, title, url, content string) (*domain.Document, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("document content is empty: %w", domain.ErrInvalidInput)
	}

	doc := &domain.Document{
		ID:      uuid.New().String(),
		Title:   title,
		URL:     url,
		Content: content,
		AddedAt: time.Now(),
	}

	if err := s.docStore.Add(ctx, doc); err != nil {
		return nil, fmt.Errorf("add document: %w", err)
	}

	logger.Debug("Added document %s (%d chars)", doc.ID, len(content))
	return doc, nil
}

// Get retrieves a document by ID.
func (s *CorpusService) Get(ctx context.Context, id string) (*domain.Document, error) {
	doc, err := s.docStore.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get document %s: %w", id, err)
	}
	return doc, nil
}

// List returns all documents in insertion order.
func (s *CorpusService) List(ctx context.Context) ([]domain.Document, error) {
	docs, err := s.docStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Delete removes a document by ID.
func (s *CorpusService) Delete(ctx context.Context, id string) error {
	if err := s.docStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete document %s: %w", id, err)
	}
	logger.Debug("Deleted document %s", id)
	return nil
}

// ImportFeed fetches a feed and adds one document per item that
// carries content. Fetch failures surface as errors so the operator
// can distinguish them from a feed that is merely empty. Items seen
// on an earlier import of the same link are replaced, not duplicated.
func (s *CorpusService) ImportFeed(ctx context.Context, url string) ([]domain.Document, error) {
	if s.fetcher == nil {
		return nil, errors.New("feed fetcher unavailable")
	}

	logger.Section("Feed Import")
	logger.Debug("Fetching %s", url)

	items, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("import feed %s: %w", url, err)
	}

	logger.Debug("Feed yielded %d items", len(items))

	var added []domain.Document
	for _, item := range items {
		if strings.TrimSpace(item.Content) == "" {
			logger.Debug("Skipping item %q: no content", item.Title)
			continue
		}

		doc, err := s.addOrReplace(ctx, item.Title, item.Link, item.Content)
		if err != nil {
			logger.Warn("Skipping item %q: %v", item.Title, err)
			continue
		}
		added = append(added, *doc)
	}

	logger.Info("Imported %d of %d feed items", len(added), len(items))
	return added, nil
}

// ImportDir walks a directory and adds one document per text file.
// Files that cannot be read are skipped with a warning; the import
// itself only fails if the directory cannot be listed.
func (s *CorpusService) ImportDir(ctx context.Context, dir string) ([]domain.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	logger.Section("Directory Import")
	logger.Debug("Scanning %s (%d entries)", dir, len(entries))

	var added []domain.Document
	for _, entry := range entries {
		if entry.IsDir() || !importExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		doc, err := s.ImportFile(ctx, path)
		if err != nil {
			logger.Warn("Skipping %s: %v", path, err)
			continue
		}
		added = append(added, *doc)
	}

	logger.Info("Imported %d files from %s", len(added), dir)
	return added, nil
}

// ImportFile imports a single text file. Re-importing the same path
// replaces the earlier document, which watch mode relies on when a
// file changes on disk.
func (s *CorpusService) ImportFile(ctx context.Context, path string) (*domain.Document, error) {
	if !importExtensions[strings.ToLower(filepath.Ext(path))] {
		return nil, fmt.Errorf("unsupported file type %q: %w", filepath.Ext(path), domain.ErrInvalidInput)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	name := filepath.Base(path)
	doc, err := s.addOrReplace(ctx, strings.TrimSuffix(name, filepath.Ext(name)), path, string(raw))
	if err != nil {
		return nil, err
	}

	logger.Debug("Imported %s as %s", path, doc.ID)
	return doc, nil
}

// addOrReplace stores a document, first removing any earlier document
// imported from the same URL. Hand-added documents, which have no URL,
// are never replaced this way. The refreshed document takes a new slot
// at the end of the insertion order.
func (s *CorpusService) addOrReplace(ctx context.Context, title, url, content string) (*domain.Document, error) {
	if url != "" {
		docs, err := s.docStore.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list documents: %w", err)
		}
		for i := range docs {
			if docs[i].URL != url {
				continue
			}
			if err := s.docStore.Delete(ctx, docs[i].ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("replace document %s: %w", docs[i].ID, err)
			}
			logger.Debug("Replacing document %s for %s", docs[i].ID, url)
			break
		}
	}
	return s.Add(ctx, title, url, content)
}
