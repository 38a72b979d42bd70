package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/ansa-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ansa-cli/internal/core/domain"
	"github.com/custodia-labs/ansa-cli/internal/core/services"
)

// setupTestServices wires the commands to real services over in-memory
// stores seeded with a small corpus. The returned cleanup restores
// whatever was installed before.
func setupTestServices() func() {
	prevAsk := askService
	prevCorpus := corpusService
	prevSettings := settingsService

	store := memory.NewDocumentStore()
	ctx := context.Background()
	docs := []domain.Document{
		{
			ID:      "doc-1",
			Title:   "Test Document 1",
			URL:     "https://example.com/doc-1",
			Content: "This is the content of the test document. Morning sickness is nausea during pregnancy. It usually fades by week fourteen.",
			AddedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:      "doc-2",
			Title:   "Test Document 2",
			Content: "Folic acid supplements are recommended during early pregnancy.",
			AddedAt: time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC),
		},
	}
	for i := range docs {
		_ = store.Add(ctx, &docs[i]) //nolint:errcheck // seeded IDs are unique
	}

	askService = services.NewAskService(store, nil)
	corpusService = services.NewCorpusService(store, nil)
	settingsService = services.NewSettingsService(memory.NewConfigStore())

	return func() {
		askService = prevAsk
		corpusService = prevCorpus
		settingsService = prevSettings
	}
}
