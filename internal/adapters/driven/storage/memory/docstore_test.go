package memory

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
)

func TestNewDocumentStore(t *testing.T) {
	store := NewDocumentStore()
	require.NotNil(t, store)
	assert.Empty(t, store.docs)
}

func TestDocumentStore_Add_Success(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	now := time.Now()
	doc := &domain.Document{
		ID:      "doc-1",
		Title:   "Test Document",
		URL:     "https://example.com/doc-1",
		Content: "Some content worth indexing.",
		AddedAt: now,
	}

	err := store.Add(ctx, doc)
	require.NoError(t, err)

	saved, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", saved.ID)
	assert.Equal(t, "Test Document", saved.Title)
	assert.Equal(t, "https://example.com/doc-1", saved.URL)
	assert.Equal(t, "Some content worth indexing.", saved.Content)
	assert.Equal(t, now, saved.AddedAt)
}

func TestDocumentStore_Add_DuplicateID(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, &domain.Document{ID: "doc-1", Content: "first"}))

	err := store.Add(ctx, &domain.Document{ID: "doc-1", Content: "second"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	// Original content must survive
	saved, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "first", saved.Content)
}

func TestDocumentStore_Get_NotFound(t *testing.T) {
	store := NewDocumentStore()

	_, err := store.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_Get_ReturnsCopy(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, &domain.Document{ID: "doc-1", Title: "Original"}))

	first, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	first.Title = "Mutated"

	second, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Original", second.Title)
}

func TestDocumentStore_List_InsertionOrder(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		id := "doc-" + strconv.Itoa(i)
		require.NoError(t, store.Add(ctx, &domain.Document{ID: id, Content: id}))
	}

	docs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 5)
	for i, doc := range docs {
		assert.Equal(t, "doc-"+strconv.Itoa(i), doc.ID)
	}
}

func TestDocumentStore_List_Empty(t *testing.T) {
	store := NewDocumentStore()

	docs, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDocumentStore_List_SnapshotIsIsolated(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, &domain.Document{ID: "doc-1", Title: "Original"}))

	snapshot, err := store.List(ctx)
	require.NoError(t, err)
	snapshot[0].Title = "Mutated"

	saved, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Original", saved.Title)
}

func TestDocumentStore_Delete_Success(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, &domain.Document{ID: "doc-1"}))
	require.NoError(t, store.Add(ctx, &domain.Document{ID: "doc-2"}))
	require.NoError(t, store.Add(ctx, &domain.Document{ID: "doc-3"}))

	err := store.Delete(ctx, "doc-2")
	require.NoError(t, err)

	_, err = store.Get(ctx, "doc-2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Remaining documents keep their order
	docs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "doc-1", docs[0].ID)
	assert.Equal(t, "doc-3", docs[1].ID)
}

func TestDocumentStore_Delete_NotFound(t *testing.T) {
	store := NewDocumentStore()

	err := store.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_Replace(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, &domain.Document{ID: "old-1"}))
	require.NoError(t, store.Add(ctx, &domain.Document{ID: "old-2"}))

	err := store.Replace(ctx, []domain.Document{
		{ID: "new-1", Content: "replacement"},
	})
	require.NoError(t, err)

	docs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "new-1", docs[0].ID)

	_, err = store.Get(ctx, "old-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_Replace_Empty(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, &domain.Document{ID: "doc-1"}))
	require.NoError(t, store.Replace(ctx, nil))

	docs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDocumentStore_ConcurrentAccess(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	numGoroutines := 50

	// Concurrent adds
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			doc := &domain.Document{
				ID:      "doc-" + strconv.Itoa(id),
				Content: "Content " + strconv.Itoa(id),
			}
			_ = store.Add(ctx, doc)
		}(i)
	}
	wg.Wait()

	// Concurrent reads and deletes
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			if id%2 == 0 {
				_, _ = store.Get(ctx, "doc-"+strconv.Itoa(id))
			} else {
				_ = store.Delete(ctx, "doc-"+strconv.Itoa(id))
			}
		}(i)
	}
	wg.Wait()

	// Should not panic or deadlock
	docs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, numGoroutines/2)
}
