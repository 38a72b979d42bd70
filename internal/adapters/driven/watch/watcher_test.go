package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestNewWatcher_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	_, err := NewWatcher(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestWatcher_SetSettle(t *testing.T) {
	watcher, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	watcher.SetSettle(25 * time.Millisecond)
	assert.Equal(t, 25*time.Millisecond, watcher.settle)

	// Sub-millisecond values would give the Watch ticker a zero
	// period; they are ignored.
	watcher.SetSettle(time.Nanosecond)
	assert.Equal(t, 25*time.Millisecond, watcher.settle)

	watcher.SetSettle(0)
	assert.Equal(t, 25*time.Millisecond, watcher.settle)
}

func TestWatcher_ReportsNewFile(t *testing.T) {
	dir := t.TempDir()
	watcher, err := NewWatcher(dir)
	require.NoError(t, err)
	watcher.SetSettle(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := watcher.Watch(ctx)
	require.NoError(t, err)

	path := filepath.Join(dir, "new-note.txt")
	go func() {
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(path, []byte("content"), 0600) //nolint:errcheck
	}()

	select {
	case changed := <-changes:
		assert.Equal(t, path, changed)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for file change")
	}
}

func TestWatcher_ReportsModifiedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("initial"), 0600))

	watcher, err := NewWatcher(dir)
	require.NoError(t, err)
	watcher.SetSettle(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := watcher.Watch(ctx)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(path, []byte("modified"), 0600) //nolint:errcheck
	}()

	select {
	case changed := <-changes:
		assert.Equal(t, path, changed)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for file change")
	}
}

func TestWatcher_SkipsDeletedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transient.txt")

	watcher, err := NewWatcher(dir)
	require.NoError(t, err)
	watcher.SetSettle(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := watcher.Watch(ctx)
	require.NoError(t, err)

	// Written then removed before the settle elapses: never reported
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
	require.NoError(t, os.Remove(path))

	select {
	case changed, ok := <-changes:
		if ok {
			t.Fatalf("unexpected change for %s", changed)
		}
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_ClosesOnCancel(t *testing.T) {
	watcher, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := watcher.Watch(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-changes:
		assert.False(t, ok, "channel should be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for channel close")
	}
}