// Package watch provides directory watching for the import command's
// watch mode. Changed files are reported as paths; the caller decides
// what a change means for the corpus.
package watch

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/ansa-cli/internal/logger"
)

// DefaultSettle is how long a file must stay quiet before its change
// is reported. Editors write in bursts; without this every save would
// trigger several re-imports.
const DefaultSettle = 200 * time.Millisecond

// Watcher reports changed files under a single directory.
type Watcher struct {
	dir    string
	settle time.Duration
}

// NewWatcher creates a watcher for the given directory.
func NewWatcher(dir string) (*Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch %s: not a directory", dir)
	}

	return &Watcher{
		dir:    dir,
		settle: DefaultSettle,
	}, nil
}

// SetSettle overrides the quiet period before a change is reported.
// Values under a millisecond are ignored; the poll ticker runs at half
// the settle and needs a positive period.
func (w *Watcher) SetSettle(d time.Duration) {
	if d >= time.Millisecond {
		w.settle = d
	}
}

// Watch starts watching and returns a channel of changed file paths.
// The channel closes when the context is cancelled. Only files that
// exist after the event settle are reported, so deletions and renamed-
// away files never surface here.
func (w *Watcher) Watch(ctx context.Context) (<-chan string, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", w.dir, err)
	}

	out := make(chan string)
	go w.loop(ctx, fsw, out)
	return out, nil
}

// loop coalesces event bursts per path and emits each settled path once.
func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, out chan<- string) {
	defer close(out)
	defer fsw.Close()

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.settle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) {
				pending[event.Name] = time.Now().Add(w.settle)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("Watch error: %v", err)

		case now := <-ticker.C:
			for path, due := range pending {
				if now.Before(due) {
					continue
				}
				delete(pending, path)

				info, err := os.Stat(path)
				if err != nil || !info.Mode().IsRegular() {
					continue
				}

				select {
				case out <- path:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}
