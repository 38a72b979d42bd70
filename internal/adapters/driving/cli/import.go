package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ansa-cli/internal/adapters/driven/watch"
	"github.com/custodia-labs/ansa-cli/internal/core/domain"
)

var importWatch bool

var importCmd = &cobra.Command{
	Use:   "import [source]",
	Short: "Import documents from a feed or directory",
	Long: `Imports documents into the corpus. The source is either an RSS/Atom
feed URL or a local directory of text files (.txt, .md). Without a
source, every feed URL configured under feed.urls is imported.

Re-importing a source replaces the documents it produced earlier
instead of duplicating them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&importWatch, "watch", "w", false, "keep watching the directory and re-import files as they change")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	ctx := context.Background()

	if len(args) == 0 {
		return importConfiguredFeeds(ctx, cmd)
	}

	source := args[0]
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if importWatch {
			return errors.New("--watch applies to directory imports only")
		}
		return importFeed(ctx, cmd, source)
	}

	docs, err := corpusService.ImportDir(ctx, source)
	if err != nil {
		return fmt.Errorf("failed to import directory: %w", err)
	}
	cmd.Printf("Imported %d files from %s\n", len(docs), source)

	if !importWatch {
		return nil
	}
	return watchDirectory(cmd, source)
}

func importConfiguredFeeds(ctx context.Context, cmd *cobra.Command) error {
	if importWatch {
		return errors.New("--watch applies to directory imports only")
	}
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if len(settings.Feed.URLs) == 0 {
		return errors.New("no source given and no feed URLs configured (set feed.urls)")
	}

	for _, url := range settings.Feed.URLs {
		if err := importFeed(ctx, cmd, url); err != nil {
			return err
		}
	}
	return nil
}

func importFeed(ctx context.Context, cmd *cobra.Command, url string) error {
	docs, err := corpusService.ImportFeed(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to import feed: %w", err)
	}
	cmd.Printf("Imported %d items from %s\n", len(docs), url)
	return nil
}

// watchDirectory re-imports files as the watcher reports changes, until
// interrupted.
func watchDirectory(cmd *cobra.Command, dir string) error {
	watcher, err := watch.NewWatcher(dir)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events, err := watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	cmd.Printf("Watching %s for changes. Press Ctrl+C to stop.\n", dir)
	for path := range events {
		doc, err := corpusService.ImportFile(ctx, path)
		if err != nil {
			// Ignore files the importer does not handle, such as
			// editor temp files appearing in the watched directory.
			if errors.Is(err, domain.ErrInvalidInput) {
				continue
			}
			cmd.Printf("Failed to import %s: %v\n", path, err)
			continue
		}
		cmd.Printf("Imported %s as %s\n", path, doc.ID)
	}

	return nil
}
