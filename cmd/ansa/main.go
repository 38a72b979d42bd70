// Command ansa answers questions from a local document corpus. It wires
// the storage, feed, and generation adapters into the core services and
// hands them to the CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/ansa-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ansa-cli/internal/adapters/driven/feed"
	"github.com/custodia-labs/ansa-cli/internal/adapters/driven/generation"
	"github.com/custodia-labs/ansa-cli/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/ansa-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ansa-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/ansa-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/ansa-cli/internal/core/domain"
	"github.com/custodia-labs/ansa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ansa-cli/internal/core/services"
	"github.com/custodia-labs/ansa-cli/internal/logger"
	"github.com/custodia-labs/ansa-cli/internal/retrieval"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Secrets such as OPENAI_API_KEY may come from a .env file.
	_ = godotenv.Load()

	// Cobra parses flags inside Execute, after wiring has already run.
	// Scan the raw args so degradation warnings emitted while wiring
	// honour --verbose as well.
	logger.SetVerbose(verboseRequested(os.Args[1:]))

	cleanup, err := wire()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = cli.Execute()
	cleanup()
	if err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}

// verboseRequested reports whether the verbose flag appears in the raw
// arguments, before any "--" terminator.
func verboseRequested(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "-v", "--verbose":
			return true
		}
	}
	return false
}

// wire assembles the adapters and services and injects them into the
// CLI. The returned cleanup releases resources held open across command
// execution.
func wire() (func(), error) {
	cli.SetVersion(version)

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return nil, fmt.Errorf("init config store: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	cli.SetSettingsService(settingsService)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	cleanup := func() {}
	var docStore driven.DocumentStore
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("SQLite store unavailable, corpus will not persist: %v", err)
		docStore = memory.NewDocumentStore()
	} else {
		cleanup = func() {
			_ = store.Close()
		}
		docStore = store.DocumentStore()
	}

	fetcher := feed.NewFetcher(feed.Config{
		Timeout: time.Duration(settings.Feed.TimeoutSecs) * time.Second,
	})
	cli.SetFeedFetcher(fetcher)

	generator := buildGenerator(settings)
	cli.SetGenerationService(generator)

	askService := services.NewAskService(docStore, generator)
	askService.SetChunker(retrieval.NewChunker(
		retrieval.WithMaxLen(settings.Chunk.MaxLen),
		retrieval.WithOverlap(settings.Chunk.Overlap),
	))
	askService.SetBudget(retrieval.ContextBudget{
		PerItemChars: settings.Budget.ItemChars,
		TotalBytes:   settings.Budget.TotalBytes,
	})
	askService.SetTopK(settings.Ask.TopK)
	cli.SetAskService(askService)

	cli.SetCorpusService(services.NewCorpusService(docStore, fetcher))

	return cleanup, nil
}

// buildGenerator assembles the generation backend selected by
// generation.mode. A nil return means answers fall back to the
// extractive path, either because generation is off or because the
// configured backend cannot be built.
func buildGenerator(settings *domain.Settings) driven.GenerationService {
	timeout := time.Duration(settings.Generation.TimeoutSecs) * time.Second

	switch settings.Generation.Mode {
	case domain.GenerationLLM:
		client, err := openai.NewClient(openai.Config{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			BaseURL: settings.Generation.BaseURL,
			Model:   settings.Generation.Model,
			Timeout: timeout,
		})
		if err != nil {
			logger.Warn("Generation disabled: %v", err)
			return nil
		}

		answerService := services.NewAnswerService(client)
		if promptStore, err := file.NewPromptStore(""); err == nil {
			answerService.SetPromptStore(promptStore)
		}
		return answerService

	case domain.GenerationRemote:
		client, err := generation.NewClient(generation.Config{
			URL:     settings.Generation.URL,
			Timeout: timeout,
		})
		if err != nil {
			logger.Warn("Generation disabled: %v", err)
			return nil
		}
		return client

	default:
		return nil
	}
}
