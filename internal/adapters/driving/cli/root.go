// Package cli implements the ansa command-line interface. Commands
// hold no business logic: they parse flags, call the driving services
// injected by the composition root, and format the results.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ansa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ansa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ansa-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by the composition root before Execute runs.
// Commands guard against nil so a partially wired binary fails with a
// clear message instead of a panic.
var (
	askService        driving.AskService
	corpusService     driving.CorpusService
	settingsService   driving.SettingsService
	generationService driven.GenerationService
	feedFetcher       driven.FeedFetcher
)

// verboseMode enables pipeline diagnostics on stderr.
var verboseMode bool

var rootCmd = &cobra.Command{
	Use:   "ansa",
	Short: "Ask questions against a local document corpus",
	Long: `Ansa keeps a small corpus of documents on your machine and answers
questions against it. Documents come from files, directories, or RSS/Atom
feeds; answers come from TF-IDF retrieval over the corpus, optionally
refined by a generation backend.

Examples:
  # Import a feed and a notes directory
  ansa import https://example.com/feed.xml
  ansa import ~/notes

  # Ask a question
  ansa ask "When does morning sickness usually fade?"

  # Rank matching passages without answering
  ansa search "morning sickness" --limit 5

  # Run the HTTP API
  ansa serve`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseMode)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false, "enable verbose pipeline logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetAskService injects the question answering service.
func SetAskService(s driving.AskService) {
	askService = s
}

// SetCorpusService injects the corpus management service.
func SetCorpusService(s driving.CorpusService) {
	corpusService = s
}

// SetSettingsService injects the settings service.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// SetGenerationService injects the generation backend used by serve.
func SetGenerationService(s driven.GenerationService) {
	generationService = s
}

// SetFeedFetcher injects the feed fetcher used by serve.
func SetFeedFetcher(f driven.FeedFetcher) {
	feedFetcher = f
}
