package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure chunking, budgeting, generation, server, and feed
settings. Settings live in a TOML file under the ansa config directory;
unset keys fall back to built-in defaults.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a single setting",
	Long: `Set one setting by key and persist it.

Available keys:
  chunk.max_len            passage length target in runes
  chunk.overlap            trailing runes carried between passages
  budget.item_chars        per-item context truncation in runes
  budget.total_bytes       ceiling on total serialized context size
  ask.top_k                ranked passages offered as context
  generation.mode          off, llm, or remote
  generation.model         completion model name (llm mode)
  generation.base_url      completion API endpoint (llm mode)
  generation.url           remote answer endpoint (remote mode)
  generation.timeout_secs  generation request timeout in seconds
  server.addr              HTTP API listen address
  feed.urls                comma-separated default feed URLs
  feed.timeout_secs        feed fetch timeout in seconds`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Chunking]")
	cmd.Printf("  Max length: %d runes\n", settings.Chunk.MaxLen)
	cmd.Printf("  Overlap: %d runes\n", settings.Chunk.Overlap)
	cmd.Println()

	cmd.Println("[Budget]")
	cmd.Printf("  Per item: %d chars\n", settings.Budget.ItemChars)
	cmd.Printf("  Total: %d bytes\n", settings.Budget.TotalBytes)
	cmd.Println()

	cmd.Println("[Ask]")
	cmd.Printf("  Top K: %d\n", settings.Ask.TopK)
	cmd.Println()

	cmd.Println("[Generation]")
	cmd.Printf("  Mode: %s\n", settings.Generation.Mode.Description())
	switch settings.Generation.Mode {
	case domain.GenerationLLM:
		cmd.Printf("  Model: %s\n", settings.Generation.Model)
		cmd.Printf("  Base URL: %s\n", settings.Generation.BaseURL)
	case domain.GenerationRemote:
		cmd.Printf("  Endpoint: %s\n", settings.Generation.URL)
	case domain.GenerationOff:
	}
	cmd.Printf("  Timeout: %ds\n", settings.Generation.TimeoutSecs)
	if settings.Generation.Mode != domain.GenerationOff {
		status := "configured"
		if !settings.Generation.IsConfigured() {
			status = "not configured"
		}
		cmd.Printf("  Status: %s\n", status)
	}
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Addr: %s\n", settings.Server.Addr)
	cmd.Println()

	cmd.Println("[Feed]")
	if len(settings.Feed.URLs) == 0 {
		cmd.Println("  URLs: (none)")
	} else {
		cmd.Println("  URLs:")
		for _, url := range settings.Feed.URLs {
			cmd.Printf("    %s\n", url)
		}
	}
	cmd.Printf("  Timeout: %ds\n", settings.Feed.TimeoutSecs)
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if err := applySetting(settings, key, value); err != nil {
		return err
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

// applySetting mutates one settings field addressed by its config key.
func applySetting(settings *domain.Settings, key, value string) error {
	switch key {
	case "chunk.max_len":
		return setPositiveInt(&settings.Chunk.MaxLen, key, value)
	case "chunk.overlap":
		return setPositiveInt(&settings.Chunk.Overlap, key, value)
	case "budget.item_chars":
		return setPositiveInt(&settings.Budget.ItemChars, key, value)
	case "budget.total_bytes":
		return setPositiveInt(&settings.Budget.TotalBytes, key, value)
	case "ask.top_k":
		return setPositiveInt(&settings.Ask.TopK, key, value)
	case "generation.mode":
		mode := domain.GenerationMode(value)
		if !mode.IsValid() {
			return fmt.Errorf("invalid generation mode %q (valid: off, llm, remote)", value)
		}
		settings.Generation.Mode = mode
	case "generation.model":
		settings.Generation.Model = value
	case "generation.base_url":
		settings.Generation.BaseURL = value
	case "generation.url":
		settings.Generation.URL = value
	case "generation.timeout_secs":
		return setPositiveInt(&settings.Generation.TimeoutSecs, key, value)
	case "server.addr":
		settings.Server.Addr = value
	case "feed.urls":
		settings.Feed.URLs = splitURLList(value)
	case "feed.timeout_secs":
		return setPositiveInt(&settings.Feed.TimeoutSecs, key, value)
	default:
		return fmt.Errorf("unknown setting %q (see 'ansa settings set --help')", key)
	}
	return nil
}

func setPositiveInt(target *int, key, value string) error {
	val, err := strconv.Atoi(value)
	if err != nil || val <= 0 {
		return fmt.Errorf("%s must be a positive integer, got %q", key, value)
	}
	*target = val
	return nil
}

func splitURLList(value string) []string {
	var urls []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}
