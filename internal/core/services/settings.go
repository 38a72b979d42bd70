package services

import (
	"fmt"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
	"github.com/custodia-labs/ansa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ansa-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyChunkMaxLen      = "chunk.max_len"
	keyChunkOverlap     = "chunk.overlap"
	keyBudgetItemChars  = "budget.item_chars"
	keyBudgetTotalBytes = "budget.total_bytes"
	keyAskTopK          = "ask.top_k"
	keyGenMode          = "generation.mode"
	keyGenModel         = "generation.model"
	keyGenBaseURL       = "generation.base_url"
	keyGenURL           = "generation.url"
	keyGenTimeoutSecs   = "generation.timeout_secs"
	keyServerAddr       = "server.addr"
	keyFeedURLs         = "feed.urls"
	keyFeedTimeoutSecs  = "feed.timeout_secs"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, with defaults filled in
// for unset keys.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Chunk: domain.ChunkSettings{
			MaxLen:  s.getInt(keyChunkMaxLen, defaults.Chunk.MaxLen),
			Overlap: s.getInt(keyChunkOverlap, defaults.Chunk.Overlap),
		},
		Budget: domain.BudgetSettings{
			ItemChars:  s.getInt(keyBudgetItemChars, defaults.Budget.ItemChars),
			TotalBytes: s.getInt(keyBudgetTotalBytes, defaults.Budget.TotalBytes),
		},
		Ask: domain.AskSettings{
			TopK: s.getInt(keyAskTopK, defaults.Ask.TopK),
		},
		Generation: domain.GenerationSettings{
			Mode:        s.getMode(defaults.Generation.Mode),
			Model:       s.getString(keyGenModel, defaults.Generation.Model),
			BaseURL:     s.configStore.GetString(keyGenBaseURL),
			URL:         s.configStore.GetString(keyGenURL),
			TimeoutSecs: s.getInt(keyGenTimeoutSecs, defaults.Generation.TimeoutSecs),
		},
		Server: domain.ServerSettings{
			Addr: s.getString(keyServerAddr, defaults.Server.Addr),
		},
		Feed: domain.FeedSettings{
			URLs:        s.configStore.GetStringSlice(keyFeedURLs),
			TimeoutSecs: s.getInt(keyFeedTimeoutSecs, defaults.Feed.TimeoutSecs),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if !settings.Generation.Mode.IsValid() {
		return fmt.Errorf("invalid generation mode: %s", settings.Generation.Mode)
	}

	pairs := []struct {
		key   string
		value any
	}{
		{keyChunkMaxLen, settings.Chunk.MaxLen},
		{keyChunkOverlap, settings.Chunk.Overlap},
		{keyBudgetItemChars, settings.Budget.ItemChars},
		{keyBudgetTotalBytes, settings.Budget.TotalBytes},
		{keyAskTopK, settings.Ask.TopK},
		{keyGenMode, settings.Generation.Mode.String()},
		{keyGenModel, settings.Generation.Model},
		{keyGenBaseURL, settings.Generation.BaseURL},
		{keyGenURL, settings.Generation.URL},
		{keyGenTimeoutSecs, settings.Generation.TimeoutSecs},
		{keyServerAddr, settings.Server.Addr},
		{keyFeedURLs, settings.Feed.URLs},
		{keyFeedTimeoutSecs, settings.Feed.TimeoutSecs},
	}

	for _, p := range pairs {
		if err := s.configStore.Set(p.key, p.value); err != nil {
			return fmt.Errorf("save %s: %w", p.key, err)
		}
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// ConfigPath returns the backing configuration file path.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getMode(defaultVal domain.GenerationMode) domain.GenerationMode {
	val := s.configStore.GetString(keyGenMode)
	if val == "" {
		return defaultVal
	}
	mode := domain.GenerationMode(val)
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}
