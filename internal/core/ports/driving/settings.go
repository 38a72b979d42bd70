package driving

import "github.com/custodia-labs/ansa-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, with defaults
	// filled in for unset keys.
	Get() (*domain.Settings, error)

	// Save persists application settings.
	Save(settings *domain.Settings) error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings

	// ConfigPath returns the backing configuration file path.
	ConfigPath() string
}
