package driving

import "github.com/custodia-labs/corpora-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings with defaults applied for unset keys.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// Update parses, validates and persists one dotted settings key
	// (e.g. "chunking.target_words").
	Update(key, value string) error

	// Value renders one settings key for display.
	Value(key string) (string, error)

	// Defaults returns the default settings.
	Defaults() domain.AppSettings

	// Keys returns all recognised settings keys, sorted.
	Keys() []string
}
