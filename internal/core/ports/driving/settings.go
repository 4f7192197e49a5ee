package driving

import "github.com/custodia-labs/samplelist/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, defaults filled in.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses and stores a single setting by its dot-notation key.
	Set(key, value string) error

	// Keys returns the recognised setting keys in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
