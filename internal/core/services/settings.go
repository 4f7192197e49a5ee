package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/samplelist/internal/core/domain"
	"github.com/custodia-labs/samplelist/internal/core/ports/driven"
	"github.com/custodia-labs/samplelist/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyCatalogURL     = "catalog.url"
	keyCatalogRate    = "catalog.rate_per_second"
	keyCatalogTimeout = "catalog.timeout_seconds"
	keyOutputDir      = "output.dir"
	keyOutputCreate   = "output.create_dir"
	keyRegistryPath   = "registry.path"
	keyHistoryEnabled = "history.enabled"
)

// settingKeys lists every recognised key in display order.
var settingKeys = []string{
	keyCatalogURL,
	keyCatalogRate,
	keyCatalogTimeout,
	keyOutputDir,
	keyOutputCreate,
	keyRegistryPath,
	keyHistoryEnabled,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Stored values override defaults; absent keys fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.AppSettings{
		Catalog: domain.CatalogSettings{
			URL:            s.getString(keyCatalogURL, defaults.Catalog.URL),
			RatePerSecond:  s.getFloat(keyCatalogRate, defaults.Catalog.RatePerSecond),
			TimeoutSeconds: s.getInt(keyCatalogTimeout, defaults.Catalog.TimeoutSeconds),
		},
		Output: domain.OutputSettings{
			Dir:       s.getString(keyOutputDir, defaults.Output.Dir),
			CreateDir: s.getBool(keyOutputCreate, defaults.Output.CreateDir),
		},
		Registry: domain.RegistrySettings{
			Path: s.getString(keyRegistryPath, defaults.Registry.Path),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	values := []struct {
		key   string
		value any
	}{
		{keyCatalogURL, settings.Catalog.URL},
		{keyCatalogRate, settings.Catalog.RatePerSecond},
		{keyCatalogTimeout, settings.Catalog.TimeoutSeconds},
		{keyOutputDir, settings.Output.Dir},
		{keyOutputCreate, settings.Output.CreateDir},
		{keyRegistryPath, settings.Registry.Path},
		{keyHistoryEnabled, settings.History.Enabled},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value according to the key's type and persists it.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	parsed, err := parseSetting(key, value)
	if err != nil {
		return err
	}
	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func parseSetting(key, value string) (any, error) {
	switch key {
	case keyCatalogURL, keyOutputDir, keyRegistryPath:
		if value == "" {
			return nil, fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, key)
		}
		return value, nil
	case keyCatalogRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return nil, fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		return f, nil
	case keyCatalogTimeout:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, key)
		}
		return n, nil
	case keyOutputCreate, keyHistoryEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
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
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
