package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/plantadash/plantsearch/internal/core/domain"
	"github.com/plantadash/plantsearch/internal/core/ports/driven"
	"github.com/plantadash/plantsearch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDatasetLocation = "dataset.location"
	keyDebounceMS      = "search.debounce_ms"
	keyMinQueryLength  = "search.min_query_length"
	keyServerAddr      = "server.addr"
	keyServerSiteDir   = "server.site_dir"
	keyServerRateLimit = "server.rate_limit"
	keyServerExclude   = "server.exclude"
	keyServerMDNS      = "server.mdns"
	keyLanguage        = "locale.language"
	keyLanguages       = "locale.languages"
)

// settingKeys lists every recognised key in display order.
var settingKeys = []string{
	keyDatasetLocation,
	keyDebounceMS,
	keyMinQueryLength,
	keyServerAddr,
	keyServerSiteDir,
	keyServerRateLimit,
	keyServerExclude,
	keyServerMDNS,
	keyLanguage,
	keyLanguages,
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
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Dataset: domain.DatasetSettings{
			Location: s.getString(keyDatasetLocation, defaults.Dataset.Location),
		},
		Search: domain.SearchSettings{
			DebounceMS:     s.getInt(keyDebounceMS, defaults.Search.DebounceMS),
			MinQueryLength: s.getInt(keyMinQueryLength, defaults.Search.MinQueryLength),
		},
		Server: domain.ServerSettings{
			Addr:      s.getString(keyServerAddr, defaults.Server.Addr),
			SiteDir:   s.configStore.GetString(keyServerSiteDir), // No default - empty disables static files
			RateLimit: s.getInt(keyServerRateLimit, defaults.Server.RateLimit),
			Exclude:   s.getStringSliceOrEmpty(keyServerExclude, defaults.Server.Exclude),
			MDNS:      s.configStore.GetBool(keyServerMDNS),
		},
		Locale: domain.LocaleSettings{
			Language:  s.getString(keyLanguage, defaults.Locale.Language),
			Languages: s.getStringSlice(keyLanguages, defaults.Locale.Languages),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyDatasetLocation, settings.Dataset.Location},
		{keyDebounceMS, settings.Search.DebounceMS},
		{keyMinQueryLength, settings.Search.MinQueryLength},
		{keyServerAddr, settings.Server.Addr},
		{keyServerSiteDir, settings.Server.SiteDir},
		{keyServerRateLimit, settings.Server.RateLimit},
		{keyServerExclude, settings.Server.Exclude},
		{keyServerMDNS, settings.Server.MDNS},
		{keyLanguage, settings.Locale.Language},
		{keyLanguages, settings.Locale.Languages},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var parsed any
	switch key {
	case keyDatasetLocation, keyServerAddr, keyLanguage:
		if value == "" {
			return fmt.Errorf("%s must not be empty: %w", key, domain.ErrInvalidInput)
		}
		parsed = value
	case keyServerSiteDir:
		parsed = value
	case keyDebounceMS:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s must be a non-negative integer: %w", key, domain.ErrInvalidInput)
		}
		parsed = n
	case keyMinQueryLength, keyServerRateLimit:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer: %w", key, domain.ErrInvalidInput)
		}
		parsed = n
	case keyServerExclude:
		parsed = splitList(value)
	case keyServerMDNS:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false: %w", key, domain.ErrInvalidInput)
		}
		parsed = b
	case keyLanguages:
		langs := splitList(value)
		if len(langs) == 0 {
			return fmt.Errorf("%s must list at least one language: %w", key, domain.ErrInvalidInput)
		}
		parsed = langs
	default:
		return fmt.Errorf("%q: %w", key, domain.ErrUnknownSetting)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns all recognised config keys in display order.
func (s *SettingsService) Keys() []string {
	return append([]string(nil), settingKeys...)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
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

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}

// getStringSliceOrEmpty is getStringSlice, except that a stored empty
// list is kept rather than replaced by the default.
func (s *SettingsService) getStringSliceOrEmpty(key string, defaultVal []string) []string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetStringSlice(key)
	if val == nil {
		return []string{}
	}
	return val
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
