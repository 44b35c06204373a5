package domain

// Default settings values.
const (
	DefaultDatasetLocation = "search-data.json"
	DefaultDebounceMS      = 160
	DefaultMinQueryLength  = 2
	DefaultServerAddr      = ":8080"
	DefaultRateLimit       = 20
	DefaultLanguage        = "en"
	DefaultExclude         = "**/.*"
)

// DatasetSettings holds where the search dataset is loaded from.
type DatasetSettings struct {
	// Location is a file path or an http(s) URL.
	Location string
}

// SearchSettings holds interactive search behaviour.
type SearchSettings struct {
	// DebounceMS is the quiet period after the last keystroke before searching.
	DebounceMS int

	// MinQueryLength is the shortest trimmed query that triggers a search.
	MinQueryLength int
}

// ServerSettings holds the companion HTTP server configuration.
type ServerSettings struct {
	// Addr is the listen address.
	Addr string

	// SiteDir is the static site directory to serve, if any.
	SiteDir string

	// RateLimit is the allowed API requests per second.
	RateLimit int

	// Exclude lists glob patterns of site files that are never served.
	Exclude []string

	// MDNS advertises the server on the local network.
	MDNS bool
}

// LocaleSettings holds language configuration.
type LocaleSettings struct {
	// Language is the current page language.
	Language string

	// Languages are all languages the site is published in.
	Languages []string
}

// AppSettings aggregates all application settings.
type AppSettings struct {
	Dataset DatasetSettings
	Search  SearchSettings
	Server  ServerSettings
	Locale  LocaleSettings
}

// DefaultAppSettings returns settings with default values.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Dataset: DatasetSettings{
			Location: DefaultDatasetLocation,
		},
		Search: SearchSettings{
			DebounceMS:     DefaultDebounceMS,
			MinQueryLength: DefaultMinQueryLength,
		},
		Server: ServerSettings{
			Addr:      DefaultServerAddr,
			RateLimit: DefaultRateLimit,
			Exclude:   []string{DefaultExclude},
		},
		Locale: LocaleSettings{
			Language:  DefaultLanguage,
			Languages: []string{DefaultLanguage},
		},
	}
}
