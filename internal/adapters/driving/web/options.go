package web

import (
	"net"
	"time"

	"github.com/plantadash/plantsearch/internal/core/domain"
)

// Options configures the server.
type Options struct {
	// SiteDir is the static site to serve. Empty disables static files.
	SiteDir string

	// Exclude lists doublestar patterns of site files that answer 404.
	Exclude []string

	// RateLimit is the allowed /api requests per second. Zero disables limiting.
	RateLimit int

	// MinQueryLength is the shortest trimmed query that is searched.
	MinQueryLength int

	// Language is the default language for relative times.
	Language string

	// Languages are the languages the site is published in.
	Languages []string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// OnReady, if set, is called by Run with the bound listen address.
	OnReady func(addr net.Addr)
}

// OptionsFromSettings builds Options from application settings.
func OptionsFromSettings(s *domain.AppSettings) Options {
	return Options{
		SiteDir:        s.Server.SiteDir,
		Exclude:        s.Server.Exclude,
		RateLimit:      s.Server.RateLimit,
		MinQueryLength: s.Search.MinQueryLength,
		Language:       s.Locale.Language,
		Languages:      s.Locale.Languages,
	}
}

func (o *Options) applyDefaults() {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Language == "" {
		o.Language = domain.DefaultLanguage
	}
	if len(o.Languages) == 0 {
		o.Languages = []string{domain.DefaultLanguage}
	}
	if o.MinQueryLength <= 0 {
		o.MinQueryLength = domain.DefaultMinQueryLength
	}
}
