// Package tui provides the interactive search-as-you-type terminal UI.
// It is a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/plantadash/plantsearch/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Search runs queries against the loaded dataset.
	Search driving.SearchService

	// Settings supplies the debounce delay and minimum query length.
	// Optional; built-in defaults apply without it.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(search driving.SearchService, settings driving.SettingsService) *Ports {
	return &Ports{
		Search:   search,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
