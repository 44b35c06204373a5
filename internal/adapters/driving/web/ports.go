package web

import (
	"github.com/plantadash/plantsearch/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the web server.
type Ports struct {
	// Search ranks dataset records.
	Search driving.SearchService

	// Redirect resolves item IDs for /go/{id} and /api/resolve.
	Redirect driving.RedirectService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Redirect == nil {
		return ErrMissingRedirectService
	}
	return nil
}
