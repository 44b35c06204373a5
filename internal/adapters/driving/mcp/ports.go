package mcp

import (
	"github.com/plantadash/plantsearch/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Search ranks dataset records and exposes the dataset.
	Search driving.SearchService

	// Redirect resolves item IDs. Optional; the resolve tool fails without it.
	Redirect driving.RedirectService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
