// Package mcp provides an MCP (Model Context Protocol) server adapter for
// plantsearch. It lets AI assistants search the plant dashboard and
// resolve item IDs.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingRedirectService is returned by the resolve tool when no redirect service is set.
var ErrMissingRedirectService = errors.New("mcp: redirect service is not configured")
