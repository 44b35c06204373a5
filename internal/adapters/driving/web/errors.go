// Package web provides the companion HTTP server for the static plant
// dashboard: a JSON search API, ID redirects, relative time rendering,
// language switching and, optionally, the site files themselves.
package web

import (
	"errors"
	"net/http"

	"github.com/plantadash/plantsearch/internal/core/domain"
	"github.com/plantadash/plantsearch/internal/logger"
)

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("web: search service is required")

// ErrMissingRedirectService is returned when the redirect service is not provided.
var ErrMissingRedirectService = errors.New("web: redirect service is required")

// errorResponse is the JSON body of a failed API call.
type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDatasetUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as JSON with the status it maps to.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("web: %v", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
