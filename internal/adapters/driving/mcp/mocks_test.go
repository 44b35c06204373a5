package mcp

import (
	"context"

	"github.com/plantadash/plantsearch/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.ScoredResult
	records []domain.Record
	err     error

	lastQuery string
	lastOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) ([]domain.ScoredResult, error) {
	m.lastQuery = query
	m.lastOpts = opts
	return m.results, m.err
}

func (m *mockSearchService) Records(_ context.Context) ([]domain.Record, error) {
	return m.records, m.err
}

// mockRedirectService is a mock implementation of driving.RedirectService.
type mockRedirectService struct {
	resolution domain.Resolution
	err        error
}

func (m *mockRedirectService) Resolve(_ context.Context, _ string) (domain.Resolution, error) {
	return m.resolution, m.err
}
