package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/plantadash/plantsearch/internal/core/domain"
	"github.com/plantadash/plantsearch/internal/core/services"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"plant, environment, scientific name or ID to look for"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default and maximum 12)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Type    string   `json:"type"`
	URL     string   `json:"url"`
	Score   float64  `json:"score"`
	Snippet string   `json:"snippet"`
	Fields  []string `json:"matched_fields,omitempty"`
}

// ResolveInput is the input schema for the resolve tool.
type ResolveInput struct {
	ID string `json:"id" jsonschema:"full item ID, ID tail, partial ID (6+ characters) or slug"`
}

// ResolveOutput is the output schema for the resolve tool.
type ResolveOutput struct {
	Kind    string         `json:"kind"`
	Target  string         `json:"target,omitempty"`
	Matches []RecordOutput `json:"matches"`
}

// RecordOutput is a compact view of a dataset record.
type RecordOutput struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Fuzzy search across the plants and environments of the dashboard",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve",
		Description: "Resolve an item ID to its dashboard page",
	}, s.handleResolve)
}

// plain leaves highlighted text unmarked.
func plain(s string) string { return s }

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{Limit: input.Limit}
	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		rec := &results[i].Record
		fields := results[i].MatchedFields()
		names := make([]string, len(fields))
		for j, f := range fields {
			names[j] = f.String()
		}

		output.Results[i] = SearchResultOutput{
			ID:      rec.ID,
			Title:   rec.Title,
			Type:    rec.Type.String(),
			URL:     rec.URL,
			Score:   results[i].Score,
			Snippet: services.Snippet(&results[i], plain),
			Fields:  names,
		}
	}

	return nil, output, nil
}

// handleResolve handles the resolve tool invocation.
func (s *Server) handleResolve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResolveInput,
) (*mcp.CallToolResult, ResolveOutput, error) {
	if s.ports.Redirect == nil {
		return nil, ResolveOutput{}, ErrMissingRedirectService
	}

	res, err := s.ports.Redirect.Resolve(ctx, input.ID)
	if err != nil {
		return nil, ResolveOutput{}, err
	}

	output := ResolveOutput{
		Kind:    string(res.Kind),
		Target:  res.Target(),
		Matches: make([]RecordOutput, len(res.Matches)),
	}
	for i := range res.Matches {
		output.Matches[i] = toRecordOutput(&res.Matches[i])
	}

	return nil, output, nil
}

func toRecordOutput(r *domain.Record) RecordOutput {
	return RecordOutput{
		ID:    r.ID,
		Title: r.Title,
		Type:  r.Type.String(),
		URL:   r.URL,
	}
}
