package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/plantadash/plantsearch/internal/core/domain"
	"github.com/plantadash/plantsearch/internal/core/services"
)

// uriScheme is the URI scheme for plantsearch resources.
const uriScheme = "plantsearch://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "records",
		Name:        "records",
		Description: "Every plant and environment in the dashboard dataset",
		MIMEType:    "application/json",
	}, s.handleRecordsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "records/{id}",
		Name:        "record",
		Description: "Records matching an ID, ID tail or slug",
		MIMEType:    "application/json",
	}, s.handleRecordResource)
}

// handleRecordsResource returns the whole dataset.
func (s *Server) handleRecordsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Search.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}

	return jsonResult(req.Params.URI, records)
}

// handleRecordResource returns the records matching one ID.
func (s *Server) handleRecordResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractRecordID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	records, err := s.ports.Search.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}

	matches := services.FindMatches(records, id)
	if len(matches) == 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return jsonResult(req.Params.URI, matches)
}

func jsonResult(uri string, records []domain.Record) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling records: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRecordID extracts the ID from a URI like plantsearch://records/{id}.
func extractRecordID(uri string) string {
	const prefix = uriScheme + "records/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
