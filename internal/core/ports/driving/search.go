package driving

import (
	"context"

	"github.com/plantadash/plantsearch/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search ranks the dataset against the query.
	// An unavailable dataset yields an empty result, not an error.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.ScoredResult, error)

	// Records returns the loaded dataset in its original order.
	Records(ctx context.Context) ([]domain.Record, error)
}
