package driven

import (
	"context"

	"github.com/plantadash/plantsearch/internal/core/domain"
)

// DatasetSource loads the static array of searchable records.
// Implementations perform a single read-only fetch per call; callers
// memoize the result.
type DatasetSource interface {
	// Load reads and decodes the dataset.
	Load(ctx context.Context) ([]domain.Record, error)

	// Location describes where the dataset is read from (path or URL).
	Location() string
}
