package driving

import (
	"context"

	"github.com/plantadash/plantsearch/internal/core/domain"
)

// RedirectService resolves item IDs, tails and slugs to pages.
type RedirectService interface {
	// Resolve looks up id. IDs shorter than domain.MinResolveIDLength
	// return domain.ErrInvalidInput.
	Resolve(ctx context.Context, id string) (domain.Resolution, error)
}
