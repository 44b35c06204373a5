package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/plantadash/plantsearch/internal/core/domain"
	"github.com/plantadash/plantsearch/internal/core/ports/driving"
	"github.com/plantadash/plantsearch/internal/logger"
)

// Ensure RedirectService implements the interface.
var _ driving.RedirectService = (*RedirectService)(nil)

// RedirectService resolves IDs against the records of a search service.
type RedirectService struct {
	search driving.SearchService
}

// NewRedirectService creates a new redirect service.
func NewRedirectService(search driving.SearchService) *RedirectService {
	return &RedirectService{search: search}
}

// Resolve looks up id by full ID, ID tail, partial ID or slug.
func (s *RedirectService) Resolve(ctx context.Context, id string) (domain.Resolution, error) {
	id = strings.TrimSpace(id)
	if utf8.RuneCountInString(id) < domain.MinResolveIDLength {
		return domain.Resolution{}, fmt.Errorf(
			"id %q shorter than %d characters: %w", id, domain.MinResolveIDLength, domain.ErrInvalidInput)
	}

	records, err := s.search.Records(ctx)
	if err != nil {
		return domain.Resolution{}, fmt.Errorf("load records: %w", err)
	}

	matches := FindMatches(records, id)
	logger.Debug("Resolve %q: %d matches", id, len(matches))

	res := domain.Resolution{Query: id, Matches: matches}
	switch len(matches) {
	case 0:
		res.Kind = domain.ResolutionNone
	case 1:
		res.Kind = domain.ResolutionRedirect
	default:
		res.Kind = domain.ResolutionMultiple
	}
	return res, nil
}

// FindMatches returns the records whose ID or ID tail or slug equals
// searchID, or whose ID contains it when searchID has at least
// domain.MinPartialIDLength characters. Comparison ignores case.
func FindMatches(records []domain.Record, searchID string) []domain.Record {
	needle := strings.ToLower(searchID)
	partial := utf8.RuneCountInString(searchID) >= domain.MinPartialIDLength

	matches := make([]domain.Record, 0)
	for i := range records {
		if recordMatchesID(&records[i], needle, partial) {
			matches = append(matches, records[i])
		}
	}
	return matches
}

func recordMatchesID(r *domain.Record, needle string, partial bool) bool {
	id := strings.ToLower(r.ID)
	switch {
	case r.ID != "" && id == needle:
		return true
	case r.IDTail != "" && strings.ToLower(r.IDTail) == needle:
		return true
	case partial && r.ID != "" && strings.Contains(id, needle):
		return true
	case r.Slug != "" && strings.ToLower(r.Slug) == needle:
		return true
	}
	return false
}
