package domain

// Fixed ranking constants. They are kept as-is for compatibility with the
// published dashboard and are intentionally not configurable.
const (
	// ScoreThreshold is the exclusive lower bound a result must exceed.
	ScoreThreshold = 5.0

	// PlantBonus is added to every plant record before sorting.
	PlantBonus = 2.0

	// MaxResults is the maximum number of results returned by a search.
	MaxResults = 12
)

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of results.
	// Zero or values above MaxResults mean MaxResults.
	Limit int
}

// EffectiveLimit returns the limit clamped to (0, MaxResults].
func (o SearchOptions) EffectiveLimit() int {
	if o.Limit <= 0 || o.Limit > MaxResults {
		return MaxResults
	}
	return o.Limit
}

// FieldMatch records that a query token matched a record field.
type FieldMatch struct {
	// Field is the matched field.
	Field FieldName `json:"field"`

	// Token is the normalised query token.
	Token string `json:"token"`
}

// ScoredResult represents a single search hit.
type ScoredResult struct {
	// Record is the matched record.
	Record Record `json:"record"`

	// Score is the combined weighted score including the plant bonus.
	Score float64 `json:"score"`

	// Tokens are the normalised query tokens used for highlighting.
	Tokens []string `json:"tokens"`

	// Matches lists the field and token pairs that contributed to Score.
	Matches []FieldMatch `json:"matches,omitempty"`
}

// MatchedFields returns the distinct fields that matched, in match order.
func (r *ScoredResult) MatchedFields() []FieldName {
	seen := make(map[FieldName]bool, len(r.Matches))
	fields := make([]FieldName, 0, len(r.Matches))
	for _, m := range r.Matches {
		if seen[m.Field] {
			continue
		}
		seen[m.Field] = true
		fields = append(fields, m.Field)
	}
	return fields
}
