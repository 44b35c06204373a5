package services

import (
	"sort"

	"github.com/plantadash/plantsearch/internal/core/domain"
)

// SearchRecords ranks records against a raw query with the default limit.
func SearchRecords(records []domain.Record, query string) []domain.ScoredResult {
	return Rank(records, Tokenize(query), domain.MaxResults)
}

// Rank scores every record, drops those at or below domain.ScoreThreshold,
// sorts the rest by descending score and keeps at most limit results.
// The sort is stable, so equal scores keep dataset order.
func Rank(records []domain.Record, tokens []string, limit int) []domain.ScoredResult {
	if limit <= 0 || limit > domain.MaxResults {
		limit = domain.MaxResults
	}

	results := make([]domain.ScoredResult, 0)
	for i := range records {
		scored := scoreRecord(&records[i], tokens)
		if scored.Score > domain.ScoreThreshold {
			results = append(results, scored)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results
}

// scoreRecord sums the weighted field scores of a record.
func scoreRecord(record *domain.Record, tokens []string) domain.ScoredResult {
	var total float64
	var matches []domain.FieldMatch

	for _, f := range searchFields {
		fs := ScoreField(tokens, record.Field(f.name), f.name)
		total += fs.Score
		for _, token := range fs.Matched {
			matches = append(matches, domain.FieldMatch{Field: f.name, Token: token})
		}
	}

	if record.IsPlant() {
		total += domain.PlantBonus
	}

	return domain.ScoredResult{
		Record:  *record,
		Score:   total,
		Tokens:  tokens,
		Matches: matches,
	}
}
