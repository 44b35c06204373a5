package services

import (
	"strings"

	"github.com/plantadash/plantsearch/internal/core/domain"
)

// Per-token tier scores. The first tier that applies wins.
const (
	scoreExact       = 100.0
	scorePrefix      = 85.0
	scoreSubstring   = 60.0
	scoreFuzzyMax    = 50.0
	scoreSubsequence = 35.0

	// fuzzyMinRatio is the lowest similarity accepted as a typo.
	fuzzyMinRatio = 0.8

	// defaultFieldWeight applies to fields outside searchFields.
	defaultFieldWeight = 0.3
)

// weightedField pairs a searchable field with its multiplier.
type weightedField struct {
	name   domain.FieldName
	weight float64
}

// searchFields are scored for every record, in this order.
var searchFields = []weightedField{
	{domain.FieldTitle, 1.0},
	{domain.FieldCustomName, 0.95},
	{domain.FieldScientificName, 0.9},
	{domain.FieldEnvironmentName, 0.6},
	{domain.FieldIDTail, 0.55},
	{domain.FieldID, 0.45},
}

// FieldWeight returns the multiplier for a field.
func FieldWeight(field domain.FieldName) float64 {
	for _, f := range searchFields {
		if f.name == field {
			return f.weight
		}
	}
	return defaultFieldWeight
}

// FieldScore is the weighted score of one field and the tokens that matched it.
type FieldScore struct {
	Score   float64
	Matched []string
}

// ScoreField scores rawValue against every token and applies the field weight.
// An empty value or an empty token list scores zero.
func ScoreField(tokens []string, rawValue string, field domain.FieldName) FieldScore {
	if rawValue == "" {
		return FieldScore{}
	}

	value := Normalize(rawValue)
	var total float64
	var matched []string

	for _, token := range tokens {
		if token == "" {
			continue
		}
		score, ok := scoreToken(value, token)
		if !ok {
			continue
		}
		total += score
		matched = append(matched, token)
	}

	return FieldScore{
		Score:   total * FieldWeight(field),
		Matched: matched,
	}
}

// scoreToken applies the match tiers to a single normalised value.
func scoreToken(value, token string) (float64, bool) {
	switch {
	case value == token:
		return scoreExact, true
	case strings.HasPrefix(value, token):
		return scorePrefix, true
	case strings.Contains(value, token):
		return scoreSubstring, true
	}

	if ratio := similarity(value, token); ratio >= fuzzyMinRatio {
		return scoreFuzzyMax * ratio, true
	}

	if IsSubsequence(token, value) {
		return scoreSubsequence, true
	}

	return 0, false
}
