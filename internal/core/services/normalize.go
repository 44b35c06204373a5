package services

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMarks is the Combining Diacritical Marks block (U+0300..U+036F).
var combiningMarks = runes.Predicate(func(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
})

// Normalize lower-cases s, decomposes it (NFD), strips combining
// diacritical marks and trims surrounding whitespace.
func Normalize(s string) string {
	lowered := strings.ToLower(s)

	// transform.Chain keeps internal state, so build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(combiningMarks))
	stripped, _, err := transform.String(t, lowered)
	if err != nil {
		return strings.TrimSpace(lowered)
	}

	return strings.TrimSpace(stripped)
}

// Tokenize normalises q and splits it on runs of whitespace.
// Empty input yields an empty, non-nil slice.
func Tokenize(q string) []string {
	fields := strings.Fields(Normalize(q))
	if fields == nil {
		return []string{}
	}
	return fields
}
