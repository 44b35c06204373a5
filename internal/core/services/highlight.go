package services

import (
	"regexp"
	"strings"

	"github.com/plantadash/plantsearch/internal/core/domain"
)

// snippetSeparator joins the parts of a result snippet.
const snippetSeparator = " • "

// MarkHTML wraps s in a <mark> element.
func MarkHTML(s string) string {
	return "<mark>" + s + "</mark>"
}

// HighlightTokens wraps every case-insensitive occurrence of any token in
// text with <mark>. Text is not HTML-escaped; field values are trusted.
func HighlightTokens(text string, tokens []string) string {
	return HighlightFunc(text, tokens, MarkHTML)
}

// HighlightFunc is HighlightTokens with a caller-supplied marker.
// Tokens are matched literally and matches never overlap.
func HighlightFunc(text string, tokens []string, wrap func(string) string) string {
	re := highlightPattern(tokens)
	if re == nil {
		return text
	}
	return re.ReplaceAllStringFunc(text, wrap)
}

// highlightPattern builds one alternation of the escaped tokens.
// It returns nil when there is nothing to highlight.
func highlightPattern(tokens []string) *regexp.Regexp {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		parts = append(parts, regexp.QuoteMeta(t))
	}
	if len(parts) == 0 {
		return nil
	}

	re, err := regexp.Compile("(?i)(" + strings.Join(parts, "|") + ")")
	if err != nil {
		return nil
	}
	return re
}

// Snippet renders the secondary line of a result: scientific name, custom
// name (when it differs from the title), environment and ID, each
// highlighted with wrap.
func Snippet(result *domain.ScoredResult, wrap func(string) string) string {
	rec := &result.Record
	parts := make([]string, 0, 4)

	if rec.ScientificName != "" {
		parts = append(parts, "Sci: "+HighlightFunc(rec.ScientificName, result.Tokens, wrap))
	}
	if rec.CustomName != "" && rec.CustomName != rec.Title {
		parts = append(parts, "Custom: "+HighlightFunc(rec.CustomName, result.Tokens, wrap))
	}
	if rec.EnvironmentName != "" {
		parts = append(parts, "Env: "+HighlightFunc(rec.EnvironmentName, result.Tokens, wrap))
	}
	parts = append(parts, "ID: "+HighlightFunc(rec.DisplayID(), result.Tokens, wrap))

	return strings.Join(parts, snippetSeparator)
}

// HighlightedTitle renders the result title with wrap.
func HighlightedTitle(result *domain.ScoredResult, wrap func(string) string) string {
	return HighlightFunc(result.Record.Title, result.Tokens, wrap)
}
