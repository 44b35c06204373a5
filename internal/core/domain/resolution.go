package domain

// MinResolveIDLength is the shortest ID that is looked up at all.
const MinResolveIDLength = 3

// MinPartialIDLength is the shortest ID allowed to match as a substring of a full ID.
const MinPartialIDLength = 6

// ResolutionKind describes how an ID lookup ended.
type ResolutionKind string

// Resolution outcomes.
const (
	// ResolutionRedirect means exactly one record matched.
	ResolutionRedirect ResolutionKind = "redirect"

	// ResolutionMultiple means several records matched and the user must choose.
	ResolutionMultiple ResolutionKind = "multiple"

	// ResolutionNone means nothing matched.
	ResolutionNone ResolutionKind = "none"
)

// Resolution is the result of resolving an item ID.
type Resolution struct {
	// Kind is the outcome.
	Kind ResolutionKind `json:"kind"`

	// Query is the ID that was looked up.
	Query string `json:"query"`

	// Matches are the matching records in dataset order.
	Matches []Record `json:"matches"`
}

// Target returns the URL to redirect to, or an empty string unless Kind is ResolutionRedirect.
func (r Resolution) Target() string {
	if r.Kind != ResolutionRedirect || len(r.Matches) == 0 {
		return ""
	}
	return r.Matches[0].URL
}
