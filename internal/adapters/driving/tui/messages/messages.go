// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/plantadash/plantsearch/internal/core/domain"
)

// QueryChanged is sent when the text in the search input changes.
type QueryChanged struct {
	Query string
}

// DebounceElapsed fires when the quiet period after a keystroke ends.
// Only the tick whose Generation matches the latest keystroke searches.
type DebounceElapsed struct {
	Generation uint64
}

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Generation uint64
	Query      string
	Results    []domain.ScoredResult
	Err        error
}

// ResultSelected is sent when the user opens a result.
type ResultSelected struct {
	Record domain.Record
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the search input and results view.
	ViewSearch ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
