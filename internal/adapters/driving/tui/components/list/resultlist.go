// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/plantadash/plantsearch/internal/adapters/driving/tui/styles"
	"github.com/plantadash/plantsearch/internal/core/domain"
	"github.com/plantadash/plantsearch/internal/core/services"
)

// linesPerResult is the title line plus the snippet line.
const linesPerResult = 2

// ResultList displays search results in a navigable list. Navigation
// wraps around at both ends.
type ResultList struct {
	results  []domain.ScoredResult
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp, tea.KeyCtrlP:
			r.MoveUp()
		case tea.KeyDown, tea.KeyCtrlN:
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list. An empty list renders nothing.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return ""
	}

	visible := (r.height - 2) / linesPerResult
	if visible < 1 {
		visible = 1
	}

	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := min(start+visible, len(r.results))

	lines := make([]string, 0, (end-start)*linesPerResult+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.results))), "")
	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

// renderResult formats one result: type badge, highlighted title and score,
// then the highlighted snippet.
func (r *ResultList) renderResult(index int, result *domain.ScoredResult) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	badge := "[" + result.Record.Type.String() + "] "
	score := fmt.Sprintf("%.1f", result.Score)

	titleWidth := r.width - runewidth.StringWidth(indicator+badge) - len(score) - 2
	if titleWidth < 10 {
		titleWidth = 10
	}
	title := result.Record.Title
	if title == "" {
		title = result.Record.DisplayID()
	}
	padded := runewidth.FillRight(runewidth.Truncate(title, titleWidth, "…"), titleWidth)

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(indicator + badge + padded + "  " + score)
	} else {
		titleLine = r.styles.Normal.Render(indicator) +
			r.styles.Badge.Render(badge) +
			services.HighlightFunc(padded, result.Tokens, r.styles.Mark) +
			"  " + r.styles.Muted.Render(score)
	}

	// Snippet text is truncated before highlighting so styling escapes are never cut.
	plain := services.Snippet(result, func(s string) string { return s })
	snippetWidth := max(r.width-4, 20)
	truncated := runewidth.Truncate(plain, snippetWidth, "…")
	snippet := "    " + services.HighlightFunc(truncated, result.Tokens, r.styles.Mark)

	return titleLine + "\n" + r.styles.Muted.Render(snippet)
}

// SetResults replaces the results and selects the first one.
func (r *ResultList) SetResults(results []domain.ScoredResult) {
	r.results = results
	r.selected = 0
}

// Results returns the current results.
func (r *ResultList) Results() []domain.ScoredResult {
	return r.results
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.ScoredResult {
	if len(r.results) == 0 || r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves the selection up, from the first result to the last.
func (r *ResultList) MoveUp() {
	if len(r.results) == 0 {
		return
	}
	r.selected = (r.selected - 1 + len(r.results)) % len(r.results)
}

// MoveDown moves the selection down, from the last result to the first.
func (r *ResultList) MoveDown() {
	if len(r.results) == 0 {
		return
	}
	r.selected = (r.selected + 1) % len(r.results)
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}
