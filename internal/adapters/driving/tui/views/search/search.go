// Package search provides the search-as-you-type view for the TUI.
package search

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/plantadash/plantsearch/internal/adapters/driving/tui/components/input"
	"github.com/plantadash/plantsearch/internal/adapters/driving/tui/components/list"
	"github.com/plantadash/plantsearch/internal/adapters/driving/tui/components/status"
	"github.com/plantadash/plantsearch/internal/adapters/driving/tui/keymap"
	"github.com/plantadash/plantsearch/internal/adapters/driving/tui/messages"
	"github.com/plantadash/plantsearch/internal/adapters/driving/tui/styles"
	"github.com/plantadash/plantsearch/internal/core/domain"
	"github.com/plantadash/plantsearch/internal/core/ports/driving"
)

// Options tunes when the view searches.
type Options struct {
	// Debounce is the quiet period after the last keystroke.
	Debounce time.Duration

	// MinQueryLength is the shortest trimmed query that is searched.
	MinQueryLength int
}

// View is the search input with its live result list and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	searchService driving.SearchService
	ctx           context.Context
	opts          Options

	// generation increases on every query edit; ticks and results
	// carrying an older generation are stale.
	generation uint64

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.SearchService,
	opts Options,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if opts.Debounce < 0 {
		opts.Debounce = 0
	}
	if opts.MinQueryLength <= 0 {
		opts.MinQueryLength = domain.DefaultMinQueryLength
	}

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s),
		list:          list.NewResultList(s),
		statusbar:     status.NewBar(s, km),
		searchService: searchService,
		ctx:           context.Background(),
		opts:          opts,
		width:         80,
		height:        24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.DebounceElapsed:
		if msg.Generation != v.generation {
			return v, nil
		}
		return v, v.performSearch(v.generation, v.input.Value())

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd, _ = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input. Navigation keys drive the list;
// everything else edits the query.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.Up):
		v.list.MoveUp()
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Down):
		v.list.MoveDown()
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Select):
		result := v.list.SelectedResult()
		if result == nil {
			return v, nil
		}
		record := result.Record
		v.statusbar.SetMessage(record.URL)
		return v, func() tea.Msg {
			return messages.ResultSelected{Record: record}
		}

	case keymap.Matches(msg.String(), v.keymap.Clear):
		v.Reset()
		return v, nil
	}

	var inputCmd tea.Cmd
	var changed bool
	v.input, inputCmd, changed = v.input.Update(msg)
	if !changed {
		return v, inputCmd
	}
	return v, tea.Batch(inputCmd, v.queryChanged())
}

// queryChanged starts a new debounce period for the current query.
// Queries below the minimum length hide the results immediately.
func (v *View) queryChanged() tea.Cmd {
	v.generation++

	query := strings.TrimSpace(v.input.Value())
	if utf8.RuneCountInString(query) < v.opts.MinQueryLength {
		v.hideResults()
		return nil
	}

	gen := v.generation
	return tea.Tick(v.opts.Debounce, func(time.Time) tea.Msg {
		return messages.DebounceElapsed{Generation: gen}
	})
}

// performSearch runs the query off the update loop.
func (v *View) performSearch(gen uint64, query string) tea.Cmd {
	v.statusbar.SetState(status.StateSearching)
	return func() tea.Msg {
		if v.searchService == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}

		results, err := v.searchService.Search(v.ctx, query, domain.SearchOptions{})
		return messages.SearchCompleted{Generation: gen, Query: query, Results: results, Err: err}
	}
}

// handleSearchCompleted shows results unless a newer edit superseded them.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Generation != v.generation {
		return
	}

	if msg.Err != nil {
		v.err = msg.Err
		v.list.SetResults(nil)
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.statusbar.SetMessage("")
	v.list.SetResults(msg.Results)
	v.statusbar.SetResultCount(len(msg.Results))
	if len(msg.Results) == 0 {
		v.statusbar.SetState(status.StateNoMatches)
		return
	}
	v.statusbar.SetState(status.StateResults)
}

func (v *View) hideResults() {
	v.err = nil
	v.list.SetResults(nil)
	v.statusbar.Clear()
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections,
		v.styles.Title.Render("Plant Search"), "",
		v.input.View(), "",
	)

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if listView := v.list.View(); listView != "" {
		sections = append(sections, listView, "")
	}

	sections = append(sections, v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-8) // title, input box, status
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery replaces the query and schedules a search for it.
func (v *View) SetQuery(query string) tea.Cmd {
	v.input.SetValue(query)
	return v.queryChanged()
}

// Results returns the current search results.
func (v *View) Results() []domain.ScoredResult {
	return v.list.Results()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedResult returns the currently selected result.
func (v *View) SelectedResult() *domain.ScoredResult {
	return v.list.SelectedResult()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Generation returns the number of query edits so far.
func (v *View) Generation() uint64 {
	return v.generation
}

// SetStatus shows an informational message in the status bar.
func (v *View) SetStatus(message string) {
	v.statusbar.SetMessage(message)
}

// Reset clears the query and hides the results. Pending searches are
// invalidated.
func (v *View) Reset() {
	v.generation++
	v.input.Reset()
	v.hideResults()
}

