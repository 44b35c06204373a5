package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plantadash/plantsearch/internal/adapters/driving/tui/keymap"
	"github.com/plantadash/plantsearch/internal/adapters/driving/tui/messages"
	"github.com/plantadash/plantsearch/internal/adapters/driving/tui/styles"
	"github.com/plantadash/plantsearch/internal/adapters/driving/tui/views/search"
	"github.com/plantadash/plantsearch/internal/core/domain"
	"github.com/plantadash/plantsearch/internal/logger"
)

// Options configures the app. Zero values fall back to the settings
// service, then to built-in defaults.
type Options struct {
	Debounce       time.Duration
	MinQueryLength int

	// Query pre-fills the search box.
	Query string
}

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	searchView  *search.View
	currentView messages.ViewType

	// selection is the record opened with Enter, if any.
	selection *domain.Record

	initialQuery string

	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, opts Options) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	opts = resolveOptions(ports, opts)

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	searchView := search.NewView(s, km, ports.Search, search.Options{
		Debounce:       opts.Debounce,
		MinQueryLength: opts.MinQueryLength,
	})

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		help:         help.New(),
		searchView:   searchView,
		currentView:  messages.ViewSearch,
		initialQuery: opts.Query,
	}, nil
}

// resolveOptions fills zero options from settings, then defaults.
func resolveOptions(ports *Ports, opts Options) Options {
	if ports.Settings != nil && (opts.Debounce == 0 || opts.MinQueryLength == 0) {
		settings, err := ports.Settings.Get()
		if err != nil {
			logger.Warn("tui: reading settings: %v", err)
		} else {
			if opts.Debounce == 0 {
				opts.Debounce = time.Duration(settings.Search.DebounceMS) * time.Millisecond
			}
			if opts.MinQueryLength == 0 {
				opts.MinQueryLength = settings.Search.MinQueryLength
			}
		}
	}
	if opts.Debounce == 0 {
		opts.Debounce = domain.DefaultDebounceMS * time.Millisecond
	}
	if opts.MinQueryLength == 0 {
		opts.MinQueryLength = domain.DefaultMinQueryLength
	}
	return opts
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("plantsearch"),
		a.searchView.Init(),
	}
	if a.initialQuery != "" {
		cmds = append(cmds, a.searchView.SetQuery(a.initialQuery))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, tea.Quit
		}
		if keymap.Matches(msg.String(), a.keymap.Help) {
			a.toggleHelp()
			return a, nil
		}
		if a.currentView == messages.ViewHelp {
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewSearch
			}
			return a, nil
		}
		// Esc on an empty search box leaves the app.
		if msg.Type == tea.KeyEsc && a.searchView.Query() == "" && len(a.searchView.Results()) == 0 {
			return a, tea.Quit
		}
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.ResultSelected:
		record := msg.Record
		a.selection = &record
		return a, tea.Quit

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	a.searchView, cmd = a.searchView.Update(msg)
	a.err = a.searchView.Err()
	return a, cmd
}

func (a *App) toggleHelp() {
	if a.currentView == messages.ViewHelp {
		a.currentView = messages.ViewSearch
		return
	}
	a.currentView = messages.ViewHelp
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.currentView == messages.ViewHelp {
		return a.viewHelp()
	}
	return a.searchView.View()
}

func (a *App) viewHelp() string {
	a.help.ShowAll = true
	return a.styles.Title.Render("Help") + "\n\n" +
		a.styles.Normal.Render("Type to search plants and environments. Results update as you type.") + "\n\n" +
		a.help.View(a.keymap) + "\n\n" +
		a.styles.Muted.Render("[esc] back to search")
}

// Run starts the TUI application and returns the selected record, if any.
func (a *App) Run() (*domain.Record, error) {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	return a.selection, nil
}

// Selection returns the record opened with Enter, or nil.
func (a *App) Selection() *domain.Record {
	return a.selection
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.searchView.Query()
}

// Results returns the current search results.
func (a *App) Results() []domain.ScoredResult {
	return a.searchView.Results()
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.searchView.SelectedIndex()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.searchView.SetDimensions(width, height)
}
