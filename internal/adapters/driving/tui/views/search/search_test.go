package search

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantadash/plantsearch/internal/adapters/driving/tui/components/status"
	"github.com/plantadash/plantsearch/internal/adapters/driving/tui/messages"
	"github.com/plantadash/plantsearch/internal/core/domain"
	"github.com/plantadash/plantsearch/internal/core/services"
)

// mockSearchService counts calls and returns canned results.
type mockSearchService struct {
	calls   atomic.Int32
	results []domain.ScoredResult
	err     error
}

func (m *mockSearchService) Search(context.Context, string, domain.SearchOptions) ([]domain.ScoredResult, error) {
	m.calls.Add(1)
	return m.results, m.err
}

func (m *mockSearchService) Records(context.Context) ([]domain.Record, error) {
	return nil, m.err
}

func testRecords() []domain.Record {
	return []domain.Record{
		{ID: "PLANT-1-AAA111", IDTail: "aaa111", Title: "Aloe Vera", Type: domain.RecordTypePlant, URL: "plants/aaa111.html"},
		{ID: "PLANT-2-BBB222", IDTail: "bbb222", Title: "Aloe Aristata", Type: domain.RecordTypePlant, URL: "plants/bbb222.html"},
		{ID: "ENV-PORCH", IDTail: "porch", Title: "Porch", Type: domain.RecordTypeEnvironment, URL: "environments/porch.html"},
	}
}

func newTestView() *View {
	v := NewView(nil, nil, services.NewSessionWithRecords(testRecords()), Options{})
	v.SetDimensions(100, 30)
	return v
}

// runSearch fires the pending debounce tick and feeds the result back.
func runSearch(t *testing.T, v *View) {
	t.Helper()
	v, cmd := v.Update(messages.DebounceElapsed{Generation: v.Generation()})
	require.NotNil(t, cmd)
	v.Update(cmd())
}

func typeText(v *View, text string) tea.Cmd {
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return cmd
}

func TestNewView_Defaults(t *testing.T) {
	v := NewView(nil, nil, nil, Options{Debounce: -time.Second})

	require.NotNil(t, v)
	assert.Equal(t, time.Duration(0), v.opts.Debounce)
	assert.Equal(t, 2, v.opts.MinQueryLength)
	assert.False(t, v.Ready())
	assert.Equal(t, "Initialising...", v.View())
}

func TestView_Init(t *testing.T) {
	assert.NotNil(t, newTestView().Init())
}

func TestView_WindowSize(t *testing.T) {
	v := NewView(nil, nil, nil, Options{})

	v.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.True(t, v.Ready())
	assert.Equal(t, 120, v.Width())
	assert.Equal(t, 40, v.Height())
}

func TestView_TypingSchedulesDebouncedSearch(t *testing.T) {
	v := newTestView()

	cmd := typeText(v, "al")

	assert.NotNil(t, cmd)
	assert.Equal(t, uint64(1), v.Generation())
	assert.Empty(t, v.Results(), "no search before the quiet period ends")

	runSearch(t, v)

	require.Len(t, v.Results(), 2)
	assert.Equal(t, "Aloe Vera", v.Results()[0].Record.Title)
	assert.Equal(t, 0, v.SelectedIndex(), "first result is active")
}

func TestView_StaleTickIgnored(t *testing.T) {
	svc := &mockSearchService{}
	v := NewView(nil, nil, svc, Options{})
	v.SetDimensions(80, 24)

	typeText(v, "al")
	stale := v.Generation()
	typeText(v, "o")

	_, cmd := v.Update(messages.DebounceElapsed{Generation: stale})

	assert.Nil(t, cmd)
	assert.Equal(t, int32(0), svc.calls.Load())
}

func TestView_StaleResultsIgnored(t *testing.T) {
	v := newTestView()
	typeText(v, "aloe")
	old := v.Generation()
	typeText(v, " v")

	v.Update(messages.SearchCompleted{
		Generation: old,
		Results:    []domain.ScoredResult{{Record: testRecords()[2]}},
	})

	assert.Empty(t, v.Results())
}

func TestView_ShortQueryHidesResults(t *testing.T) {
	v := newTestView()
	typeText(v, "aloe")
	runSearch(t, v)
	require.NotEmpty(t, v.Results())

	v.SetQuery("a")

	assert.Empty(t, v.Results())
	assert.Equal(t, status.StateReady, v.statusbar.State())
}

func TestView_WhitespaceDoesNotCount(t *testing.T) {
	svc := &mockSearchService{}
	v := NewView(nil, nil, svc, Options{})

	cmd := v.SetQuery("  a  ")

	assert.Nil(t, cmd)
}

func TestView_MinQueryLengthOption(t *testing.T) {
	v := NewView(nil, nil, services.NewSessionWithRecords(testRecords()), Options{MinQueryLength: 5})

	assert.Nil(t, v.SetQuery("aloe"))
	assert.NotNil(t, v.SetQuery("aloe "+"v"))
}

func TestView_NoMatches(t *testing.T) {
	v := newTestView()
	typeText(v, "zzzzqqq")
	runSearch(t, v)

	assert.Empty(t, v.Results())
	assert.Equal(t, status.StateNoMatches, v.statusbar.State())
}

func TestView_SearchError(t *testing.T) {
	svc := &mockSearchService{err: errors.New("boom")}
	v := NewView(nil, nil, svc, Options{})
	v.SetDimensions(80, 24)
	typeText(v, "aloe")
	runSearch(t, v)

	require.Error(t, v.Err())
	assert.Equal(t, status.StateError, v.statusbar.State())
	assert.Contains(t, v.View(), "Error: boom")
}

func TestView_NoSearchService(t *testing.T) {
	v := NewView(nil, nil, nil, Options{})
	v.SetQuery("aloe")

	_, cmd := v.Update(messages.DebounceElapsed{Generation: v.Generation()})
	require.NotNil(t, cmd)
	v.Update(cmd())

	assert.ErrorIs(t, v.Err(), ErrNoSearchService)
}

func TestView_NavigationWraps(t *testing.T) {
	v := newTestView()
	typeText(v, "aloe")
	runSearch(t, v)
	require.Len(t, v.Results(), 2)

	v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, v.SelectedIndex())

	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, v.SelectedIndex())

	v.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, 1, v.SelectedIndex())
}

func TestView_LettersEditQuery(t *testing.T) {
	v := newTestView()
	typeText(v, "aloe")
	runSearch(t, v)

	typeText(v, "j")

	assert.Equal(t, "aloej", v.Query())
	assert.Equal(t, 0, v.SelectedIndex())
}

func TestView_EnterSelects(t *testing.T) {
	v := newTestView()
	typeText(v, "aloe")
	runSearch(t, v)
	v.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.ResultSelected)
	require.True(t, ok)
	assert.Equal(t, "plants/bbb222.html", msg.Record.URL)
	assert.Equal(t, "plants/bbb222.html", v.statusbar.Message())
}

func TestView_EnterWithoutResults(t *testing.T) {
	v := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_EscClears(t *testing.T) {
	v := newTestView()
	typeText(v, "aloe")
	runSearch(t, v)
	gen := v.Generation()

	v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Empty(t, v.Query())
	assert.Empty(t, v.Results())
	assert.Greater(t, v.Generation(), gen, "pending searches are invalidated")
}

func TestView_ErrorOccurred(t *testing.T) {
	v := newTestView()

	v.Update(messages.ErrorOccurred{Err: errors.New("dataset gone")})

	assert.EqualError(t, v.Err(), "dataset gone")
	assert.Equal(t, status.StateError, v.statusbar.State())
}

func TestView_Render(t *testing.T) {
	v := newTestView()
	typeText(v, "aloe")
	runSearch(t, v)

	view := v.View()

	assert.Contains(t, view, "Plant Search")
	assert.Contains(t, view, "Results (2)")
	assert.Contains(t, view, "Aristata")
	assert.Contains(t, view, "2 results")
}

func TestView_WithContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), struct{}{}, "x")
	v := newTestView().WithContext(ctx)

	assert.Equal(t, ctx, v.ctx)
}
