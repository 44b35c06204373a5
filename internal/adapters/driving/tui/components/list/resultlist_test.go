package list

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantadash/plantsearch/internal/adapters/driving/tui/styles"
	"github.com/plantadash/plantsearch/internal/core/domain"
)

func sampleResults() []domain.ScoredResult {
	tokens := []string{"aloe"}
	return []domain.ScoredResult{
		{Record: domain.Record{ID: "p1", IDTail: "aaa111", Title: "Aloe Vera", Type: domain.RecordTypePlant}, Score: 102, Tokens: tokens},
		{Record: domain.Record{ID: "p2", Title: "Aloe Aristata", Type: domain.RecordTypePlant}, Score: 87, Tokens: tokens},
		{Record: domain.Record{ID: "e1", Title: "Aloe Corner", Type: domain.RecordTypeEnvironment}, Score: 85, Tokens: tokens},
	}
}

func TestNewResultList(t *testing.T) {
	list := NewResultList(styles.DefaultStyles())

	require.NotNil(t, list)
	assert.Equal(t, 0, list.Selected())
	assert.True(t, list.IsEmpty())
	assert.Nil(t, list.SelectedResult())
}

func TestNewResultList_NilStyles(t *testing.T) {
	list := NewResultList(nil)

	require.NotNil(t, list)
	assert.NotNil(t, list.styles)
	assert.Nil(t, list.Init())
}

func TestResultList_SetResultsSelectsFirst(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults())
	list.SetSelected(2)

	list.SetResults(sampleResults())

	assert.Equal(t, 3, list.Count())
	assert.Equal(t, 0, list.Selected())
	assert.Equal(t, "p1", list.SelectedResult().Record.ID)
}

func TestResultList_WrapAround(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults())

	list.MoveUp()
	assert.Equal(t, 2, list.Selected(), "up from first wraps to last")

	list.MoveDown()
	assert.Equal(t, 0, list.Selected(), "down from last wraps to first")

	list.MoveDown()
	list.MoveDown()
	assert.Equal(t, 2, list.Selected())
}

func TestResultList_MoveOnEmpty(t *testing.T) {
	list := NewResultList(nil)

	list.MoveUp()
	list.MoveDown()

	assert.Equal(t, 0, list.Selected())
}

func TestResultList_UpdateKeys(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults())

	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, list.Selected())

	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, 2, list.Selected())

	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, 1, list.Selected())

	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, list.Selected(), "letters are query text, not navigation")
}

func TestResultList_SetSelectedOutOfRange(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults())

	list.SetSelected(7)
	list.SetSelected(-1)

	assert.Equal(t, 0, list.Selected())
}

func TestResultList_ViewEmpty(t *testing.T) {
	assert.Empty(t, NewResultList(nil).View())
}

func TestResultList_View(t *testing.T) {
	list := NewResultList(nil)
	list.SetDimensions(80, 20)
	list.SetResults(sampleResults())

	view := list.View()

	assert.Contains(t, view, "Results (3)")
	assert.Contains(t, view, "[plant]")
	assert.Contains(t, view, "[environment]")
	assert.Contains(t, view, "Vera")
	assert.Contains(t, view, "ID: aaa111")
	assert.Contains(t, view, "> ")
}

func TestResultList_ViewScrollsToSelection(t *testing.T) {
	list := NewResultList(nil)
	list.SetDimensions(80, 4) // room for one result
	list.SetResults(sampleResults())
	list.SetSelected(2)

	view := list.View()

	assert.Contains(t, view, "Corner")
	assert.NotContains(t, view, "Vera")
}

func TestResultList_ViewTruncatesWideTitles(t *testing.T) {
	list := NewResultList(nil)
	list.SetDimensions(40, 20)
	list.SetResults([]domain.ScoredResult{{
		Record: domain.Record{ID: "p1", Title: strings.Repeat("寿司", 30), Type: domain.RecordTypePlant},
		Score:  50,
	}})

	view := list.View()

	assert.Contains(t, view, "…")
	assert.NotContains(t, view, strings.Repeat("寿司", 30))
}

func TestResultList_SetDimensions(t *testing.T) {
	list := NewResultList(nil)

	list.SetDimensions(120, 40)

	assert.Equal(t, 120, list.Width())
	assert.Equal(t, 40, list.Height())
}
