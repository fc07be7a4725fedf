package picker

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func themes() []Item {
	return []Item{
		{ID: "cascade", Label: "cascade", Detail: "github:andreasgrafen/cascade"},
		{ID: "shyfox", Label: "shyfox", Detail: "github:Naezr/ShyFox", Current: true},
		{ID: "local", Label: "local", Detail: "path:/home/me/theme"},
	}
}

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestCursorStartsOnCurrent(t *testing.T) {
	m := New("pick", themes())
	assert.Equal(t, "shyfox", m.Selected())
}

func TestNavigationWraps(t *testing.T) {
	m := New("pick", themes())

	m = press(m, down)
	assert.Equal(t, "local", m.Selected())

	m = press(m, down)
	assert.Equal(t, "cascade", m.Selected())

	m = press(m, up)
	assert.Equal(t, "local", m.Selected())
}

func TestSearch(t *testing.T) {
	m := New("pick", themes())

	m = press(m, runes("/"), runes("n"), runes("a"), runes("e"), runes("z"), enter)
	assert.Equal(t, "shyfox", m.Selected())
	assert.False(t, m.IsQuitting())
	assert.Contains(t, m.View(), "Filter: naez")

	// esc while searching clears the filter
	m = press(m, runes("/"), esc)
	assert.Equal(t, "cascade", m.Selected())
}

func TestQuit(t *testing.T) {
	m := press(New("pick", themes()), runes("q"))
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestConfirmWithNoMatches(t *testing.T) {
	m := press(New("pick", themes()), runes("/"), runes("x"), runes("y"), enter, enter)
	assert.Empty(t, m.Selected())
	assert.Contains(t, m.View(), "no matching userchromes")
}

func TestViewScrolls(t *testing.T) {
	var items []Item
	for i := range 15 {
		items = append(items, Item{ID: fmt.Sprint(i), Label: fmt.Sprintf("theme-%02d", i)})
	}

	m := New("pick", items)
	assert.Contains(t, m.View(), "5 more below")

	for range 12 {
		m = press(m, down)
	}
	assert.Equal(t, "12", m.Selected())
	assert.Contains(t, m.View(), "more above")
}

func TestFilter(t *testing.T) {
	assert.Len(t, Filter(themes(), ""), 3)
	assert.Len(t, Filter(themes(), "GITHUB"), 2)
	assert.Empty(t, Filter(themes(), "nothing"))
}
