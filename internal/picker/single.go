// Package picker provides the interactive userchrome chooser used by
// `nyoom switch` when no name is given.
package picker

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxVisibleItems = 10

// Item is one selectable entry
type Item struct {
	ID     string
	Label  string
	Detail string // shown dimmed after the label, e.g. the source

	// Current marks the installed userchrome; the cursor starts on it
	Current bool
}

// Model is the Bubble Tea model for the single-select picker
type Model struct {
	title       string
	items       []Item
	cursor      int
	offset      int // scroll offset
	done        bool
	quitting    bool
	searchInput textinput.Model
	searching   bool
}

// New creates a picker over items
func New(title string, items []Item) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to search..."
	ti.CharLimit = 50
	ti.Width = 40

	m := Model{
		title:       title,
		items:       items,
		searchInput: ti,
	}
	for i, item := range items {
		if item.Current {
			m.cursor = i
			break
		}
	}
	m.adjustScroll()
	return m
}

// Selected returns the ID under the cursor, or "" if nothing matches
func (m Model) Selected() string {
	filtered := m.filtered()
	if len(filtered) > 0 && m.cursor < len(filtered) {
		return filtered[m.cursor].ID
	}
	return ""
}

// IsQuitting returns true if the user quit without confirming
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Filter returns the items whose ID, label or detail contain query,
// case-insensitively
func Filter(items []Item, query string) []Item {
	if query == "" {
		return items
	}

	query = strings.ToLower(query)
	var filtered []Item
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), query) ||
			strings.Contains(strings.ToLower(item.ID), query) ||
			strings.Contains(strings.ToLower(item.Detail), query) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func (m Model) filtered() []Item {
	return Filter(m.items, m.searchInput.Value())
}

// adjustScroll keeps the cursor inside the visible window
func (m *Model) adjustScroll() {
	count := len(m.filtered())

	if m.cursor >= count {
		m.cursor = count - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+maxVisibleItems {
		m.offset = m.cursor - maxVisibleItems + 1
	}

	maxOffset := max(count-maxVisibleItems, 0)
	m.offset = min(max(m.offset, 0), maxOffset)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		switch km.String() {
		case "esc":
			m.searching = false
			m.searchInput.SetValue("")
			m.searchInput.Blur()
			m.cursor, m.offset = 0, 0
			return m, nil
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(km)
			m.cursor, m.offset = 0, 0
			return m, cmd
		}
	}

	count := len(m.filtered())
	switch {
	case key.Matches(km, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(km, keys.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(km, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else if count > 0 {
			m.cursor = count - 1
		}
		m.adjustScroll()

	case key.Matches(km, keys.Down):
		if m.cursor < count-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}
		m.adjustScroll()

	case key.Matches(km, keys.Confirm):
		if count == 0 {
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.done || m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	faintStyle := lipgloss.NewStyle().Faint(true)
	scrollStyle := lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("240"))

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	if m.searching {
		b.WriteString("\n/ ")
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	} else if m.searchInput.Value() != "" {
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("Filter: " + m.searchInput.Value() + " (press / to edit, esc to clear)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	filtered := m.filtered()
	if len(filtered) == 0 {
		if m.searchInput.Value() != "" {
			b.WriteString(faintStyle.Render("  (no matching userchromes)"))
		} else {
			b.WriteString(faintStyle.Render("  (no userchromes)"))
		}
		b.WriteString("\n")
	} else {
		if m.offset > 0 {
			b.WriteString(scrollStyle.Render(fmt.Sprintf("  ↑ %d more above", m.offset)))
			b.WriteString("\n")
		}

		end := min(m.offset+maxVisibleItems, len(filtered))
		for i := m.offset; i < end; i++ {
			item := filtered[i]
			label := item.Label
			if i == m.cursor {
				b.WriteString(cursorStyle.Render("> "))
				label = selectedStyle.Render(label)
			} else {
				b.WriteString("  ")
			}
			b.WriteString(label)
			if item.Detail != "" {
				b.WriteString(" ")
				b.WriteString(faintStyle.Render(item.Detail))
			}
			if item.Current {
				b.WriteString(" ")
				b.WriteString(selectedStyle.Render("(installed)"))
			}
			b.WriteString("\n")
		}

		if remaining := len(filtered) - end; remaining > 0 {
			b.WriteString(scrollStyle.Render(fmt.Sprintf("  ↓ %d more below", remaining)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render("↑/↓: navigate • /: search • enter: select • q: quit"))

	return b.String()
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Search  key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Search:  key.NewBinding(key.WithKeys("/")),
	Confirm: key.NewBinding(key.WithKeys("enter")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// RunSingle runs the picker on the terminal and returns the selected ID.
// An empty ID means the user quit.
func RunSingle(title string, items []Item) (string, error) {
	return run(title, items, os.Stdin, os.Stderr)
}

func run(title string, items []Item, in io.Reader, out io.Writer) (string, error) {
	p := tea.NewProgram(New(title, items), tea.WithInput(in), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	fm := final.(Model)
	if fm.IsQuitting() {
		return "", nil
	}
	return fm.Selected(), nil
}
