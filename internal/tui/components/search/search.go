package search

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pictoplan/internal/arasaac"
)

var attributionStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")).
	Italic(true)

// QueryMsg asks the parent to run a pictogram search.
type QueryMsg struct {
	Query string
}

// AddPictogramMsg asks the parent to download a pictogram and add it to
// the library.
type AddPictogramMsg struct {
	Pictogram arasaac.Pictogram
}

type Item struct {
	Pictogram arasaac.Pictogram
	Lang      string
}

func (i Item) Title() string       { return i.Pictogram.BestKeyword(i.Lang) }
func (i Item) Description() string { return fmt.Sprintf("pictogram #%d", i.Pictogram.ID) }
func (i Item) FilterValue() string { return i.Pictogram.BestKeyword(i.Lang) }

type KeyMap struct {
	Focus key.Binding
	Add   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Focus: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Add: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add to library"),
		),
	}
}

type Model struct {
	input     textinput.Model
	list      list.Model
	keys      KeyMap
	lang      string
	searching bool
	message   string
}

func New(lang string, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "Search ARASAAC pictograms..."
	ti.CharLimit = 64
	ti.Focus()

	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Focus, keys.Add}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{
		input:   ti,
		list:    l,
		keys:    keys,
		lang:    lang,
		message: "Type a keyword and press enter.",
	}
}

// InputFocused reports whether the text input is capturing keystrokes.
func (m Model) InputFocused() bool { return m.input.Focused() }

// SetResults installs a finished search's results.
func (m *Model) SetResults(query string, results []arasaac.Pictogram) {
	m.searching = false
	items := make([]list.Item, len(results))
	for i, p := range results {
		items[i] = Item{Pictogram: p, Lang: m.lang}
	}
	m.list.SetItems(items)
	if len(results) == 0 {
		m.message = fmt.Sprintf("No pictograms found for %q.", query)
	} else {
		m.message = fmt.Sprintf("%d pictograms found", len(results))
	}
}

// SetError reports a failed search.
func (m *Model) SetError(err error) {
	m.searching = false
	m.message = "Search failed: " + err.Error()
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.input.Focused() {
			switch keyMsg.String() {
			case "enter":
				query := m.input.Value()
				if query == "" {
					return m, nil
				}
				m.searching = true
				m.message = "Searching..."
				m.input.Blur()
				return m, func() tea.Msg { return QueryMsg{Query: query} }
			case "esc":
				m.input.Blur()
				return m, nil
			}
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(keyMsg, m.keys.Focus):
			m.input.Focus()
			return m, textinput.Blink
		case key.Matches(keyMsg, m.keys.Add):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return AddPictogramMsg{Pictogram: i.Pictogram} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		"  "+m.input.View(),
		"  "+attributionStyle.Render(arasaac.Attribution),
		"  "+m.message,
		m.list.View(),
	)
}

func (m *Model) SetSize(width, height int) {
	m.input.Width = width - 4
	m.list.SetSize(width, height-3)
}
