package library

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"pictoplan/internal/models"
)

// AddToScheduleMsg asks the parent to append a library picture to the
// current schedule.
type AddToScheduleMsg struct {
	Item models.LibraryItem
}

// ImportImageMsg asks the parent to open the import form.
type ImportImageMsg struct{}

// RemoveImageMsg asks the parent to delete a picture from the library.
type RemoveImageMsg struct {
	ID string
}

type Item struct {
	Picture models.LibraryItem
}

func (i Item) Title() string { return i.Picture.Label }

func (i Item) Description() string {
	desc := i.Picture.Category.Display()
	if i.Picture.Duration > 0 {
		desc += fmt.Sprintf(" | %d min", i.Picture.Duration)
	}
	if i.Picture.Source == "arasaac" {
		desc += " | ARASAAC"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Picture.Label }

type KeyMap struct {
	Add      key.Binding
	Import   key.Binding
	Remove   key.Binding
	Category key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add to schedule"),
		),
		Import: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "import image"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove"),
		),
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle category"),
		),
	}
}

type Model struct {
	list   list.Model
	keys   KeyMap
	all    []models.LibraryItem
	filter models.Category // empty means all categories
}

func New(items []models.LibraryItem, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Import, keys.Remove, keys.Category}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	m := Model{list: l, keys: keys}
	m.SetItems(items)
	return m
}

// SetItems replaces the full item set and reapplies the category filter.
func (m *Model) SetItems(items []models.LibraryItem) {
	m.all = items
	m.applyFilter()
}

func (m *Model) applyFilter() {
	var visible []list.Item
	for _, it := range m.all {
		if m.filter != "" && it.Category != m.filter {
			continue
		}
		visible = append(visible, Item{Picture: it})
	}
	m.list.SetItems(visible)
}

// Filter returns the active category, or empty for all.
func (m Model) Filter() models.Category { return m.filter }

func (m *Model) cycleCategory() {
	cats := models.Categories()
	if m.filter == "" {
		m.filter = cats[0]
	} else {
		next := 0
		for i, c := range cats {
			if c == m.filter {
				next = i + 1
				break
			}
		}
		if next >= len(cats) {
			m.filter = ""
		} else {
			m.filter = cats[next]
		}
	}
	m.applyFilter()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return AddToScheduleMsg{Item: i.Picture} }
			}
		case key.Matches(msg, m.keys.Import):
			return m, func() tea.Msg { return ImportImageMsg{} }
		case key.Matches(msg, m.keys.Remove):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return RemoveImageMsg{ID: i.Picture.ID} }
			}
		case key.Matches(msg, m.keys.Category):
			m.cycleCategory()
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := "All categories"
	if m.filter != "" {
		header = m.filter.Display()
	}
	body := m.list.View()
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		body = "\n  No pictures here.\n  Press 'i' to import one, or search ARASAAC."
	}
	return fmt.Sprintf("  %s\n%s", header, body)
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height-1)
}
