package schedule

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"pictoplan/internal/models"
)

// AddActivityMsg asks the parent to open the add-activity form.
type AddActivityMsg struct{}

// RemoveActivityMsg asks the parent to remove an item from the schedule.
type RemoveActivityMsg struct {
	ID string
}

// ToggleDoneMsg asks the parent to flip an item's completion flag.
type ToggleDoneMsg struct {
	ID   string
	Done bool
}

// SaveTemplateMsg asks the parent to capture the schedule as a template.
type SaveTemplateMsg struct{}

type Item struct {
	Activity models.ScheduleItem
}

func (i Item) Title() string {
	check := "○"
	if i.Activity.Done {
		check = "✓"
	}
	return fmt.Sprintf("%s %s  %s", check, i.Activity.TimeStr, i.Activity.Label)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%d min | %s", i.Activity.Duration, i.Activity.Category.Display())
	if i.Activity.ImageFilename == "" {
		desc += " | no image"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Activity.Label }

type KeyMap struct {
	Add          key.Binding
	Remove       key.Binding
	Toggle       key.Binding
	SaveTemplate key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add activity"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle done"),
		),
		SaveTemplate: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "save as template"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []models.ScheduleItem, width, height int) Model {
	l := list.New(toListItems(items), list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Remove, keys.SaveTemplate}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys}
}

func toListItems(items []models.ScheduleItem) []list.Item {
	out := make([]list.Item, len(items))
	for i, it := range items {
		out[i] = Item{Activity: it}
	}
	return out
}

// SetItems replaces the listing, keeping the cursor where possible.
func (m *Model) SetItems(items []models.ScheduleItem) {
	idx := m.list.Index()
	m.list.SetItems(toListItems(items))
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
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
			return m, func() tea.Msg { return AddActivityMsg{} }
		case key.Matches(msg, m.keys.Remove):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return RemoveActivityMsg{ID: i.Activity.ID} }
			}
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg {
					return ToggleDoneMsg{ID: i.Activity.ID, Done: !i.Activity.Done}
				}
			}
		case key.Matches(msg, m.keys.SaveTemplate):
			return m, func() tea.Msg { return SaveTemplateMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  Empty schedule.\n  Press 'a' to add an activity, or load a template."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
