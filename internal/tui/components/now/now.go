package now

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pictoplan/internal/countdown"
)

var (
	activityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(40).
			Align(lipgloss.Center)

	imageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	nextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true).
			Padding(1, 2)

	clockGreen  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ec27e")).Bold(true)
	clockYellow = lipgloss.NewStyle().Foreground(lipgloss.Color("#e5a50a")).Bold(true)
	clockRed    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e01b24")).Bold(true)
)

// DoneMsg reports that the user completed the current activity.
type DoneMsg struct{}

// SkipMsg reports that the user skipped the current activity.
type SkipMsg struct{}

// FinishedMsg reports that the countdown ran out. The activity stays on
// display until the user acts.
type FinishedMsg struct {
	Label string
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type KeyMap struct {
	Done  key.Binding
	Skip  key.Binding
	Pause key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Done: key.NewBinding(
			key.WithKeys("d", "enter"),
			key.WithHelp("d", "done"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause/resume"),
		),
	}
}

type Model struct {
	controller *countdown.Controller
	progress   progress.Model
	keys       KeyMap
	width      int
	height     int
}

func New(c *countdown.Controller) Model {
	return Model{
		controller: c,
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		keys:       DefaultKeyMap(),
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	w := width / 2
	if w < 20 {
		w = 20
	}
	m.progress.Width = w
}

func (m Model) Keys() KeyMap { return m.keys }

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.controller.Tick() {
			label := ""
			if item := m.controller.Current(); item != nil {
				label = item.Label
			}
			return m, tea.Batch(tick(), func() tea.Msg { return FinishedMsg{Label: label} })
		}
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Done):
			if m.controller.Current() != nil {
				m.controller.MarkDone()
				return m, func() tea.Msg { return DoneMsg{} }
			}
		case key.Matches(msg, m.keys.Skip):
			if m.controller.Current() != nil {
				m.controller.Skip()
				return m, func() tea.Msg { return SkipMsg{} }
			}
		case key.Matches(msg, m.keys.Pause):
			m.controller.Timer().Toggle()
		}
	}

	return m, nil
}

func (m Model) View() string {
	var content string

	switch m.controller.State() {
	case countdown.Idle:
		content = imageStyle.Render("No schedule loaded.")

	case countdown.Exhausted:
		content = doneStyle.Render("All done! 🎉")

	case countdown.ShowingCurrent:
		item := m.controller.Current()
		if item == nil {
			break
		}

		parts := []string{activityStyle.Render(item.Label)}

		if item.ImageFilename != "" {
			parts = append(parts, imageStyle.Render("🖼  "+item.ImageFilename))
		}

		timer := m.controller.Timer()
		if timer.State() != countdown.TimerStopped || timer.Total() > 0 {
			clock := timer.Clock()
			switch timer.Zone() {
			case countdown.ZoneGreen:
				clock = clockGreen.Render(clock)
			case countdown.ZoneYellow:
				clock = clockYellow.Render(clock)
			default:
				clock = clockRed.Render(clock)
			}
			if timer.State() == countdown.TimerPaused {
				clock += imageStyle.Render("  (paused)")
			}
			parts = append(parts, clock, m.progress.ViewAs(timer.Fraction()))
		}

		if next := m.controller.Next(); next != nil {
			parts = append(parts, nextStyle.Render(fmt.Sprintf("Next: %s (%s)", next.Label, next.TimeStr)))
		}

		content = lipgloss.JoinVertical(lipgloss.Center, parts...)
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
