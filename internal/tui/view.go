package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateNow:
		content = m.nowModel.View()
	case StateSchedule:
		content = docStyle.Render(m.scheduleModel.View())
	case StateLibrary:
		content = docStyle.Render(m.libraryModel.View())
	case StateSearch:
		content = docStyle.Render(m.searchModel.View())
	case StateEditing:
		content = docStyle.Render(m.form.View())
	case StateConfirmRemove:
		content = m.viewConfirmRemove()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Now", "Schedule", "Library", "Search"} {
		state := SessionState(i)
		active := m.state == state
		// Form and confirm screens highlight the tab they came from.
		if m.state >= tabCount && m.previousState == state {
			active = true
		}
		if active {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	return statusStyle.Render(m.status)
}

func (m Model) viewConfirmRemove() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Remove this picture from the library?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
