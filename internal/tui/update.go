package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"pictoplan/internal/export"
	"pictoplan/internal/models"
	"pictoplan/internal/storage"
	"pictoplan/internal/template"
	"pictoplan/internal/tui/components/library"
	"pictoplan/internal/tui/components/now"
	"pictoplan/internal/tui/components/schedule"
	"pictoplan/internal/tui/components/search"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 4
		m.nowModel.SetSize(msg.Width, contentHeight)
		m.scheduleModel.SetSize(msg.Width-4, contentHeight)
		m.libraryModel.SetSize(msg.Width-4, contentHeight)
		m.searchModel.SetSize(msg.Width-4, contentHeight)

	case now.TickMsg:
		// The tick always reaches the countdown, whichever tab is visible.
		var cmd tea.Cmd
		m.nowModel, cmd = m.nowModel.Update(msg)
		return m, cmd

	case now.DoneMsg, now.SkipMsg:
		m.saveSchedule()
		m.scheduleModel.SetItems(m.schedule.Items)
		return m, nil

	case now.FinishedMsg:
		m.status = "Time's up for: " + msg.Label
		return m, nil

	case imageResolvedMsg:
		if msg.Err == nil && m.schedule.SetItemImage(msg.ItemID, msg.Filename) {
			m.saveSchedule()
			m.scheduleModel.SetItems(m.schedule.Items)
			m.controller.Refresh()
		}
		return m, waitForImage(m.resolver)

	case schedule.AddActivityMsg:
		return m.openActivityForm()

	case schedule.RemoveActivityMsg:
		m.schedule.RemoveItem(msg.ID)
		m.saveSchedule()
		m.scheduleModel.SetItems(m.schedule.Items)
		m.controller.Refresh()
		return m, nil

	case schedule.ToggleDoneMsg:
		m.schedule.SetDone(msg.ID, msg.Done)
		m.saveSchedule()
		m.scheduleModel.SetItems(m.schedule.Items)
		m.controller.Refresh()
		return m, nil

	case schedule.SaveTemplateMsg:
		tpl := template.FromSchedule(m.schedule, "")
		if _, err := template.Save(m.dirs.Templates, tpl); err != nil {
			m.status = "Template save failed: " + err.Error()
		} else {
			m.status = fmt.Sprintf("Saved template %q", tpl.Name)
		}
		return m, nil

	case library.AddToScheduleMsg:
		item := models.FromLibraryItem(msg.Item)
		m.schedule.AddItem(item)
		m.saveSchedule()
		m.scheduleModel.SetItems(m.schedule.Items)
		m.controller.Refresh()
		m.status = fmt.Sprintf("Added %q to schedule", item.Label)
		return m, nil

	case library.ImportImageMsg:
		return m.openImportForm()

	case library.RemoveImageMsg:
		m.pictureToRemoveID = msg.ID
		m.previousState = m.state
		m.state = StateConfirmRemove
		return m, nil

	case search.QueryMsg:
		return m, searchPictograms(m.client, msg.Query, m.lang)

	case searchResultsMsg:
		if msg.err != nil {
			m.searchModel.SetError(msg.err)
		} else {
			m.searchModel.SetResults(msg.query, msg.results)
		}
		return m, nil

	case search.AddPictogramMsg:
		m.status = "Downloading pictogram..."
		return m, addPictogram(m.client, m.library, m.dirs.Images, msg.Pictogram, m.lang)

	case pictogramAddedMsg:
		if msg.err != nil {
			m.status = "Add failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("Added %q to library", msg.item.Label)
			m.refreshLibrary()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActive(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateEditing:
		return m.updateForm(msg)

	case StateConfirmRemove:
		switch msg.String() {
		case "y":
			if err := storage.RemoveImage(m.library, m.dirs.Images, m.pictureToRemoveID); err != nil {
				m.status = "Remove failed: " + err.Error()
			} else {
				m.status = "Picture removed"
				m.refreshLibrary()
			}
			m.pictureToRemoveID = ""
			m.state = m.previousState
		case "n", "q", "esc":
			m.pictureToRemoveID = ""
			m.state = m.previousState
		}
		return m, nil
	}

	// The search input swallows plain keys while focused; tab switching
	// and ctrl+c still work.
	if m.state == StateSearch && m.searchModel.InputFocused() {
		switch msg.String() {
		case "tab", "shift+tab", "ctrl+c":
		default:
			return m.updateActive(msg)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		// Close waits for in-flight downloads; do that off the UI loop so
		// quitting stays instant. The downloads only feed the image cache.
		go m.resolver.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Save):
		m.saveSchedule()
		m.status = "Schedule saved"
		return m, nil
	case key.Matches(msg, m.keys.Template) && m.state == StateSchedule:
		return m.openTemplatePicker()
	case key.Matches(msg, m.keys.Export) && m.state == StateSchedule:
		return m.exportSchedule()
	}

	return m.updateActive(msg)
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateNow:
		m.nowModel, cmd = m.nowModel.Update(msg)
	case StateSchedule:
		m.scheduleModel, cmd = m.scheduleModel.Update(msg)
	case StateLibrary:
		m.libraryModel, cmd = m.libraryModel.Update(msg)
	case StateSearch:
		m.searchModel, cmd = m.searchModel.Update(msg)
	case StateEditing:
		return m.updateForm(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.applyForm()
		m.state = m.previousState
		return m, nil
	case huh.StateAborted:
		m.state = m.previousState
		return m, nil
	}
	return m, cmd
}

func (m *Model) applyForm() {
	switch {
	case m.activityForm != nil:
		f := m.activityForm
		m.activityForm = nil
		item := models.NewScheduleItem()
		item.Label = f.Label
		if f.TimeStr != "" {
			item.TimeStr = f.TimeStr
		}
		if d, err := strconv.Atoi(f.Duration); err == nil {
			item.Duration = d
		}
		item.Category = models.NormalizeCategory(f.Category)
		m.schedule.AddItem(item)
		m.saveSchedule()
		m.scheduleModel.SetItems(m.schedule.Items)
		m.controller.Refresh()
		m.status = fmt.Sprintf("Added %q", item.Label)

	case m.importForm != nil:
		f := m.importForm
		m.importForm = nil
		duration := 0
		if d, err := strconv.Atoi(f.Duration); err == nil {
			duration = d
		}
		item, err := storage.ImportImage(m.library, m.dirs.Images, f.Path, f.Label, f.Category, duration)
		if err != nil {
			m.status = "Import failed: " + err.Error()
			return
		}
		m.status = fmt.Sprintf("Imported %q", item.Label)
		m.refreshLibrary()

	case m.templatePick != nil:
		name := *m.templatePick
		m.templatePick = nil
		if name == "" {
			return
		}
		tpl, ok := template.Find(m.dirs.Templates, name)
		if !ok {
			m.status = fmt.Sprintf("Template %q not found", name)
			return
		}
		sched, pending := template.ToSchedule(tpl, m.dirs.Images)
		m.schedule = sched
		m.controller.Attach(sched)
		m.scheduleModel.SetItems(sched.Items)
		m.saveSchedule()
		if len(pending) > 0 {
			m.resolver.Enqueue(context.Background(), pending)
			m.status = fmt.Sprintf("Loaded %q, fetching %d images...", tpl.Name, len(pending))
		} else {
			m.status = fmt.Sprintf("Loaded %q", tpl.Name)
		}
	}
}

func (m Model) openActivityForm() (tea.Model, tea.Cmd) {
	m.activityForm = &ActivityFormModel{TimeStr: "08:00", Duration: "30", Category: models.CategoryOther}

	catOpts := make([]huh.Option[models.Category], 0, len(models.Categories()))
	for _, c := range models.Categories() {
		catOpts = append(catOpts, huh.NewOption(c.Display(), c))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Activity").Value(&m.activityForm.Label),
			huh.NewInput().Title("Time (HH:MM)").Value(&m.activityForm.TimeStr),
			huh.NewInput().Title("Duration (minutes)").Value(&m.activityForm.Duration),
			huh.NewSelect[models.Category]().Title("Category").Options(catOpts...).Value(&m.activityForm.Category),
		),
	)
	m.previousState = m.state
	m.state = StateEditing
	return m, m.form.Init()
}

func (m Model) openImportForm() (tea.Model, tea.Cmd) {
	m.importForm = &ImportFormModel{Duration: "0", Category: models.CategoryOther}

	catOpts := make([]huh.Option[models.Category], 0, len(models.Categories()))
	for _, c := range models.Categories() {
		catOpts = append(catOpts, huh.NewOption(c.Display(), c))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Image file (png, jpg, svg)").Value(&m.importForm.Path),
			huh.NewInput().Title("Label").Value(&m.importForm.Label),
			huh.NewInput().Title("Default duration (minutes)").Value(&m.importForm.Duration),
			huh.NewSelect[models.Category]().Title("Category").Options(catOpts...).Value(&m.importForm.Category),
		),
	)
	m.previousState = m.state
	m.state = StateEditing
	return m, m.form.Init()
}

func (m Model) openTemplatePicker() (tea.Model, tea.Cmd) {
	choice := ""
	m.templatePick = &choice

	var opts []huh.Option[string]
	for _, tpl := range template.All(m.dirs.Templates) {
		name := tpl.Name
		if tpl.BuiltIn {
			name += " (built-in)"
		}
		opts = append(opts, huh.NewOption(name, tpl.Name))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Load template").Options(opts...).Value(m.templatePick),
		),
	)
	m.previousState = m.state
	m.state = StateEditing
	return m, m.form.Init()
}

// exportSchedule writes CSV and JSON copies under the data directory, so
// exports land in one predictable place no matter where the TUI was
// launched from.
func (m Model) exportSchedule() (tea.Model, tea.Cmd) {
	csvOut, err := export.ToCSV(m.schedule)
	if err != nil {
		m.status = "Export failed: " + err.Error()
		return m, nil
	}
	csvPath := filepath.Join(m.dirs.Data, export.DefaultFilename(m.schedule, "csv"))
	if err := os.WriteFile(csvPath, []byte(csvOut), 0600); err != nil {
		m.status = "Export failed: " + err.Error()
		return m, nil
	}

	jsonOut, err := export.ToJSON(m.schedule)
	if err != nil {
		m.status = "Export failed: " + err.Error()
		return m, nil
	}
	jsonPath := filepath.Join(m.dirs.Data, export.DefaultFilename(m.schedule, "json"))
	if err := os.WriteFile(jsonPath, []byte(jsonOut), 0600); err != nil {
		m.status = "Export failed: " + err.Error()
		return m, nil
	}

	m.status = fmt.Sprintf("Exported %s and %s", csvPath, jsonPath)
	return m, nil
}

func (m *Model) saveSchedule() {
	if _, err := storage.SaveSchedule(m.dirs.Schedules, m.schedule); err != nil {
		m.status = "Save failed: " + err.Error()
	}
}

func (m *Model) refreshLibrary() {
	items, err := m.library.Items()
	if err != nil {
		m.status = "Library error: " + err.Error()
		return
	}
	m.libraryModel.SetItems(items)
}
