package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"pictoplan/internal/arasaac"
	"pictoplan/internal/config"
	"pictoplan/internal/countdown"
	"pictoplan/internal/models"
	"pictoplan/internal/storage"
	"pictoplan/internal/tui/components/library"
	"pictoplan/internal/tui/components/now"
	"pictoplan/internal/tui/components/schedule"
	"pictoplan/internal/tui/components/search"
)

type SessionState int

const (
	StateNow SessionState = iota
	StateSchedule
	StateLibrary
	StateSearch
	StateEditing
	StateConfirmRemove
)

// tabCount covers the cycling tabs; form and confirm states sit outside
// the cycle.
const tabCount = 4

type ActivityFormModel struct {
	Label    string
	TimeStr  string
	Duration string
	Category models.Category
}

type ImportFormModel struct {
	Path     string
	Label    string
	Duration string
	Category models.Category
}

type Model struct {
	library  storage.Provider
	dirs     config.Dirs
	settings *config.Settings
	client   *arasaac.Client
	resolver *arasaac.Resolver

	schedule   *models.Schedule
	controller *countdown.Controller

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	nowModel      now.Model
	scheduleModel schedule.Model
	libraryModel  library.Model
	searchModel   search.Model

	form         *huh.Form
	activityForm *ActivityFormModel
	importForm   *ImportFormModel
	templatePick *string

	pictureToRemoveID string
	lang              string
	status            string
	width             int
	height            int
	quitting          bool
}

func NewModel(lib storage.Provider, dirs config.Dirs, settings *config.Settings, client *arasaac.Client, sched *models.Schedule) Model {
	if sched == nil {
		sched = models.NewSchedule("")
	}

	controller := countdown.NewController()
	controller.Attach(sched)

	items, err := lib.Items()
	if err != nil {
		items = []models.LibraryItem{}
	}

	// Remote search runs in English; the Swedish dictionary answers "sv"
	// lookups locally when installed on the client.
	lang := "en"

	return Model{
		library:       lib,
		dirs:          dirs,
		settings:      settings,
		client:        client,
		resolver:      arasaac.NewResolver(client, dirs.Images),
		schedule:      sched,
		controller:    controller,
		lang:          lang,
		state:         StateNow,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		nowModel:      now.New(controller),
		scheduleModel: schedule.New(sched.Items, 0, 0),
		libraryModel:  library.New(items, 0, 0),
		searchModel:   search.New(lang, 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateNow:
		nk := m.nowModel.Keys()
		keys = append(keys, nk.Done, nk.Skip, nk.Pause)
	case StateSchedule:
		keys = append(keys, m.keys.Template, m.keys.Export)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Save}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateNow:
		nk := m.nowModel.Keys()
		actions = []key.Binding{nk.Done, nk.Skip, nk.Pause}
	case StateSchedule:
		actions = []key.Binding{m.keys.Template, m.keys.Export}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.nowModel.Init(), m.searchModel.Init(), waitForImage(m.resolver))
}

// imageResolvedMsg carries one background pictogram download outcome.
type imageResolvedMsg arasaac.ImageResolved

// searchResultsMsg carries a finished pictogram search.
type searchResultsMsg struct {
	query   string
	results []arasaac.Pictogram
	err     error
}

// pictogramAddedMsg reports a download-and-add-to-library outcome.
type pictogramAddedMsg struct {
	item models.LibraryItem
	err  error
}

func waitForImage(r *arasaac.Resolver) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-r.Results()
		if !ok {
			return nil
		}
		return imageResolvedMsg(res)
	}
}

func searchPictograms(client *arasaac.Client, query, lang string) tea.Cmd {
	return func() tea.Msg {
		results, err := client.Search(context.Background(), query, lang)
		return searchResultsMsg{query: query, results: results, err: err}
	}
}

func addPictogram(client *arasaac.Client, lib storage.Provider, imagesDir string, p arasaac.Pictogram, lang string) tea.Cmd {
	return func() tea.Msg {
		filename, err := client.DownloadImage(context.Background(), p.ID, imagesDir)
		if err != nil {
			return pictogramAddedMsg{err: err}
		}
		item, err := lib.AddItem(models.LibraryItem{
			ID:        fmt.Sprintf("arasaac_%d", p.ID),
			Filename:  filename,
			Label:     p.BestKeyword(lang),
			Category:  models.CategoryOther,
			Source:    "arasaac",
			ArasaacID: p.ID,
		})
		return pictogramAddedMsg{item: item, err: err}
	}
}
