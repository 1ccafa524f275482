package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pictoplan/internal/models"
	"pictoplan/internal/storage"
	"pictoplan/internal/tui"
)

type TuiCmd struct {
	Schedule string `short:"s" help:"Schedule to open (date or name fragment), defaults to the newest."`
}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Library.Load(); err != nil {
		return err
	}
	defer ctx.Library.Close()

	var sched *models.Schedule
	if path, err := resolveSchedule(ctx, c.Schedule); err == nil {
		sched, err = storage.LoadSchedule(path)
		if err != nil {
			return err
		}
	} else if c.Schedule != "" {
		// An explicit reference that resolves to nothing is an error; no
		// schedules at all just starts empty.
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Library, ctx.Dirs, ctx.Settings, ctx.Client, sched), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
