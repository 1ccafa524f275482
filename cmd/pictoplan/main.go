package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"pictoplan/internal/arasaac"
	"pictoplan/internal/cli"
	"pictoplan/internal/config"
	"pictoplan/internal/log"
	"pictoplan/internal/storage"
)

var CLI struct {
	Version     kong.VersionFlag
	LibraryFile string `help:"Library file path (.json or .db)." type:"path"`

	Tui      cli.TuiCmd `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Now      cli.NowCmd `cmd:"" help:"Show the current and next activity."`
	Schedule struct {
		New    cli.ScheduleNewCmd    `cmd:"" help:"Create a new schedule."`
		Show   cli.ScheduleShowCmd   `cmd:"" help:"Show a schedule."`
		List   cli.ScheduleListCmd   `cmd:"" help:"List saved schedules."`
		Done   cli.ScheduleDoneCmd   `cmd:"" help:"Mark an activity done."`
		Remove cli.ScheduleRemoveCmd `cmd:"" help:"Remove an activity."`
	} `cmd:"" help:"Manage schedules."`
	Library struct {
		List   cli.LibraryListCmd   `cmd:"" help:"List library pictures."`
		Add    cli.LibraryAddCmd    `cmd:"" help:"Import an image into the library."`
		Remove cli.LibraryRemoveCmd `cmd:"" help:"Remove a picture from the library."`
		Fetch  cli.LibraryFetchCmd  `cmd:"" help:"Download an ARASAAC pictogram into the library."`
	} `cmd:"" help:"Manage the picture library."`
	Search   cli.SearchCmd `cmd:"" help:"Search ARASAAC pictograms."`
	Template struct {
		List cli.TemplateListCmd `cmd:"" help:"List built-in and user templates."`
		Save cli.TemplateSaveCmd `cmd:"" help:"Save a schedule as a template."`
	} `cmd:"" help:"Manage schedule templates."`
	Export   cli.ExportCmd `cmd:"" help:"Export a schedule to CSV or JSON."`
	Doctor   cli.DoctorCmd `cmd:"" help:"Run health checks."`
	Settings struct {
		Show cli.SettingsShowCmd `cmd:"" help:"Show current settings."`
		Set  cli.SettingsSetCmd  `cmd:"" help:"Change a setting."`
	} `cmd:"" help:"Manage settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("pictoplan"),
		kong.Description("Visual daily schedule builder with pictogram support"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.2.0"},
	)

	dirs, err := config.DefaultDirs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	settings, err := config.LoadSettings(dirs.SettingsPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if settings.Debug {
		log.SetLevel(log.LevelDebug)
	}

	libraryPath := CLI.LibraryFile
	if libraryPath == "" {
		libraryPath = dirs.LibraryPath()
	}

	appCtx := &cli.Context{
		Library:  storage.NewProvider(libraryPath),
		Dirs:     dirs,
		Settings: settings,
		Client: arasaac.NewClient(
			arasaac.WithDictionary(arasaac.NewDictionary("sv", arasaac.SwedishTerms())),
		),
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
