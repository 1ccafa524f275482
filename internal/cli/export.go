package cli

import (
	"fmt"
	"os"

	"pictoplan/internal/export"
	"pictoplan/internal/storage"
)

type ExportCmd struct {
	Schedule string `arg:"" optional:"" help:"Date or name fragment, defaults to the newest."`
	Format   string `short:"f" default:"csv" enum:"csv,json" help:"Output format (csv or json)."`
	Output   string `short:"o" type:"path" help:"Output file, defaults to <date>_<name>.<format>."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	path, err := resolveSchedule(ctx, c.Schedule)
	if err != nil {
		return err
	}
	sched, err := storage.LoadSchedule(path)
	if err != nil {
		return err
	}

	var out string
	switch c.Format {
	case "json":
		out, err = export.ToJSON(sched)
	default:
		out, err = export.ToCSV(sched)
	}
	if err != nil {
		return err
	}

	dest := c.Output
	if dest == "" {
		dest = export.DefaultFilename(sched, c.Format)
	}
	if err := os.WriteFile(dest, []byte(out), 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported %q to %s\n", sched.Name, dest)
	return nil
}
