package cli

import (
	"fmt"

	"pictoplan/internal/storage"
	"pictoplan/internal/template"
)

type TemplateListCmd struct{}

func (c *TemplateListCmd) Run(ctx *Context) error {
	for _, tpl := range template.All(ctx.Dirs.Templates) {
		kind := "user"
		if tpl.BuiltIn {
			kind = "built-in"
		}
		fmt.Printf("%-24s %-9s %d activities\n", tpl.Name, kind, len(tpl.Items))
	}
	return nil
}

type TemplateSaveCmd struct {
	Schedule string `arg:"" optional:"" help:"Date or name fragment, defaults to the newest."`
	Name     string `short:"n" help:"Template name, defaults to the schedule name."`
}

func (c *TemplateSaveCmd) Run(ctx *Context) error {
	path, err := resolveSchedule(ctx, c.Schedule)
	if err != nil {
		return err
	}
	sched, err := storage.LoadSchedule(path)
	if err != nil {
		return err
	}

	tpl := template.FromSchedule(sched, c.Name)
	out, err := template.Save(ctx.Dirs.Templates, tpl)
	if err != nil {
		return err
	}
	fmt.Printf("Saved template %q: %s\n", tpl.Name, out)
	return nil
}
