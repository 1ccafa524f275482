package cli

import (
	"context"
	"fmt"

	"pictoplan/internal/arasaac"
	"pictoplan/internal/models"
	"pictoplan/internal/storage"
	"pictoplan/internal/template"
)

type ScheduleNewCmd struct {
	Name     string `arg:"" optional:"" help:"Schedule name."`
	Template string `short:"t" help:"Expand a template (built-in or saved) instead of starting empty."`
	NoFetch  bool   `help:"Skip downloading missing pictogram images."`
}

func (c *ScheduleNewCmd) Run(ctx *Context) error {
	var sched *models.Schedule

	if c.Template != "" {
		tpl, ok := template.Find(ctx.Dirs.Templates, c.Template)
		if !ok {
			return fmt.Errorf("template %q not found", c.Template)
		}
		var pending []arasaac.Request
		sched, pending = template.ToSchedule(tpl, ctx.Dirs.Images)
		if c.Name != "" {
			sched.Name = c.Name
		}

		if len(pending) > 0 && !c.NoFetch {
			fmt.Printf("Fetching %d pictogram images...\n", len(pending))
			for _, res := range arasaac.ResolveAll(context.Background(), ctx.Client, ctx.Dirs.Images, pending) {
				if res.Err != nil {
					fmt.Printf("  warning: %v\n", res.Err)
					continue
				}
				sched.SetItemImage(res.ItemID, res.Filename)
			}
		}
	} else {
		sched = models.NewSchedule(c.Name)
	}

	path, err := storage.SaveSchedule(ctx.Dirs.Schedules, sched)
	if err != nil {
		return err
	}

	fmt.Printf("Created %q with %d activities: %s\n", sched.Name, len(sched.Items), path)
	return nil
}

type ScheduleShowCmd struct {
	Schedule string `arg:"" optional:"" help:"Date or name fragment, defaults to the newest."`
}

func (c *ScheduleShowCmd) Run(ctx *Context) error {
	path, err := resolveSchedule(ctx, c.Schedule)
	if err != nil {
		return err
	}
	sched, err := storage.LoadSchedule(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s): %d pending of %d\n\n", sched.Name, sched.Date, sched.Pending(), len(sched.Items))
	for i, item := range sched.Items {
		fmt.Println(formatItem(i, item))
	}
	return nil
}

type ScheduleListCmd struct{}

func (c *ScheduleListCmd) Run(ctx *Context) error {
	paths, err := storage.ListSchedules(ctx.Dirs.Schedules)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Println("No schedules yet.")
		return nil
	}

	for _, p := range paths {
		sched, err := storage.LoadSchedule(p)
		if err != nil {
			fmt.Printf("%s (unreadable: %v)\n", p, err)
			continue
		}
		fmt.Printf("%s  %-24s %d activities, %d pending\n", sched.Date, sched.Name, len(sched.Items), sched.Pending())
	}
	return nil
}

type ScheduleDoneCmd struct {
	Item     string `arg:"" help:"Activity to mark done (position or label prefix)."`
	Schedule string `short:"s" help:"Date or name fragment, defaults to the newest."`
	Undo     bool   `help:"Mark the activity as not done instead."`
}

func (c *ScheduleDoneCmd) Run(ctx *Context) error {
	path, err := resolveSchedule(ctx, c.Schedule)
	if err != nil {
		return err
	}
	sched, err := storage.LoadSchedule(path)
	if err != nil {
		return err
	}

	item, err := matchItem(sched, c.Item)
	if err != nil {
		return err
	}
	item.Done = !c.Undo

	if _, err := storage.SaveSchedule(ctx.Dirs.Schedules, sched); err != nil {
		return err
	}

	state := "done"
	if c.Undo {
		state = "not done"
	}
	fmt.Printf("Marked %q %s.\n", item.Label, state)
	return nil
}

type ScheduleRemoveCmd struct {
	Item     string `arg:"" help:"Activity to remove (position or label prefix)."`
	Schedule string `short:"s" help:"Date or name fragment, defaults to the newest."`
}

func (c *ScheduleRemoveCmd) Run(ctx *Context) error {
	path, err := resolveSchedule(ctx, c.Schedule)
	if err != nil {
		return err
	}
	sched, err := storage.LoadSchedule(path)
	if err != nil {
		return err
	}

	item, err := matchItem(sched, c.Item)
	if err != nil {
		return err
	}
	label := item.Label
	sched.RemoveItem(item.ID)

	if _, err := storage.SaveSchedule(ctx.Dirs.Schedules, sched); err != nil {
		return err
	}
	fmt.Printf("Removed %q.\n", label)
	return nil
}
