package cli

import (
	"errors"
	"fmt"

	"pictoplan/internal/models"
	"pictoplan/internal/storage"
)

type NowCmd struct {
	Schedule string `short:"s" help:"Date or name fragment, defaults to the newest."`
}

func (c *NowCmd) Run(ctx *Context) error {
	path, err := resolveSchedule(ctx, c.Schedule)
	if err != nil {
		return err
	}
	sched, err := storage.LoadSchedule(path)
	if err != nil {
		return err
	}

	current := sched.CurrentActivity()
	if current == nil {
		fmt.Printf("%s: all done! 🎉\n", sched.Name)
		return nil
	}

	fmt.Printf("Now:  %s  %s (%d min)\n", current.TimeStr, current.Label, current.Duration)
	next, err := sched.NextActivity(current.ID)
	switch {
	case err == nil:
		fmt.Printf("Next: %s  %s\n", next.TimeStr, next.Label)
	case errors.Is(err, models.ErrNoPending):
		fmt.Println("Next: nothing, last activity of the day")
	default:
		return err
	}
	return nil
}
