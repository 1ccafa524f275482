package cli

import (
	"context"
	"fmt"

	"pictoplan/internal/models"
	"pictoplan/internal/storage"
)

type LibraryListCmd struct {
	Category string `short:"c" help:"Only show one category."`
}

func (c *LibraryListCmd) Run(ctx *Context) error {
	if err := ctx.Library.Load(); err != nil {
		return err
	}
	defer ctx.Library.Close()

	var items []models.LibraryItem
	var err error
	if c.Category != "" {
		items, err = ctx.Library.ItemsByCategory(models.NormalizeCategory(models.Category(c.Category)))
	} else {
		items, err = ctx.Library.Items()
	}
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("Library is empty.")
		return nil
	}
	for _, item := range items {
		line := fmt.Sprintf("%-24s %-10s %s", item.Label, item.Category, item.Filename)
		if item.Source == "arasaac" {
			line += fmt.Sprintf("  (ARASAAC #%d)", item.ArasaacID)
		}
		fmt.Println(line)
	}
	return nil
}

type LibraryAddCmd struct {
	Path     string `arg:"" type:"path" help:"Image file to import (png, jpg, jpeg, svg)."`
	Label    string `short:"l" help:"Display label, defaults to the file name."`
	Category string `short:"c" default:"other" help:"Activity category."`
	Duration int    `short:"d" default:"0" help:"Default duration in minutes."`
}

func (c *LibraryAddCmd) Run(ctx *Context) error {
	if err := ctx.Library.Load(); err != nil {
		return err
	}
	defer ctx.Library.Close()

	item, err := storage.ImportImage(ctx.Library, ctx.Dirs.Images, c.Path, c.Label, models.Category(c.Category), c.Duration)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %q as %s\n", item.Label, item.Filename)
	return nil
}

type LibraryRemoveCmd struct {
	ID string `arg:"" help:"Library item id."`
}

func (c *LibraryRemoveCmd) Run(ctx *Context) error {
	if err := ctx.Library.Load(); err != nil {
		return err
	}
	defer ctx.Library.Close()

	if err := storage.RemoveImage(ctx.Library, ctx.Dirs.Images, c.ID); err != nil {
		return err
	}
	fmt.Println("Removed.")
	return nil
}

type LibraryFetchCmd struct {
	ID       int    `arg:"" help:"ARASAAC pictogram id."`
	Label    string `short:"l" help:"Display label, defaults to the pictogram id."`
	Category string `short:"c" default:"other" help:"Activity category."`
}

func (c *LibraryFetchCmd) Run(ctx *Context) error {
	if err := ctx.Library.Load(); err != nil {
		return err
	}
	defer ctx.Library.Close()

	filename, err := ctx.Client.DownloadImage(context.Background(), c.ID, ctx.Dirs.Images)
	if err != nil {
		return err
	}

	label := c.Label
	if label == "" {
		label = fmt.Sprintf("Pictogram %d", c.ID)
	}

	item, err := ctx.Library.AddItem(models.LibraryItem{
		ID:        fmt.Sprintf("arasaac_%d", c.ID),
		Filename:  filename,
		Label:     label,
		Category:  models.NormalizeCategory(models.Category(c.Category)),
		Source:    "arasaac",
		ArasaacID: c.ID,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added %q (%s)\n", item.Label, item.Filename)
	return nil
}
