package cli

import (
	"context"
	"fmt"

	"pictoplan/internal/arasaac"
)

type SearchCmd struct {
	Keyword string `arg:"" help:"Search keyword."`
	Lang    string `short:"L" default:"en" help:"Language code (sv is answered from the bundled dictionary)."`
}

func (c *SearchCmd) Run(ctx *Context) error {
	results, err := ctx.Client.Search(context.Background(), c.Keyword, c.Lang)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Printf("No pictograms found for %q.\n", c.Keyword)
		return nil
	}

	fmt.Printf("%d pictograms for %q:\n\n", len(results), c.Keyword)
	for _, p := range results {
		fmt.Printf("  %6d  %s\n", p.ID, p.BestKeyword(c.Lang))
	}
	fmt.Println()
	fmt.Println(arasaac.Attribution)
	fmt.Println("Add one with 'pictoplan library fetch <id>'.")
	return nil
}
