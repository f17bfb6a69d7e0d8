package cli

import (
	"fmt"

	"github.com/julianstephens/fozzle/internal/models"
)

type ActivityListCmd struct {
	Category string `short:"c" help:"Show only one category (signal|noise)."`
	All      bool   `short:"a" help:"Include completed and rejected activities."`
}

func (c *ActivityListCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	categories := []models.Category{models.CategorySignal, models.CategoryNoise}
	if c.Category != "" {
		cat, err := models.ParseCategory(c.Category)
		if err != nil {
			return err
		}
		categories = []models.Category{cat}
	}

	empty := true
	for _, cat := range categories {
		column := ctx.Store.ActivitiesByCategory(cat)
		if len(column) == 0 {
			continue
		}
		empty = false

		fmt.Printf("%s:\n", titleCase(string(cat)))
		for _, a := range column {
			if !c.All && (a.Completed || a.Rejected) {
				continue
			}
			fmt.Printf("  %s\n", formatActivityLine(a))
		}
	}
	if empty {
		fmt.Println("No activities yet. Add one with 'fozzle activity add'.")
	}
	return nil
}

func formatActivityLine(a models.Activity) string {
	marker := "[ ]"
	switch {
	case a.Completed:
		marker = "[x]"
	case a.Rejected:
		marker = "[-]"
	}
	line := fmt.Sprintf("%s %s (%s, %s)", marker, a.Title, a.Priority, shortID(a.ID))
	if a.Description != "" {
		line += "\n      " + a.Description
	}
	return line
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
