package cli

import (
	"fmt"

	"github.com/julianstephens/fozzle/internal/models"
	"github.com/julianstephens/fozzle/internal/store"
)

type ActivityEditCmd struct {
	Ref         string `arg:"" help:"Activity ID, ID prefix, or title."`
	Title       string `short:"t" help:"New title."`
	Description string `short:"d" help:"New description."`
	Priority    string `short:"p" help:"New priority tag (work|home|social)."`
}

func (c *ActivityEditCmd) Validate() error {
	if c.Title == "" && c.Description == "" && c.Priority == "" {
		return fmt.Errorf("nothing to change: pass --title, --description or --priority")
	}
	return nil
}

func (c *ActivityEditCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	a, err := resolveActivity(ctx.Store.Activities(), c.Ref)
	if err != nil {
		return err
	}

	var upd store.ActivityUpdate
	if c.Title != "" {
		upd.Title = &c.Title
	}
	if c.Description != "" {
		upd.Description = &c.Description
	}
	if c.Priority != "" {
		priority, err := models.ParsePriority(c.Priority)
		if err != nil {
			return err
		}
		upd.Priority = &priority
	}

	updated, err := ctx.Store.UpdateActivity(a.ID, upd)
	if err != nil {
		return err
	}

	fmt.Printf("Updated: %s\n", updated.Title)
	return nil
}

type ActivityDeleteCmd struct {
	Ref string `arg:"" help:"Activity ID, ID prefix, or title."`
}

func (c *ActivityDeleteCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	a, err := resolveActivity(ctx.Store.Activities(), c.Ref)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteActivity(a.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted: %s\n", a.Title)
	return nil
}

type ActivityReorderCmd struct {
	Category string   `arg:"" help:"Category column to reorder (signal|noise)."`
	Refs     []string `arg:"" help:"Activity IDs, prefixes or titles in the new order."`
}

func (c *ActivityReorderCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	category, err := models.ParseCategory(c.Category)
	if err != nil {
		return err
	}

	activities := ctx.Store.Activities()
	ids := make([]string, 0, len(c.Refs))
	for _, ref := range c.Refs {
		a, err := resolveActivity(activities, ref)
		if err != nil {
			return err
		}
		ids = append(ids, a.ID)
	}

	if err := ctx.Store.Reorder(category, ids); err != nil {
		return err
	}

	fmt.Printf("Reordered %s column\n", category)
	return nil
}
