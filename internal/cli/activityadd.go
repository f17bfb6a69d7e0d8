package cli

import (
	"fmt"

	"github.com/julianstephens/fozzle/internal/models"
)

type ActivityAddCmd struct {
	Title       string `arg:"" help:"Activity title."`
	Category    string `short:"c" help:"Category (signal|noise)." default:"signal"`
	Priority    string `short:"p" help:"Priority tag (work|home|social)." default:"work"`
	Description string `short:"d" help:"Optional description."`
}

func (c *ActivityAddCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	category, err := models.ParseCategory(c.Category)
	if err != nil {
		return err
	}
	priority, err := models.ParsePriority(c.Priority)
	if err != nil {
		return err
	}

	a, err := ctx.Store.CreateActivity(c.Title, c.Description, category, priority)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s activity: %s (ID: %s)\n", a.Category, a.Title, shortID(a.ID))
	return nil
}
