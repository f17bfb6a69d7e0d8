package cli

import (
	"fmt"

	"github.com/julianstephens/fozzle/internal/models"
)

type IdeaAddCmd struct {
	Title       string `arg:"" help:"Idea title."`
	Description string `short:"d" help:"Optional description."`
}

func (c *IdeaAddCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	idea, err := ctx.Store.AddIdea(c.Title, c.Description)
	if err != nil {
		return err
	}

	fmt.Printf("Captured idea: %s (ID: %s)\n", idea.Title, shortID(idea.ID))
	return nil
}

type IdeaListCmd struct {
	All bool `short:"a" help:"Include promoted ideas."`
}

func (c *IdeaListCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	ideas := ctx.Store.Ideas()
	if len(ideas) == 0 {
		fmt.Println("No ideas captured yet")
		return nil
	}

	fmt.Println("Ideas:")
	shown := 0
	for _, idea := range ideas {
		if !c.All && idea.Promoted {
			continue
		}
		shown++
		marker := " "
		if idea.Promoted {
			marker = "^"
		}
		fmt.Printf("  [%s] %s (%s)\n", marker, idea.Title, shortID(idea.ID))
		if idea.Description != "" {
			fmt.Printf("      %s\n", idea.Description)
		}
	}
	if shown == 0 {
		fmt.Println("  (all promoted; pass --all to see them)")
	}
	return nil
}

type IdeaEditCmd struct {
	Ref         string `arg:"" help:"Idea ID, ID prefix, or title."`
	Title       string `short:"t" help:"New title."`
	Description string `short:"d" help:"New description."`
}

func (c *IdeaEditCmd) Validate() error {
	if c.Title == "" && c.Description == "" {
		return fmt.Errorf("nothing to change: pass --title or --description")
	}
	return nil
}

func (c *IdeaEditCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	idea, err := resolveIdea(ctx.Store.Ideas(), c.Ref)
	if err != nil {
		return err
	}

	title := idea.Title
	if c.Title != "" {
		title = c.Title
	}
	description := idea.Description
	if c.Description != "" {
		description = c.Description
	}

	updated, err := ctx.Store.UpdateIdea(idea.ID, title, description)
	if err != nil {
		return err
	}

	fmt.Printf("Updated idea: %s\n", updated.Title)
	return nil
}

type IdeaPromoteCmd struct {
	Ref      string `arg:"" help:"Idea ID, ID prefix, or title."`
	Category string `short:"c" help:"Category for the new activity (signal|noise)." default:"signal"`
	Priority string `short:"p" help:"Priority tag for the new activity (work|home|social)." default:"work"`
}

func (c *IdeaPromoteCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	idea, err := resolveIdea(ctx.Store.Ideas(), c.Ref)
	if err != nil {
		return err
	}
	if idea.Promoted {
		fmt.Printf("Idea %q is already promoted\n", idea.Title)
		return nil
	}

	category, err := models.ParseCategory(c.Category)
	if err != nil {
		return err
	}
	priority, err := models.ParsePriority(c.Priority)
	if err != nil {
		return err
	}

	a, err := ctx.Store.PromoteIdea(idea.ID, category, priority)
	if err != nil {
		return err
	}

	fmt.Printf("Promoted %q to a %s activity (ID: %s)\n", a.Title, a.Category, shortID(a.ID))
	return nil
}

type IdeaDeleteCmd struct {
	Ref string `arg:"" help:"Idea ID, ID prefix, or title."`
}

func (c *IdeaDeleteCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	idea, err := resolveIdea(ctx.Store.Ideas(), c.Ref)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteIdea(idea.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted idea: %s\n", idea.Title)
	return nil
}
