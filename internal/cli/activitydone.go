package cli

import "fmt"

type ActivityDoneCmd struct {
	Ref string `arg:"" help:"Activity ID, ID prefix, or title."`
}

func (c *ActivityDoneCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	a, err := resolveActivity(ctx.Store.Activities(), c.Ref)
	if err != nil {
		return err
	}

	updated, err := ctx.Store.ToggleComplete(a.ID)
	if err != nil {
		return err
	}

	if updated.Completed {
		fmt.Printf("Completed: %s\n", updated.Title)
	} else {
		fmt.Printf("Reopened: %s\n", updated.Title)
	}
	return nil
}

type ActivityRejectCmd struct {
	Ref string `arg:"" help:"Activity ID, ID prefix, or title."`
}

func (c *ActivityRejectCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	a, err := resolveActivity(ctx.Store.Activities(), c.Ref)
	if err != nil {
		return err
	}

	updated, err := ctx.Store.ToggleReject(a.ID)
	if err != nil {
		return err
	}

	if updated.Rejected {
		fmt.Printf("Rejected: %s (that's a win)\n", updated.Title)
	} else {
		fmt.Printf("Unrejected: %s\n", updated.Title)
	}
	return nil
}

type ActivityMoveCmd struct {
	Ref string `arg:"" help:"Activity ID, ID prefix, or title."`
}

func (c *ActivityMoveCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	a, err := resolveActivity(ctx.Store.Activities(), c.Ref)
	if err != nil {
		return err
	}

	moved, err := ctx.Store.MoveCategory(a.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Moved %q to %s\n", moved.Title, moved.Category)
	return nil
}
