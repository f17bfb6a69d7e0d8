package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type ResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	activities := len(ctx.Store.Activities())
	ideas := len(ctx.Store.Ideas())
	if activities == 0 && ideas == 0 {
		fmt.Println("Nothing to reset")
		return nil
	}

	if !c.Force {
		confirmed := false
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Delete %d activities and %d ideas?", activities, ideas)).
			Description("This cannot be undone. Settings are kept.").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted")
			return nil
		}
	}

	if err := ctx.Store.Reset(); err != nil {
		return err
	}
	if err := ctx.notifier().ClearGate(); err != nil {
		return err
	}

	fmt.Println("All activities and ideas deleted")
	return nil
}
