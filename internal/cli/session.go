package cli

import (
	"fmt"

	"github.com/julianstephens/fozzle/internal/timeutil"
)

// SessionCmd runs the start-of-session check: the once-per-day welcome-back or
// missed-return notice, depending on yesterday's score.
type SessionCmd struct{}

func (c *SessionCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}
	if !ctx.Store.Settings().NotificationsEnabled {
		return nil
	}

	now, err := timeutil.NowInTimezone(ctx.Store.Settings().Timezone)
	if err != nil {
		return err
	}
	if err := ctx.notifier().Run(ctx.Store.Activities(), now); err != nil {
		return err
	}
	if len(ctx.Emitter.Drain()) == 0 {
		fmt.Println("Nothing to report. Have a good one.")
	}
	return nil
}
