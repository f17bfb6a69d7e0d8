package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/fozzle/internal/timeutil"
	"github.com/julianstephens/fozzle/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	// Signals render inside the TUI footer, not on stdout.
	ctx.Emitter.Silent = true

	// Run the start-of-session notice check before the first frame.
	if ctx.Store.Settings().NotificationsEnabled {
		now, err := timeutil.NowInTimezone(ctx.Store.Settings().Timezone)
		if err != nil {
			return err
		}
		if err := ctx.notifier().Run(ctx.Store.Activities(), now); err != nil {
			return err
		}
	}

	drain := func() []string {
		var lines []string
		for _, sig := range ctx.Emitter.Drain() {
			lines = append(lines, Render(sig.Signal, sig.Payload))
		}
		return lines
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store, drain), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
