package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/fozzle/internal/notify"
)

var (
	celebrationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)
	welcomeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
	missedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// ConsoleEmitter renders notification signals to stdout. It also buffers the
// signals so the TUI can drain and display them in its own frame.
type ConsoleEmitter struct {
	// Silent suppresses printing; signals are still buffered.
	Silent bool

	buffered []BufferedSignal
}

type BufferedSignal struct {
	Signal  notify.Signal
	Payload notify.Payload
}

func (e *ConsoleEmitter) Emit(sig notify.Signal, payload notify.Payload) {
	e.buffered = append(e.buffered, BufferedSignal{Signal: sig, Payload: payload})
	if e.Silent {
		return
	}
	fmt.Println(Render(sig, payload))
}

// Drain returns and clears the buffered signals.
func (e *ConsoleEmitter) Drain() []BufferedSignal {
	out := e.buffered
	e.buffered = nil
	return out
}

// Render formats a signal for terminal display.
func Render(sig notify.Signal, payload notify.Payload) string {
	switch sig {
	case notify.SignalCelebration:
		return celebrationStyle.Render(fmt.Sprintf(
			"Nice! Your score hit %.0f%% (%d of %d completions were signal)",
			payload.Score, payload.SignalCompleted, payload.TotalCompleted))
	case notify.SignalWelcomeBack:
		msg := "Welcome back! Yesterday counted."
		if payload.Streak > 1 {
			msg = fmt.Sprintf("Welcome back! You're on a %d-day streak.", payload.Streak)
		}
		return welcomeStyle.Render(fmt.Sprintf("%s Weekly average: %.0f%%", msg, payload.WeeklyAverage))
	case notify.SignalMissedReturn:
		return missedStyle.Render("Yesterday slipped by. Today is a fresh start.")
	default:
		return string(sig)
	}
}
