package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/fozzle/internal/constants"
)

var (
	scoreGoodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	scoreLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func renderScore(score float64) string {
	s := fmt.Sprintf("%.0f%%", score)
	if score >= constants.ScoreThreshold {
		return scoreGoodStyle.Render(s)
	}
	return scoreLowStyle.Render(s)
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	stats := ctx.Store.Stats()
	streak := ctx.Store.Streak()
	goal := ctx.Store.Settings().DailyGoal

	fmt.Printf("Today's score: %s\n", renderScore(stats.Score))
	fmt.Printf("  Signal completed: %d\n", stats.SignalCompleted)
	fmt.Printf("  Noise completed:  %d\n", stats.NoiseCompleted)
	fmt.Printf("  Noise rejected:   %d\n", stats.Rejected)
	fmt.Printf("  Goal progress:    %d/%d\n", stats.TotalCompleted, goal)
	if streak > 0 {
		fmt.Printf("  Streak:           %d days\n", streak)
	}
	return nil
}

type WeekCmd struct{}

func (c *WeekCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	week := ctx.Store.Week()

	fmt.Printf("Week of %s\n\n", week.Monday.Format(constants.DateFormat))

	header := fmt.Sprintf("  %-10s %-6s %7s %7s %7s", "Day", "Score", "Signal", "Noise", "Reject")
	fmt.Println(dimStyle.Render(header))
	fmt.Println(dimStyle.Render("  " + strings.Repeat("-", len(header)-2)))

	for _, day := range week.Days {
		score := "-"
		if day.Active {
			score = fmt.Sprintf("%.0f%%", day.Score)
		}
		fmt.Printf("  %-10s %-6s %7d %7d %7d\n",
			day.Date.Weekday().String()[:3], score,
			day.SignalCompleted, day.NoiseCompleted, day.Rejected)
	}

	fmt.Println()
	if week.ActiveDays == 0 {
		fmt.Println("No active days this week yet")
		return nil
	}
	fmt.Printf("Weekly average: %s over %d active day(s)\n", renderScore(week.Average), week.ActiveDays)
	return nil
}
