package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/fozzle/internal/constants"
	"github.com/julianstephens/fozzle/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateBoard:
		content = m.viewBoard()
	case StateIdeas:
		content = m.viewIdeas()
	case StateWeek:
		content = m.viewWeek()
	case StateAdding:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewFooter(),
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Board", "Ideas", "Week"} {
		state := m.state
		if state == StateAdding || state == StateConfirmDelete {
			state = m.previousState
		}
		if state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewBoard() string {
	signal := m.viewColumn(models.CategorySignal, "Signal")
	noise := m.viewColumn(models.CategoryNoise, "Noise")
	return docStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, signal, " ", noise))
}

func (m Model) viewColumn(cat models.Category, title string) string {
	var b strings.Builder
	b.WriteString(columnTitleStyle.Render(title))
	b.WriteString("\n\n")

	column := m.store.ActivitiesByCategory(cat)
	if len(column) == 0 {
		b.WriteString(dimStyle.Render("(empty)"))
	}
	for i, a := range column {
		line := activityLine(a)
		if cat == m.column && i == m.cursor[cat] && m.state == StateBoard {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	width := 36
	if m.width > 80 {
		width = (m.width - 10) / 2
	}
	style := columnStyle
	if cat == m.column {
		style = focusedColumnStyle
	}
	return style.Width(width).Render(b.String())
}

func activityLine(a models.Activity) string {
	switch {
	case a.Completed:
		return doneStyle.Render("✓ " + a.Title)
	case a.Rejected:
		return rejectedStyle.Render("✗ " + a.Title)
	default:
		return fmt.Sprintf("%s %s", a.Title, dimStyle.Render("("+string(a.Priority)+")"))
	}
}

func (m Model) viewIdeas() string {
	var b strings.Builder
	b.WriteString(columnTitleStyle.Render("Someday / Maybe"))
	b.WriteString("\n\n")

	ideas := m.store.Ideas()
	if len(ideas) == 0 {
		b.WriteString(dimStyle.Render("No ideas captured yet. Press 'a' to add one."))
	}
	for i, idea := range ideas {
		line := idea.Title
		if idea.Promoted {
			line = dimStyle.Render(line + " (promoted)")
		}
		if i == m.ideaCursor && m.state == StateIdeas {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) viewWeek() string {
	week := m.store.Week()

	var b strings.Builder
	b.WriteString(columnTitleStyle.Render("Week of " + week.Monday.Format(constants.DateFormat)))
	b.WriteString("\n\n")

	for _, day := range week.Days {
		score := dimStyle.Render("   -")
		if day.Active {
			score = fmt.Sprintf("%3.0f%%", day.Score)
			if day.Score >= constants.ScoreThreshold {
				score = scoreStyle.Render(score)
			}
		}
		b.WriteString(fmt.Sprintf("  %-3s %s  %s\n",
			day.Date.Weekday().String()[:3], score, bar(day.Score, day.Active)))
	}

	b.WriteString("\n")
	if week.ActiveDays > 0 {
		b.WriteString(fmt.Sprintf("  Average: %.0f%% over %d active day(s)\n", week.Average, week.ActiveDays))
	} else {
		b.WriteString(dimStyle.Render("  No active days yet this week\n"))
	}

	return docStyle.Render(b.String())
}

func bar(score float64, active bool) string {
	if !active {
		return ""
	}
	filled := int(score / 5)
	return scoreStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", 20-filled))
}

func (m Model) viewFooter() string {
	stats := m.store.Stats()
	streak := m.store.Streak()
	goal := m.store.Settings().DailyGoal

	parts := []string{
		fmt.Sprintf("Score %s", scoreStyle.Render(fmt.Sprintf("%.0f%%", stats.Score))),
		fmt.Sprintf("Done %d/%d", stats.TotalCompleted, goal),
		fmt.Sprintf("Rejected %d", stats.Rejected),
	}
	if streak > 0 {
		parts = append(parts, fmt.Sprintf("Streak %dd", streak))
	}
	footer := "  " + strings.Join(parts, dimStyle.Render("  ·  "))

	if m.notice != "" {
		footer += "\n  " + noticeStyle.Render(m.notice)
	}
	return footer
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q?", m.deleteTitle)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
