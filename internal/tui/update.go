package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/fozzle/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.state == StateAdding {
			return m.updateForm(msg)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateAdding:
			if msg.String() == "esc" {
				m.state = m.previousState
				m.form = nil
				return m, nil
			}
			return m.updateForm(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % 3
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state + 2) % 3
			return m, nil
		}

		switch m.state {
		case StateBoard:
			return m.updateBoard(msg)
		case StateIdeas:
			return m.updateIdeas(msg)
		}
	default:
		if m.state == StateAdding {
			return m.updateForm(msg)
		}
	}

	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor[m.column] > 0 {
			m.cursor[m.column]--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor[m.column] < len(m.currentColumn())-1 {
			m.cursor[m.column]++
		}

	case key.Matches(msg, m.keys.Left):
		m.column = models.CategorySignal

	case key.Matches(msg, m.keys.Right):
		m.column = models.CategoryNoise

	case key.Matches(msg, m.keys.Toggle):
		if a, ok := m.selectedActivity(); ok {
			_, err := m.store.ToggleComplete(a.ID)
			m.refreshNotice(err)
		}

	case key.Matches(msg, m.keys.Reject):
		if a, ok := m.selectedActivity(); ok {
			_, err := m.store.ToggleReject(a.ID)
			m.refreshNotice(err)
		}

	case key.Matches(msg, m.keys.Move):
		if a, ok := m.selectedActivity(); ok {
			_, err := m.store.MoveCategory(a.ID)
			m.refreshNotice(err)
			m.clampCursors()
		}

	case key.Matches(msg, m.keys.Add):
		m.formModel = &ActivityFormModel{
			Category: m.column,
			Priority: models.PriorityWork,
		}
		m.form = newActivityForm(m.formModel)
		m.previousState = m.state
		m.state = StateAdding
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		if a, ok := m.selectedActivity(); ok {
			m.deleteID = a.ID
			m.deleteTitle = a.Title
			m.previousState = m.state
			m.state = StateConfirmDelete
		}
	}

	return m, nil
}

func (m Model) updateIdeas(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.ideaCursor > 0 {
			m.ideaCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.ideaCursor < len(m.store.Ideas())-1 {
			m.ideaCursor++
		}

	case key.Matches(msg, m.keys.Promote):
		if idea, ok := m.selectedIdea(); ok && !idea.Promoted {
			_, err := m.store.PromoteIdea(idea.ID, models.CategorySignal, models.PriorityWork)
			m.refreshNotice(err)
		}

	case key.Matches(msg, m.keys.Add):
		m.formModel = &ActivityFormModel{
			Category: models.CategorySignal,
			Priority: models.PriorityWork,
			AsIdea:   true,
		}
		m.form = newActivityForm(m.formModel)
		m.previousState = m.state
		m.state = StateAdding
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		if idea, ok := m.selectedIdea(); ok {
			m.deleteID = idea.ID
			m.deleteTitle = idea.Title
			m.previousState = m.state
			m.state = StateConfirmDelete
		}
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		fm := m.formModel
		var err error
		if fm.AsIdea {
			_, err = m.store.AddIdea(fm.Title, fm.Description)
		} else {
			_, err = m.store.CreateActivity(fm.Title, fm.Description, fm.Category, fm.Priority)
		}
		m.refreshNotice(err)
		m.state = m.previousState
		m.form = nil
		return m, nil
	}
	if m.form.State == huh.StateAborted {
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		var err error
		if m.previousState == StateIdeas {
			err = m.store.DeleteIdea(m.deleteID)
		} else {
			err = m.store.DeleteActivity(m.deleteID)
		}
		m.refreshNotice(err)
		m.clampCursors()
		m.state = m.previousState
	case "n", "N", "esc", "q":
		m.state = m.previousState
	}
	return m, nil
}
