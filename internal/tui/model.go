package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/fozzle/internal/models"
	"github.com/julianstephens/fozzle/internal/store"
)

type SessionState int

const (
	StateBoard SessionState = iota
	StateIdeas
	StateWeek
	StateAdding
	StateConfirmDelete
)

// ActivityFormModel backs the add form for both activities and ideas.
type ActivityFormModel struct {
	Title       string
	Description string
	Category    models.Category
	Priority    models.Priority
	AsIdea      bool
}

type Model struct {
	store *store.Store
	// drainNotices pulls freshly emitted notification lines for the footer.
	drainNotices func() []string

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	column      models.Category
	cursor      map[models.Category]int
	ideaCursor  int
	form        *huh.Form
	formModel   *ActivityFormModel
	deleteID    string
	deleteTitle string
	notice      string
	quitting    bool
	width       int
	height      int
}

func NewModel(s *store.Store, drainNotices func() []string) Model {
	if drainNotices == nil {
		drainNotices = func() []string { return nil }
	}
	m := Model{
		store:        s,
		drainNotices: drainNotices,
		state:        StateBoard,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		column:       models.CategorySignal,
		cursor: map[models.Category]int{
			models.CategorySignal: 0,
			models.CategoryNoise:  0,
		},
	}
	// Surface any notice emitted by the start-of-session check.
	m.refreshNotice(nil)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) currentColumn() []models.Activity {
	return m.store.ActivitiesByCategory(m.column)
}

func (m *Model) selectedActivity() (models.Activity, bool) {
	column := m.currentColumn()
	i := m.cursor[m.column]
	if i < 0 || i >= len(column) {
		return models.Activity{}, false
	}
	return column[i], true
}

func (m *Model) selectedIdea() (models.Idea, bool) {
	ideas := m.store.Ideas()
	if m.ideaCursor < 0 || m.ideaCursor >= len(ideas) {
		return models.Idea{}, false
	}
	return ideas[m.ideaCursor], true
}

func (m *Model) clampCursors() {
	for _, cat := range []models.Category{models.CategorySignal, models.CategoryNoise} {
		n := len(m.store.ActivitiesByCategory(cat))
		if m.cursor[cat] >= n {
			m.cursor[cat] = n - 1
		}
		if m.cursor[cat] < 0 {
			m.cursor[cat] = 0
		}
	}
	if n := len(m.store.Ideas()); m.ideaCursor >= n {
		m.ideaCursor = n - 1
	}
	if m.ideaCursor < 0 {
		m.ideaCursor = 0
	}
}

// refreshNotice surfaces the most recent notification, or an error.
func (m *Model) refreshNotice(err error) {
	if err != nil {
		m.notice = dangerStyle.Render(err.Error())
		return
	}
	if lines := m.drainNotices(); len(lines) > 0 {
		m.notice = lines[len(lines)-1]
	}
}

func newActivityForm(fm *ActivityFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
			huh.NewConfirm().
				Title("Capture as idea?").
				Description("Ideas sit outside the board until promoted").
				Value(&fm.AsIdea),
			huh.NewSelect[models.Category]().
				Title("Category").
				Options(
					huh.NewOption("Signal", models.CategorySignal),
					huh.NewOption("Noise", models.CategoryNoise),
				).
				Value(&fm.Category),
			huh.NewSelect[models.Priority]().
				Title("Priority").
				Options(
					huh.NewOption("Work", models.PriorityWork),
					huh.NewOption("Home", models.PriorityHome),
					huh.NewOption("Social", models.PrioritySocial),
				).
				Value(&fm.Priority),
		),
	).WithTheme(huh.ThemeDracula())
}
