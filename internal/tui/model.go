// Package tui implements the terminal dashboard: portfolio overview,
// status board, timeline and rendered report, plus a project entry form.
package tui

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/harithj/ascent/internal/config"
	"github.com/harithj/ascent/internal/database"
	"github.com/harithj/ascent/internal/models"
	"github.com/harithj/ascent/internal/services/analytics"
	"github.com/harithj/ascent/internal/services/registry"
	"github.com/harithj/ascent/internal/session"
	"github.com/harithj/ascent/internal/tui/huhforms"
)

type viewMode int

const (
	viewOverview viewMode = iota
	viewBoard
	viewTimeline
	viewReport
	viewForm
)

var tabNames = []string{"Overview", "Board", "Timeline", "Report"}

// Model is the root bubbletea model for the dashboard.
type Model struct {
	repo     *database.Repository
	registry registry.Service
	sess     session.Context
	cfg      *config.Config

	mode     viewMode
	projects []*models.Project
	timeline table.Model

	form       *huh.Form
	formValues *huhforms.ProjectFormValues

	width  int
	height int
	err    error
	notice string
}

// InitialModel creates the dashboard model for the given repository and
// acting user.
func InitialModel(repo *database.Repository, sess session.Context, cfg *config.Config) Model {
	return Model{
		repo:     repo,
		registry: registry.NewService(repo, repo),
		sess:     sess,
		cfg:      cfg,
		mode:     viewOverview,
	}
}

type projectsLoadedMsg []*models.Project

type projectCreatedMsg *models.Project

type errMsg struct{ err error }

func (m Model) loadProjects() tea.Msg {
	projects, err := m.registry.ListProjects(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return projectsLoadedMsg(projects)
}

func (m Model) createProject(f models.Fields) tea.Cmd {
	return func() tea.Msg {
		p, err := m.registry.CreateProject(context.Background(), m.sess, f)
		if err != nil {
			return errMsg{err}
		}
		return projectCreatedMsg(p)
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadProjects
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.form != nil {
			m.form = m.form.WithWidth(min(msg.Width-4, 80))
		}
		return m, nil

	case projectsLoadedMsg:
		m.projects = msg
		m.err = nil
		m.timeline = m.buildTimelineTable()
		return m, nil

	case projectCreatedMsg:
		m.mode = viewOverview
		m.form = nil
		m.notice = fmt.Sprintf("Created project #%d: %s", msg.ID, msg.Name)
		return m, m.loadProjects

	case errMsg:
		m.err = msg.err
		if m.mode == viewForm {
			m.mode = viewOverview
			m.form = nil
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == viewForm {
			return m.updateForm(msg)
		}
		return m.updateNavigation(msg)
	}

	if m.mode == viewForm && m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab", "l", "right":
		m.mode = viewMode((int(m.mode) + 1) % len(tabNames))
		m.notice = ""
		return m, nil

	case "shift+tab", "h", "left":
		m.mode = viewMode((int(m.mode) + len(tabNames) - 1) % len(tabNames))
		m.notice = ""
		return m, nil

	case "1", "2", "3", "4":
		m.mode = viewMode(int(msg.String()[0] - '1'))
		m.notice = ""
		return m, nil

	case "n":
		if !m.sess.CanEditProjects() {
			m.notice = "Read-only account: ask an Admin or Manager to add projects"
			return m, nil
		}
		return m.openForm()

	case "r":
		m.notice = ""
		return m, m.loadProjects
	}

	if m.mode == viewTimeline {
		var cmd tea.Cmd
		m.timeline, cmd = m.timeline.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) openForm() (tea.Model, tea.Cmd) {
	managers, err := m.repo.GetManagers(context.Background())
	if err != nil {
		m.err = err
		return m, nil
	}
	names := make([]string, 0, len(managers))
	for _, u := range managers {
		names = append(names, u.Username)
	}

	m.formValues = &huhforms.ProjectFormValues{Year: m.cfg.DefaultYear}
	m.form = huhforms.CreateProjectForm(m.formValues, names)
	if m.width > 0 {
		m.form = m.form.WithWidth(min(m.width-4, 80))
	}
	m.mode = viewForm
	m.notice = ""
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.mode = viewOverview
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		values := m.formValues
		m.form = nil
		m.mode = viewOverview
		return m, m.createProject(values.Fields())
	}
	if m.form.State == huh.StateAborted {
		m.form = nil
		m.mode = viewOverview
		return m, nil
	}
	return m, cmd
}

// buildTimelineTable converts the schedulable projects into a bubbles
// table, earliest start first.
func (m Model) buildTimelineTable() table.Model {
	entries := analytics.Timeline(m.projects)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start.Before(entries[j].Start)
	})

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			e.Name,
			e.Start.Format("2006-01-02"),
			e.End.Format("2006-01-02"),
			e.Status,
		})
	}

	columns := []table.Column{
		{Title: "Project", Width: 40},
		{Title: "Start", Width: 12},
		{Title: "End", Width: 12},
		{Title: "Status", Width: 20},
	}

	height := len(rows)
	if height > 15 {
		height = 15
	}
	if height < 1 {
		height = 1
	}

	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)
}

// Run starts the dashboard program and blocks until the user quits.
func Run(repo *database.Repository, sess session.Context, cfg *config.Config) error {
	p := tea.NewProgram(InitialModel(repo, sess, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

// now is stubbed in tests.
var now = time.Now
