package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harithj/ascent/internal/config"
	"github.com/harithj/ascent/internal/database"
	"github.com/harithj/ascent/internal/models"
	"github.com/harithj/ascent/internal/session"
)

func setupModel(t *testing.T, sess session.Context) Model {
	t.Helper()

	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{DefaultYear: "2025-2026", ReportWidth: 100}
	return InitialModel(database.NewRepository(db), sess, cfg)
}

func adminSession() session.Context {
	return session.Context{Username: "admin", Role: models.RoleAdmin}
}

func TestInitialModelStartsOnOverview(t *testing.T) {
	m := setupModel(t, adminSession())
	if m.mode != viewOverview {
		t.Errorf("mode = %d, want overview", m.mode)
	}
}

func TestProjectsLoadedBuildsSortedTimeline(t *testing.T) {
	m := setupModel(t, adminSession())

	projects := []*models.Project{
		{Name: "Later", StartDate: "2025-06-01", EndDate: "2025-12-31", Status: models.StatusNotStarted},
		{Name: "Earlier", StartDate: "2025-01-01", EndDate: "2025-03-31", Status: models.StatusCompleted},
		{Name: "No dates", Status: models.StatusInProgress},
	}

	updated, _ := m.Update(projectsLoadedMsg(projects))
	m = updated.(Model)

	rows := m.timeline.Rows()
	if len(rows) != 2 {
		t.Fatalf("timeline rows = %d, want 2 (undated project excluded)", len(rows))
	}
	if rows[0][0] != "Earlier" || rows[1][0] != "Later" {
		t.Errorf("timeline not sorted by start date: %v", rows)
	}
}

func TestTabNavigationWraps(t *testing.T) {
	m := setupModel(t, adminSession())

	for i := 0; i < len(tabNames); i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(Model)
	}
	if m.mode != viewOverview {
		t.Errorf("mode after full tab cycle = %d, want overview", m.mode)
	}
}

func TestNumberKeysJumpToView(t *testing.T) {
	m := setupModel(t, adminSession())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	m = updated.(Model)
	if m.mode != viewTimeline {
		t.Errorf("mode = %d, want timeline", m.mode)
	}
}

func TestReadOnlyUserCannotOpenForm(t *testing.T) {
	m := setupModel(t, session.Context{Username: "viewer", Role: models.RoleUser})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = updated.(Model)
	if m.mode == viewForm {
		t.Error("read-only user should not reach the entry form")
	}
	if m.notice == "" {
		t.Error("expected a read-only notice")
	}
}

func TestAdminOpensForm(t *testing.T) {
	m := setupModel(t, adminSession())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = updated.(Model)
	if m.mode != viewForm {
		t.Errorf("mode = %d, want form", m.mode)
	}
	if m.form == nil {
		t.Fatal("form should be initialized")
	}
	if m.formValues.Year != "2025-2026" {
		t.Errorf("form year default = %q, want config default", m.formValues.Year)
	}
}

func TestBoardColumnBucketsFreeText(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{models.StatusNotStarted, models.StatusNotStarted},
		{models.StatusCompleted, models.StatusCompleted},
		{"Phase 2 pending", "Other"},
		{"", "Other"},
	}
	for _, tt := range tests {
		if got := boardColumn(tt.status); got != tt.want {
			t.Errorf("boardColumn(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestViewShowsTabsAndHelp(t *testing.T) {
	m := setupModel(t, adminSession())

	updated, _ := m.Update(projectsLoadedMsg([]*models.Project{
		{Name: "ERP Migration", Status: models.StatusInProgress, CompletionRate: 40},
	}))
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{"Overview", "Board", "Timeline", "Report", "q: quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
