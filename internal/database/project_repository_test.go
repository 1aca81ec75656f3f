package database

import (
	"context"
	"errors"
	"testing"

	"github.com/harithj/ascent/internal/models"
)

func TestCreateProject(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	repo := NewRepository(db)

	p := mustCreateProject(t, repo, testFields("MES Rollout"))

	if p.ID == 0 {
		t.Error("Expected assigned ID, got 0")
	}
	if p.Name != "MES Rollout" {
		t.Errorf("Expected name 'MES Rollout', got %q", p.Name)
	}
	if p.Status != models.StatusInProgress {
		t.Errorf("Expected status %q, got %q", models.StatusInProgress, p.Status)
	}
	if p.CompletionRate != 40 {
		t.Errorf("Expected completion rate 40, got %v", p.CompletionRate)
	}
}

func TestCreateProjectAllowsDuplicateNames(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	repo := NewRepository(db)

	first := mustCreateProject(t, repo, testFields("Twin"))
	second := mustCreateProject(t, repo, testFields("Twin"))

	if first.ID == second.ID {
		t.Error("Expected distinct IDs for duplicate names")
	}

	// Name lookup returns the first match in insertion order
	found, err := repo.GetProjectByName(context.Background(), "Twin")
	if err != nil {
		t.Fatalf("GetProjectByName failed: %v", err)
	}
	if found == nil || found.ID != first.ID {
		t.Errorf("Expected first-inserted project, got %+v", found)
	}
}

func TestGetProjectByNameAbsent(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	repo := NewRepository(db)

	found, err := repo.GetProjectByName(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Expected no error for absent name, got %v", err)
	}
	if found != nil {
		t.Errorf("Expected nil for absent name, got %+v", found)
	}
}

func TestGetAllProjectsInsertionOrder(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	repo := NewRepository(db)

	names := []string{"Alpha", "Beta", "Gamma"}
	for _, n := range names {
		mustCreateProject(t, repo, testFields(n))
	}

	all, err := repo.GetAllProjects(context.Background())
	if err != nil {
		t.Fatalf("GetAllProjects failed: %v", err)
	}
	if len(all) != len(names) {
		t.Fatalf("Expected %d projects, got %d", len(names), len(all))
	}
	for i, n := range names {
		if all[i].Name != n {
			t.Errorf("Position %d: expected %q, got %q", i, n, all[i].Name)
		}
	}
}

func TestUpdateProjectFullReplace(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	repo := NewRepository(db)

	p := mustCreateProject(t, repo, testFields("Rename Me"))

	f := testFields("Renamed")
	f.Status = models.StatusCompleted
	f.CompletionRate = 100
	f.EndDate = "2025-06-01"

	if err := repo.UpdateProject(context.Background(), p.ID, f); err != nil {
		t.Fatalf("UpdateProject failed: %v", err)
	}

	got, err := repo.GetProjectByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("GetProjectByID failed: %v", err)
	}
	if got.Name != "Renamed" {
		t.Errorf("Expected name 'Renamed', got %q", got.Name)
	}
	if got.Status != models.StatusCompleted {
		t.Errorf("Expected status Completed, got %q", got.Status)
	}
	if got.CompletionRate != 100 {
		t.Errorf("Expected completion rate 100, got %v", got.CompletionRate)
	}
	if got.EndDate != "2025-06-01" {
		t.Errorf("Expected end date 2025-06-01, got %q", got.EndDate)
	}
}

func TestUpdateProjectNotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	repo := NewRepository(db)

	err := repo.UpdateProject(context.Background(), 9999, testFields("Ghost"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestUpdateProjectStatusPartial(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	repo := NewRepository(db)

	p := mustCreateProject(t, repo, testFields("Status Only"))

	if err := repo.UpdateProjectStatus(context.Background(), p.ID, models.StatusRunning); err != nil {
		t.Fatalf("UpdateProjectStatus failed: %v", err)
	}

	got, err := repo.GetProjectByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("GetProjectByID failed: %v", err)
	}
	if got.Status != models.StatusRunning {
		t.Errorf("Expected status Running, got %q", got.Status)
	}
	// Everything else untouched
	if got.Name != "Status Only" || got.CompletionRate != 40 || got.Manager != "sanduni" {
		t.Errorf("Status update modified other fields: %+v", got)
	}
}

func TestUpdateProjectStatusNotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	repo := NewRepository(db)

	err := repo.UpdateProjectStatus(context.Background(), 4242, models.StatusCompleted)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestStatusNotAStateMachine(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	repo := NewRepository(db)

	f := testFields("Backwards")
	f.Status = models.StatusCompleted
	p := mustCreateProject(t, repo, f)

	// Completed back to Not Started is allowed by direct edit
	if err := repo.UpdateProjectStatus(context.Background(), p.ID, models.StatusNotStarted); err != nil {
		t.Fatalf("Expected backwards status change to succeed, got %v", err)
	}

	got, err := repo.GetProjectByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("GetProjectByID failed: %v", err)
	}
	if got.Status != models.StatusNotStarted {
		t.Errorf("Expected status Not Started, got %q", got.Status)
	}
}

func TestUnparseableDateStoredAsRawText(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	repo := NewRepository(db)

	f := testFields("Raw Dates")
	f.StartDate = ""
	f.EndDate = "sometime next year"
	p := mustCreateProject(t, repo, f)

	got, err := repo.GetProjectByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("GetProjectByID failed: %v", err)
	}
	if got.StartDate != "" {
		t.Errorf("Expected blank start date, got %q", got.StartDate)
	}
	if got.EndDate != "sometime next year" {
		t.Errorf("Expected raw end date text, got %q", got.EndDate)
	}
}
