package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/harithj/ascent/internal/models"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory database and runs migrations
// This is the unified test database setup used by all tests
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Enable foreign key constraints
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// testFields returns a complete set of project fields with the given
// name; individual tests override what they need.
func testFields(name string) models.Fields {
	return models.Fields{
		Name:           name,
		Year:           "2025-2026",
		Pillar:         "Digital Factory",
		MainCategory:   "Real-Time Data & Analytics",
		SubCategory:    "AI-Based Decision Making",
		Dimension:      "Predictive Analytics",
		ActionPlan:     "Roll out shop-floor dashboards",
		StartDate:      "2025-01-15",
		EndDate:        "2025-09-30",
		Captain:        "nimal",
		Leaders:        "kasun, ruwan",
		Owners:         "planning",
		Status:         models.StatusInProgress,
		CompletionRate: 40,
		Comments:       "on track",
		Remark:         "",
		Manager:        "sanduni",
	}
}

// mustCreateProject inserts a project or fails the test.
func mustCreateProject(t *testing.T, repo *Repository, f models.Fields) *models.Project {
	t.Helper()
	p, err := repo.CreateProject(context.Background(), f)
	if err != nil {
		t.Fatalf("Failed to create project %q: %v", f.Name, err)
	}
	return p
}
