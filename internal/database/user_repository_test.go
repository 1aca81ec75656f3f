package database

import (
	"context"
	"testing"

	"github.com/harithj/ascent/internal/models"
)

func TestCreateAndGetUser(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	repo := NewRepository(db)

	u, err := repo.CreateUser(context.Background(), "sanduni", "secret", models.RoleManager, "IT")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if u.ID == 0 {
		t.Error("Expected assigned ID, got 0")
	}

	got, err := repo.GetUserByUsername(context.Background(), "sanduni")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if got == nil || got.Role != models.RoleManager || got.Department != "IT" {
		t.Errorf("Unexpected user: %+v", got)
	}
}

func TestGetUserByUsernameAbsent(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	repo := NewRepository(db)

	got, err := repo.GetUserByUsername(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Expected no error for absent user, got %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for absent user, got %+v", got)
	}
}

func TestGetManagersFiltersByRole(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	repo := NewRepository(db)

	ctx := context.Background()
	seed := []struct {
		username string
		role     string
	}{
		{"admin", models.RoleAdmin},
		{"m1", models.RoleManager},
		{"u1", models.RoleUser},
		{"m2", models.RoleManager},
	}
	for _, s := range seed {
		if _, err := repo.CreateUser(ctx, s.username, "", s.role, ""); err != nil {
			t.Fatalf("CreateUser %q failed: %v", s.username, err)
		}
	}

	managers, err := repo.GetManagers(ctx)
	if err != nil {
		t.Fatalf("GetManagers failed: %v", err)
	}
	if len(managers) != 2 {
		t.Fatalf("Expected 2 managers, got %d", len(managers))
	}
	if managers[0].Username != "m1" || managers[1].Username != "m2" {
		t.Errorf("Unexpected managers: %+v", managers)
	}
}

func TestDepartments(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	repo := NewRepository(db)

	ctx := context.Background()
	for _, name := range []string{"Cutting", "Sewing", "Finishing"} {
		if _, err := repo.CreateDepartment(ctx, name); err != nil {
			t.Fatalf("CreateDepartment %q failed: %v", name, err)
		}
	}

	departments, err := repo.GetAllDepartments(ctx)
	if err != nil {
		t.Fatalf("GetAllDepartments failed: %v", err)
	}
	if len(departments) != 3 {
		t.Fatalf("Expected 3 departments, got %d", len(departments))
	}
	if departments[0].Name != "Cutting" {
		t.Errorf("Expected 'Cutting' first, got %q", departments[0].Name)
	}
}
