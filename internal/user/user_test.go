package user

import (
	"context"
	"testing"

	"github.com/harithj/ascent/internal/database"
	"github.com/harithj/ascent/internal/models"
)

func TestGetCurrentUsername(t *testing.T) {
	username := GetCurrentUsername()
	if username == "" {
		t.Error("GetCurrentUsername() should never return an empty string")
	}
}

func setupRepo(t *testing.T) *database.Repository {
	t.Helper()

	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return database.NewRepository(db)
}

func TestResolveSessionRegisteredManager(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	if _, err := repo.CreateUser(ctx, "farah", "secret", models.RoleManager, "Operations"); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	sess, err := ResolveSession(ctx, repo, "farah")
	if err != nil {
		t.Fatalf("ResolveSession failed: %v", err)
	}
	if sess.Username != "farah" {
		t.Errorf("Username = %q, want farah", sess.Username)
	}
	if sess.Role != models.RoleManager {
		t.Errorf("Role = %q, want %q", sess.Role, models.RoleManager)
	}
	if !sess.CanEditProjects() {
		t.Error("manager should be allowed to edit projects")
	}
}

func TestResolveSessionUnregisteredUserIsReadOnly(t *testing.T) {
	repo := setupRepo(t)

	sess, err := ResolveSession(context.Background(), repo, "stranger")
	if err != nil {
		t.Fatalf("ResolveSession failed: %v", err)
	}
	if sess.Role != models.RoleUser {
		t.Errorf("Role = %q, want %q", sess.Role, models.RoleUser)
	}
	if sess.CanEditProjects() {
		t.Error("unregistered user should be read-only")
	}
}

func TestResolveSessionDefaultsToOSUsername(t *testing.T) {
	repo := setupRepo(t)

	sess, err := ResolveSession(context.Background(), repo, "")
	if err != nil {
		t.Fatalf("ResolveSession failed: %v", err)
	}
	if sess.Username == "" {
		t.Error("resolved username should never be empty")
	}
}
