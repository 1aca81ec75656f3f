// Package registry implements the project registry business operations:
// direct entry, full-replace updates, status-only updates, and lookups.
// Import reconciliation has its own service; this package covers what an
// operator does by hand.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/harithj/ascent/internal/database"
	"github.com/harithj/ascent/internal/models"
	"github.com/harithj/ascent/internal/session"
)

// Service defines all registry business operations
type Service interface {
	// Read operations
	ListProjects(ctx context.Context) ([]*models.Project, error)
	GetProject(ctx context.Context, id int) (*models.Project, error)
	FindByName(ctx context.Context, name string) (*models.Project, error)

	// Write operations
	CreateProject(ctx context.Context, sess session.Context, f models.Fields) (*models.Project, error)
	UpdateProject(ctx context.Context, sess session.Context, id int, f models.Fields) error
	SetStatus(ctx context.Context, sess session.Context, id int, status string) error
}

// repository defines the data access methods needed by the registry service
// This interface is private to the service layer
type repository interface {
	CreateProject(ctx context.Context, f models.Fields) (*models.Project, error)
	GetProjectByID(ctx context.Context, id int) (*models.Project, error)
	GetProjectByName(ctx context.Context, name string) (*models.Project, error)
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	UpdateProject(ctx context.Context, id int, f models.Fields) error
	UpdateProjectStatus(ctx context.Context, id int, status string) error
}

// userRepository is needed to validate manager assignments at entry time
type userRepository interface {
	GetManagers(ctx context.Context) ([]*models.User, error)
}

type service struct {
	repo  repository
	users userRepository
}

// NewService creates a new registry service
func NewService(repo repository, users userRepository) Service {
	return &service{repo: repo, users: users}
}

// ListProjects retrieves the full registry in insertion order
func (s *service) ListProjects(ctx context.Context) ([]*models.Project, error) {
	return s.repo.GetAllProjects(ctx)
}

// GetProject retrieves a specific project
func (s *service) GetProject(ctx context.Context, id int) (*models.Project, error) {
	if id <= 0 {
		return nil, ErrInvalidProjectID
	}
	p, err := s.repo.GetProjectByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrProjectNotFound
	}
	return p, err
}

// FindByName returns the first project with exactly the given name, or
// nil if none exists.
func (s *service) FindByName(ctx context.Context, name string) (*models.Project, error) {
	return s.repo.GetProjectByName(ctx, name)
}

// CreateProject creates a new registry record from direct entry.
// The manager, when set, must reference a current Manager-role user;
// references are allowed to go stale afterwards.
func (s *service) CreateProject(ctx context.Context, sess session.Context, f models.Fields) (*models.Project, error) {
	if !sess.CanEditProjects() {
		return nil, ErrPermissionDenied
	}
	if err := s.validateFields(ctx, f); err != nil {
		return nil, err
	}

	p, err := s.repo.CreateProject(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	slog.Info("project created", "id", p.ID, "name", p.Name, "by", sess.Username)
	return p, nil
}

// UpdateProject fully replaces the mutable fields of an existing record
func (s *service) UpdateProject(ctx context.Context, sess session.Context, id int, f models.Fields) error {
	if !sess.CanEditProjects() {
		return ErrPermissionDenied
	}
	if id <= 0 {
		return ErrInvalidProjectID
	}
	if err := s.validateFields(ctx, f); err != nil {
		return err
	}

	err := s.repo.UpdateProject(ctx, id, f)
	if errors.Is(err, database.ErrNotFound) {
		return ErrProjectNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	slog.Info("project updated", "id", id, "by", sess.Username)
	return nil
}

// SetStatus changes only the status field. Any status may be set from
// any other; the registry does not enforce monotonic progress.
func (s *service) SetStatus(ctx context.Context, sess session.Context, id int, status string) error {
	if !sess.CanEditProjects() {
		return ErrPermissionDenied
	}
	if id <= 0 {
		return ErrInvalidProjectID
	}
	if !slices.Contains(models.StatusOrder, status) {
		return ErrInvalidStatus
	}

	err := s.repo.UpdateProjectStatus(ctx, id, status)
	if errors.Is(err, database.ErrNotFound) {
		return ErrProjectNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to set status: %w", err)
	}

	slog.Info("project status set", "id", id, "status", status, "by", sess.Username)
	return nil
}

// validateFields applies the direct-entry validation rules. Import goes
// through the reconciler instead, which accepts whatever the source says.
func (s *service) validateFields(ctx context.Context, f models.Fields) error {
	if f.Name == "" {
		return ErrEmptyName
	}
	if len(f.Name) > 200 {
		return ErrNameTooLong
	}
	if f.Status != "" && !slices.Contains(models.StatusOrder, f.Status) {
		return ErrInvalidStatus
	}
	if f.CompletionRate < 0 || f.CompletionRate > 100 {
		return ErrInvalidRate
	}
	if f.Manager != "" {
		managers, err := s.users.GetManagers(ctx)
		if err != nil {
			return fmt.Errorf("failed to look up managers: %w", err)
		}
		known := false
		for _, m := range managers {
			if m.Username == f.Manager {
				known = true
				break
			}
		}
		if !known {
			return ErrUnknownManager
		}
	}
	return nil
}
