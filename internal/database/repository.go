package database

import (
	"context"
	"database/sql"

	"github.com/harithj/ascent/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	db *sql.DB

	*ProjectRepo
	*UserRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db:          db,
		ProjectRepo: &ProjectRepo{q: db},
		UserRepo:    &UserRepo{q: db},
	}
}

// DB exposes the underlying connection for callers that need raw access
// (tests, maintenance commands).
func (r *Repository) DB() *sql.DB {
	return r.db
}

// BeginTx starts a transaction on the underlying connection. With the
// single-connection pool this also gives the holder exclusive access to
// the registry until commit or rollback.
func (r *Repository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return r.db.BeginTx(ctx, nil)
}

// Wrapper methods for ProjectRepo to present the DataStore API
func (r *Repository) CreateProject(ctx context.Context, f models.Fields) (*models.Project, error) {
	return r.ProjectRepo.Create(ctx, f)
}

func (r *Repository) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	return r.ProjectRepo.GetAll(ctx)
}

func (r *Repository) GetProjectByID(ctx context.Context, id int) (*models.Project, error) {
	return r.ProjectRepo.GetByID(ctx, id)
}

func (r *Repository) GetProjectByName(ctx context.Context, name string) (*models.Project, error) {
	return r.ProjectRepo.GetByName(ctx, name)
}

func (r *Repository) CountProjects(ctx context.Context) (int, error) {
	return r.ProjectRepo.Count(ctx)
}

func (r *Repository) UpdateProject(ctx context.Context, id int, f models.Fields) error {
	return r.ProjectRepo.Update(ctx, id, f)
}

func (r *Repository) UpdateProjectStatus(ctx context.Context, id int, status string) error {
	return r.ProjectRepo.UpdateStatus(ctx, id, status)
}
