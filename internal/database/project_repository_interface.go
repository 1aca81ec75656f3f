package database

import (
	"context"

	"github.com/harithj/ascent/internal/models"
)

// ProjectReader defines read operations for the project registry.
type ProjectReader interface {
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	GetProjectByID(ctx context.Context, id int) (*models.Project, error)
	GetProjectByName(ctx context.Context, name string) (*models.Project, error)
	CountProjects(ctx context.Context) (int, error)
}

// ProjectWriter defines write operations for the project registry.
type ProjectWriter interface {
	CreateProject(ctx context.Context, f models.Fields) (*models.Project, error)
	UpdateProject(ctx context.Context, id int, f models.Fields) error
	UpdateProjectStatus(ctx context.Context, id int, status string) error
}

// ProjectRepository combines all project-related operations.
type ProjectRepository interface {
	ProjectReader
	ProjectWriter
}
