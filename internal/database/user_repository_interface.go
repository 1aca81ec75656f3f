package database

import (
	"context"

	"github.com/harithj/ascent/internal/models"
)

// UserRepository defines user and department operations.
type UserRepository interface {
	CreateUser(ctx context.Context, username, password, role, department string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetManagers(ctx context.Context) ([]*models.User, error)
	CreateDepartment(ctx context.Context, name string) (*models.Department, error)
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
}
