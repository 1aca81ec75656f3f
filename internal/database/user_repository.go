package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/harithj/ascent/internal/models"
)

// UserRepo handles user and department database operations.
type UserRepo struct {
	q querier
}

// CreateUser inserts a new user account.
func (r *UserRepo) CreateUser(ctx context.Context, username, password, role, department string) (*models.User, error) {
	result, err := r.q.ExecContext(ctx,
		`INSERT INTO users (username, password, role, department) VALUES (?, ?, ?, ?)`,
		username, password, role, department,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user '%s': %w", username, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get user ID after insert: %w", err)
	}

	return &models.User{
		ID:         int(id),
		Username:   username,
		Password:   password,
		Role:       role,
		Department: department,
	}, nil
}

// GetUserByUsername returns the first user with the given username, or
// nil if none exists.
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	u := &models.User{}
	err := r.q.QueryRowContext(ctx,
		`SELECT id, username, password, role, department FROM users WHERE username = ? ORDER BY id LIMIT 1`,
		username,
	).Scan(&u.ID, &u.Username, &u.Password, &u.Role, &u.Department)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user '%s': %w", username, err)
	}
	return u, nil
}

// GetAllUsers retrieves all users ordered by ID.
func (r *UserRepo) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, username, password, role, department FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all users: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var users []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Role, &u.Department); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// GetManagers returns all users whose role is Manager, the candidates
// for project manager assignment on the entry form.
func (r *UserRepo) GetManagers(ctx context.Context) ([]*models.User, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, username, password, role, department FROM users WHERE role = ? ORDER BY id`,
		models.RoleManager,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query managers: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var users []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Role, &u.Department); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// CreateDepartment inserts a new department.
func (r *UserRepo) CreateDepartment(ctx context.Context, name string) (*models.Department, error) {
	result, err := r.q.ExecContext(ctx,
		`INSERT INTO departments (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to insert department '%s': %w", name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get department ID after insert: %w", err)
	}

	return &models.Department{ID: int(id), Name: name}, nil
}

// GetAllDepartments retrieves all departments ordered by ID.
func (r *UserRepo) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, name FROM departments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var departments []*models.Department
	for rows.Next() {
		d := &models.Department{}
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		departments = append(departments, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}
	return departments, nil
}
