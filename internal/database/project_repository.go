package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/harithj/ascent/internal/models"
)

// projectColumns is the canonical column list, matching the field order
// of models.Project. Keep the two in sync.
const projectColumns = `id, name, year, pillar, main_category, sub_category, dimension,
	action_plan, start_date, end_date, captain, leaders, owners,
	status, completion_rate, comments, remark, manager`

// ProjectRepo handles all project-related database operations.
type ProjectRepo struct {
	q querier
}

// WithTx returns a copy of the repository bound to the given transaction.
// Every call on the returned repo runs inside that transaction.
func (r *ProjectRepo) WithTx(tx *sql.Tx) *ProjectRepo {
	return &ProjectRepo{q: tx}
}

// Create inserts a new project record and returns it with its assigned id.
// No uniqueness check is made on the name; duplicates are possible by
// direct entry, and import matching takes the first match.
func (r *ProjectRepo) Create(ctx context.Context, f models.Fields) (*models.Project, error) {
	result, err := r.q.ExecContext(ctx,
		`INSERT INTO projects (
			name, year, pillar, main_category, sub_category, dimension,
			action_plan, start_date, end_date, captain, leaders, owners,
			status, completion_rate, comments, remark, manager
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.Name, f.Year, f.Pillar, f.MainCategory, f.SubCategory, f.Dimension,
		f.ActionPlan, f.StartDate, f.EndDate, f.Captain, f.Leaders, f.Owners,
		f.Status, f.CompletionRate, f.Comments, f.Remark, f.Manager,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert project '%s': %w", f.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get project ID after insert: %w", err)
	}

	return r.GetByID(ctx, int(id))
}

// GetByID retrieves a project by its ID. Returns ErrNotFound when the id
// does not exist.
func (r *ProjectRepo) GetByID(ctx context.Context, id int) (*models.Project, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}
	return p, nil
}

// GetByName returns the first project whose name matches exactly
// (case-sensitive), in insertion order, or nil if none matches.
// This is the reconciliation key lookup.
func (r *ProjectRepo) GetByName(ctx context.Context, name string) (*models.Project, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE name = ? ORDER BY id LIMIT 1`, name)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project by name '%s': %w", name, err)
	}
	return p, nil
}

// GetAll retrieves all projects in insertion order.
func (r *ProjectRepo) GetAll(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all projects: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	projects := make([]*models.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

// Update fully replaces all mutable fields of the project with the given
// id. Returns ErrNotFound when the id does not exist; a silent no-op
// would hide misaddressed updates.
func (r *ProjectRepo) Update(ctx context.Context, id int, f models.Fields) error {
	result, err := r.q.ExecContext(ctx,
		`UPDATE projects SET
			name = ?, year = ?, pillar = ?, main_category = ?, sub_category = ?,
			dimension = ?, action_plan = ?, start_date = ?, end_date = ?,
			captain = ?, leaders = ?, owners = ?, status = ?, completion_rate = ?,
			comments = ?, remark = ?, manager = ?
		WHERE id = ?`,
		f.Name, f.Year, f.Pillar, f.MainCategory, f.SubCategory, f.Dimension,
		f.ActionPlan, f.StartDate, f.EndDate, f.Captain, f.Leaders, f.Owners,
		f.Status, f.CompletionRate, f.Comments, f.Remark, f.Manager, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update project %d: %w", id, err)
	}
	return checkFound(result, id)
}

// UpdateStatus changes only the status field, leaving everything else
// untouched. Returns ErrNotFound when the id does not exist.
func (r *ProjectRepo) UpdateStatus(ctx context.Context, id int, status string) error {
	result, err := r.q.ExecContext(ctx,
		`UPDATE projects SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update status for project %d: %w", id, err)
	}
	return checkFound(result, id)
}

// Count returns the total number of projects in the registry.
func (r *ProjectRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return n, nil
}

// checkFound converts a zero-rows-affected update into ErrNotFound.
func checkFound(result sql.Result, id int) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("project %d: %w", id, ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (*models.Project, error) {
	p := &models.Project{}
	err := s.Scan(
		&p.ID, &p.Name, &p.Year, &p.Pillar, &p.MainCategory, &p.SubCategory,
		&p.Dimension, &p.ActionPlan, &p.StartDate, &p.EndDate, &p.Captain,
		&p.Leaders, &p.Owners, &p.Status, &p.CompletionRate, &p.Comments,
		&p.Remark, &p.Manager,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}
