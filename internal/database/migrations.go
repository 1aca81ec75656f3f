package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// migration is one versioned schema change. Migrations are applied in
// version order, exactly once, tracked in the schema_migrations table.
// Statements are written to be safe to re-run where SQLite allows it.
type migration struct {
	version int
	name    string
	stmts   []string
}

var migrations = []migration{
	{
		version: 1,
		name:    "base schema",
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT NOT NULL,
				password TEXT NOT NULL DEFAULT '',
				role TEXT NOT NULL DEFAULT 'User',
				department TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE TABLE IF NOT EXISTS departments (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS projects (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				year TEXT NOT NULL DEFAULT '',
				pillar TEXT NOT NULL DEFAULT '',
				main_category TEXT NOT NULL DEFAULT '',
				sub_category TEXT NOT NULL DEFAULT '',
				dimension TEXT NOT NULL DEFAULT '',
				action_plan TEXT NOT NULL DEFAULT '',
				start_date TEXT NOT NULL DEFAULT '',
				end_date TEXT NOT NULL DEFAULT '',
				captain TEXT NOT NULL DEFAULT '',
				leaders TEXT NOT NULL DEFAULT '',
				owners TEXT NOT NULL DEFAULT '',
				status TEXT NOT NULL DEFAULT '',
				completion_rate REAL NOT NULL DEFAULT 0,
				comments TEXT NOT NULL DEFAULT '',
				remark TEXT NOT NULL DEFAULT ''
			)`,
			// Reconciliation looks projects up by name on every row
			`CREATE INDEX IF NOT EXISTS idx_projects_name ON projects(name)`,
		},
	},
	{
		// The manager column arrived after the first deployments; older
		// databases are upgraded in place.
		version: 2,
		name:    "add manager column",
		stmts: []string{
			`ALTER TABLE projects ADD COLUMN manager TEXT NOT NULL DEFAULT ''`,
		},
	},
}

// RunMigrations applies all pending migrations in order. It is called
// once from InitDB and is a no-op when the schema is current.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	var current int
	err = db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := applyMigration(ctx, db, m); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}
		slog.Info("applied migration", "version", m.version, "name", m.name)
	}

	return nil
}

// applyMigration runs a single migration and records it, all inside one
// transaction so a half-applied migration is never recorded.
func applyMigration(ctx context.Context, db *sql.DB, m migration) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		for _, stmt := range m.stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`,
			m.version, m.name,
		)
		return err
	})
}
