// Package cli implements the ascent command-line interface on top of
// the registry, importer and analytics services.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/harithj/ascent/internal/config"
	"github.com/harithj/ascent/internal/database"
	"github.com/harithj/ascent/internal/services/analytics"
	"github.com/harithj/ascent/internal/services/importer"
	"github.com/harithj/ascent/internal/services/registry"
	"github.com/harithj/ascent/internal/session"
	"github.com/harithj/ascent/internal/user"
)

// CLI represents the CLI application context
type CLI struct {
	Repo      *database.Repository
	Registry  registry.Service
	Importer  *importer.Service
	Analytics *analytics.Engine
	Session   session.Context
	Config    *config.Config

	ctx context.Context
}

// NewCLI initializes the CLI: config, database, repositories, services
// and the caller's session identity.
func NewCLI(ctx context.Context, asUser string) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// ASCENT_DB wins over the config file, so DefaultPath (which reads
	// the env var) runs first and the config only fills the gap.
	dbPath, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}
	if os.Getenv("ASCENT_DB") == "" && cfg.DatabasePath != "" {
		dbPath = cfg.DatabasePath
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := database.NewRepository(db)

	sess, err := user.ResolveSession(ctx, repo, asUser)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	return &CLI{
		Repo:      repo,
		Registry:  registry.NewService(repo, repo),
		Importer:  importer.NewService(repo),
		Analytics: analytics.NewEngine(repo),
		Session:   sess,
		Config:    cfg,
		ctx:       ctx,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.Repo.DB().Close()
}
