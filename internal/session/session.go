// Package session carries the acting user's identity through operations
// that need it. There is no ambient global: callers construct a Context
// at the edge (CLI flags, TUI login) and pass it down explicitly.
package session

import "github.com/harithj/ascent/internal/models"

// Context identifies the caller of a registry operation.
type Context struct {
	Username string
	Role     string
}

// CanEditProjects reports whether the caller may create or modify
// registry records. Admins and managers can; plain users are read-only.
func (c Context) CanEditProjects() bool {
	return c.Role == models.RoleAdmin || c.Role == models.RoleManager
}
