// Package user resolves the acting operator's identity from the OS and
// the user registry.
package user

import (
	"context"
	"os"
	"os/user"

	"github.com/harithj/ascent/internal/database"
	"github.com/harithj/ascent/internal/models"
	"github.com/harithj/ascent/internal/session"
)

// GetCurrentUsername returns the current system username.
// It tries multiple methods with fallbacks:
// 1. user.Current() - most reliable, gets username from OS
// 2. USER environment variable - fallback for restricted environments
// 3. "unknown" - final fallback to ensure a non-empty value
func GetCurrentUsername() string {
	currentUser, err := user.Current()
	if err != nil {
		username := os.Getenv("USER")
		if username == "" {
			return "unknown"
		}
		return username
	}
	return currentUser.Username
}

// ResolveSession builds the caller's session context. The username
// comes from override when non-empty, otherwise from the OS. The role
// is looked up in the user registry; usernames without a registered
// account act as plain read-only users.
func ResolveSession(ctx context.Context, repo database.UserRepository, override string) (session.Context, error) {
	username := override
	if username == "" {
		username = GetCurrentUsername()
	}

	account, err := repo.GetUserByUsername(ctx, username)
	if err != nil {
		return session.Context{}, err
	}

	role := models.RoleUser
	if account != nil {
		role = account.Role
	}
	return session.Context{Username: username, Role: role}, nil
}
