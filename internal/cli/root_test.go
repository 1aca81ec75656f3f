package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/harithj/ascent/internal/database"
	"github.com/harithj/ascent/internal/services/importer"
	"github.com/harithj/ascent/internal/services/registry"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"project not found", registry.ErrProjectNotFound, ExitNotFound},
		{"record not found", database.ErrNotFound, ExitNotFound},
		{"wrapped not found", fmt.Errorf("update: %w", registry.ErrProjectNotFound), ExitNotFound},
		{"permission denied", registry.ErrPermissionDenied, ExitPermission},
		{"empty name", registry.ErrEmptyName, ExitValidation},
		{"bad status", registry.ErrInvalidStatus, ExitValidation},
		{"bad rate", registry.ErrInvalidRate, ExitValidation},
		{"unknown manager", registry.ErrUnknownManager, ExitValidation},
		{"unreadable source", importer.ErrSourceUnreadable, ExitError},
		{"generic", errors.New("boom"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrorCodeFor(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{registry.ErrProjectNotFound, "NOT_FOUND"},
		{registry.ErrPermissionDenied, "PERMISSION_DENIED"},
		{registry.ErrInvalidStatus, "VALIDATION_ERROR"},
		{errors.New("boom"), "ERROR"},
	}

	for _, tt := range tests {
		if got := errorCodeFor(tt.err); got != tt.want {
			t.Errorf("errorCodeFor(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestRootCommandTree(t *testing.T) {
	root := NewRootCmd()

	want := []string{"project", "import", "export", "report", "user", "seed"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}
