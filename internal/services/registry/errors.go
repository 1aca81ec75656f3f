package registry

import "errors"

// Domain errors for the registry service
var (
	// Validation errors
	ErrEmptyName        = errors.New("project name cannot be empty")
	ErrNameTooLong      = errors.New("project name cannot exceed 200 characters")
	ErrInvalidProjectID = errors.New("invalid project ID")
	ErrInvalidStatus    = errors.New("status is not a recognized value")
	ErrInvalidRate      = errors.New("completion rate must be between 0 and 100")
	ErrUnknownManager   = errors.New("manager must reference an existing user with the Manager role")

	// Business logic errors
	ErrProjectNotFound  = errors.New("project not found")
	ErrPermissionDenied = errors.New("caller is not allowed to modify the registry")
)
