package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unreadable import sources, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Project not found, user not found, or any case where
	// an identifier or name doesn't exist.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Empty project names, invalid status values, completion
	// rates out of range, or unknown manager assignments.
	ExitValidation = 4

	// ExitPermission indicates the acting user may not perform the
	// operation. Plain users are read-only.
	ExitPermission = 5
)
