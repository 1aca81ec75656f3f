package database

// DataStore defines the unified interface for all data operations needed
// by the CLI and TUI. It is composed of smaller, domain-specific
// interfaces so consumers can depend on just the operations they use.
type DataStore interface {
	ProjectRepository
	UserRepository
}

var _ DataStore = (*Repository)(nil)
