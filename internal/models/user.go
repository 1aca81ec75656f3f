package models

// User is an account that can enter or manage projects.
// Role is one of RoleAdmin, RoleManager, RoleUser. Projects reference
// managers by username only; the reference is not a foreign key and may
// go stale if the user is later removed or demoted.
type User struct {
	ID         int
	Username   string
	Password   string
	Role       string
	Department string
}

// Department groups users for reporting.
type Department struct {
	ID   int
	Name string
}
