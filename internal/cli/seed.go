package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harithj/ascent/internal/models"
)

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample data",
		Long:  `Seed the registry with sample users, departments and projects for demos and local development.`,
		RunE:  runSeed,
	}
}

var seedUsers = []struct {
	username, password, role, department string
}{
	{"admin", "admin", models.RoleAdmin, "IT"},
	{"farah", "changeme", models.RoleManager, "Operations"},
	{"daniel", "changeme", models.RoleManager, "Engineering"},
	{"viewer", "changeme", models.RoleUser, "Finance"},
}

var seedProjects = []models.Fields{
	{
		Name: "ERP Migration", Year: "2025-2026",
		Pillar:       "Operational Excellence",
		MainCategory: "Real-Time Data & Analytics",
		SubCategory:  "Predictive Analytics and Digitized Planning",
		Dimension:    "Process Digitization",
		StartDate:    "2025-01-15", EndDate: "2025-09-30",
		Status: models.StatusInProgress, CompletionRate: 45,
		Manager: "farah",
	},
	{
		Name: "Line Sensor Rollout", Year: "2025-2026",
		Pillar:       "Operational Excellence",
		MainCategory: "E2E Supply Chain Visibility & Connectivity",
		SubCategory:  "Automation and Deskillment",
		Dimension:    "Automation and Deskilling",
		StartDate:    "2024-11-01", EndDate: "2025-03-31",
		Status: models.StatusCompleted, CompletionRate: 100,
		Manager: "daniel",
	},
	{
		Name: "Digital Skills Academy", Year: "2025-2026",
		Pillar:       "People Development",
		MainCategory: "Organization Readiness",
		SubCategory:  "Cross-Functional Digitization",
		Dimension:    "Talent Readiness",
		StartDate:    "2025-06-01", EndDate: "2025-12-31",
		Status: models.StatusNotStarted, CompletionRate: 0,
		Manager: "farah",
	},
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cli, err := NewCLI(ctx, actAsUser)
	if err != nil {
		return err
	}
	defer cli.Close()

	for _, u := range seedUsers {
		if existing, err := cli.Repo.GetUserByUsername(ctx, u.username); err != nil {
			return err
		} else if existing != nil {
			continue
		}
		if _, err := cli.Repo.CreateUser(ctx, u.username, u.password, u.role, u.department); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.username, err)
		}
	}

	departments := map[string]bool{}
	for _, u := range seedUsers {
		departments[u.department] = true
	}
	existing, err := cli.Repo.GetAllDepartments(ctx)
	if err != nil {
		return err
	}
	for _, d := range existing {
		delete(departments, d.Name)
	}
	for name := range departments {
		if _, err := cli.Repo.CreateDepartment(ctx, name); err != nil {
			return fmt.Errorf("failed to seed department %s: %w", name, err)
		}
	}

	// Seeding runs as admin regardless of the invoking user.
	sess := cli.Session
	if !sess.CanEditProjects() {
		sess.Role = models.RoleAdmin
	}

	var created int
	for _, f := range seedProjects {
		if existing, err := cli.Registry.FindByName(ctx, f.Name); err != nil {
			return err
		} else if existing != nil {
			continue
		}
		if _, err := cli.Registry.CreateProject(ctx, sess, f); err != nil {
			return fmt.Errorf("failed to seed project %s: %w", f.Name, err)
		}
		created++
	}

	if !quietMode {
		fmt.Printf("Seeded %d users and %d projects\n", len(seedUsers), created)
	}
	return nil
}
