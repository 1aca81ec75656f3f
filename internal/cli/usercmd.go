package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harithj/ascent/internal/models"
)

var (
	userPassword   string
	userRole       string
	userDepartment string
)

func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage registry users",
	}

	cmd.AddCommand(userAddCmd())
	cmd.AddCommand(userListCmd())

	return cmd
}

func userAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Register a user account",
		Long: `Register a user account. Users with the manager role become valid
manager assignments for projects.

Examples:
  ascent user add farah --role=Manager --department=Operations
  ascent user add viewer --role=User
`,
		Args: cobra.ExactArgs(1),
		RunE: runUserAdd,
	}

	cmd.Flags().StringVar(&userPassword, "password", "", "Account password")
	cmd.Flags().StringVar(&userRole, "role", models.RoleUser, "Account role: Admin, Manager or User")
	cmd.Flags().StringVar(&userDepartment, "department", "", "Department name")

	return cmd
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	switch userRole {
	case models.RoleAdmin, models.RoleManager, models.RoleUser:
	default:
		return fmt.Errorf("invalid role %q: must be Admin, Manager or User", userRole)
	}

	cli, err := NewCLI(ctx, actAsUser)
	if err != nil {
		return err
	}
	defer cli.Close()

	u, err := cli.Repo.CreateUser(ctx, args[0], userPassword, userRole, userDepartment)
	if err != nil {
		return err
	}

	return newFormatter().Success(userPayload{
		ID:         u.ID,
		Username:   u.Username,
		Role:       u.Role,
		Department: u.Department,
	}, fmt.Sprintf("Registered %s (%s)", u.Username, u.Role))
}

// userPayload is the account shape emitted by the CLI; the password
// never leaves the database layer.
type userPayload struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

func (u userPayload) GetID() int { return u.ID }

func userListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered users",
		RunE:  runUserList,
	}
}

func runUserList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cli, err := NewCLI(ctx, actAsUser)
	if err != nil {
		return err
	}
	defer cli.Close()

	users, err := cli.Repo.GetAllUsers(ctx)
	if err != nil {
		return err
	}

	if jsonOutput {
		out := make([]userPayload, 0, len(users))
		for _, u := range users {
			out = append(out, userPayload{u.ID, u.Username, u.Role, u.Department})
		}
		return newFormatter().Success(map[string]interface{}{"users": out}, "")
	}

	if len(users) == 0 {
		fmt.Println("No registered users.")
		return nil
	}
	for _, u := range users {
		fmt.Printf("%-20s %-10s %s\n", u.Username, u.Role, u.Department)
	}
	return nil
}
