package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harithj/ascent/internal/models"
)

var (
	projectName     string
	projectYear     string
	projectPillar   string
	projectCategory string
	projectSubCat   string
	projectDim      string
	projectPlan     string
	projectStart    string
	projectEnd      string
	projectCaptain  string
	projectLeaders  string
	projectOwners   string
	projectStatus   string
	projectRate     float64
	projectComments string
	projectRemark   string
	projectManager  string
)

func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage registry projects",
	}

	cmd.AddCommand(projectAddCmd())
	cmd.AddCommand(projectListCmd())
	cmd.AddCommand(projectShowCmd())
	cmd.AddCommand(projectStatusCmd())

	return cmd
}

func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&projectYear, "year", "", "Project year")
	cmd.Flags().StringVar(&projectPillar, "pillar", "", "Strategic pillar")
	cmd.Flags().StringVar(&projectCategory, "category", "", "Target main category")
	cmd.Flags().StringVar(&projectSubCat, "subcategory", "", "Target sub category")
	cmd.Flags().StringVar(&projectDim, "dimension", "", "Target dimension")
	cmd.Flags().StringVar(&projectPlan, "plan", "", "Action plan")
	cmd.Flags().StringVar(&projectStart, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&projectEnd, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&projectCaptain, "captain", "", "Roadmap captain")
	cmd.Flags().StringVar(&projectLeaders, "leaders", "", "Project leaders")
	cmd.Flags().StringVar(&projectOwners, "owners", "", "Project owners")
	cmd.Flags().StringVar(&projectStatus, "status", "", "Task status")
	cmd.Flags().Float64Var(&projectRate, "rate", 0, "Completion rate (0-100)")
	cmd.Flags().StringVar(&projectComments, "comments", "", "Comments")
	cmd.Flags().StringVar(&projectRemark, "remark", "", "Target remark")
	cmd.Flags().StringVar(&projectManager, "manager", "", "Assigned manager")
}

func flagFields() models.Fields {
	return models.Fields{
		Name:           projectName,
		Year:           projectYear,
		Pillar:         projectPillar,
		MainCategory:   projectCategory,
		SubCategory:    projectSubCat,
		Dimension:      projectDim,
		ActionPlan:     projectPlan,
		StartDate:      projectStart,
		EndDate:        projectEnd,
		Captain:        projectCaptain,
		Leaders:        projectLeaders,
		Owners:         projectOwners,
		Status:         projectStatus,
		CompletionRate: projectRate,
		Comments:       projectComments,
		Remark:         projectRemark,
		Manager:        projectManager,
	}
}

func projectAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new project to the registry",
		Long: `Add a new project with the given attributes.

Examples:
  # Simple project (human-readable output)
  ascent project add --name="ERP Migration"

  # Full entry
  ascent project add --name="ERP Migration" --year=2025 \
    --pillar="Smart Operation" --status="In Progress" --rate=40 \
    --manager=farah

  # Quiet mode for bash capture
  PROJECT_ID=$(ascent project add --name="ERP Migration" --quiet)
`,
		RunE: runProjectAdd,
	}

	cmd.Flags().StringVar(&projectName, "name", "", "Project name (required)")
	_ = cmd.MarkFlagRequired("name")
	addFieldFlags(cmd)

	return cmd
}

func runProjectAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cli, err := NewCLI(ctx, actAsUser)
	if err != nil {
		return err
	}
	defer cli.Close()

	project, err := cli.Registry.CreateProject(ctx, cli.Session, flagFields())
	if err != nil {
		return err
	}

	return newFormatter().Success(projectPayload{project},
		fmt.Sprintf("Created project #%d: %s", project.ID, project.Name))
}

// projectPayload exposes the created identifier for quiet-mode capture.
type projectPayload struct {
	*models.Project
}

func (p projectPayload) GetID() int { return p.ID }

func projectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all registry projects",
		RunE:  runProjectList,
	}
}

func runProjectList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cli, err := NewCLI(ctx, actAsUser)
	if err != nil {
		return err
	}
	defer cli.Close()

	projects, err := cli.Registry.ListProjects(ctx)
	if err != nil {
		return err
	}

	if quietMode {
		for _, p := range projects {
			fmt.Printf("%d\n", p.ID)
		}
		return nil
	}
	if jsonOutput {
		return newFormatter().Success(map[string]interface{}{
			"projects": projects,
			"count":    len(projects),
		}, "")
	}

	if len(projects) == 0 {
		fmt.Println("No projects in the registry.")
		return nil
	}
	for _, p := range projects {
		status := p.Status
		if status == "" {
			status = "(no status)"
		}
		fmt.Printf("#%-4d %-40s %-20s %5.1f%%\n", p.ID, p.Name, status, p.CompletionRate)
	}
	return nil
}

func projectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one project in full",
		Args:  cobra.ExactArgs(1),
		RunE:  runProjectShow,
	}
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid project id %q", args[0])
	}

	ctx := cmd.Context()
	cli, err := NewCLI(ctx, actAsUser)
	if err != nil {
		return err
	}
	defer cli.Close()

	project, err := cli.Registry.GetProject(ctx, id)
	if err != nil {
		return err
	}

	if jsonOutput {
		return newFormatter().Success(projectPayload{project}, "")
	}

	fmt.Printf("Project #%d\n", project.ID)
	rows := []struct{ label, value string }{
		{"Name", project.Name},
		{"Year", project.Year},
		{"Pillar", project.Pillar},
		{"Main category", project.MainCategory},
		{"Sub category", project.SubCategory},
		{"Dimension", project.Dimension},
		{"Action plan", project.ActionPlan},
		{"Start date", project.StartDate},
		{"End date", project.EndDate},
		{"Captain", project.Captain},
		{"Leaders", project.Leaders},
		{"Owners", project.Owners},
		{"Status", project.Status},
		{"Completion", fmt.Sprintf("%.1f%%", project.CompletionRate)},
		{"Comments", project.Comments},
		{"Remark", project.Remark},
		{"Manager", project.Manager},
	}
	for _, r := range rows {
		fmt.Printf("  %-14s %s\n", r.label+":", r.value)
	}
	return nil
}

func projectStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Set a project's status",
		Long: `Set a project's status to one of the recognized states.
Status is not a state machine: any recognized value may follow any other.`,
		Args: cobra.ExactArgs(2),
		RunE: runProjectStatus,
	}
}

func runProjectStatus(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid project id %q", args[0])
	}

	ctx := cmd.Context()
	cli, err := NewCLI(ctx, actAsUser)
	if err != nil {
		return err
	}
	defer cli.Close()

	if err := cli.Registry.SetStatus(ctx, cli.Session, id, args[1]); err != nil {
		return err
	}

	return newFormatter().Success(map[string]interface{}{
		"id":     id,
		"status": args[1],
	}, fmt.Sprintf("Project #%d is now %q", id, args[1]))
}
