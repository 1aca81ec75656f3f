package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harithj/ascent/internal/report"
)

var reportRaw bool

func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the portfolio analytics report",
		RunE:  runReport,
	}

	cmd.Flags().BoolVar(&reportRaw, "raw", false, "Print raw markdown without terminal styling")

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
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

	md := report.Markdown(projects, time.Now())
	if reportRaw || jsonOutput {
		fmt.Print(md)
		return nil
	}
	fmt.Println(report.Render(md, cli.Config.ReportWidth))
	return nil
}
