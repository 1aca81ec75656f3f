package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harithj/ascent/internal/export"
)

var exportOut string

func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the registry as CSV",
		Long: `Export every project as CSV using the import column names, so an
exported file can be re-imported unchanged.

Examples:
  ascent export --out projects.csv
  ascent export > projects.csv
`,
		RunE: runExport,
	}

	cmd.Flags().StringVar(&exportOut, "out", "", "Write to file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
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

	w := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", exportOut, err)
		}
		defer f.Close()
		w = f
	}

	if err := export.WriteCSV(w, projects); err != nil {
		return err
	}

	if exportOut != "" && !quietMode {
		fmt.Fprintf(os.Stderr, "Exported %d projects to %s\n", len(projects), exportOut)
	}
	return nil
}
