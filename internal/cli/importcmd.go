package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harithj/ascent/internal/services/importer"
)

func ImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Reconcile a spreadsheet into the registry",
		Long: `Import projects from an .xlsx or .csv file.

Rows are matched by project name: existing names are updated in place,
new names are inserted, and rows without a name are skipped. Malformed
cells degrade to defaults instead of aborting the batch.

Examples:
  ascent import roadmap.xlsx
  ascent import projects.csv --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cli, err := NewCLI(ctx, actAsUser)
	if err != nil {
		return err
	}
	defer cli.Close()

	table, err := importer.ReadSource(args[0])
	if err != nil {
		return err
	}

	results, err := cli.Importer.Reconcile(ctx, table)
	if err != nil {
		return err
	}

	var inserted, updated, skipped int
	for _, r := range results {
		switch r.Outcome {
		case importer.OutcomeInserted:
			inserted++
		case importer.OutcomeUpdated:
			updated++
		case importer.OutcomeSkippedNoName:
			skipped++
		}
	}

	// Quiet mode reports the tally, not an identifier.
	if quietMode {
		fmt.Printf("%d %d %d\n", inserted, updated, skipped)
		return nil
	}
	if jsonOutput {
		return newFormatter().Success(map[string]interface{}{
			"inserted": inserted,
			"updated":  updated,
			"skipped":  skipped,
			"rows":     results,
		}, "")
	}

	fmt.Printf("Imported %d rows: %d inserted, %d updated, %d skipped\n",
		len(results), inserted, updated, skipped)
	for _, r := range results {
		if r.Outcome == importer.OutcomeSkippedNoName {
			fmt.Printf("  row %d skipped: no project name\n", r.Row)
		}
	}
	return nil
}
