package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/harithj/ascent/internal/database"
	"github.com/harithj/ascent/internal/services/importer"
	"github.com/harithj/ascent/internal/services/registry"
	"github.com/harithj/ascent/internal/tui"
)

var (
	jsonOutput bool
	quietMode  bool
	actAsUser  string
)

// NewRootCmd builds the full ascent command tree. Running ascent with
// no subcommand opens the TUI dashboard.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ascent",
		Short: "Ascent - a transformation project tracker",
		Long: `Ascent tracks an organization's transformation projects: a durable
registry with direct entry, tolerant spreadsheet import, and portfolio
analytics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDashboard,
	}

	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	root.PersistentFlags().BoolVar(&quietMode, "quiet", false, "Minimal output (IDs only)")
	root.PersistentFlags().StringVar(&actAsUser, "user", "", "Act as the given username instead of the OS user")

	root.AddCommand(ProjectCmd())
	root.AddCommand(ImportCmd())
	root.AddCommand(ExportCmd())
	root.AddCommand(ReportCmd())
	root.AddCommand(UserCmd())
	root.AddCommand(SeedCmd())

	return root
}

// Execute runs the root command and converts errors to exit codes.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
		if fmtErr := formatter.Error(errorCodeFor(err), err.Error()); fmtErr != nil {
			return ExitError
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// errorCodeFor names the error category for structured output.
func errorCodeFor(err error) string {
	switch exitCodeFor(err) {
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitPermission:
		return "PERMISSION_DENIED"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitUsage:
		return "USAGE_ERROR"
	default:
		return "ERROR"
	}
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cli, err := NewCLI(cmd.Context(), actAsUser)
	if err != nil {
		return err
	}
	defer cli.Close()

	return tui.Run(cli.Repo, cli.Session, cli.Config)
}

// exitCodeFor maps service errors onto the CLI exit code taxonomy.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, registry.ErrProjectNotFound),
		errors.Is(err, database.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, registry.ErrPermissionDenied):
		return ExitPermission
	case errors.Is(err, registry.ErrEmptyName),
		errors.Is(err, registry.ErrNameTooLong),
		errors.Is(err, registry.ErrInvalidProjectID),
		errors.Is(err, registry.ErrInvalidStatus),
		errors.Is(err, registry.ErrInvalidRate),
		errors.Is(err, registry.ErrUnknownManager):
		return ExitValidation
	case errors.Is(err, importer.ErrSourceUnreadable),
		errors.Is(err, os.ErrNotExist):
		return ExitError
	default:
		return ExitError
	}
}
