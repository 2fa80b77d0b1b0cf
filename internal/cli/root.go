package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/wellco2/internal/config"
	"github.com/rshade/wellco2/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the wellco2 CLI.
// It wires up logging, tracing and the calculate, validate, serve and config
// subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "wellco2",
		Short:   "Offshore well campaign emissions calculator",
		Long:    "wellco2: Calculate baseline and target CO2 and NOX emissions for offshore drilling plans",
		Version: ver,
		Example: rootCmdExample,
		// Errors are printed once by main.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			projectFlag, _ := cmd.Flags().GetString("project-dir")
			cwd, err := os.Getwd()
			if err != nil {
				cwd = ""
			}
			config.SetResolvedProjectDir(config.ResolveProjectDir(cmd.Context(), projectFlag, cwd))

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("project-dir", "",
		"project directory holding a .wellco2/config.yaml overlay (default: nearest one above the working directory)")
	cmd.AddCommand(NewCalculateCmd(), NewValidateCmd(), NewServeCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Calculate a plan and print the summary table
  wellco2 calculate plans/troll-b12.yaml

  # Several plans at once, as JSON with the per-day view
  wellco2 calculate plans/*.yaml --output json --daily

  # Browse the days of a plan interactively
  wellco2 calculate plans/troll-b12.yaml --interactive

  # Check plans without calculating
  wellco2 validate plans/*.yaml

  # Serve calculations over HTTP
  wellco2 serve --addr :8080

  # Initialize configuration
  wellco2 config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}
