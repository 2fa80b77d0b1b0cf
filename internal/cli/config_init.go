package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/wellco2/internal/config"
)

// ErrConfigExists is returned by config init when the file is already there.
var ErrConfigExists = errors.New("configuration file already exists, use --force to overwrite")

// NewConfigInitCmd creates the config init command for initializing configuration.
// Inside a project (a .wellco2 directory above the working directory, or one
// named by --project-dir) it writes the project-local config.yaml. Otherwise,
// or with --global, it writes $WELLCO2_HOME/config.yaml.
func NewConfigInitCmd() *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

When a project directory is found, creates project-local configuration at
$PROJECT/.wellco2/config.yaml. Use --global to write ~/.wellco2/config.yaml
(or $WELLCO2_HOME/config.yaml) even inside a project.`,
		Example: `  # Create project-local configuration
  wellco2 config init --project-dir .

  # Create global configuration
  wellco2 config init --global

  # Create configuration, overwriting existing
  wellco2 config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if projectDir := config.GetResolvedProjectDir(); projectDir != "" && !global {
				return writeDefaultConfig(cmd, filepath.Join(projectDir, "config.yaml"), force)
			}

			dir, err := config.GetConfigDir()
			if err != nil {
				return err
			}
			return writeDefaultConfig(cmd, filepath.Join(dir, "config.yaml"), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "write the global configuration even inside a project")

	return cmd
}

// writeDefaultConfig saves config.Default() to path.
func writeDefaultConfig(cmd *cobra.Command, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return ErrConfigExists
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	cfg := config.Default()
	cfg.SetConfigPath(path)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", path)
	return nil
}
