package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gantt/internal/cli"
	"github.com/thenoetrevino/gantt/internal/cli/styles"
	"github.com/thenoetrevino/gantt/internal/config"
)

// ConfigCmd returns the setup config subcommand
func ConfigCmd() *cobra.Command {
	var checkFlag bool
	var removeFlag bool
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the default user config file",
		Long: `Write ~/.config/gantt/config.yaml (or $XDG_CONFIG_HOME/gantt/config.yaml) with the built-in defaults.

Examples:
  # Create the config file
  gantt setup config

  # Show where the config lives and whether it exists
  gantt setup config --check

  # Delete it again
  gantt setup config --remove
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)

			path, err := config.Path()
			if err != nil {
				return fmt.Errorf("failed to locate config file: %w", err)
			}

			switch {
			case checkFlag:
				return CheckConfig(formatter, path)
			case removeFlag:
				return RemoveConfig(formatter, path)
			default:
				return InstallConfig(formatter, path, forceFlag)
			}
		},
	}

	cmd.Flags().BoolVar(&checkFlag, "check", false, "Check whether the config file exists")
	cmd.Flags().BoolVar(&removeFlag, "remove", false, "Remove the config file")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")

	return cmd
}

// FileStatus is reported by the setup commands
type FileStatus struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
	Action string `json:"action,omitempty"`
}

// GetPath lets quiet mode print only the path
func (s FileStatus) GetPath() string {
	return s.Path
}

// InstallConfig writes the default config to path
func InstallConfig(formatter *cli.OutputFormatter, path string, force bool) error {
	if exists(path) && !force {
		return formatter.Success(FileStatus{Path: path, Exists: true},
			fmt.Sprintf("Config already exists: %s (use --force to overwrite)", path))
	}

	if err := config.Default().Save(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return formatter.Success(FileStatus{Path: path, Exists: true, Action: "created"},
		fmt.Sprintf("%s Config written to %s", styles.Check(), path))
}

// CheckConfig reports whether path exists
func CheckConfig(formatter *cli.OutputFormatter, path string) error {
	status := FileStatus{Path: path, Exists: exists(path)}
	human := fmt.Sprintf("%s No config file at %s (built-in defaults apply)", styles.Cross(), path)
	if status.Exists {
		human = fmt.Sprintf("%s Config file: %s", styles.Check(), path)
	}
	return formatter.Success(status, human)
}

// RemoveConfig deletes the config file if present
func RemoveConfig(formatter *cli.OutputFormatter, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove config: %w", err)
	}
	return formatter.Success(FileStatus{Path: path, Exists: false, Action: "removed"},
		fmt.Sprintf("%s Removed %s", styles.Check(), path))
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
