package setup

import (
	"github.com/spf13/cobra"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create starter files",
		Long:  `Write a user config file or a project template to get started with gantt.`,
	}

	cmd.AddCommand(ConfigCmd())
	cmd.AddCommand(TemplateCmd())

	return cmd
}
