package setup

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gantt/internal/cli"
	"github.com/thenoetrevino/gantt/internal/cli/styles"
	"github.com/thenoetrevino/gantt/internal/loader"
)

// TemplateCmd returns the setup template subcommand
func TemplateCmd() *cobra.Command {
	var pathFlag string
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write an example project file",
		Long: `Write a complete example project file to start from.

Examples:
  # data/gantt_data.yaml, picked up by 'gantt' with no --input
  gantt setup template

  # Somewhere else
  gantt setup template --path plans/q3.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)

			err := loader.WriteTemplate(pathFlag, forceFlag)
			if errors.Is(err, loader.ErrExists) {
				return formatter.Success(FileStatus{Path: pathFlag, Exists: true},
					fmt.Sprintf("Project file already exists: %s (use --force to overwrite)", pathFlag))
			}
			if err != nil {
				return err
			}

			return formatter.Success(FileStatus{Path: pathFlag, Exists: true, Action: "created"},
				fmt.Sprintf("%s Template written to %s\nEdit it, then run: gantt -i %s", styles.Check(), pathFlag, pathFlag))
		},
	}

	cmd.Flags().StringVar(&pathFlag, "path", loader.DefaultLocations[0], "Where to write the template")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing file")

	return cmd
}
