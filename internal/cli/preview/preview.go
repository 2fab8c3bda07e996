package preview

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gantt/internal/chart"
	"github.com/thenoetrevino/gantt/internal/cli"
	"github.com/thenoetrevino/gantt/internal/cli/styles"
	"github.com/thenoetrevino/gantt/internal/config/palettes"
)

// PreviewCmd returns the preview subcommand
func PreviewCmd() *cobra.Command {
	var input, palette, view string
	var columns int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw the chart in the terminal",
		Long: `Draw a project file as a Gantt chart in the terminal, without writing any files.

Examples:
  gantt preview -i data/gantt_data.yaml
  gantt preview -i plan.yaml -p pastel --columns 100 --view resources
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, verbose := cli.OutputFlags(cmd)

			app, err := cli.NewCLI(cmd.Context(), verbose, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			project, err := cli.LoadProject(input)
			if err != nil {
				return err
			}

			cfg := chart.DefaultConfig()
			cfg.Palette = firstNonEmpty(palette, project.Data.Config.Palette, app.Config.Defaults.Palette)
			cfg.View = firstNonEmpty(view, project.Data.Config.View, cfg.View)
			if err := cfg.Validate(); err != nil {
				return err
			}

			p, _ := palettes.Get(cfg.Palette)
			styles.Init(p)

			out := Render(project.Table, Options{
				Title:       project.Data.Project.Title,
				Description: project.Data.Project.Description,
				Palette:     p,
				Columns:     columns,
				View:        cfg.View,
			})

			_, err = cmd.OutOrStdout().Write([]byte(out))
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Path to the YAML project file")
	cmd.Flags().StringVarP(&palette, "palette", "p", "", "Colour palette")
	cmd.Flags().StringVar(&view, "view", "", "Row layout: tasks or resources")
	cmd.Flags().IntVar(&columns, "columns", 60, "Width of the bar area in terminal cells")

	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
