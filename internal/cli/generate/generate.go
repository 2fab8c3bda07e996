package generate

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gantt/internal/chart"
	"github.com/thenoetrevino/gantt/internal/cli"
	"github.com/thenoetrevino/gantt/internal/cli/styles"
	"github.com/thenoetrevino/gantt/internal/export"
	"github.com/thenoetrevino/gantt/internal/models"
)

// newExporter and openChart are replaced in tests
var (
	newExporter = func(chromePath string) *export.Exporter {
		return &export.Exporter{ChromePath: chromePath}
	}
	openChart = export.Open
)

// Summary describes a generated chart
type Summary struct {
	Path    string `json:"path"`
	Format  string `json:"format"`
	Bytes   int64  `json:"bytes"`
	Size    string `json:"size"`
	Title   string `json:"title"`
	Palette string `json:"palette"`
	Tasks   int    `json:"tasks"`
	Start   string `json:"start,omitempty"`
	Finish  string `json:"finish,omitempty"`
}

// GetPath lets quiet mode print only the written file
func (s Summary) GetPath() string {
	return s.Path
}

// RootCmd returns the gantt root command, which generates a chart
func RootCmd() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "gantt",
		Short: "Generate Gantt charts from YAML project files",
		Long: `Generate a Gantt chart from a YAML project file and save it as html, png, pdf or svg.

Without --input the first of data/gantt_data.yaml and data/gantt_template.yaml is used.
Flags override the project file's config block, which overrides ~/.config/gantt/config.yaml.

Examples:
  # HTML chart in ./output, named after the project title
  gantt -i data/gantt_data.yaml

  # PNG at 2x with the corporate palette
  gantt -i plan.yaml -f png --scale 2 -p corporate

  # Chart path only, for scripts
  CHART=$(gantt -i plan.yaml --quiet)

  # JSON output for agents
  gantt -i plan.yaml --json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected argument %q (use --input to pass the project file)", cli.ErrUsage, args[0])
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Path to the YAML project file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file name without extension (default: project title)")
	cmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "d", "output", "Directory for the output file")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", string(export.FormatHTML), "Output format: html, png, pdf, svg")
	cmd.Flags().IntVar(&opts.Width, "width", models.DefaultWidth, "Chart width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", models.DefaultHeight, "Chart height in pixels")
	cmd.Flags().Float64Var(&opts.Scale, "scale", models.DefaultScale, "Pixel ratio for png/pdf/svg export")
	cmd.Flags().StringVarP(&opts.Palette, "palette", "p", "", "Colour palette (see 'gantt palettes')")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Chart title (default: project title)")
	cmd.Flags().StringVar(&opts.View, "view", "", "Row layout: tasks or resources")
	cmd.Flags().BoolVar(&opts.Branding, "branding", false, "Add the branding watermark")
	cmd.Flags().BoolVar(&opts.NoBranding, "no-branding", false, "Never add the branding watermark")
	cmd.Flags().BoolVar(&opts.ShowDeps, "show-dependencies", false, "Show dependencies next to task names")
	cmd.Flags().BoolVarP(&opts.Show, "show", "s", false, "Open the chart in the browser when done")

	// Agent-friendly flags, shared with every subcommand
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().Bool("quiet", false, "Minimal output (file path only)")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *Options) error {
	_, _, verbose := cli.OutputFlags(cmd)
	formatter := cli.NewFormatter(cmd)

	app, err := cli.NewCLI(cmd.Context(), verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defaults := app.Config.Defaults

	// fail on a bad format before reading any YAML
	format, err := resolveFormat(cmd.Flags(), opts, defaults)
	if err != nil {
		return err
	}

	app.Logger.Debug("loading project", "input", inputLabel(opts.Input))
	project, err := cli.LoadProject(opts.Input)
	if err != nil {
		return err
	}
	app.Logger.Debug("loaded tasks", "count", project.Table.Len(), "source", project.Data.Source)

	plan, err := resolve(cmd.Flags(), opts, project.Data, defaults, format)
	if err != nil {
		return err
	}

	artifact, err := chart.Render(project.Table, plan.Chart)
	if err != nil {
		return err
	}

	app.Logger.Debug("saving chart", "path", plan.Path+"."+string(plan.Format), "scale", plan.Scale)
	result, err := newExporter(defaults.ChromePath).Export(app.Context(), artifact, plan.Path, plan.Format, plan.Scale)
	if err != nil {
		return err
	}

	summary := Summary{
		Path:    result.Path,
		Format:  string(result.Format),
		Bytes:   result.Bytes,
		Size:    humanize.Bytes(uint64(result.Bytes)),
		Title:   plan.Chart.Title,
		Palette: plan.Chart.Palette,
		Tasks:   project.Table.Len(),
	}
	if project.Table.Len() > 0 {
		start, finish := project.Table.Span()
		summary.Start = start.Format(models.DateLayout)
		summary.Finish = finish.Format(models.DateLayout)
	}

	human := fmt.Sprintf("%s Chart saved successfully: %s (%s, %d tasks)", styles.Check(), summary.Path, summary.Size, summary.Tasks)
	if err := formatter.Success(summary, human); err != nil {
		return err
	}

	if opts.Show {
		app.Logger.Debug("opening chart in browser", "path", result.Path)
		if err := openChart(result.Path); err != nil {
			// chart is on disk already, so only warn
			app.Logger.Warn("could not open browser", "err", err)
		}
	}

	return nil
}

func inputLabel(path string) string {
	if path == "" {
		return "default location"
	}
	return path
}
