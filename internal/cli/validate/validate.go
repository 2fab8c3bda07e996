package validate

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gantt/internal/chart"
	"github.com/thenoetrevino/gantt/internal/cli"
	"github.com/thenoetrevino/gantt/internal/cli/styles"
	"github.com/thenoetrevino/gantt/internal/models"
)

// Report summarises a valid project file
type Report struct {
	Source    string   `json:"source"`
	Title     string   `json:"title"`
	Tasks     int      `json:"tasks"`
	Start     string   `json:"start,omitempty"`
	Finish    string   `json:"finish,omitempty"`
	Days      int      `json:"days"`
	Resources []string `json:"resources"`
	Phases    []string `json:"phases"`
	Dangling  []string `json:"dangling_dependencies,omitempty"`
}

// GetPath lets quiet mode print the validated file
func (r Report) GetPath() string {
	return r.Source
}

// ValidateCmd returns the validate subcommand
func ValidateCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a project file without rendering it",
		Long: `Load and normalize a project file and report what a chart would contain.
Exits non-zero with the same codes as chart generation when the file is invalid.

Examples:
  gantt validate -i data/gantt_data.yaml
  gantt validate -i plan.yaml --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, input)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Path to the YAML project file")

	return cmd
}

func runValidate(cmd *cobra.Command, input string) error {
	_, _, verbose := cli.OutputFlags(cmd)
	formatter := cli.NewFormatter(cmd)

	app, err := cli.NewCLI(cmd.Context(), verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	project, err := cli.LoadProject(input)
	if err != nil {
		return err
	}

	// the chart settings in the file must be usable too
	settings := project.Data.Config
	cfg := chart.DefaultConfig()
	if settings.Palette != "" {
		cfg.Palette = settings.Palette
	}
	if settings.View != "" {
		cfg.View = settings.View
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	report := Build(project)
	app.Logger.Debug("validated project", "tasks", report.Tasks, "dangling", len(report.Dangling))

	return formatter.Success(report, Human(report))
}

// Build summarises a loaded project
func Build(project *cli.Project) Report {
	t := project.Table
	report := Report{
		Source:    project.Data.Source,
		Title:     project.Data.Project.Title,
		Tasks:     t.Len(),
		Resources: t.ResourceNames(),
		Phases:    t.PhaseNames(),
	}
	if report.Title == "" {
		report.Title = models.DefaultTitle
	}

	if t.Len() > 0 {
		start, finish := t.Span()
		report.Start = start.Format(models.DateLayout)
		report.Finish = finish.Format(models.DateLayout)
		report.Days = models.DaysBetween(start, finish)
	}

	known := make(map[string]bool, t.Len())
	for _, name := range t.Task {
		known[name] = true
	}
	for i, deps := range t.Dependencies {
		for _, dep := range deps {
			if !known[dep] {
				report.Dangling = append(report.Dangling, fmt.Sprintf("%s -> %s", t.Task[i], dep))
			}
		}
	}

	return report
}

// Human renders a report for the terminal
func Human(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s is valid\n", styles.Check(), r.Source)
	fmt.Fprintf(&b, "  Title:     %s\n", r.Title)
	fmt.Fprintf(&b, "  Tasks:     %d\n", r.Tasks)
	if r.Tasks > 0 {
		fmt.Fprintf(&b, "  Span:      %s to %s (%d days)\n", r.Start, r.Finish, r.Days)
	}
	fmt.Fprintf(&b, "  Resources: %s\n", strings.Join(r.Resources, ", "))
	fmt.Fprintf(&b, "  Phases:    %s", strings.Join(r.Phases, ", "))
	for _, d := range r.Dangling {
		fmt.Fprintf(&b, "\n  ! unknown dependency: %s", d)
	}
	return b.String()
}
