package generate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/thenoetrevino/gantt/internal/chart"
	"github.com/thenoetrevino/gantt/internal/cli"
	"github.com/thenoetrevino/gantt/internal/config"
	"github.com/thenoetrevino/gantt/internal/export"
	"github.com/thenoetrevino/gantt/internal/models"
)

// fallbackName is the output file stem when neither --output nor a project
// title is available
const fallbackName = "gantt_chart"

// Options holds the raw flag values of the generate command
type Options struct {
	Input      string
	Output     string
	OutputDir  string
	Format     string
	Width      int
	Height     int
	Scale      float64
	Palette    string
	Title      string
	View       string
	Branding   bool
	NoBranding bool
	ShowDeps   bool
	Show       bool
}

// Plan is everything the generate command needs after flags, the project
// file and the user config have been merged.
type Plan struct {
	Chart  chart.Config
	Format export.Format
	Path   string // output path without extension
	Scale  float64
}

// resolveFormat picks the export format before the project file is read so
// a bad --format fails without touching the input.
func resolveFormat(flags *pflag.FlagSet, opts *Options, defaults config.Defaults) (export.Format, error) {
	format := defaults.Format
	if flags.Changed("format") || format == "" {
		format = opts.Format
	}
	return export.ParseFormat(format)
}

// resolve merges, highest first: flags that were set, the project file's
// config block, the user config file, built-in defaults.
func resolve(flags *pflag.FlagSet, opts *Options, data *models.ProjectData, defaults config.Defaults, format export.Format) (*Plan, error) {
	settings := data.Config

	cfg := chart.DefaultConfig()
	cfg.Subtitle = data.Project.Description
	cfg.BrandingText = defaults.BrandingText
	cfg.AssetsHost = defaults.AssetsHost

	cfg.Title = firstString(flagString(flags, "title", opts.Title), data.Project.Title, models.DefaultTitle)
	cfg.Palette = firstString(flagString(flags, "palette", opts.Palette), settings.Palette, defaults.Palette, models.DefaultPalette)
	cfg.View = firstString(flagString(flags, "view", opts.View), settings.View, models.ViewTasks)
	cfg.Width = firstInt(flagInt(flags, "width", opts.Width), settings.Width, defaults.Width, models.DefaultWidth)
	cfg.Height = firstInt(flagInt(flags, "height", opts.Height), settings.Height, defaults.Height, models.DefaultHeight)
	cfg.ShowDependencies = settings.ShowDependencies
	if flags.Changed("show-dependencies") {
		cfg.ShowDependencies = opts.ShowDeps
	}

	switch {
	case opts.NoBranding:
		cfg.AddBranding = false
	case flags.Changed("branding"):
		cfg.AddBranding = opts.Branding
	case settings.AddBranding != nil:
		cfg.AddBranding = *settings.AddBranding
	}

	if flags.Changed("width") && opts.Width <= 0 {
		return nil, fmt.Errorf("%w: --width must be positive, got %d", cli.ErrUsage, opts.Width)
	}
	if flags.Changed("height") && opts.Height <= 0 {
		return nil, fmt.Errorf("%w: --height must be positive, got %d", cli.ErrUsage, opts.Height)
	}

	scale := float64(defaults.Scale)
	if flags.Changed("scale") || scale <= 0 {
		scale = opts.Scale
	}
	if scale <= 0 {
		return nil, fmt.Errorf("%w: --scale must be positive, got %g", cli.ErrUsage, scale)
	}

	outputDir := firstString(flagString(flags, "output-dir", opts.OutputDir), defaults.OutputDir, opts.OutputDir)
	name := opts.Output
	if name == "" {
		name = OutputName(data.Project.Title)
	}

	return &Plan{
		Chart:  cfg,
		Format: format,
		Path:   filepath.Join(outputDir, name),
		Scale:  scale,
	}, nil
}

// OutputName derives a file stem from a project title: lower-cased with
// spaces replaced by underscores.
func OutputName(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return fallbackName
	}
	return strings.ReplaceAll(strings.ToLower(title), " ", "_")
}

func flagString(flags *pflag.FlagSet, name, value string) string {
	if flags.Changed(name) {
		return value
	}
	return ""
}

func flagInt(flags *pflag.FlagSet, name string, value int) int {
	if flags.Changed(name) {
		return value
	}
	return 0
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstInt(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
