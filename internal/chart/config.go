package chart

import (
	"github.com/thenoetrevino/gantt/internal/config/palettes"
	"github.com/thenoetrevino/gantt/internal/models"
)

// Config controls how a table is drawn. Render rejects invalid values
// instead of correcting them.
type Config struct {
	Title    string
	Subtitle string
	Palette  string

	AddBranding  bool
	BrandingText string

	Width  int
	Height int

	View             string
	ShowDependencies bool

	// AssetsHost overrides where the HTML page loads echarts from
	AssetsHost string
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Title:   models.DefaultTitle,
		Palette: models.DefaultPalette,
		Width:   models.DefaultWidth,
		Height:  models.DefaultHeight,
		View:    models.ViewTasks,
	}
}

// Validate checks palette, dimensions and view.
func (c Config) Validate() error {
	if !palettes.Valid(c.Palette) {
		return models.Errorf(models.ErrValidation,
			"unknown palette %q (available: %v)", c.Palette, palettes.Names())
	}
	if c.Width <= 0 || c.Height <= 0 {
		return models.Errorf(models.ErrValidation,
			"width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	switch c.View {
	case "", models.ViewTasks, models.ViewResources:
	default:
		return models.Errorf(models.ErrValidation,
			"unknown view %q (must be: %s, %s)", c.View, models.ViewTasks, models.ViewResources)
	}
	return nil
}
