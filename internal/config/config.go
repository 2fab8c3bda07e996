package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/gantt/internal/models"
	"gopkg.in/yaml.v3"
)

// Config represents the user configuration. It only supplies defaults;
// project files and flags take precedence.
type Config struct {
	Defaults Defaults `yaml:"defaults"`
}

// Defaults are the fallback chart and export settings
type Defaults struct {
	Palette      string `yaml:"palette"`
	Format       string `yaml:"format"`
	OutputDir    string `yaml:"output_dir"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Scale        int    `yaml:"scale"`
	BrandingText string `yaml:"branding_text"`
	AssetsHost   string `yaml:"assets_host"` // where the HTML loads echarts from
	ChromePath   string `yaml:"chrome_path"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Defaults: Defaults{
			Palette:      models.DefaultPalette,
			Format:       "html",
			OutputDir:    "output",
			Width:        models.DefaultWidth,
			Height:       models.DefaultHeight,
			Scale:        models.DefaultScale,
			BrandingText: "Oxford University",
			AssetsHost:   "https://go-echarts.github.io/go-echarts-assets/assets/",
		},
	}
}

// loadOverlayFile merges the file named by GANTT_CONFIG_FILE over config
func loadOverlayFile(config *Config) {
	overlay := os.Getenv("GANTT_CONFIG_FILE")
	if overlay == "" {
		return
	}

	data, err := os.ReadFile(overlay)
	if err != nil {
		return
	}

	var extra Config
	if yaml.Unmarshal(data, &extra) == nil {
		config.Defaults.mergeFrom(extra.Defaults)
	}
}

// loadEnv applies GANTT_* variables. A .env file in the working directory
// is read first; variables already set in the process win.
func loadEnv(config *Config) {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	env := Defaults{
		Palette:      os.Getenv("GANTT_PALETTE"),
		Format:       os.Getenv("GANTT_FORMAT"),
		OutputDir:    os.Getenv("GANTT_OUTPUT_DIR"),
		BrandingText: os.Getenv("GANTT_BRANDING_TEXT"),
		AssetsHost:   os.Getenv("GANTT_ASSETS_HOST"),
		ChromePath:   os.Getenv("CHROME_PATH"),
	}
	if v, err := strconv.Atoi(os.Getenv("GANTT_SCALE")); err == nil {
		env.Scale = v
	}
	config.Defaults.mergeFrom(env)
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := Path()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, err
			}
		case errors.Is(err, fs.ErrNotExist):
			// no user config, defaults only
		default:
			return nil, err
		}
	}

	loadOverlayFile(config)
	loadEnv(config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// Save writes the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "gantt", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "gantt", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Defaults.fillFrom(Default().Defaults)
}

// mergeFrom overrides fields that are set in other
func (d *Defaults) mergeFrom(other Defaults) {
	if other.Palette != "" {
		d.Palette = other.Palette
	}
	if other.Format != "" {
		d.Format = other.Format
	}
	if other.OutputDir != "" {
		d.OutputDir = other.OutputDir
	}
	if other.Width > 0 {
		d.Width = other.Width
	}
	if other.Height > 0 {
		d.Height = other.Height
	}
	if other.Scale > 0 {
		d.Scale = other.Scale
	}
	if other.BrandingText != "" {
		d.BrandingText = other.BrandingText
	}
	if other.AssetsHost != "" {
		d.AssetsHost = other.AssetsHost
	}
	if other.ChromePath != "" {
		d.ChromePath = other.ChromePath
	}
}

// fillFrom sets fields that are still empty
func (d *Defaults) fillFrom(base Defaults) {
	merged := base
	merged.mergeFrom(*d)
	*d = merged
}
