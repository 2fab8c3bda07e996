package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/gantt/internal/config"
	"github.com/thenoetrevino/gantt/internal/logging"
)

// CLI represents the CLI application context shared by all commands
type CLI struct {
	Config *config.Config
	Logger *slog.Logger
	ctx    context.Context
}

// NewCLI loads the user config and sets up logging on logOut, normally
// the command's stderr.
func NewCLI(ctx context.Context, verbose bool, logOut io.Writer) (*CLI, error) {
	logger := logging.Init(logOut, verbose)

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Debug("loaded config",
		"palette", cfg.Defaults.Palette,
		"format", cfg.Defaults.Format,
		"output_dir", cfg.Defaults.OutputDir)

	return &CLI{
		Config: cfg,
		Logger: logger,
		ctx:    ctx,
	}, nil
}

// Context returns the context the CLI was created with
func (c *CLI) Context() context.Context {
	if c.ctx == nil {
		return context.Background()
	}
	return c.ctx
}
