package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gantt/internal/cli"
	"github.com/thenoetrevino/gantt/internal/cli/generate"
	"github.com/thenoetrevino/gantt/internal/cli/palette"
	"github.com/thenoetrevino/gantt/internal/cli/preview"
	"github.com/thenoetrevino/gantt/internal/cli/setup"
	"github.com/thenoetrevino/gantt/internal/cli/validate"
)

// NewRootCmd assembles the gantt command tree
func NewRootCmd() *cobra.Command {
	rootCmd := generate.RootCmd()

	rootCmd.AddCommand(validate.ValidateCmd())
	rootCmd.AddCommand(preview.PreviewCmd())
	rootCmd.AddCommand(palette.PalettesCmd())
	rootCmd.AddCommand(setup.SetupCmd())

	// flag parse errors are usage errors, not general failures
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	})

	return rootCmd
}

// Execute runs the CLI with the process arguments and returns the exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command tree with explicit arguments and writers. Errors
// are reported here, once, in the format the user asked for.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	executed, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	if executed == nil {
		executed = rootCmd
	}
	jsonOutput, _, _ := cli.OutputFlags(executed)
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Out: stdout, Err: stderr}
	if fmtErr := formatter.Report(err); fmtErr != nil {
		fmt.Fprintf(stderr, "Error formatting error message: %v\n", fmtErr)
	}

	return cli.ExitCodeFor(err)
}
