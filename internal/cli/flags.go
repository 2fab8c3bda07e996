package cli

import (
	"github.com/spf13/cobra"
)

// OutputFlags extracts the agent-friendly flags every command inherits from
// the root. Missing flags read as false.
func OutputFlags(cmd *cobra.Command) (jsonOutput, quietMode, verbose bool) {
	jsonOutput, _ = cmd.Flags().GetBool("json")
	quietMode, _ = cmd.Flags().GetBool("quiet")
	verbose, _ = cmd.Flags().GetBool("verbose")
	return jsonOutput, quietMode, verbose
}

// NewFormatter builds an OutputFormatter from cmd's flags, writing to the
// command's configured streams.
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, quietMode, _ := OutputFlags(cmd)
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}
