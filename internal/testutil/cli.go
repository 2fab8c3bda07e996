package testutil

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// envKeys are the variables config.Load reads
var envKeys = []string{
	"GANTT_CONFIG_FILE",
	"GANTT_PALETTE",
	"GANTT_FORMAT",
	"GANTT_OUTPUT_DIR",
	"GANTT_BRANDING_TEXT",
	"GANTT_ASSETS_HOST",
	"GANTT_SCALE",
	"CHROME_PATH",
}

// Isolate points the user config at an empty directory and clears the
// GANTT_* environment for the duration of the test.
func Isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

// WriteProject writes a project file into a fresh temp dir and returns its path
func WriteProject(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write project file: %v", err)
	}
	return path
}

// ExecuteCommand runs a cobra command with args and captures its output
func ExecuteCommand(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	setupCommand(cmd, args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// setupCommand sets args and silences cobra's own usage and error output
func setupCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
