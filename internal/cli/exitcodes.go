package cli

import (
	"errors"

	"github.com/thenoetrevino/gantt/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: file system errors, browser crashes, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: unknown flags, bad flag values and unsupported export formats.
	ExitUsage = 2

	// ExitNotFound indicates the input YAML file does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: YAML that does not parse, schema violations, bad dates.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: finish before start, duplicate task names, unknown palettes.
	ExitValidation = 5

	// ExitToolMissing indicates a required external program is not installed.
	// Use for: png/pdf/svg export without Chrome or Chromium.
	ExitToolMissing = 6
)

// ErrUsage marks command line mistakes that cobra itself does not catch.
var ErrUsage = errors.New("usage error")

// kindInfo maps an error kind to its exit code, JSON code and a hint
type kindInfo struct {
	kind       error
	exit       int
	code       string
	suggestion string
}

var kinds = []kindInfo{
	{models.ErrNotFound, ExitNotFound, "INPUT_NOT_FOUND",
		"Pass an existing file with --input or copy data/gantt_template.yaml to data/gantt_data.yaml"},
	{models.ErrParse, ExitDataErr, "PARSE_ERROR",
		"Check the YAML syntax around the reported line"},
	{models.ErrSchema, ExitDataErr, "SCHEMA_ERROR",
		"Every task needs name, start and finish; see data/gantt_template.yaml"},
	{models.ErrDateFormat, ExitDataErr, "DATE_FORMAT_ERROR",
		"Write dates as YYYY-MM-DD, for example 2024-01-31"},
	{models.ErrValidation, ExitValidation, "VALIDATION_ERROR",
		"Use 'gantt palettes' to list palettes; task names must be unique and finish on or after start"},
	{models.ErrUnsupportedFormat, ExitUsage, "UNSUPPORTED_FORMAT",
		"Use --format html, png, pdf or svg"},
	{models.ErrExternalToolMissing, ExitToolMissing, "TOOL_MISSING",
		"Install Chrome or Chromium, set CHROME_PATH, or use --format html"},
	{ErrUsage, ExitUsage, "USAGE_ERROR", "Run with --help to see valid flags"},
}

// ExitCodeFor maps an error returned by a command to a process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if info, ok := lookup(err); ok {
		return info.exit
	}
	return ExitError
}

// ErrorCode returns the machine readable code and a suggestion for err.
func ErrorCode(err error) (code, suggestion string) {
	if info, ok := lookup(err); ok {
		return info.code, info.suggestion
	}
	return "ERROR", ""
}

func lookup(err error) (kindInfo, bool) {
	for _, info := range kinds {
		if errors.Is(err, info.kind) {
			return info, true
		}
	}
	return kindInfo{}, false
}
