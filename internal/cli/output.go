package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/thenoetrevino/gantt/internal/cli/styles"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

// Success outputs successful operation result. human is printed in
// human-readable mode; data is what JSON mode encodes.
func (f *OutputFormatter) Success(data interface{}, human string) error {
	if f.Quiet {
		// Extract path if possible
		if pathGetter, ok := data.(interface{ GetPath() string }); ok {
			_, err := fmt.Fprintln(f.stdout(), pathGetter.GetPath())
			return err
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.stdout()).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	if human == "" {
		return f.prettyPrint(data)
	}
	_, err := fmt.Fprintln(f.stdout(), human)
	return err
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.stdout()).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.stderr(), "%s Error: %s\n", styles.Cross(), message)
	if suggestion != "" {
		fmt.Fprintf(f.stderr(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Report prints err with the code and suggestion its kind maps to.
func (f *OutputFormatter) Report(err error) error {
	code, suggestion := ErrorCode(err)
	return f.ErrorWithSuggestion(code, err.Error(), suggestion)
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	_, err := fmt.Fprintf(f.stdout(), "%+v\n", data)
	return err
}

func (f *OutputFormatter) stdout() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) stderr() io.Writer {
	if f.Err != nil {
		return f.Err
	}
	return os.Stderr
}
