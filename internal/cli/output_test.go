package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/thenoetrevino/gantt/internal/cli/styles"
	"github.com/thenoetrevino/gantt/internal/models"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockResult struct {
	Path  string `json:"path"`
	Bytes int    `json:"bytes"`
}

func (m mockResult) GetPath() string {
	return m.Path
}

type mockDataWithoutPath struct {
	Name  string
	Value int
}

func newFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, errOut := newFormatter(true, false)

	if err := f.Success(mockResult{Path: "output/plan.html", Bytes: 42}, "ignored"); err != nil {
		t.Fatalf("Success returned error: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, out.String())
	}
	if result["success"] != true {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]interface{})
	if data["path"] != "output/plan.html" {
		t.Errorf("Expected data.path to be 'output/plan.html', got %v", data["path"])
	}
	if data["bytes"] != float64(42) {
		t.Errorf("Expected data.bytes to be 42, got %v", data["bytes"])
	}
	if errOut.Len() != 0 {
		t.Errorf("Expected nothing on stderr, got %q", errOut.String())
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		expected string
	}{
		{"result with path", mockResult{Path: "output/plan.png"}, "output/plan.png\n"},
		{"data without path", mockDataWithoutPath{Name: "x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newFormatter(false, true)
			if err := f.Success(tt.data, "human text"); err != nil {
				t.Fatalf("Success returned error: %v", err)
			}
			if out.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, out.String())
			}
		})
	}
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		human    string
		contains string
	}{
		{"human text wins", mockResult{Path: "a.html"}, "Chart saved", "Chart saved\n"},
		{"falls back to %+v", mockDataWithoutPath{Name: "test", Value: 7}, "", "Name:test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newFormatter(false, false)
			if err := f.Success(tt.data, tt.human); err != nil {
				t.Fatalf("Success returned error: %v", err)
			}
			if !strings.Contains(out.String(), tt.contains) {
				t.Errorf("Expected output to contain %q, got %q", tt.contains, out.String())
			}
		})
	}
}

// ============================================================================
// Errors
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	tests := []struct {
		name       string
		suggestion string
	}{
		{"without suggestion", ""},
		{"with suggestion", "Try --format html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, errOut := newFormatter(true, false)
			if err := f.ErrorWithSuggestion("UNSUPPORTED_FORMAT", "bad format", tt.suggestion); err != nil {
				t.Fatalf("ErrorWithSuggestion returned error: %v", err)
			}

			var result map[string]interface{}
			if err := json.Unmarshal(out.Bytes(), &result); err != nil {
				t.Fatalf("Failed to parse JSON output: %v", err)
			}
			if result["success"] != false {
				t.Error("Expected success to be false")
			}
			errData := result["error"].(map[string]interface{})
			if errData["code"] != "UNSUPPORTED_FORMAT" {
				t.Errorf("Expected code UNSUPPORTED_FORMAT, got %v", errData["code"])
			}
			if errData["message"] != "bad format" {
				t.Errorf("Expected message 'bad format', got %v", errData["message"])
			}
			_, hasSuggestion := errData["suggestion"]
			if hasSuggestion != (tt.suggestion != "") {
				t.Errorf("Unexpected suggestion presence: %v", errData)
			}
			if errOut.Len() != 0 {
				t.Errorf("JSON mode must not write to stderr, got %q", errOut.String())
			}
		})
	}
}

func TestOutputFormatter_Error_HumanReadable(t *testing.T) {
	f, out, errOut := newFormatter(false, false)
	if err := f.ErrorWithSuggestion("INPUT_NOT_FOUND", "input file not found: x.yaml", "Pass --input"); err != nil {
		t.Fatalf("ErrorWithSuggestion returned error: %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("Expected nothing on stdout, got %q", out.String())
	}
	stderr := errOut.String()
	if !strings.Contains(stderr, "Error: input file not found: x.yaml") {
		t.Errorf("Expected error message on stderr, got %q", stderr)
	}
	if !strings.Contains(stderr, "Suggestion: Pass --input") {
		t.Errorf("Expected suggestion on stderr, got %q", stderr)
	}
	if !strings.HasPrefix(stderr, styles.Cross()+" Error:") {
		t.Errorf("Expected the error marker first, got %q", stderr)
	}
}

func TestOutputFormatter_Report(t *testing.T) {
	f, out, _ := newFormatter(true, false)
	err := models.TaskErrorf(models.ErrValidation, "Build", "finish 2024-01-01 is before start 2024-01-05")

	if fmtErr := f.Report(fmt.Errorf("normalize: %w", err)); fmtErr != nil {
		t.Fatalf("Report returned error: %v", fmtErr)
	}

	var result map[string]interface{}
	if jsonErr := json.Unmarshal(out.Bytes(), &result); jsonErr != nil {
		t.Fatalf("Failed to parse JSON output: %v", jsonErr)
	}
	errData := result["error"].(map[string]interface{})
	if errData["code"] != "VALIDATION_ERROR" {
		t.Errorf("Expected VALIDATION_ERROR, got %v", errData["code"])
	}
	if !strings.Contains(errData["message"].(string), "Build") {
		t.Errorf("Expected message to name the task, got %v", errData["message"])
	}
}

func TestOutputFormatter_Report_UnknownError(t *testing.T) {
	f, _, errOut := newFormatter(false, false)
	if err := f.Report(errors.New("disk full")); err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if strings.Contains(errOut.String(), "Suggestion") {
		t.Errorf("Unknown errors carry no suggestion, got %q", errOut.String())
	}
}
