package models

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure surfaced by the loader, normalizer, chart and
// export packages matches exactly one of these via errors.Is.
var (
	// ErrNotFound indicates the input YAML file does not exist
	ErrNotFound = errors.New("input file not found")

	// ErrParse indicates the input is not valid YAML
	ErrParse = errors.New("invalid YAML")

	// ErrSchema indicates a required key is missing or has the wrong shape
	ErrSchema = errors.New("schema error")

	// ErrDateFormat indicates a date that is not YYYY-MM-DD
	ErrDateFormat = errors.New("invalid date format")

	// ErrValidation indicates well-formed data that breaks a rule
	// (finish before start, duplicate task name, unknown palette)
	ErrValidation = errors.New("validation error")

	// ErrUnsupportedFormat indicates an export format outside html, png, pdf, svg
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrExternalToolMissing indicates no headless browser is available for rasterization
	ErrExternalToolMissing = errors.New("external tool missing")
)

// Error carries an error kind plus the context needed to fix the input.
type Error struct {
	Kind error
	Task string // task name or "task #N", empty when not task specific
	Msg  string
	Err  error // underlying cause, optional
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Task != "" {
		msg += fmt.Sprintf(" in %s", e.Task)
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Errorf builds an *Error of the given kind.
func Errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// TaskErrorf builds an *Error of the given kind tied to a task.
func TaskErrorf(kind error, task string, format string, args ...any) error {
	return &Error{Kind: kind, Task: task, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind to an underlying error.
func Wrap(kind error, err error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}
