package models

import (
	"errors"
	"testing"
	"time"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Unique(t *testing.T) {
	kinds := []error{
		ErrNotFound,
		ErrParse,
		ErrSchema,
		ErrDateFormat,
		ErrValidation,
		ErrUnsupportedFormat,
		ErrExternalToolMissing,
	}

	for i, a := range kinds {
		for j, b := range kinds {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}

func TestError_Is(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"errorf", Errorf(ErrSchema, "missing key %q", "tasks"), ErrSchema},
		{"task error", TaskErrorf(ErrValidation, "Design", "finish before start"), ErrValidation},
		{"wrap keeps kind", Wrap(ErrNotFound, cause, "open %s", "x.yaml"), ErrNotFound},
		{"wrap keeps cause", Wrap(ErrNotFound, cause, "open %s", "x.yaml"), cause},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.kind)
			}
		})
	}
}

func TestError_Message(t *testing.T) {
	err := TaskErrorf(ErrValidation, "Build", "finish 2024-01-01 is before start 2024-02-01")
	want := "validation error in Build: finish 2024-01-01 is before start 2024-02-01"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var typed *Error
	if !errors.As(err, &typed) {
		t.Fatal("expected *Error")
	}
	if typed.Task != "Build" {
		t.Errorf("Task = %q, want Build", typed.Task)
	}
}

func TestTaskRecord_Days(t *testing.T) {
	rec := TaskRecord{
		Start:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Finish: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
	}
	if got := rec.Days(); got != 13 {
		t.Errorf("Days() = %d, want 13", got)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 0},
		{"leap february", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 29},
		{"full calendar range", time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC), 3652058},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}

	rec := TaskRecord{Start: time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), Finish: time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)}
	if got := rec.Days(); got != 3652058 {
		t.Errorf("Days() over the full calendar = %d, want 3652058", got)
	}
}
