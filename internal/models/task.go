package models

import "time"

// TaskRecord is a single validated task. Start and Finish are calendar
// dates at UTC midnight.
type TaskRecord struct {
	Name         string
	Start        time.Time
	Finish       time.Time
	Resource     string
	Phase        string
	Description  string
	Dependencies []string // advisory only, never resolved
}

// Days returns the length of the task in whole days (Finish - Start).
func (t TaskRecord) Days() int {
	return DaysBetween(t.Start, t.Finish)
}

// DaysBetween returns the whole days from a to b. It works on Unix seconds
// so spans longer than time.Duration can hold stay exact.
func DaysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / 86400)
}
