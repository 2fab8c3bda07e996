// Package table reshapes task records into the column-oriented form the
// chart and preview renderers consume.
package table

import (
	"fmt"
	"time"

	"github.com/thenoetrevino/gantt/internal/models"
)

// Table holds one entry per task in every column. All columns have the
// same length and share row order with the source records.
type Table struct {
	Task         []string
	Start        []time.Time
	Finish       []time.Time
	Resource     []string
	Phase        []string
	Description  []string
	Dependencies [][]string
	Duration     []int // days, Finish - Start
}

// Row is a single task read back out of a Table.
type Row struct {
	Task         string
	Start        time.Time
	Finish       time.Time
	Resource     string
	Phase        string
	Description  string
	Dependencies []string
	Duration     int
}

// Build converts records into a Table. It performs no validation.
func Build(records []models.TaskRecord) Table {
	n := len(records)
	t := Table{
		Task:         make([]string, 0, n),
		Start:        make([]time.Time, 0, n),
		Finish:       make([]time.Time, 0, n),
		Resource:     make([]string, 0, n),
		Phase:        make([]string, 0, n),
		Description:  make([]string, 0, n),
		Dependencies: make([][]string, 0, n),
		Duration:     make([]int, 0, n),
	}

	for _, rec := range records {
		t.Task = append(t.Task, rec.Name)
		t.Start = append(t.Start, rec.Start)
		t.Finish = append(t.Finish, rec.Finish)
		t.Resource = append(t.Resource, rec.Resource)
		t.Phase = append(t.Phase, rec.Phase)
		t.Description = append(t.Description, rec.Description)
		t.Dependencies = append(t.Dependencies, rec.Dependencies)
		t.Duration = append(t.Duration, rec.Days())
	}

	return t
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Task)
}

// Row returns row i.
func (t Table) Row(i int) Row {
	return Row{
		Task:         t.Task[i],
		Start:        t.Start[i],
		Finish:       t.Finish[i],
		Resource:     t.Resource[i],
		Phase:        t.Phase[i],
		Description:  t.Description[i],
		Dependencies: t.Dependencies[i],
		Duration:     t.Duration[i],
	}
}

// Span returns the earliest start and latest finish. Both are zero for an
// empty table.
func (t Table) Span() (start, finish time.Time) {
	for i := range t.Task {
		if i == 0 || t.Start[i].Before(start) {
			start = t.Start[i]
		}
		if i == 0 || t.Finish[i].After(finish) {
			finish = t.Finish[i]
		}
	}
	return start, finish
}

// ResourceNames returns distinct resources in first-seen order.
func (t Table) ResourceNames() []string {
	return distinct(t.Resource)
}

// PhaseNames returns distinct phases in first-seen order.
func (t Table) PhaseNames() []string {
	return distinct(t.Phase)
}

// DurationText formats a day count for labels and tooltips.
func DurationText(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
