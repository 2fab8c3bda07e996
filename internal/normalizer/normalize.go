// Package normalizer turns raw task mappings into validated TaskRecords.
package normalizer

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/gantt/internal/models"
)

// Normalize validates each raw task and applies defaults. The output keeps
// declaration order, which is the default top-to-bottom chart order.
//
// Dependencies are copied as declared; names that match no task are kept.
func Normalize(rawTasks []map[string]any) ([]models.TaskRecord, error) {
	records := make([]models.TaskRecord, 0, len(rawTasks))
	seen := make(map[string]int, len(rawTasks))

	for i, raw := range rawTasks {
		rec, err := normalizeTask(i, raw)
		if err != nil {
			return nil, err
		}

		if first, dup := seen[rec.Name]; dup {
			return nil, models.TaskErrorf(models.ErrValidation, rec.Name,
				"duplicate task name (tasks #%d and #%d)", first+1, i+1)
		}
		seen[rec.Name] = i

		records = append(records, rec)
	}

	for _, rec := range records {
		for _, dep := range rec.Dependencies {
			if _, ok := seen[dep]; !ok {
				slog.Debug("dependency does not match any task", "task", rec.Name, "dependency", dep)
			}
		}
	}

	return records, nil
}

func normalizeTask(index int, raw map[string]any) (models.TaskRecord, error) {
	label := fmt.Sprintf("task #%d", index+1)

	name, err := requiredText(raw, "name", label)
	if err != nil {
		return models.TaskRecord{}, err
	}
	label = fmt.Sprintf("task #%d (%s)", index+1, name)

	startText, err := requiredText(raw, "start", label)
	if err != nil {
		return models.TaskRecord{}, err
	}
	finishText, err := requiredText(raw, "finish", label)
	if err != nil {
		return models.TaskRecord{}, err
	}

	start, err := parseDate(startText, "start", name)
	if err != nil {
		return models.TaskRecord{}, err
	}
	finish, err := parseDate(finishText, "finish", name)
	if err != nil {
		return models.TaskRecord{}, err
	}

	if finish.Before(start) {
		return models.TaskRecord{}, models.TaskErrorf(models.ErrValidation, name,
			"finish %s is before start %s",
			finish.Format(models.DateLayout), start.Format(models.DateLayout))
	}

	deps, err := dependencies(raw["dependencies"], name)
	if err != nil {
		return models.TaskRecord{}, err
	}

	return models.TaskRecord{
		Name:         name,
		Start:        start,
		Finish:       finish,
		Resource:     optionalText(raw, "resource", models.DefaultResource),
		Phase:        optionalText(raw, "phase", models.DefaultPhase),
		Description:  optionalText(raw, "description", ""),
		Dependencies: deps,
	}, nil
}

// requiredText returns the trimmed scalar at key or a SchemaError.
func requiredText(raw map[string]any, key, label string) (string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", models.TaskErrorf(models.ErrSchema, label, "missing required field %q", key)
	}
	text, ok := scalarText(v)
	if !ok {
		return "", models.TaskErrorf(models.ErrSchema, label, "field %q must be a scalar, got %T", key, v)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", models.TaskErrorf(models.ErrSchema, label, "field %q cannot be empty", key)
	}
	return text, nil
}

func optionalText(raw map[string]any, key, fallback string) string {
	text, ok := scalarText(raw[key])
	if !ok {
		return fallback
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fallback
	}
	return text
}

func scalarText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(t), true
	case time.Time:
		return t.Format(models.DateLayout), true
	default:
		return "", false
	}
}

func parseDate(text, field, task string) (time.Time, error) {
	d, err := time.ParseInLocation(models.DateLayout, text, time.UTC)
	if err != nil {
		return time.Time{}, models.TaskErrorf(models.ErrDateFormat, task,
			"%s %q is not a YYYY-MM-DD date", field, text)
	}
	return d, nil
}

// dependencies accepts a sequence of names or a single name and returns an
// ordered set.
func dependencies(v any, task string) ([]string, error) {
	var items []any
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []any:
		items = t
	default:
		if _, ok := scalarText(t); !ok {
			return nil, models.TaskErrorf(models.ErrSchema, task, "dependencies must be a list of task names")
		}
		items = []any{t}
	}

	deps := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		name, ok := scalarText(item)
		if !ok {
			return nil, models.TaskErrorf(models.ErrSchema, task, "dependency %v is not a task name", item)
		}
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		deps = append(deps, name)
	}
	if len(deps) == 0 {
		return nil, nil
	}
	return deps, nil
}
