package normalizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/gantt/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalize(t *testing.T) {
	raw := []map[string]any{
		{"name": "Design", "start": "2024-01-01", "finish": "2024-01-10", "resource": "Alice", "phase": "Planning"},
		{"name": "Build", "start": "2024-01-11", "finish": "2024-02-01", "dependencies": []any{"Design"}},
	}

	records, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, models.TaskRecord{
		Name:     "Design",
		Start:    date(2024, 1, 1),
		Finish:   date(2024, 1, 10),
		Resource: "Alice",
		Phase:    "Planning",
	}, records[0])

	assert.Equal(t, "Build", records[1].Name)
	assert.Equal(t, models.DefaultResource, records[1].Resource)
	assert.Equal(t, models.DefaultPhase, records[1].Phase)
	assert.Empty(t, records[1].Description)
	assert.Equal(t, []string{"Design"}, records[1].Dependencies)
}

func TestNormalize_PreservesOrder(t *testing.T) {
	names := []string{"Zeta", "Alpha", "Mid", "Beta"}
	raw := make([]map[string]any, 0, len(names))
	for _, n := range names {
		raw = append(raw, map[string]any{"name": n, "start": "2024-03-01", "finish": "2024-03-02"})
	}

	records, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, records, len(names))
	for i, n := range names {
		assert.Equal(t, n, records[i].Name)
	}
}

func TestNormalize_Empty(t *testing.T) {
	records, err := Normalize(nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNormalize_SameDayTask(t *testing.T) {
	records, err := Normalize([]map[string]any{
		{"name": "Milestone", "start": "2024-05-01", "finish": "2024-05-01"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, records[0].Days())
}

func TestNormalize_Dependencies(t *testing.T) {
	tests := []struct {
		name string
		deps any
		want []string
	}{
		{"absent", nil, nil},
		{"single string", "Design", []string{"Design"}},
		{"list", []any{"A", "B"}, []string{"A", "B"}},
		{"duplicates dropped", []any{"A", "B", "A"}, []string{"A", "B"}},
		{"blank entries dropped", []any{"", "  ", "A"}, []string{"A"}},
		{"unknown names kept", []any{"Nope"}, []string{"Nope"}},
		{"numeric names", []any{1, 2.5}, []string{"1", "2.5"}},
		{"single numeric name", 7, []string{"7"}},
		{"empty list", []any{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]any{"name": "T", "start": "2024-01-01", "finish": "2024-01-02"}
			if tt.deps != nil {
				raw["dependencies"] = tt.deps
			}
			records, err := Normalize([]map[string]any{raw})
			require.NoError(t, err)
			assert.Equal(t, tt.want, records[0].Dependencies)
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  []map[string]any
		kind error
		msg  []string
	}{
		{
			name: "missing name",
			raw:  []map[string]any{{"start": "2024-01-01", "finish": "2024-01-02"}},
			kind: models.ErrSchema,
			msg:  []string{"task #1", `"name"`},
		},
		{
			name: "blank name",
			raw:  []map[string]any{{"name": "  ", "start": "2024-01-01", "finish": "2024-01-02"}},
			kind: models.ErrSchema,
			msg:  []string{"task #1"},
		},
		{
			name: "missing start names the task",
			raw: []map[string]any{
				{"name": "Ok", "start": "2024-01-01", "finish": "2024-01-02"},
				{"name": "Broken", "finish": "2024-01-02"},
			},
			kind: models.ErrSchema,
			msg:  []string{"task #2", "Broken", `"start"`},
		},
		{
			name: "missing finish",
			raw:  []map[string]any{{"name": "Broken", "start": "2024-01-01"}},
			kind: models.ErrSchema,
			msg:  []string{"Broken", `"finish"`},
		},
		{
			name: "start is a mapping",
			raw:  []map[string]any{{"name": "Broken", "start": map[string]any{"y": 2024}, "finish": "2024-01-02"}},
			kind: models.ErrSchema,
		},
		{
			name: "unparsable start",
			raw:  []map[string]any{{"name": "Broken", "start": "01/02/2024", "finish": "2024-01-02"}},
			kind: models.ErrDateFormat,
			msg:  []string{"Broken", "01/02/2024"},
		},
		{
			name: "impossible date",
			raw:  []map[string]any{{"name": "Broken", "start": "2024-01-01", "finish": "2024-02-30"}},
			kind: models.ErrDateFormat,
			msg:  []string{"finish"},
		},
		{
			name: "integer date",
			raw:  []map[string]any{{"name": "Broken", "start": 20240101, "finish": "2024-01-02"}},
			kind: models.ErrDateFormat,
		},
		{
			name: "finish before start",
			raw:  []map[string]any{{"name": "Backwards", "start": "2024-02-01", "finish": "2024-01-01"}},
			kind: models.ErrValidation,
			msg:  []string{"Backwards", "2024-01-01", "2024-02-01"},
		},
		{
			name: "duplicate names",
			raw: []map[string]any{
				{"name": "Design", "start": "2024-01-01", "finish": "2024-01-02"},
				{"name": "Design", "start": "2024-01-03", "finish": "2024-01-04"},
			},
			kind: models.ErrValidation,
			msg:  []string{"Design", "duplicate", "#1", "#2"},
		},
		{
			name: "dependencies mapping",
			raw:  []map[string]any{{"name": "T", "start": "2024-01-01", "finish": "2024-01-02", "dependencies": map[string]any{"a": 1}}},
			kind: models.ErrSchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Normalize(tt.raw)
			require.Error(t, err)
			assert.Nil(t, records)
			assert.ErrorIs(t, err, tt.kind)
			for _, m := range tt.msg {
				assert.Contains(t, err.Error(), m)
			}
		})
	}
}
