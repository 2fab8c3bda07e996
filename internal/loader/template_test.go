package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/gantt/internal/normalizer"
)

func TestTemplateIsValid(t *testing.T) {
	data, err := LoadBytes(Template, "template.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Website Relaunch", data.Project.Title)
	assert.True(t, data.Config.ShowDependencies)

	records, err := normalizer.Normalize(data.Tasks)
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, []string{"Design"}, records[3].Dependencies)
	assert.Equal(t, []string{"Build", "Content migration"}, records[4].Dependencies)
}

func TestWriteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "gantt_template.yaml")

	require.NoError(t, WriteTemplate(path, false))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Template, got)

	err = WriteTemplate(path, false)
	assert.ErrorIs(t, err, ErrExists)

	require.NoError(t, os.WriteFile(path, []byte("tasks: []\n"), 0o644))
	require.NoError(t, WriteTemplate(path, true))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Template, got)
}
