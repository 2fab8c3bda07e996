// Package loader reads project files from disk and checks their shape.
//
// A project file is YAML with a required `tasks` sequence and optional
// `project` and `config` mappings. Loading never interprets task fields;
// that is the normalizer's job.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/gantt/internal/models"
	"gopkg.in/yaml.v3"
)

// DefaultLocations are tried in order when no input path is given.
var DefaultLocations = []string{
	filepath.Join("data", "gantt_data.yaml"),
	filepath.Join("data", "gantt_template.yaml"),
}

// document is the typed view of a project file
type document struct {
	Project models.ProjectMetadata `yaml:"project"`
	Config  models.ChartSettings   `yaml:"config"`
	Tasks   []map[string]any       `yaml:"tasks"`
}

// Load reads and validates the project file at path. An empty path falls
// back to DefaultLocations.
func Load(path string) (*models.ProjectData, error) {
	if path == "" {
		found, err := findDefault()
		if err != nil {
			return nil, err
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, models.Wrap(models.ErrNotFound, err, "%s", path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	slog.Debug("read project file", "path", path, "bytes", len(data))
	return LoadBytes(data, path)
}

// LoadBytes parses and validates an in-memory project file. source is only
// used for messages.
func LoadBytes(data []byte, source string) (*models.ProjectData, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, models.Wrap(models.ErrParse, err, "%s", source)
	}
	if raw == nil {
		return nil, models.Errorf(models.ErrSchema, "%s is empty, expected a mapping with a tasks key", source)
	}
	if _, ok := raw.(map[string]any); !ok {
		return nil, models.Errorf(models.ErrSchema, "%s: top level must be a mapping", source)
	}

	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, models.Wrap(models.ErrSchema, err, "%s", source)
	}
	if doc.Tasks == nil {
		doc.Tasks = []map[string]any{}
	}

	slog.Debug("loaded project", "source", source, "title", doc.Project.Title, "tasks", len(doc.Tasks))

	return &models.ProjectData{
		Project: doc.Project,
		Config:  doc.Config,
		Tasks:   doc.Tasks,
		Source:  source,
	}, nil
}

func findDefault() (string, error) {
	for _, candidate := range DefaultLocations {
		if _, err := os.Stat(candidate); err == nil {
			slog.Info("using default project file", "path", candidate)
			return candidate, nil
		}
	}
	return "", models.Errorf(models.ErrNotFound,
		"no project file given and none of %v exist", DefaultLocations)
}
