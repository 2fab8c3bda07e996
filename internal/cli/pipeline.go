package cli

import (
	"github.com/thenoetrevino/gantt/internal/loader"
	"github.com/thenoetrevino/gantt/internal/models"
	"github.com/thenoetrevino/gantt/internal/normalizer"
	"github.com/thenoetrevino/gantt/internal/table"
)

// Project is a loaded and normalized project file
type Project struct {
	Data    *models.ProjectData
	Records []models.TaskRecord
	Table   table.Table
}

// LoadProject runs the loader, normalizer and table builder on path.
// Errors come back unchanged so ExitCodeFor can classify them.
func LoadProject(path string) (*Project, error) {
	data, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	records, err := normalizer.Normalize(data.Tasks)
	if err != nil {
		return nil, err
	}

	return &Project{
		Data:    data,
		Records: records,
		Table:   table.Build(records),
	}, nil
}
