package models

// ProjectMetadata labels the chart. Loaded from the `project` key.
type ProjectMetadata struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description,omitempty"`
}

// ChartSettings mirrors the optional `config` key of a project file.
// Zero values mean the setting was not given.
type ChartSettings struct {
	Palette          string `yaml:"palette" json:"palette,omitempty"`
	AddBranding      *bool  `yaml:"add_branding" json:"add_branding,omitempty"`
	Width            int    `yaml:"width" json:"width,omitempty"`
	Height           int    `yaml:"height" json:"height,omitempty"`
	ShowDependencies bool   `yaml:"show_dependencies" json:"show_dependencies,omitempty"`
	View             string `yaml:"view" json:"view,omitempty"`
}

// ProjectData is everything read from a project file. Tasks are kept raw
// until the normalizer turns them into TaskRecords.
type ProjectData struct {
	Project ProjectMetadata
	Config  ChartSettings
	Tasks   []map[string]any

	// Source is the path the data was read from
	Source string
}
