package models

import "time"

// ============================================================================
// TASK DEFAULTS
// ============================================================================

const (
	// DefaultResource is used when a task has no resource
	DefaultResource = "Unassigned"

	// DefaultPhase is used when a task has no phase
	DefaultPhase = "General"

	// DateLayout is the only accepted date format for start and finish
	DateLayout = time.DateOnly
)

// ============================================================================
// CHART DEFAULTS
// ============================================================================

const (
	DefaultTitle   = "Project Timeline"
	DefaultPalette = "primary"
	DefaultWidth   = 1200
	DefaultHeight  = 600
	DefaultScale   = 3
)

// ============================================================================
// VIEWS
// ============================================================================

// View selects what the chart rows represent.
const (
	ViewTasks     = "tasks"     // one row per task, coloured by resource
	ViewResources = "resources" // one row per resource, coloured by task
)
