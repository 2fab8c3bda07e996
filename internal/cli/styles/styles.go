package styles

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/gantt/internal/config/palettes"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For row labels like task and palette names
	ValueStyle    lipgloss.Style // For dates and durations
	SectionStyle  lipgloss.Style // For section headers like "Resources"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(palettes.Primary())
}

// Init initializes all CLI styles from a chart palette so the terminal
// matches the exported chart.
func Init(p *palettes.Palette) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Accent()))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true)

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Subtle))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Accent())).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#2CA02C"))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#D62728"))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// colored renders text with a hex color
func colored(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// Swatch renders a two cell colour sample
func Swatch(hexColor string) string {
	return colored("██", hexColor)
}

// Check is the marker for a completed action
func Check() string {
	return SuccessStyle.Render("✓")
}

// Cross is the marker for a failure or a missing file
func Cross() string {
	return ErrorStyle.Render("✗")
}

// Bar renders a timeline row: offset blank cells followed by width filled
// cells in the given colour.
func Bar(offset, width int, hexColor string) string {
	if offset < 0 {
		offset = 0
	}
	if width < 1 {
		width = 1
	}
	return strings.Repeat(" ", offset) + colored(strings.Repeat("█", width), hexColor)
}
