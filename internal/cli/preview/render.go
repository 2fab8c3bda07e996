package preview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/gantt/internal/cli/styles"
	"github.com/thenoetrevino/gantt/internal/config/palettes"
	"github.com/thenoetrevino/gantt/internal/models"
	"github.com/thenoetrevino/gantt/internal/table"
)

// Options controls the terminal chart
type Options struct {
	Title       string
	Description string
	Palette     *palettes.Palette
	Columns     int // width of the bar area in cells
	View        string
}

// Render draws t as a text Gantt chart: one row per task, bars scaled to
// Columns cells, coloured by resource.
func Render(t table.Table, opts Options) string {
	if opts.Palette == nil {
		opts.Palette = palettes.Primary()
	}
	if opts.Columns < 10 {
		opts.Columns = 10
	}

	var b strings.Builder
	title := opts.Title
	if title == "" {
		title = models.DefaultTitle
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n")
	if desc := RenderDescription(opts.Description, opts.Columns+labelWidth(t)); desc != "" {
		b.WriteString(desc)
		b.WriteString("\n")
	}

	if t.Len() == 0 {
		b.WriteString(styles.SubtitleStyle.Render("No tasks"))
		b.WriteString("\n")
		return b.String()
	}

	origin, end := t.Span()
	total := models.DaysBetween(origin, end)
	if total < 1 {
		total = 1
	}
	scale := float64(opts.Columns) / float64(total)

	colorOf := make(map[string]string)
	for i, r := range t.ResourceNames() {
		colorOf[r] = opts.Palette.Color(i)
	}

	width := labelWidth(t)
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%-*s %s", width, "",
		axis(origin.Format("Jan 02"), end.Format("Jan 02, 2006"), opts.Columns))))
	b.WriteString("\n")

	for _, i := range order(t, opts.View) {
		row := t.Row(i)
		offset, cells := place(models.DaysBetween(origin, row.Start), row.Duration, scale, opts.Columns)

		label := styles.LabelStyle.Render(pad(row.Task, width))
		bar := styles.Bar(offset, cells, colorOf[row.Resource])
		gap := opts.Columns - lipgloss.Width(bar)
		if gap < 0 {
			gap = 0
		}
		info := styles.ValueStyle.Render(fmt.Sprintf("%s  %s", table.DurationText(row.Duration), row.Resource))
		fmt.Fprintf(&b, "%s %s%s  %s\n", label, bar, strings.Repeat(" ", gap), info)
	}

	b.WriteString(styles.SectionStyle.Render("Resources"))
	b.WriteString("\n")
	for _, r := range t.ResourceNames() {
		fmt.Fprintf(&b, "%s %s\n", styles.Swatch(colorOf[r]), r)
	}

	return b.String()
}

// place converts a task's start day and duration into a bar offset and
// width in cells. Every bar is at least one cell wide and ends within
// columns, so a zero-day task on the last day is pulled back one cell.
func place(startDay, days int, scale float64, columns int) (offset, cells int) {
	offset = int(float64(startDay) * scale)
	cells = int(float64(days)*scale + 0.5)
	if cells < 1 {
		cells = 1
	}
	if cells > columns {
		cells = columns
	}
	if offset+cells > columns {
		offset = columns - cells
	}
	if offset < 0 {
		offset = 0
	}
	return offset, cells
}

// order returns row indices, grouped by resource for the resources view
func order(t table.Table, view string) []int {
	rows := make([]int, 0, t.Len())
	if view != models.ViewResources {
		for i := 0; i < t.Len(); i++ {
			rows = append(rows, i)
		}
		return rows
	}
	for _, r := range t.ResourceNames() {
		for i := 0; i < t.Len(); i++ {
			if t.Resource[i] == r {
				rows = append(rows, i)
			}
		}
	}
	return rows
}

func axis(left, right string, columns int) string {
	gap := columns - len(left) - len(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func labelWidth(t table.Table) int {
	width := 4
	for _, name := range t.Task {
		if w := lipgloss.Width(name); w > width {
			width = w
		}
	}
	if width > 30 {
		width = 30
	}
	return width
}

// pad truncates or right-pads s to exactly width cells
func pad(s string, width int) string {
	if lipgloss.Width(s) > width {
		runes := []rune(s)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
			runes = runes[:len(runes)-1]
		}
		return string(runes) + "…"
	}
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}
