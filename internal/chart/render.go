// Package chart turns a task table into a go-echarts Gantt chart.
//
// echarts has no native Gantt series. The tasks view is a horizontal
// stacked bar chart: an invisible series pushes each bar to its start
// offset and one visible series per resource carries the duration. The
// resources view draws one lane per resource with every task as a thick
// segment from start to finish, so tasks sharing a lane may overlap.
package chart

import (
	"fmt"
	"html"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/thenoetrevino/gantt/internal/config/palettes"
	"github.com/thenoetrevino/gantt/internal/models"
	"github.com/thenoetrevino/gantt/internal/table"
)

// ChartID is the DOM id of the chart container in the HTML output
const ChartID = "gantt"

const (
	stackName     = "gantt"
	offsetSeries  = "offset"
	transparent   = "rgba(0,0,0,0)"
	dependencySep = " ← "

	// laneWidth is the stroke width of a task segment in the resources view
	laneWidth = 18

	tooltipDate = "Jan 02, 2006"
)

// Artifact is a rendered chart, ready to be written as HTML or handed to
// a rasterizer.
type Artifact struct {
	Config Config

	// Rows are the category labels from top to bottom: task labels in the
	// tasks view, resource names in the resources view
	Rows []string

	// Series are the visible series names in legend order: resources in
	// the tasks view, tasks in the resources view
	Series []string

	chart interface{ Render(w io.Writer) error }
}

// WriteHTML writes a standalone HTML page containing the chart.
func (a *Artifact) WriteHTML(w io.Writer) error {
	return a.chart.Render(w)
}

// Render builds the chart for t. It does no I/O.
func Render(t table.Table, cfg Config) (*Artifact, error) {
	if cfg.View == "" {
		cfg.View = models.ViewTasks
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, _ := palettes.Get(cfg.Palette)

	var art *Artifact
	if cfg.View == models.ViewResources {
		art = renderResources(t, cfg, palette)
	} else {
		art = renderTasks(t, cfg, palette)
	}

	slog.Debug("rendered chart",
		"rows", len(art.Rows), "series", len(art.Series), "palette", palette.Name, "view", cfg.View)
	return art, nil
}

// renderTasks draws one row per task, coloured by resource.
func renderTasks(t table.Table, cfg Config, palette *palettes.Palette) *Artifact {
	origin, _ := t.Span()
	n := t.Len()

	rows := make([]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, rowLabel(t.Row(i), cfg.ShowDependencies))
	}

	// echarts draws the first category at the bottom, so feed rows reversed
	reversed := make([]string, n)
	tips := make([]string, n)
	for i := range rows {
		reversed[n-1-i] = rows[i]
		tips[n-1-i] = tooltipText(t.Row(i), cfg.ShowDependencies)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(t, cfg, tooltipFormatter(tips, "dataIndex", true))...)
	bar.SetXAxis(reversed)

	offsets := make([]opts.BarData, 0, n)
	for j := n - 1; j >= 0; j-- {
		days := models.DaysBetween(origin, t.Start[j])
		offsets = append(offsets, opts.BarData{Name: rows[j], Value: days})
	}
	bar.AddSeries(offsetSeries, offsets,
		charts.WithBarChartOpts(opts.BarChart{Stack: stackName}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: transparent}),
	)

	resources := t.ResourceNames()
	for k, resource := range resources {
		data := make([]opts.BarData, 0, n)
		for j := n - 1; j >= 0; j-- {
			value := 0
			if t.Resource[j] == resource {
				value = t.Duration[j]
			}
			data = append(data, opts.BarData{Name: rows[j], Value: value})
		}
		bar.AddSeries(resource, data,
			charts.WithBarChartOpts(opts.BarChart{Stack: stackName}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: palette.Color(k)}),
		)
	}

	bar.XYReversal()

	return &Artifact{Config: cfg, Rows: rows, Series: resources, chart: bar}
}

// renderResources draws one lane per resource and one series per task,
// each task coloured by its own palette slot.
func renderResources(t table.Table, cfg Config, palette *palettes.Palette) *Artifact {
	origin, _ := t.Span()
	lanes := t.ResourceNames()

	reversed := make([]string, len(lanes))
	for i, lane := range lanes {
		reversed[len(lanes)-1-i] = lane
	}

	tasks := make([]string, 0, t.Len())
	tips := make([]string, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		tasks = append(tasks, t.Task[i])
		tips = append(tips, tooltipText(t.Row(i), cfg.ShowDependencies))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(append(globalOpts(t, cfg, tooltipFormatter(tips, "seriesIndex", false)),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: reversed}),
	)...)

	for i := 0; i < t.Len(); i++ {
		lane := t.Resource[i]
		data := []opts.LineData{
			{Name: t.Task[i], Value: []interface{}{models.DaysBetween(origin, t.Start[i]), lane}},
			{Name: t.Task[i], Value: []interface{}{models.DaysBetween(origin, t.Finish[i]), lane}},
		}
		color := palette.Color(i)
		line.AddSeries(t.Task[i], data,
			charts.WithLineStyleOpts(opts.LineStyle{Color: color, Width: laneWidth}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
		)
	}

	return &Artifact{Config: cfg, Rows: lanes, Series: tasks, chart: line}
}

// globalOpts are shared by both views. The category y axis is added by
// the caller because the bar chart gets it from XYReversal.
func globalOpts(t table.Table, cfg Config, tooltip string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(initOpts(cfg)),
		charts.WithTitleOpts(opts.Title{
			Title:    cfg.Title,
			Subtitle: subtitle(cfg),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "item", Formatter: tooltip}),
		charts.WithLegendOpts(opts.Legend{Show: true, Bottom: "0"}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:        "value",
			Min:         0,
			SplitNumber: monthTicks(t),
			AxisLabel:   &opts.AxisLabel{Show: true, Formatter: axisFormatter(t)},
		}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category"}),
	}
}

func initOpts(cfg Config) opts.Initialization {
	o := opts.Initialization{
		PageTitle: cfg.Title,
		Width:     fmt.Sprintf("%dpx", cfg.Width),
		Height:    fmt.Sprintf("%dpx", cfg.Height),
		ChartID:   ChartID,
	}
	if cfg.AssetsHost != "" {
		o.AssetsHost = cfg.AssetsHost
	}
	return o
}

func rowLabel(row table.Row, showDeps bool) string {
	if !showDeps || len(row.Dependencies) == 0 {
		return row.Task
	}
	return row.Task + dependencySep + strings.Join(row.Dependencies, ", ")
}

// tooltipText is the hover text for one task as echarts tooltip HTML.
func tooltipText(row table.Row, showDeps bool) string {
	lines := []string{
		"<b>" + escape(row.Task) + "</b>",
		"Start: " + row.Start.Format(tooltipDate),
		"End: " + row.Finish.Format(tooltipDate),
		"Duration: " + table.DurationText(row.Duration),
		"Resource: " + escape(row.Resource),
	}
	if showDeps && len(row.Dependencies) > 0 {
		lines = append(lines, "Depends on: "+escape(strings.Join(row.Dependencies, ", ")))
	}
	return strings.Join(lines, "<br/>")
}

// escape makes s safe inside tooltip HTML and a single quoted JS string.
// Backslashes and quotes become entities because go-echarts JSON-encodes
// the function source, which would double any backslash escape.
func escape(s string) string {
	s = html.EscapeString(s)
	s = strings.ReplaceAll(s, `\`, "&#92;")
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

// tooltipFormatter returns a JS formatter that looks the hover text up by
// the echarts param named in index. With skipFirst the first series, the
// transparent offsets, shows nothing.
func tooltipFormatter(tips []string, index string, skipFirst bool) string {
	var b strings.Builder
	b.WriteString("function (p) { ")
	if skipFirst {
		b.WriteString("if (p.seriesIndex === 0) { return ''; } ")
	}
	b.WriteString("var tips = [")
	for i, tip := range tips {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("'" + tip + "'")
	}
	fmt.Fprintf(&b, "]; return tips[p.%s] || ''; }", index)
	return opts.FuncOpts(b.String())
}

// axisFormatter labels day offsets on the value axis as calendar dates.
func axisFormatter(t table.Table) string {
	origin := time.Unix(0, 0).UTC()
	if t.Len() > 0 {
		origin, _ = t.Span()
	}
	return opts.FuncOpts(fmt.Sprintf(
		"function (v) { var d = new Date(Date.parse('%s') + v * 86400000); "+
			"return d.toLocaleDateString('en-US', { month: 'short', day: '2-digit', timeZone: 'UTC' }); }",
		origin.Format(models.DateLayout)))
}

// monthTicks asks echarts for roughly one axis tick per month of the
// span, between 2 and 12.
func monthTicks(t table.Table) int {
	if t.Len() == 0 {
		return 2
	}
	origin, end := t.Span()
	months := (end.Year()-origin.Year())*12 + int(end.Month()-origin.Month()) + 1
	switch {
	case months < 2:
		return 2
	case months > 12:
		return 12
	}
	return months
}

func subtitle(cfg Config) string {
	parts := make([]string, 0, 2)
	if cfg.Subtitle != "" {
		parts = append(parts, cfg.Subtitle)
	}
	if cfg.AddBranding {
		text := cfg.BrandingText
		if text == "" {
			text = "Oxford University"
		}
		parts = append(parts, "© "+text)
	}
	return strings.Join(parts, "  |  ")
}
