// Package export persists rendered charts as html, png, pdf or svg files.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/gantt/internal/chart"
	"github.com/thenoetrevino/gantt/internal/models"
)

// Format is an output file format.
type Format string

const (
	FormatHTML Format = "html"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
	FormatSVG  Format = "svg"
)

// Formats lists the supported formats in help order.
var Formats = []Format{FormatHTML, FormatPNG, FormatPDF, FormatSVG}

// ParseFormat maps a user supplied string to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", models.Errorf(models.ErrUnsupportedFormat,
		"%q (must be: html, png, pdf, svg)", s)
}

// Rasterizer turns a chart HTML page into a static image or document.
type Rasterizer interface {
	Rasterize(ctx context.Context, html []byte, req Request) ([]byte, error)
}

// Request describes one rasterization.
type Request struct {
	Format Format
	Width  int
	Height int
	Scale  float64
}

// Result describes a written file.
type Result struct {
	Path   string `json:"path"`
	Format Format `json:"format"`
	Bytes  int64  `json:"bytes"`
}

// Exporter writes artifacts to disk. A nil Rasterizer is resolved lazily to
// headless Chrome the first time a static format is requested.
type Exporter struct {
	Rasterizer Rasterizer

	// ChromePath overrides the browser lookup for the default rasterizer
	ChromePath string
}

// Export writes artifact to "<path>.<format>", creating parent directories.
func (e *Exporter) Export(ctx context.Context, artifact *chart.Artifact, path string, format Format, scale float64) (Result, error) {
	format, err := ParseFormat(string(format))
	if err != nil {
		return Result{}, err
	}
	if scale <= 0 {
		scale = models.DefaultScale
	}

	target := path + "." + string(format)
	if dir := filepath.Dir(target); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Result{}, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var page bytes.Buffer
	if err := artifact.WriteHTML(&page); err != nil {
		return Result{}, fmt.Errorf("failed to render chart html: %w", err)
	}

	data := page.Bytes()
	if format != FormatHTML {
		r, err := e.rasterizer()
		if err != nil {
			return Result{}, err
		}
		data, err = r.Rasterize(ctx, page.Bytes(), Request{
			Format: format,
			Width:  artifact.Config.Width,
			Height: artifact.Config.Height,
			Scale:  scale,
		})
		if err != nil {
			return Result{}, err
		}
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return Result{}, fmt.Errorf("failed to write %s: %w", target, err)
	}

	slog.Debug("exported chart", "path", target, "format", format, "bytes", len(data))

	return Result{Path: target, Format: format, Bytes: int64(len(data))}, nil
}

func (e *Exporter) rasterizer() (Rasterizer, error) {
	if e.Rasterizer != nil {
		return e.Rasterizer, nil
	}
	bin, err := FindBrowser(e.ChromePath)
	if err != nil {
		return nil, err
	}
	e.Rasterizer = &Chrome{ExecPath: bin}
	return e.Rasterizer, nil
}
