package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/gantt/internal/chart"
	"github.com/thenoetrevino/gantt/internal/models"
	"github.com/thenoetrevino/gantt/internal/table"
)

type fakeRasterizer struct {
	calls []Request
	out   []byte
	err   error
}

func (f *fakeRasterizer) Rasterize(_ context.Context, html []byte, req Request) ([]byte, error) {
	f.calls = append(f.calls, req)
	if len(html) == 0 {
		return nil, errors.New("empty page")
	}
	return f.out, f.err
}

func testArtifact(t *testing.T) *chart.Artifact {
	t.Helper()
	tbl := table.Build([]models.TaskRecord{{
		Name:     "Design",
		Start:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Finish:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Resource: "Alice",
		Phase:    "Plan",
	}})
	cfg := chart.DefaultConfig()
	cfg.Title = "Export Test"
	art, err := chart.Render(tbl, cfg)
	require.NoError(t, err)
	return art
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"html", FormatHTML, false},
		{"PNG", FormatPNG, false},
		{" pdf ", FormatPDF, false},
		{"svg", FormatSVG, false},
		{"jpeg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, models.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExport_HTML(t *testing.T) {
	dir := t.TempDir()
	fake := &fakeRasterizer{}
	e := &Exporter{Rasterizer: fake}

	res, err := e.Export(context.Background(), testArtifact(t), filepath.Join(dir, "nested", "plan"), FormatHTML, 3)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "nested", "plan.html"), res.Path)
	assert.Equal(t, FormatHTML, res.Format)
	assert.Empty(t, fake.calls, "html must not go through the rasterizer")

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), res.Bytes)
	assert.Contains(t, string(data), "Export Test")
}

func TestExport_NormalizesFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		want    Format
		rasters int
	}{
		{"upper case html", Format("HTML"), FormatHTML, 0},
		{"padded html", Format(" html "), FormatHTML, 0},
		{"upper case png", Format("PNG"), FormatPNG, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			fake := &fakeRasterizer{out: []byte("binary")}
			e := &Exporter{Rasterizer: fake, ChromePath: "/nonexistent"}

			res, err := e.Export(context.Background(), testArtifact(t), filepath.Join(dir, "plan"), tt.format, 2)
			require.NoError(t, err)

			assert.Equal(t, tt.want, res.Format)
			assert.Equal(t, filepath.Join(dir, "plan."+string(tt.want)), res.Path)
			assert.Len(t, fake.calls, tt.rasters)
			for _, call := range fake.calls {
				assert.Equal(t, tt.want, call.Format)
			}

			_, err = os.Stat(res.Path)
			require.NoError(t, err)
		})
	}
}

func TestExport_Rasterized(t *testing.T) {
	for _, format := range []Format{FormatPNG, FormatPDF, FormatSVG} {
		t.Run(string(format), func(t *testing.T) {
			dir := t.TempDir()
			fake := &fakeRasterizer{out: []byte("binary")}
			e := &Exporter{Rasterizer: fake}

			res, err := e.Export(context.Background(), testArtifact(t), filepath.Join(dir, "plan"), format, 2)
			require.NoError(t, err)

			require.Len(t, fake.calls, 1)
			assert.Equal(t, Request{Format: format, Width: 1200, Height: 600, Scale: 2}, fake.calls[0])

			data, err := os.ReadFile(filepath.Join(dir, "plan."+string(format)))
			require.NoError(t, err)
			assert.Equal(t, "binary", string(data))
			assert.Equal(t, int64(6), res.Bytes)
		})
	}
}

func TestExport_DefaultScale(t *testing.T) {
	fake := &fakeRasterizer{out: []byte("x")}
	e := &Exporter{Rasterizer: fake}

	_, err := e.Export(context.Background(), testArtifact(t), filepath.Join(t.TempDir(), "plan"), FormatPNG, 0)
	require.NoError(t, err)
	assert.Equal(t, float64(models.DefaultScale), fake.calls[0].Scale)
}

func TestExport_RasterizerError(t *testing.T) {
	dir := t.TempDir()
	fake := &fakeRasterizer{err: errors.New("tab crashed")}
	e := &Exporter{Rasterizer: fake}

	_, err := e.Export(context.Background(), testArtifact(t), filepath.Join(dir, "plan"), FormatPDF, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tab crashed")

	_, statErr := os.Stat(filepath.Join(dir, "plan.pdf"))
	assert.True(t, os.IsNotExist(statErr), "no file is written when rasterization fails")
}

func TestExport_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	e := &Exporter{Rasterizer: &fakeRasterizer{}}

	_, err := e.Export(context.Background(), testArtifact(t), filepath.Join(dir, "plan"), Format("gif"), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnsupportedFormat)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExport_NoBrowser(t *testing.T) {
	t.Setenv("CHROME_PATH", "")
	stubLookPath(t, nil)

	dir := t.TempDir()
	e := &Exporter{}

	_, err := e.Export(context.Background(), testArtifact(t), filepath.Join(dir, "plan"), FormatPNG, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrExternalToolMissing)

	_, statErr := os.Stat(filepath.Join(dir, "plan.png"))
	assert.True(t, os.IsNotExist(statErr))
}
