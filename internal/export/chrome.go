package export

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/thenoetrevino/gantt/internal/chart"
	"github.com/thenoetrevino/gantt/internal/models"
)

// browserNames are tried on PATH, in order, when no explicit path is given.
var browserNames = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"headless-shell",
	"chrome",
}

// lookPath is swapped out in tests
var lookPath = exec.LookPath

// FindBrowser locates a Chrome compatible executable. An explicit path wins,
// then CHROME_PATH, then the well known names on PATH.
func FindBrowser(explicit string) (string, error) {
	for _, candidate := range []string{explicit, os.Getenv("CHROME_PATH")} {
		if candidate == "" {
			continue
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if p, err := lookPath(candidate); err == nil {
			return p, nil
		}
		return "", models.Errorf(models.ErrExternalToolMissing,
			"browser %q does not exist", candidate)
	}

	for _, name := range browserNames {
		if p, err := lookPath(name); err == nil {
			return p, nil
		}
	}
	return "", models.Errorf(models.ErrExternalToolMissing,
		"png, pdf and svg export need Chrome or Chromium (tried %v)", browserNames)
}

// Chrome rasterizes chart pages with a headless browser.
type Chrome struct {
	ExecPath string
	Timeout  time.Duration
}

// renderWait gives echarts time to finish its entry animation
const renderWait = 1500 * time.Millisecond

// svgScript re-creates the chart in the element with the given id on
// echarts' svg renderer, without animation, so the DOM holds a complete
// <svg> instead of a canvas. It evaluates to false when no chart is found.
func svgScript(id string) string {
	return fmt.Sprintf(`(function () {
	var el = document.getElementById(%q);
	var old = el && echarts.getInstanceByDom(el);
	if (!old) { return false; }
	var option = old.getOption();
	option.animation = false;
	old.dispose();
	echarts.init(el, null, { renderer: 'svg' }).setOption(option);
	return true;
})()`, id)
}

// Rasterize loads html into a fresh headless tab and captures it.
func (c *Chrome) Rasterize(ctx context.Context, html []byte, req Request) ([]byte, error) {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// the page is loaded from disk so relative asset hosts keep working
	tmp, err := os.CreateTemp("", "gantt-*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to stage chart page: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(html); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("failed to stage chart page: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to stage chart page: %w", err)
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(c.ExecPath),
		chromedp.WindowSize(req.Width, req.Height),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	selector := "#" + chart.ChartID
	actions := chromedp.Tasks{
		chromedp.EmulateViewport(int64(req.Width), int64(req.Height), chromedp.EmulateScale(req.Scale)),
		chromedp.Navigate("file://" + tmp.Name()),
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Sleep(renderWait),
	}

	var out []byte
	switch req.Format {
	case FormatPNG:
		actions = append(actions, chromedp.Screenshot(selector, &out, chromedp.ByQuery))
	case FormatSVG:
		var swapped bool
		var markup string
		actions = append(actions,
			chromedp.Evaluate(svgScript(chart.ChartID), &swapped),
			chromedp.WaitReady(selector+" svg", chromedp.ByQuery),
			chromedp.OuterHTML(selector+" svg", &markup, chromedp.ByQuery),
		)
		if err := chromedp.Run(tabCtx, actions); err != nil {
			return nil, fmt.Errorf("chrome svg export failed: %w", err)
		}
		if !swapped {
			return nil, fmt.Errorf("chrome svg export failed: no chart in element %q", chart.ChartID)
		}
		return []byte(markup), nil
	case FormatPDF:
		actions = append(actions, chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(req.Width > req.Height).
				Do(ctx)
			out = data
			return err
		}))
	default:
		return nil, models.Errorf(models.ErrUnsupportedFormat, "%q cannot be rasterized", req.Format)
	}

	if err := chromedp.Run(tabCtx, actions); err != nil {
		return nil, fmt.Errorf("chrome %s export failed: %w", req.Format, err)
	}
	return out, nil
}
