package chrome

import (
	"image/color"

	"github.com/Gaurav-Gosain/tuichrome/internal/config"
	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
	uv "github.com/charmbracelet/ultraviolet"
)

// Window is the decorated window: frame, title bar, resize border and a
// content area handed to the application.
type Window struct {
	Title     string
	Icon      string
	Maximize  bool
	Resizable bool
	Metrics   config.Metrics
	// CloseColor replaces the close button's hover red.
	CloseColor color.Color
}

// Layout is the geometry of one window frame.
type Layout struct {
	Outer    uv.Rectangle
	Frame    uv.Rectangle
	App      uv.Rectangle
	TitleBar uv.Rectangle
	Content  uv.Rectangle
	Rounding int
	Stroke   int
}

// ComputeLayout splits outer into frame, title bar and content. A maximized
// window has no margin, stroke or rounding.
func (w Window) ComputeLayout(outer uv.Rectangle, maximized bool) Layout {
	m := w.Metrics
	l := Layout{Outer: outer, Rounding: m.Rounding, Stroke: m.Stroke}
	margin := m.Margin
	if maximized {
		l.Rounding, l.Stroke, margin = 0, 0, 0
	}

	l.Frame = ui.Shrink(outer, margin)
	l.App = ui.Shrink(l.Frame, l.Stroke)
	l.TitleBar = l.App
	l.TitleBar.Max.Y = min(l.App.Min.Y+m.TitleBarHeight, l.App.Max.Y)
	l.Content = ui.Shrink(ui.Rect(l.App.Min.X, l.TitleBar.Max.Y, l.App.Max.X, l.App.Max.Y), m.ContentInset)
	return l
}

// WindowResponse is what the window did this frame.
type WindowResponse struct {
	Layout   Layout
	TitleBar TitleBarResponse
	// Resize is the border zone under the pointer, if any.
	Resize   Zone
	Resizing bool
}

// Show draws the window over ctx.Rect() and calls content exactly once with
// a context clipped to the content area.
func (w Window) Show(ctx *ui.Context, content func(*ui.Context)) WindowResponse {
	outer := ctx.Rect()
	maximized := ctx.Viewport().Maximized
	l := w.ComputeLayout(outer, maximized)
	vis := ctx.Style().Visuals

	p := ctx.Painter()
	p.FillRect(l.Frame, vis.WindowFill, ui.Round(l.Rounding))
	p.StrokeRect(l.Frame, l.Stroke, vis.NoninteractiveStroke, ui.Round(l.Rounding))

	resp := WindowResponse{Layout: l}

	var suppress []uv.Rectangle
	if w.Resizable && !maximized {
		resp.Resize, resp.Resizing = ResizeBorders(ctx, outer, w.Metrics.BorderThickness, true)
		hot := TopHotZones(outer, w.Metrics.BorderThickness)
		suppress = hot[:]
	}

	resp.TitleBar = TitleBar{
		Rect:       l.TitleBar,
		Title:      w.Title,
		Icon:       w.Icon,
		Maximize:   w.Maximize,
		Metrics:    w.Metrics,
		Suppress:   suppress,
		CloseColor: w.CloseColor,
	}.Show(ctx)

	if content != nil {
		content(ctx.Child(l.Content))
	}
	return resp
}
