package app

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/tuichrome/internal/config"
	"github.com/Gaurav-Gosain/tuichrome/internal/theme"
	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// cell is one terminal cell of the raster. A wide glyph occupies its own
// cell and marks the next one as a continuation.
type cell struct {
	content string
	cont    bool
	fg      color.Color
	bg      color.Color
}

// raster turns a frame's display list into terminal cells. Translucent
// fills are composited over what is already there.
type raster struct {
	area  uv.Rectangle
	cells []cell
}

func newRaster(w, h int, bg color.Color) *raster {
	w, h = max(w, 0), max(h, 0)
	r := &raster{area: ui.Rect(0, 0, w, h), cells: make([]cell, w*h)}
	for i := range r.cells {
		r.cells[i] = cell{content: " ", bg: bg}
	}
	return r
}

func (r *raster) at(x, y int) *cell {
	if !ui.Contains(r.area, uv.Pos(x, y)) {
		return nil
	}
	return &r.cells[y*ui.Width(r.area)+x]
}

// Cell returns the glyph and colors at (x, y).
func (r *raster) Cell(x, y int) (string, color.Color, color.Color) {
	c := r.at(x, y)
	if c == nil {
		return "", nil, nil
	}
	return c.content, c.fg, c.bg
}

// Paint draws shapes in order.
func (r *raster) Paint(shapes []ui.Shape) {
	for _, s := range shapes {
		clip := r.area
		if s.Clipped {
			clip = ui.Intersect(clip, s.Clip)
		}
		switch s.Kind {
		case ui.ShapeFill:
			r.fill(ui.Intersect(s.Rect, clip), s.Color)
		case ui.ShapeStroke:
			r.stroke(s.Rect, clip, s.Width, s.Color, s.Rounding)
		case ui.ShapeText:
			r.text(s.Pos, s.Align, s.Text, clip, s.Color)
		case ui.ShapeImage:
			r.glyph(s.Rect.Min, s.Image.Glyph, clip, s.Color)
		}
	}
}

func (r *raster) fill(rect uv.Rectangle, c color.Color) {
	if ui.IsTransparent(c) {
		return
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if cl := r.at(x, y); cl != nil {
				cl.bg = theme.Over(c, cl.bg)
			}
		}
	}
}

// stroke draws a one-cell border along the inside of rect.
func (r *raster) stroke(rect uv.Rectangle, clip uv.Rectangle, width int, c color.Color, rounding ui.Rounding) {
	if width <= 0 || ui.Empty(rect) || ui.IsTransparent(c) {
		return
	}
	b := config.GetFrameBorder(!rounding.IsZero())
	x0, y0, x1, y1 := rect.Min.X, rect.Min.Y, rect.Max.X-1, rect.Max.Y-1

	put := func(x, y int, s string) {
		if ui.Contains(clip, uv.Pos(x, y)) {
			r.set(x, y, s, c)
		}
	}
	for x := x0 + 1; x < x1; x++ {
		put(x, y0, b.Top)
		put(x, y1, b.Bottom)
	}
	for y := y0 + 1; y < y1; y++ {
		put(x0, y, b.Left)
		put(x1, y, b.Right)
	}
	put(x0, y0, b.TopLeft)
	put(x1, y0, b.TopRight)
	put(x0, y1, b.BottomLeft)
	put(x1, y1, b.BottomRight)
}

// text lays text out on one row, truncating it with an ellipsis where it
// would cross the clip's right edge.
func (r *raster) text(pos uv.Position, align ui.Align, text string, clip uv.Rectangle, c color.Color) {
	w := ansi.StringWidth(text)
	x := pos.X
	if align == ui.AlignCenter {
		x -= w / 2
	}
	if avail := clip.Max.X - x; w > avail {
		if avail <= 0 {
			return
		}
		text = ansi.Truncate(text, avail, "…")
	}
	for _, ch := range text {
		s := string(ch)
		cw := ansi.StringWidth(s)
		if cw == 0 {
			continue
		}
		if ui.Contains(clip, uv.Pos(x, pos.Y)) {
			r.set(x, pos.Y, s, c)
			if cw > 1 {
				if next := r.at(x+1, pos.Y); next != nil {
					next.content, next.cont = "", true
				}
			}
		}
		x += cw
	}
}

func (r *raster) glyph(pos uv.Position, glyph string, clip uv.Rectangle, c color.Color) {
	if glyph == "" || !ui.Contains(clip, pos) {
		return
	}
	r.set(pos.X, pos.Y, glyph, c)
}

func (r *raster) set(x, y int, s string, fg color.Color) {
	cl := r.at(x, y)
	if cl == nil {
		return
	}
	cl.content, cl.cont = s, false
	cl.fg = theme.Over(fg, cl.bg)
}

// String renders the raster as styled lines, one run per color change.
func (r *raster) String() string {
	w, h := ui.Width(r.area), ui.Height(r.area)
	lines := make([]string, h)
	var line, run strings.Builder
	for y := range h {
		line.Reset()
		run.Reset()
		var runFg, runBg color.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle()
			if runFg != nil {
				style = style.Foreground(runFg)
			}
			if runBg != nil {
				style = style.Background(runBg)
			}
			line.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for x := range w {
			cl := r.cells[y*w+x]
			if cl.cont {
				continue
			}
			if run.Len() > 0 && (!sameColor(cl.fg, runFg) || !sameColor(cl.bg, runBg)) {
				flush()
			}
			runFg, runBg = cl.fg, cl.bg
			run.WriteString(cl.content)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}
