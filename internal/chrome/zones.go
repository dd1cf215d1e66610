// Package chrome draws application-side window decorations: a title bar
// with close, maximize/restore and minimize buttons, a framed content area,
// and invisible resize zones along the window border.
//
// Nothing here moves or resizes a window. Every widget derives its state
// from the frame's pointer snapshot and, on user intent, sends a command to
// the host through the frame's queue.
package chrome

import (
	"github.com/Gaurav-Gosain/tuichrome/internal/host"
	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
	uv "github.com/charmbracelet/ultraviolet"
)

// Zone is one resize hit-rectangle with the direction it resizes in and the
// cursor shown over it.
type Zone struct {
	Rect   uv.Rectangle
	Dir    host.Direction
	Cursor ui.CursorIcon
}

// Zones are the eight resize hit-rectangles of a window border.
type Zones struct {
	NW, NE, SW, SE uv.Rectangle
	N, S, W, E     uv.Rectangle
}

// ResizeZones splits the border of outer into four corner squares of side t
// and four edges of thickness t running between them.
//
// Corners are carved first and edges start where they end, so the zones
// never overlap. When outer is narrower or shorter than 2t the corners
// shrink to half of the available span and the edges between them become
// empty; no rectangle is ever inverted.
func ResizeZones(outer uv.Rectangle, t int) Zones {
	o := ui.Canon(outer)
	tx, ty := clampThickness(o, t)
	x0, y0, x1, y1 := o.Min.X, o.Min.Y, o.Max.X, o.Max.Y

	return Zones{
		NW: ui.Rect(x0, y0, x0+tx, y0+ty),
		NE: ui.Rect(x1-tx, y0, x1, y0+ty),
		SW: ui.Rect(x0, y1-ty, x0+tx, y1),
		SE: ui.Rect(x1-tx, y1-ty, x1, y1),

		N: ui.Rect(x0+tx, y0, x1-tx, y0+ty),
		S: ui.Rect(x0+tx, y1-ty, x1-tx, y1),
		W: ui.Rect(x0, y0+ty, x0+tx, y1-ty),
		E: ui.Rect(x1-tx, y0+ty, x1, y1-ty),
	}
}

// Interior returns outer without its resize border.
func Interior(outer uv.Rectangle, t int) uv.Rectangle {
	o := ui.Canon(outer)
	tx, ty := clampThickness(o, t)
	return ui.Shrink2(o, tx, ty)
}

func clampThickness(o uv.Rectangle, t int) (int, int) {
	t = max(t, 0)
	return min(t, ui.Width(o)/2), min(t, ui.Height(o)/2)
}

// All returns the zones in hit-test order: corners NW, NE, SW, SE, then
// edges N, S, W, E.
func (z Zones) All() [8]Zone {
	return [8]Zone{
		{z.NW, host.NorthWest, ui.CursorResizeNwSe},
		{z.NE, host.NorthEast, ui.CursorResizeNeSw},
		{z.SW, host.SouthWest, ui.CursorResizeNeSw},
		{z.SE, host.SouthEast, ui.CursorResizeNwSe},
		{z.N, host.North, ui.CursorResizeVertical},
		{z.S, host.South, ui.CursorResizeVertical},
		{z.W, host.West, ui.CursorResizeHorizontal},
		{z.E, host.East, ui.CursorResizeHorizontal},
	}
}

// CursorFor returns the cursor of the zone that resizes in dir.
func CursorFor(dir host.Direction) ui.CursorIcon {
	for _, zone := range (Zones{}).All() {
		if zone.Dir == dir {
			return zone.Cursor
		}
	}
	return ui.CursorUnset
}

// Rects returns the zone rectangles in hit-test order.
func (z Zones) Rects() []uv.Rectangle {
	all := z.All()
	rects := make([]uv.Rectangle, 0, len(all))
	for _, zone := range all {
		rects = append(rects, zone.Rect)
	}
	return rects
}

// Find returns the first zone containing p.
func (z Zones) Find(p uv.Position) (Zone, bool) {
	for _, zone := range z.All() {
		if ui.Contains(zone.Rect, p) {
			return zone, true
		}
	}
	return Zone{}, false
}

// TopHotZones returns the NW corner, N edge and NE corner of outer. A title
// bar uses them to hold back drag starts near the top border.
func TopHotZones(outer uv.Rectangle, t int) [3]uv.Rectangle {
	z := ResizeZones(outer, t)
	return [3]uv.Rectangle{z.NW, z.N, z.NE}
}

// PointerInAny reports whether the pointer hovers inside any of rects.
func PointerInAny(ptr ui.Pointer, rects ...uv.Rectangle) bool {
	p, ok := ptr.HoverPos()
	if !ok {
		return false
	}
	for _, r := range rects {
		if ui.Contains(r, p) {
			return true
		}
	}
	return false
}
