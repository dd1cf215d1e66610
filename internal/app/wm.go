package app

import (
	"github.com/Gaurav-Gosain/tuichrome/internal/chrome"
	"github.com/Gaurav-Gosain/tuichrome/internal/config"
	"github.com/Gaurav-Gosain/tuichrome/internal/host"
	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
	uv "github.com/charmbracelet/ultraviolet"
)

// GestureKind tells a move from a resize.
type GestureKind int

const (
	// GestureMove drags the whole window.
	GestureMove GestureKind = iota
	// GestureResize drags one edge or corner.
	GestureResize
)

func (k GestureKind) String() string {
	if k == GestureResize {
		return "resize"
	}
	return "move"
}

// Gesture is a host-owned window move or resize. It follows the pointer
// until the button is released and can be cancelled back to Start.
type Gesture struct {
	Kind GestureKind
	Dir  host.Direction
	// Origin is the pointer position the gesture is measured from.
	Origin uv.Position
	// Start is the window bounds when the gesture began.
	Start uv.Rectangle
}

// Resize records a new terminal size. The first size places the window in
// the middle of the screen; later sizes keep it reachable.
func (d *Desktop) Resize(width, height int) {
	d.Width, d.Height = width, height
	if !d.placed {
		d.placed = true
		screen := d.Screen()
		w := min(d.sizeHint[0], ui.Width(screen))
		h := min(d.sizeHint[1], ui.Height(screen))
		d.Bounds = ui.FromCenterSize(ui.Center(screen), w, h)
		d.log.Debug("window placed", "bounds", d.Bounds)
		return
	}
	d.ClampToView()
}

// ClampToView shrinks the window to fit the screen and pulls it back until
// enough of it is visible to be grabbed again.
func (d *Desktop) ClampToView() {
	screen := d.Screen()
	sw, sh := ui.Width(screen), ui.Height(screen)
	b := d.Bounds
	w := min(ui.Width(b), sw)
	h := min(ui.Height(b), sh)
	w = max(w, min(config.MinWindowWidth, sw))
	h = max(h, min(config.MinWindowHeight, sh))

	x, y := b.Min.X, b.Min.Y
	x = clampInt(x, config.MinVisibleCells-w, sw-config.MinVisibleCells)
	y = clampInt(y, 0, sh-config.MinVisibleCells)

	clamped := ui.FromMinSize(uv.Pos(x, y), w, h)
	if clamped != d.Bounds {
		d.log.Debug("window clamped to view", "from", d.Bounds, "to", clamped)
		d.Bounds = clamped
	}
}

// SetMaximized maximizes the window or restores it to Bounds.
func (d *Desktop) SetMaximized(maximized bool) {
	if d.Maximized == maximized {
		return
	}
	d.EndGesture()
	d.Maximized = maximized
	d.log.Debug("maximized changed", "maximized", maximized)
}

// SetMinimized hides the window behind its dock pill or shows it again.
func (d *Desktop) SetMinimized(minimized bool) {
	if d.Minimized == minimized {
		return
	}
	d.EndGesture()
	d.Minimized = minimized
	d.log.Debug("minimized changed", "minimized", minimized)
}

// BeginMove starts dragging the window from origin. A maximized window is
// restored first and placed so the pointer keeps its relative spot along
// the title bar.
func (d *Desktop) BeginMove(origin uv.Position) {
	if d.Minimized {
		return
	}
	if d.Maximized {
		screen := d.Screen()
		w, h := ui.Width(d.Bounds), ui.Height(d.Bounds)
		x := origin.X
		if sw := ui.Width(screen); sw > 0 {
			x = origin.X - (origin.X-screen.Min.X)*w/sw
		}
		d.Bounds = ui.FromMinSize(uv.Pos(x, screen.Min.Y), w, h)
		d.Maximized = false
	}
	d.gesture = &Gesture{Kind: GestureMove, Origin: origin, Start: d.Bounds}
	d.log.Debug("gesture started", "kind", d.gesture.Kind, "origin", origin)
}

// BeginResize starts resizing the window from dir, measured from origin.
func (d *Desktop) BeginResize(dir host.Direction, origin uv.Position) {
	if d.Minimized || d.Maximized {
		return
	}
	d.gesture = &Gesture{Kind: GestureResize, Dir: dir, Origin: origin, Start: d.Bounds}
	d.log.Debug("gesture started", "kind", d.gesture.Kind, "dir", dir, "origin", origin)
}

// Follow moves the gesture to pos.
func (d *Desktop) Follow(pos uv.Position) {
	g := d.gesture
	if g == nil {
		return
	}
	dx, dy := pos.X-g.Origin.X, pos.Y-g.Origin.Y
	switch g.Kind {
	case GestureMove:
		d.Bounds = moveBounds(g.Start, dx, dy, d.Screen())
	case GestureResize:
		d.Bounds = resizeBounds(g.Start, g.Dir, dx, dy, d.Screen())
	}
}

// EndGesture keeps the bounds reached by the gesture.
func (d *Desktop) EndGesture() {
	if d.gesture == nil {
		return
	}
	d.log.Debug("gesture ended", "kind", d.gesture.Kind, "bounds", d.Bounds)
	d.gesture = nil
}

// CancelGesture puts the window back where the gesture started.
func (d *Desktop) CancelGesture() {
	if d.gesture == nil {
		return
	}
	d.Bounds = d.gesture.Start
	d.log.Debug("gesture cancelled", "kind", d.gesture.Kind, "bounds", d.Bounds)
	d.gesture = nil
}

// gestureCursor is the pointer shape held for the whole gesture.
func (d *Desktop) gestureCursor() ui.CursorIcon {
	if d.gesture == nil || d.gesture.Kind != GestureResize {
		return ui.CursorUnset
	}
	return chrome.CursorFor(d.gesture.Dir)
}

// moveBounds offsets start by (dx, dy). The window may slide partly off the
// left, right and bottom of the screen but always keeps a few cells in
// view, and its title bar never leaves the top.
func moveBounds(start uv.Rectangle, dx, dy int, screen uv.Rectangle) uv.Rectangle {
	w, h := ui.Width(start), ui.Height(start)
	x := start.Min.X + dx
	y := start.Min.Y + dy

	x = clampInt(x, screen.Min.X-(w-config.MinVisibleCells), screen.Max.X-config.MinVisibleCells)
	y = clampInt(y, screen.Min.Y, screen.Max.Y-config.MinVisibleCells)
	return ui.FromMinSize(uv.Pos(x, y), w, h)
}

// resizeBounds moves the edges of start named by dir by (dx, dy). Moving
// edges stop at the screen and the window never gets smaller than the
// minimum size; the fixed edges never move.
func resizeBounds(start uv.Rectangle, dir host.Direction, dx, dy int, screen uv.Rectangle) uv.Rectangle {
	x0, y0, x1, y1 := start.Min.X, start.Min.Y, start.Max.X, start.Max.Y

	if dir.HasWest() {
		x0 = max(x0+dx, screen.Min.X)
		x0 = min(x0, x1-config.MinWindowWidth)
	}
	if dir.HasEast() {
		x1 = min(x1+dx, screen.Max.X)
		x1 = max(x1, x0+config.MinWindowWidth)
	}
	if dir.HasNorth() {
		y0 = max(y0+dy, screen.Min.Y)
		y0 = min(y0, y1-config.MinWindowHeight)
	}
	if dir.HasSouth() {
		y1 = min(y1+dy, screen.Max.Y)
		y1 = max(y1, y0+config.MinWindowHeight)
	}
	return ui.Rect(x0, y0, x1, y1)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
