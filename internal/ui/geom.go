// Package ui is the thin immediate-mode layer the window chrome draws
// through: geometry helpers, the per-frame input snapshot, the shared
// style, a painter, image loading and the per-frame Context that ties
// them together.
package ui

import (
	uv "github.com/charmbracelet/ultraviolet"
)

// Rect builds a rectangle from its min and max corners.
func Rect(x0, y0, x1, y1 int) uv.Rectangle {
	return uv.Rectangle{Min: uv.Pos(x0, y0), Max: uv.Pos(x1, y1)}
}

// FromMinSize builds a w×h rectangle whose top-left corner is at p.
func FromMinSize(p uv.Position, w, h int) uv.Rectangle {
	return Rect(p.X, p.Y, p.X+w, p.Y+h)
}

// FromCenterSize builds a w×h rectangle centered on c.
func FromCenterSize(c uv.Position, w, h int) uv.Rectangle {
	x0 := c.X - w/2
	y0 := c.Y - h/2
	return Rect(x0, y0, x0+w, y0+h)
}

// Width returns the horizontal extent of r, never negative.
func Width(r uv.Rectangle) int { return max(r.Dx(), 0) }

// Height returns the vertical extent of r, never negative.
func Height(r uv.Rectangle) int { return max(r.Dy(), 0) }

// Empty reports whether r covers no points.
func Empty(r uv.Rectangle) bool { return r.Empty() }

// Contains reports whether p lies in r. Min edges are inside, max edges are
// outside, so adjacent rectangles never share a point.
func Contains(r uv.Rectangle, p uv.Position) bool { return p.In(r) }

// Center returns the middle point of r.
func Center(r uv.Rectangle) uv.Position {
	return uv.Pos(r.Min.X+Width(r)/2, r.Min.Y+Height(r)/2)
}

// LeftCenter returns the point on the left edge of r halfway down.
func LeftCenter(r uv.Rectangle) uv.Position {
	return uv.Pos(r.Min.X, r.Min.Y+Height(r)/2)
}

// Canon clamps r so Min is never greater than Max on either axis.
// An inverted rectangle collapses onto its min corner.
func Canon(r uv.Rectangle) uv.Rectangle {
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}

// Shrink2 insets r by dx horizontally and dy vertically on both sides.
func Shrink2(r uv.Rectangle, dx, dy int) uv.Rectangle {
	return Canon(Rect(r.Min.X+dx, r.Min.Y+dy, r.Max.X-dx, r.Max.Y-dy))
}

// Shrink insets r by d on all sides.
func Shrink(r uv.Rectangle, d int) uv.Rectangle { return Shrink2(r, d, d) }

// Intersect returns the overlap of a and b. Unlike Rectangle.Intersect, an
// empty overlap keeps its position instead of becoming the zero rectangle.
func Intersect(a, b uv.Rectangle) uv.Rectangle {
	if r := a.Intersect(b); !r.Empty() {
		return r
	}
	return Canon(Rect(
		max(a.Min.X, b.Min.X), max(a.Min.Y, b.Min.Y),
		min(a.Max.X, b.Max.X), min(a.Max.Y, b.Max.Y),
	))
}

// Overlaps reports whether a and b share at least one point.
func Overlaps(a, b uv.Rectangle) bool { return !Empty(Intersect(a, b)) }
