package ui

import (
	"image/color"
	"time"
)

// Transparent is a fully transparent color.
var Transparent color.Color = color.NRGBA{}

// WhiteAlpha returns white at the given opacity.
func WhiteAlpha(a uint8) color.Color {
	return color.NRGBA{R: 255, G: 255, B: 255, A: a}
}

// IsTransparent reports whether c is nil or has zero alpha.
func IsTransparent(c color.Color) bool {
	if c == nil {
		return true
	}
	_, _, _, a := c.RGBA()
	return a == 0
}

// Rounding holds a per-corner radius.
type Rounding struct {
	NW, NE, SW, SE int
}

// Round returns a rounding with every corner set to r.
func Round(r int) Rounding { return Rounding{NW: r, NE: r, SW: r, SE: r} }

// IsZero reports whether no corner is rounded.
func (r Rounding) IsZero() bool { return r == Rounding{} }

// CursorIcon is the pointer shape requested for the current frame.
type CursorIcon int

const (
	// CursorUnset leaves the choice to the host's default.
	CursorUnset CursorIcon = iota
	// CursorDefault is the regular arrow.
	CursorDefault
	// CursorResizeVertical is shown over the north and south edges.
	CursorResizeVertical
	// CursorResizeHorizontal is shown over the east and west edges.
	CursorResizeHorizontal
	// CursorResizeNeSw is shown over the north-east and south-west corners.
	CursorResizeNeSw
	// CursorResizeNwSe is shown over the north-west and south-east corners.
	CursorResizeNwSe
)

func (c CursorIcon) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorResizeVertical:
		return "ns-resize"
	case CursorResizeHorizontal:
		return "ew-resize"
	case CursorResizeNeSw:
		return "nesw-resize"
	case CursorResizeNwSe:
		return "nwse-resize"
	default:
		return ""
	}
}

// WidgetVisuals are the colors of an interactive widget in one state.
type WidgetVisuals struct {
	WeakBgFill color.Color
}

// Visuals is the color scheme shared by every control in a frame.
type Visuals struct {
	Inactive WidgetVisuals
	Hovered  WidgetVisuals
	Active   WidgetVisuals

	Text                 color.Color
	WindowFill           color.Color
	NoninteractiveStroke color.Color
	TooltipBg            color.Color
	TooltipFg            color.Color
}

// Style is the shared, mutable UI style. Controls that tweak it must
// restore it before returning (see Context.OverrideStyle).
type Style struct {
	Visuals      Visuals
	TooltipDelay time.Duration
}

// DefaultStyle returns a dark style.
func DefaultStyle() *Style {
	return &Style{
		Visuals: Visuals{
			Inactive:             WidgetVisuals{WeakBgFill: color.NRGBA{R: 60, G: 60, B: 60, A: 255}},
			Hovered:              WidgetVisuals{WeakBgFill: color.NRGBA{R: 70, G: 70, B: 70, A: 255}},
			Active:               WidgetVisuals{WeakBgFill: color.NRGBA{R: 55, G: 55, B: 55, A: 255}},
			Text:                 color.NRGBA{R: 140, G: 140, B: 140, A: 255},
			WindowFill:           color.NRGBA{R: 27, G: 27, B: 27, A: 255},
			NoninteractiveStroke: color.NRGBA{R: 60, G: 60, B: 60, A: 255},
			TooltipBg:            color.NRGBA{R: 10, G: 10, B: 10, A: 255},
			TooltipFg:            color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		},
		TooltipDelay: 500 * time.Millisecond,
	}
}
