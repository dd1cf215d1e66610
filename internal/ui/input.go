package ui

import (
	"time"

	uv "github.com/charmbracelet/ultraviolet"
)

// Pointer is the host's snapshot of the primary pointer for one frame.
// Edge fields (Pressed, Released, DragStarted) are true on exactly one frame
// per gesture.
type Pointer struct {
	// Pos is the last known pointer position. Only valid when Hovering.
	Pos uv.Position
	// Hovering is false when the pointer is off the window.
	Hovering bool

	// Down is true while the primary button is held.
	Down bool
	// Pressed is true on the frame the primary button went down.
	Pressed bool
	// Released is true on the frame the primary button went up.
	Released bool
	// DragStarted is true on the frame a held pointer first moved past the
	// drag threshold.
	DragStarted bool
	// Origin is where the current (or just released) press began.
	Origin uv.Position

	// Still is how long the pointer has rested at Pos.
	Still time.Duration
}

// HoverPos returns the pointer position if the pointer is over the window.
func (p Pointer) HoverPos() (uv.Position, bool) {
	return p.Pos, p.Hovering
}

// Viewport is the host-owned window state, read-only to the chrome.
type Viewport struct {
	Maximized bool
	Minimized bool
	Focused   bool
}

// Input is everything the host reports for one frame.
type Input struct {
	Pointer  Pointer
	Viewport Viewport
}
