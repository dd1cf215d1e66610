// Package input turns Bubble Tea messages into the per-frame input the
// chrome reads.
package input

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
	uv "github.com/charmbracelet/ultraviolet"
)

// Tracker accumulates mouse and focus messages between frames and hands out
// one ui.Pointer snapshot per frame. Edge flags survive until the next Frame
// call, so a press and its release are never merged into one frame.
type Tracker struct {
	// Now is the clock used for stillness. Defaults to time.Now.
	Now func() time.Time

	threshold  int
	ptr        ui.Pointer
	stillSince time.Time
	dragging   bool
}

// NewTracker returns a tracker that reports a drag once a held pointer has
// moved threshold cells from where it was pressed.
func NewTracker(threshold int) *Tracker {
	return &Tracker{Now: time.Now, threshold: max(threshold, 1)}
}

// Handle folds msg into the pending pointer state. It reports whether msg
// was a pointer or focus message.
func (t *Tracker) Handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		t.move(mouse.X, mouse.Y)
		if mouse.Button != tea.MouseLeft || t.ptr.Down {
			return true
		}
		t.ptr.Down = true
		t.ptr.Pressed = true
		t.ptr.Origin = t.ptr.Pos
		t.dragging = false

	case tea.MouseMotionMsg:
		mouse := msg.Mouse()
		t.move(mouse.X, mouse.Y)
		if t.ptr.Down && !t.dragging && distance(t.ptr.Pos, t.ptr.Origin) >= t.threshold {
			t.dragging = true
			t.ptr.DragStarted = true
		}

	case tea.MouseReleaseMsg:
		mouse := msg.Mouse()
		t.move(mouse.X, mouse.Y)
		t.release()

	case tea.BlurMsg:
		// No release will arrive once the terminal loses focus.
		t.release()
		t.ptr.Hovering = false

	case tea.FocusMsg:
		t.stillSince = t.Now()

	default:
		return false
	}
	return true
}

// Frame returns the snapshot for the frame being built and clears the
// one-frame edges.
func (t *Tracker) Frame() ui.Pointer {
	p := t.ptr
	if p.Hovering && !t.stillSince.IsZero() {
		p.Still = t.Now().Sub(t.stillSince)
	}
	t.ptr.Pressed = false
	t.ptr.Released = false
	t.ptr.DragStarted = false
	return p
}

// Pointer returns the pending state without consuming edges.
func (t *Tracker) Pointer() ui.Pointer {
	return t.ptr
}

// Dragging reports whether the held pointer has passed the drag threshold.
func (t *Tracker) Dragging() bool {
	return t.ptr.Down && t.dragging
}

func (t *Tracker) move(x, y int) {
	pos := uv.Pos(x, y)
	if !t.ptr.Hovering || pos != t.ptr.Pos {
		t.stillSince = t.Now()
	}
	t.ptr.Pos = pos
	t.ptr.Hovering = true
}

func (t *Tracker) release() {
	if !t.ptr.Down {
		return
	}
	t.ptr.Down = false
	t.ptr.Released = true
	t.dragging = false
}

// distance is the Manhattan distance between two cells.
func distance(a, b uv.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
