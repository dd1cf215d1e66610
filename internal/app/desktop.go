// Package app hosts the window chrome inside a terminal. The Desktop plays
// the part of the window manager: it owns the window bounds, feeds the
// chrome one frame per input event and carries out the commands the chrome
// sends back.
package app

import (
	"io"

	"charm.land/log/v2"
	"github.com/Gaurav-Gosain/tuichrome/internal/chrome"
	"github.com/Gaurav-Gosain/tuichrome/internal/config"
	"github.com/Gaurav-Gosain/tuichrome/internal/host"
	"github.com/Gaurav-Gosain/tuichrome/internal/input"
	"github.com/Gaurav-Gosain/tuichrome/internal/logging"
	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/google/uuid"
)

// Options configures a Desktop.
type Options struct {
	// Title is shown in the title bar and on the dock pill.
	Title string
	// Width and Height are the initial restored window size in cells.
	Width  int
	Height int
	// Maximize offers the maximize/restore button.
	Maximize bool
	// Resizable enables the resize border.
	Resizable bool
	// Content draws the application inside the frame. May be nil.
	Content func(*ui.Context)
	// KeybindRegistry resolves key presses. Defaults are used when nil.
	KeybindRegistry *config.KeybindRegistry
	// PointerOut receives pointer shape escapes. Nil disables them.
	PointerOut io.Writer
	// ScreenWidth and ScreenHeight seed the screen size before the first
	// WindowSizeMsg.
	ScreenWidth  int
	ScreenHeight int
}

// Desktop is the Bubble Tea model hosting a single decorated window.
type Desktop struct {
	// ID identifies this desktop in the debug log.
	ID string

	// Width and Height are the terminal size.
	Width  int
	Height int

	// Bounds is the restored window rectangle. It is kept while the window
	// is maximized or minimized so restoring returns to it.
	Bounds    uv.Rectangle
	Maximized bool
	Minimized bool
	Focused   bool

	window     chrome.Window
	content    func(*ui.Context)
	keys       *config.KeybindRegistry
	dispatcher *ActionDispatcher
	sizeHint   [2]int
	placed     bool

	tracker *input.Tracker
	queue   host.Queue
	rec     *ui.Recorder
	out     ui.Output
	last    chrome.WindowResponse
	gesture *Gesture

	pointer  *pointerShape
	quitting bool
	log      *log.Logger
}

// NewDesktop creates a desktop with one window.
func NewDesktop(opts Options) *Desktop {
	keys := opts.KeybindRegistry
	if keys == nil {
		keys = config.NewKeybindRegistry(nil)
	}
	w := opts.Width
	if w <= 0 {
		w = config.DefaultWindowWidth
	}
	h := opts.Height
	if h <= 0 {
		h = config.DefaultWindowHeight
	}

	id := uuid.New().String()
	metrics := config.CellMetrics()
	d := &Desktop{
		ID:      id,
		Focused: true,
		window: chrome.Window{
			Title:     opts.Title,
			Icon:      config.IconApp,
			Maximize:  opts.Maximize,
			Resizable: opts.Resizable,
			Metrics:   metrics,
		},
		content:    opts.Content,
		keys:       keys,
		dispatcher: NewActionDispatcher(),
		sizeHint:   [2]int{max(w, config.MinWindowWidth), max(h, config.MinWindowHeight)},
		tracker:    input.NewTracker(metrics.DragThreshold),
		rec:        ui.NewRecorder(),
		pointer:    newPointerShape(opts.PointerOut),
		log:        logging.Logger().With("desktop", id[:8]),
	}
	if opts.ScreenWidth > 0 && opts.ScreenHeight > 0 {
		d.Resize(opts.ScreenWidth, opts.ScreenHeight)
	}
	return d
}

// Window returns the chrome description the desktop draws each frame.
func (d *Desktop) Window() chrome.Window {
	return d.window
}

// Gesture returns the host-owned move or resize in progress, if any.
func (d *Desktop) Gesture() *Gesture {
	return d.gesture
}

// Quitting reports whether the desktop has asked the program to exit.
func (d *Desktop) Quitting() bool {
	return d.quitting
}

// Output returns what the last frame asked of the host.
func (d *Desktop) Output() ui.Output {
	return d.out
}

// Shapes returns the display list of the last frame.
func (d *Desktop) Shapes() []ui.Shape {
	return d.rec.Shapes()
}

// LastResponse returns the chrome's report for the last frame.
func (d *Desktop) LastResponse() chrome.WindowResponse {
	return d.last
}

// Screen returns the area windows may occupy: the terminal minus the dock.
func (d *Desktop) Screen() uv.Rectangle {
	return ui.Rect(0, 0, d.Width, max(d.Height-config.DockHeight, 0))
}

// Outer returns the rectangle the window currently covers.
func (d *Desktop) Outer() uv.Rectangle {
	if d.Maximized {
		return d.Screen()
	}
	return d.Bounds
}

// Viewport returns the window state the chrome reads each frame.
func (d *Desktop) Viewport() ui.Viewport {
	return ui.Viewport{
		Maximized: d.Maximized,
		Minimized: d.Minimized,
		Focused:   d.Focused,
	}
}

// Cleanup resets the pointer shape left behind by the last frame.
func (d *Desktop) Cleanup() {
	d.pointer.Reset()
}
