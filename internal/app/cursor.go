package app

import (
	"io"

	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
	"github.com/charmbracelet/x/ansi"
)

// pointerShape writes OSC 22 pointer shape requests to the terminal,
// skipping requests that would not change the shape.
type pointerShape struct {
	w       io.Writer
	current string
}

func newPointerShape(w io.Writer) *pointerShape {
	return &pointerShape{w: w}
}

// Set requests icon. CursorUnset asks for the terminal's default pointer.
func (p *pointerShape) Set(icon ui.CursorIcon) {
	if p == nil || p.w == nil {
		return
	}
	name := icon.String()
	if name == "" {
		name = ui.CursorDefault.String()
	}
	if name == p.current {
		return
	}
	if p.current == "" && icon == ui.CursorUnset {
		// Nothing was changed yet.
		return
	}
	p.current = name
	_, _ = io.WriteString(p.w, ansi.SetPointerShape(name))
}

// Reset puts the default pointer back if anything else was requested.
func (p *pointerShape) Reset() {
	if p == nil || p.current == "" {
		return
	}
	p.Set(ui.CursorDefault)
}
