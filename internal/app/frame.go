package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuichrome/internal/config"
	"github.com/Gaurav-Gosain/tuichrome/internal/host"
	"github.com/Gaurav-Gosain/tuichrome/internal/theme"
	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
)

// iconLoader resolves chrome icons to single-cell glyphs.
var iconLoader = ui.LoaderFunc(func(name string) (ui.Image, error) {
	glyph, ok := config.GetIconGlyph(name)
	if !ok {
		return ui.Image{}, fmt.Errorf("unknown icon %q", name)
	}
	return ui.Image{Name: name, Glyph: glyph, Width: 1, Height: 1}, nil
})

// RunFrame builds one frame from the pending input, lets the chrome draw
// and react, then applies the commands it sent. A minimized window draws
// nothing; its pointer edges are still consumed.
func (d *Desktop) RunFrame() tea.Cmd {
	ptr := d.tracker.Frame()
	screen := d.Screen()
	if !ui.Contains(screen, ptr.Pos) {
		// Over the dock.
		ptr.Hovering = false
	}
	if !ui.Contains(screen, ptr.Origin) {
		// Presses that start on the dock never reach the window.
		ptr.Down, ptr.Pressed, ptr.Released, ptr.DragStarted = false, false, false, false
	}
	if d.gesture != nil {
		// The host owns the pointer until the gesture ends; the window has
		// already moved under the press origin.
		ptr.Pressed, ptr.DragStarted = false, false
	}
	d.rec.Reset()
	d.out = ui.Output{}

	if d.Minimized || ui.Empty(d.Outer()) {
		d.pointer.Set(ui.CursorUnset)
		return nil
	}

	style := theme.Style()
	style.TooltipDelay = config.TooltipDelay
	w := d.window
	w.CloseColor = theme.CloseRed()

	ctx := ui.NewContext(ui.Config{
		Input:   ui.Input{Pointer: ptr, Viewport: d.Viewport()},
		Style:   style,
		Painter: d.rec,
		Queue:   &d.queue,
		Loader:  iconLoader,
		Rect:    d.Outer(),
		OnImageError: func(name string, err error) {
			d.log.Warn("icon failed to load", "icon", name, "err", err)
		},
	})
	d.last = w.Show(ctx, d.content)
	d.out = ctx.Output()

	cmd := d.apply(d.queue.Drain(), ptr)

	cursor := d.out.Cursor
	if d.gesture != nil {
		cursor = d.gestureCursor()
	}
	if !config.PointerShapes {
		cursor = ui.CursorUnset
	}
	d.pointer.Set(cursor)
	return cmd
}

// apply carries out the commands of one frame in the order they were sent.
func (d *Desktop) apply(cmds []host.Command, ptr ui.Pointer) tea.Cmd {
	var out []tea.Cmd
	for _, c := range cmds {
		d.log.Debug("command", "cmd", c)
		switch c := c.(type) {
		case host.BeginDrag:
			if d.gesture != nil {
				continue
			}
			d.BeginMove(ptr.Origin)
			d.Follow(ptr.Pos)
		case host.BeginResize:
			if d.gesture != nil {
				continue
			}
			d.BeginResize(c.Dir, ptr.Origin)
			d.Follow(ptr.Pos)
		case host.SetMaximized:
			d.SetMaximized(c.Maximized)
		case host.SetMinimized:
			d.SetMinimized(c.Minimized)
		case host.Close:
			out = append(out, d.Quit())
		}
	}
	return tea.Batch(out...)
}

// Quit ends the program.
func (d *Desktop) Quit() tea.Cmd {
	d.quitting = true
	d.log.Info("quitting")
	return tea.Quit
}
