package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuichrome/internal/config"
	"github.com/Gaurav-Gosain/tuichrome/internal/input"
	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
)

// TickerMsg represents a periodic tick event for updating the UI.
type TickerMsg time.Time

// TickCmd schedules the next frame tick. Ticks let tooltips appear while
// the pointer rests and no other input arrives.
func TickCmd() tea.Cmd {
	return tea.Tick(config.FrameInterval, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// Init starts the frame ticker.
func (d *Desktop) Init() tea.Cmd {
	d.log.Info("desktop started", "title", d.window.Title)
	return TickCmd()
}

// Update handles all incoming messages and updates the application state.
// Every input message is followed by exactly one chrome frame.
func (d *Desktop) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if d.quitting {
		return d, nil
	}

	switch msg := msg.(type) {
	case TickerMsg:
		return d, tea.Batch(d.RunFrame(), TickCmd())

	case tea.WindowSizeMsg:
		d.Resize(msg.Width, msg.Height)
		return d, d.RunFrame()

	case tea.KeyPressMsg:
		action := input.KeyAction(msg, d.keys)
		if action == "" {
			return d, nil
		}
		d.log.Debug("key action", "key", msg.String(), "action", action)
		cmd, _ := d.dispatcher.Dispatch(action, d)
		if d.quitting {
			return d, cmd
		}
		return d, tea.Batch(cmd, d.RunFrame())

	case tea.FocusMsg:
		d.Focused = true
		d.tracker.Handle(msg)
		return d, d.RunFrame()

	case tea.BlurMsg:
		d.Focused = false
		d.tracker.Handle(msg)
		d.EndGesture()
		return d, d.RunFrame()

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg:
		return d, d.handleMouse(msg)
	}
	return d, nil
}

// handleMouse feeds the tracker, lets a running gesture follow the pointer,
// handles the dock, then runs the frame.
func (d *Desktop) handleMouse(msg tea.Msg) tea.Cmd {
	d.tracker.Handle(msg)
	ptr := d.tracker.Pointer()

	if d.gesture != nil {
		switch msg.(type) {
		case tea.MouseMotionMsg:
			d.Follow(ptr.Pos)
		case tea.MouseReleaseMsg:
			d.Follow(ptr.Pos)
			d.EndGesture()
		}
	}

	if _, ok := msg.(tea.MouseClickMsg); ok && ptr.Pressed && ui.Contains(d.DockPillRect(), ptr.Pos) {
		d.SetMinimized(!d.Minimized)
		// The press belongs to the dock, not to the window under it.
		d.tracker.Frame()
	}
	return d.RunFrame()
}
