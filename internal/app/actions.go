package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuichrome/internal/config"
)

// ActionHandler runs a bound action against the desktop.
type ActionHandler func(d *Desktop) tea.Cmd

// ActionDispatcher maps action names to handler functions
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a new action dispatcher with all handlers registered
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.Register(config.ActionQuit, handleQuit)
	d.Register(config.ActionToggleMaximize, handleToggleMaximize)
	d.Register(config.ActionMinimize, handleToggleMinimize)
	d.Register(config.ActionCancelGesture, handleCancelGesture)
	return d
}

// Register adds or replaces the handler for action.
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch runs the handler for action. It reports false when no handler
// is registered.
func (d *ActionDispatcher) Dispatch(action string, desk *Desktop) (tea.Cmd, bool) {
	handler, ok := d.handlers[action]
	if !ok {
		return nil, false
	}
	return handler(desk), true
}

// HasAction checks if an action is registered
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

func handleQuit(d *Desktop) tea.Cmd {
	return d.Quit()
}

func handleToggleMaximize(d *Desktop) tea.Cmd {
	if d.Minimized || !d.window.Maximize {
		return nil
	}
	d.SetMaximized(!d.Maximized)
	return nil
}

func handleToggleMinimize(d *Desktop) tea.Cmd {
	d.SetMinimized(!d.Minimized)
	return nil
}

func handleCancelGesture(d *Desktop) tea.Cmd {
	d.CancelGesture()
	return nil
}
