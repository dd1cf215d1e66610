package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuichrome/internal/config"
)

// KeyAction resolves a key press to the host action bound to it, or "" if
// the key is unbound.
func KeyAction(msg tea.KeyPressMsg, registry *config.KeybindRegistry) string {
	if registry == nil {
		return ""
	}
	return registry.Action(msg.String())
}
