package input

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuichrome/internal/config"
)

func TestKeyAction(t *testing.T) {
	custom := config.DefaultConfig()
	custom.Keybindings.Actions[config.ActionToggleMaximize] = []string{"f"}

	tests := []struct {
		name     string
		registry *config.KeybindRegistry
		key      tea.KeyPressMsg
		want     string
	}{
		{"q quits", config.NewKeybindRegistry(nil), tea.KeyPressMsg{Code: 'q', Text: "q"}, config.ActionQuit},
		{"ctrl+c quits", config.NewKeybindRegistry(nil), tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}, config.ActionQuit},
		{"m maximizes", config.NewKeybindRegistry(nil), tea.KeyPressMsg{Code: 'm', Text: "m"}, config.ActionToggleMaximize},
		{"n minimizes", config.NewKeybindRegistry(nil), tea.KeyPressMsg{Code: 'n', Text: "n"}, config.ActionMinimize},
		{"escape cancels", config.NewKeybindRegistry(nil), tea.KeyPressMsg{Code: tea.KeyEscape}, config.ActionCancelGesture},
		{"unbound key", config.NewKeybindRegistry(nil), tea.KeyPressMsg{Code: 'z', Text: "z"}, ""},
		{"rebound key", config.NewKeybindRegistry(custom), tea.KeyPressMsg{Code: 'f', Text: "f"}, config.ActionToggleMaximize},
		{"old key after rebind", config.NewKeybindRegistry(custom), tea.KeyPressMsg{Code: 'm', Text: "m"}, ""},
		{"nil registry", nil, tea.KeyPressMsg{Code: 'q', Text: "q"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyAction(tt.key, tt.registry); got != tt.want {
				t.Errorf("KeyAction(%q) = %q, want %q", tt.key.String(), got, tt.want)
			}
		})
	}
}
