package config

import (
	"maps"
	"slices"
	"strings"
)

// Host actions that can be bound to keys.
const (
	ActionQuit           = "quit"
	ActionToggleMaximize = "toggle_maximize"
	ActionMinimize       = "minimize"
	ActionCancelGesture  = "cancel_gesture"
)

var actionDescriptions = map[string]string{
	ActionQuit:           "Quit",
	ActionToggleMaximize: "Maximize / restore",
	ActionMinimize:       "Minimize / restore",
	ActionCancelGesture:  "Cancel move or resize",
}

// actionOrder is the order actions are listed in help output
var actionOrder = []string{ActionToggleMaximize, ActionMinimize, ActionCancelGesture, ActionQuit}

// IsKnownAction reports whether action can be bound.
func IsKnownAction(action string) bool {
	_, ok := actionDescriptions[action]
	return ok
}

func getDefaultActionKeybinds() map[string][]string {
	return map[string][]string{
		ActionQuit:           {"q", "ctrl+c"},
		ActionToggleMaximize: {"m"},
		ActionMinimize:       {"n"},
		ActionCancelGesture:  {"esc"},
	}
}

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindRegistry resolves pressed keys to host actions.
type KeybindRegistry struct {
	actions map[string][]string
	byKey   map[string]string
}

// NewKeybindRegistry builds a registry from the user config. Unknown
// actions are ignored; when two actions share a key the first in help order
// wins.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	actions := getDefaultActionKeybinds()
	if cfg != nil && cfg.Keybindings.Actions != nil {
		maps.Copy(actions, cfg.Keybindings.Actions)
	}
	r := &KeybindRegistry{actions: actions, byKey: make(map[string]string)}
	for _, action := range actionOrder {
		for _, key := range actions[action] {
			key = normalizeKey(key)
			if _, taken := r.byKey[key]; !taken {
				r.byKey[key] = action
			}
		}
	}
	return r
}

// Action returns the action bound to key, or "" if none.
func (r *KeybindRegistry) Action(key string) string {
	if r == nil {
		return ""
	}
	return r.byKey[normalizeKey(key)]
}

// GetKeysForDisplay returns the keys bound to action joined for display.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	if r == nil {
		return ""
	}
	return strings.Join(r.actions[action], "/")
}

// GetKeybindings returns the bound actions in help order.
func GetKeybindings(registry *KeybindRegistry) []Keybinding {
	if registry == nil {
		registry = NewKeybindRegistry(nil)
	}
	var out []Keybinding
	for _, action := range actionOrder {
		if keys := registry.GetKeysForDisplay(action); keys != "" {
			out = append(out, Keybinding{Key: keys, Description: actionDescriptions[action]})
		}
	}
	return out
}

// KnownActions returns every bindable action, sorted.
func KnownActions() []string {
	return slices.Sorted(maps.Keys(actionDescriptions))
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
