package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCreateDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := createDefaultConfig(path)
	if err != nil {
		t.Fatalf("createDefaultConfig: %v", err)
	}
	if cfg.Window.Title != "tuichrome" {
		t.Errorf("title = %q", cfg.Window.Title)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# tuichrome Configuration File") {
		t.Error("config file is missing its header")
	}

	loaded, result, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("reloading the default config: %v", err)
	}
	if result.HasWarnings() || result.HasErrors() {
		t.Errorf("default config reported issues: %+v", result)
	}
	if loaded.Window.Width != DefaultWindowWidth || !loaded.MaximizeEnabled() || !loaded.ResizeEnabled() {
		t.Errorf("reloaded window = %+v", loaded.Window)
	}
}

func TestLoadConfigFillsMissing(t *testing.T) {
	path := writeConfig(t, `
[window]
title = "Notes"
width = 5
resizable = false

[keybindings.actions]
quit = ["x"]
`)
	cfg, result, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.Window.Title != "Notes" {
		t.Errorf("title = %q", cfg.Window.Title)
	}
	if cfg.Window.Width != MinWindowWidth {
		t.Errorf("width = %d, want it raised to %d", cfg.Window.Width, MinWindowWidth)
	}
	if cfg.Window.Height != DefaultWindowHeight {
		t.Errorf("height = %d, want the default", cfg.Window.Height)
	}
	if cfg.ResizeEnabled() {
		t.Error("resizable = false was ignored")
	}
	if !cfg.MaximizeEnabled() {
		t.Error("missing maximize_button should default to on")
	}
	if got := cfg.Keybindings.Actions[ActionQuit]; len(got) != 1 || got[0] != "x" {
		t.Errorf("quit keys = %v", got)
	}
	if got := cfg.Keybindings.Actions[ActionMinimize]; len(got) == 0 {
		t.Error("missing actions were not filled from defaults")
	}
	if !result.HasWarnings() {
		t.Error("width below the minimum should warn")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad toml", "[window\ntitle = "},
		{"unknown action", "[keybindings.actions]\nfly = [\"f\"]\n"},
		{"empty key", "[keybindings.actions]\nquit = [\" \"]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := loadConfigFile(writeConfig(t, tt.body)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, _, err := loadConfigFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*UserConfig)
		wantErrors   int
		wantWarnings int
	}{
		{"defaults", func(*UserConfig) {}, 0, 0},
		{"tooltip delay too long", func(c *UserConfig) { c.Appearance.TooltipDelayMS = 20000 }, 0, 1},
		{"negative tooltip delay", func(c *UserConfig) { c.Appearance.TooltipDelayMS = -1 }, 0, 1},
		{"tiny window", func(c *UserConfig) { c.Window.Width, c.Window.Height = 1, 1 }, 0, 2},
		{"unknown action", func(c *UserConfig) { c.Keybindings.Actions["teleport"] = []string{"t"} }, 1, 0},
		{"blank key", func(c *UserConfig) { c.Keybindings.Actions[ActionQuit] = []string{""} }, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			v := ValidateConfig(cfg)
			if len(v.Errors) != tt.wantErrors || len(v.Warnings) != tt.wantWarnings {
				t.Errorf("errors %d warnings %d, want %d and %d: %+v",
					len(v.Errors), len(v.Warnings), tt.wantErrors, tt.wantWarnings, v)
			}
		})
	}
}
