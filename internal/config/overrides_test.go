package config

import (
	"testing"
	"time"
)

func resetGlobals(t *testing.T) {
	t.Cleanup(func() {
		UseASCIIOnly = false
		PointerShapes = true
		TooltipDelay = DefaultTooltipDelay
	})
}

func TestApplyOverridesDefaults(t *testing.T) {
	resetGlobals(t)
	s := ApplyOverrides(Overrides{}, nil)
	want := WindowSettings{
		Title:     "tuichrome",
		Width:     DefaultWindowWidth,
		Height:    DefaultWindowHeight,
		Maximize:  true,
		Resizable: true,
	}
	if s != want {
		t.Errorf("settings = %+v, want %+v", s, want)
	}
	if UseASCIIOnly || !PointerShapes || TooltipDelay != DefaultTooltipDelay {
		t.Errorf("globals = ascii %v pointer %v delay %v", UseASCIIOnly, PointerShapes, TooltipDelay)
	}
}

func TestApplyOverridesFlagsWin(t *testing.T) {
	resetGlobals(t)
	cfg := DefaultConfig()
	cfg.Window.Title = "from config"
	cfg.Appearance.TooltipDelayMS = 250

	s := ApplyOverrides(Overrides{
		ASCIIOnly:      true,
		NoPointerShape: true,
		Title:          "from flag",
		NoMaximize:     true,
		NoResize:       true,
	}, cfg)

	if s.Title != "from flag" || s.Maximize || s.Resizable {
		t.Errorf("settings = %+v", s)
	}
	if !UseASCIIOnly || PointerShapes {
		t.Errorf("globals = ascii %v pointer %v", UseASCIIOnly, PointerShapes)
	}
	if TooltipDelay != 250*time.Millisecond {
		t.Errorf("tooltip delay = %v", TooltipDelay)
	}
}

func TestApplyOverridesUserConfig(t *testing.T) {
	resetGlobals(t)
	no := false
	cfg := DefaultConfig()
	cfg.Appearance.ASCIIOnly = true
	cfg.Appearance.PointerShapes = &no
	cfg.Window.MaximizeButton = &no
	cfg.Window.Width = 1

	s := ApplyOverrides(Overrides{}, cfg)
	if !UseASCIIOnly || PointerShapes {
		t.Errorf("config values not applied: ascii %v pointer %v", UseASCIIOnly, PointerShapes)
	}
	if s.Maximize {
		t.Error("maximize_button = false ignored")
	}
	if s.Width != MinWindowWidth {
		t.Errorf("width = %d, want the minimum %d", s.Width, MinWindowWidth)
	}
}
