package config

import (
	"time"

	"github.com/Gaurav-Gosain/tuichrome/internal/logging"
	"github.com/Gaurav-Gosain/tuichrome/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ASCIIOnly uses ASCII characters instead of Nerd Font icons
	ASCIIOnly bool

	// NoPointerShape stops cursor shape requests to the terminal
	NoPointerShape bool

	// Title overrides the window title
	Title string

	// NoMaximize hides the maximize/restore button
	NoMaximize bool

	// NoResize disables the edge and corner resize zones
	NoResize bool

	// ThemeName is the theme to load
	ThemeName string
}

// WindowSettings is the resolved configuration of the demo window.
type WindowSettings struct {
	Title     string
	Width     int
	Height    int
	Maximize  bool
	Resizable bool
}

// ApplyOverrides applies CLI flag overrides to global config, falling back to user config defaults.
// If userConfig is nil, only CLI flag values (when set) are applied on top of DefaultConfig.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) WindowSettings {
	if userConfig == nil {
		userConfig = DefaultConfig()
	}

	// ASCII Only - OR of CLI flag and user config
	UseASCIIOnly = overrides.ASCIIOnly || userConfig.Appearance.ASCIIOnly

	// Pointer shapes - disabled by flag, otherwise user config
	PointerShapes = !overrides.NoPointerShape &&
		(userConfig.Appearance.PointerShapes == nil || *userConfig.Appearance.PointerShapes)

	if ms := userConfig.Appearance.TooltipDelayMS; ms > 0 {
		TooltipDelay = time.Duration(ms) * time.Millisecond
	}

	settings := WindowSettings{
		Title:     userConfig.Window.Title,
		Width:     max(userConfig.Window.Width, MinWindowWidth),
		Height:    max(userConfig.Window.Height, MinWindowHeight),
		Maximize:  userConfig.MaximizeEnabled() && !overrides.NoMaximize,
		Resizable: userConfig.ResizeEnabled() && !overrides.NoResize,
	}
	if overrides.Title != "" {
		settings.Title = overrides.Title
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	themeName := overrides.ThemeName
	if themeName == "" {
		themeName = userConfig.Appearance.Theme
	}
	if themeName != "" {
		if err := theme.Initialize(themeName); err != nil {
			logging.Warn("failed to load theme", "theme", themeName, "err", err)
		}
	}
	return settings
}
