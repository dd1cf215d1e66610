// Package theme provides color themes for the window chrome.
package theme

import (
	"fmt"
	"image/color"
	"slices"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/tuichrome/internal/logging"
	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
	tint "github.com/lrstanley/bubbletint/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming will be disabled and the built-in dark palette will be used.
func Initialize(themeName string) error {
	// If no theme specified, disable theming
	if themeName == "" {
		enabled = false
		return nil
	}

	tint.NewDefaultRegistry()

	// Load custom themes from user's themes directory
	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir); err != nil {
			logging.Warn("error loading custom themes", "err", err)
		}
	}

	enabled = true
	if !tint.SetTintID(themeName) {
		// Theme not found, set to default
		tint.SetTintID("default")
		return fmt.Errorf("unknown theme %q", themeName)
	}
	return nil
}

// Disable turns theming off.
func Disable() {
	enabled = false
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Names returns the IDs of every registered theme, sorted.
func Names() []string {
	tint.NewDefaultRegistry()
	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir); err != nil {
			logging.Warn("error loading custom themes", "err", err)
		}
	}
	ids := tint.TintIDs()
	slices.Sort(ids)
	return ids
}

// WindowFill returns the background of the window frame.
func WindowFill() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#1b1b1b")
	}
	return t.Bg
}

// Text returns the color of the title and of idle button icons.
func Text() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#8c8c8c")
	}
	if c, ok := chromeFor(t.ID); ok && c.Title != nil {
		return c.Title
	}
	return t.Fg
}

// FrameStroke returns the color of the window border.
func FrameStroke() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#3c3c3c")
	}
	if c, ok := chromeFor(t.ID); ok && c.Frame != nil {
		return c.Frame
	}
	return t.BrightBlack
}

// CloseRed returns the hover tint of the close button.
func CloseRed() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ff0000")
	}
	if c, ok := chromeFor(t.ID); ok && c.Close != nil {
		return c.Close
	}
	return t.Red
}

// TooltipBg returns the background color for tooltips.
func TooltipBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#0a0a0a")
	}
	return t.Black
}

// TooltipFg returns the foreground color for tooltips.
func TooltipFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#c8c8c8")
	}
	return t.BrightWhite
}

// DockBg returns the background color for the dock pill.
func DockBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

// DockFg returns the foreground color for the dock pill.
func DockFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#a0a0a8")
	}
	return t.Fg
}

// DesktopBg returns the color behind the window.
func DesktopBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return Mix(t.Bg, lipgloss.Color("#000000"), 0.5)
}

// Style builds the shared UI style from the current theme.
func Style() *ui.Style {
	s := ui.DefaultStyle()
	if Current() == nil {
		return s
	}
	v := &s.Visuals
	v.Text = Text()
	v.WindowFill = WindowFill()
	v.NoninteractiveStroke = FrameStroke()
	v.TooltipBg = TooltipBg()
	v.TooltipFg = TooltipFg()
	v.Inactive.WeakBgFill = Mix(WindowFill(), Text(), 0.15)
	v.Hovered.WeakBgFill = Mix(WindowFill(), Text(), 0.2)
	v.Active.WeakBgFill = Mix(WindowFill(), Text(), 0.1)
	return s
}

// Mix blends b over a by t (0 keeps a, 1 gives b) in RGB space.
// Transparent inputs are treated as black.
func Mix(a, b color.Color, t float64) color.Color {
	ca, _ := colorful.MakeColor(opaque(a))
	cb, _ := colorful.MakeColor(opaque(b))
	return ca.BlendRgb(cb, t).Clamped()
}

// Over composites c on top of an opaque background using c's alpha.
func Over(c, bg color.Color) color.Color {
	if c == nil {
		return bg
	}
	_, _, _, a := c.RGBA()
	if a == 0 {
		return bg
	}
	if a == 0xffff {
		return c
	}
	// Undo premultiplication before blending.
	r, g, b, _ := c.RGBA()
	straight := color.NRGBA{
		R: uint8((r * 0xffff / a) >> 8),
		G: uint8((g * 0xffff / a) >> 8),
		B: uint8((b * 0xffff / a) >> 8),
		A: 0xff,
	}
	return Mix(bg, straight, float64(a)/0xffff)
}

// ColorToString converts a color.Color to a hex string
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns values in range 0-65535, convert to 0-255
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func opaque(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	_, _, _, a := c.RGBA()
	if a == 0 {
		return color.Black
	}
	return c
}
