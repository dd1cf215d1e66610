// Package config provides chrome metrics, glyph constants, and user settings.
package config

import (
	"time"

	"charm.land/lipgloss/v2"
)

// =============================================================================
// Chrome Metrics (pixel units)
// =============================================================================

const (
	// ResizeBorderThickness is the width of the resize hit-zones along every edge
	ResizeBorderThickness = 6

	// TitleBarHeight is the height of the strip reserved for the title bar
	TitleBarHeight = 32

	// ButtonWidth is the width of a title bar button
	ButtonWidth = 44

	// ButtonHeight is the height of a title bar button
	ButtonHeight = 30

	// ButtonIconWidth is the box the button icon is scaled to fit, horizontally
	ButtonIconWidth = 11

	// ButtonIconHeight is the box the button icon is scaled to fit, vertically
	ButtonIconHeight = 22

	// FrameRounding is the corner radius of a restored window
	FrameRounding = 5

	// FrameMargin is the gap between the viewport and a restored window frame
	FrameMargin = 2

	// FrameStroke is the border width of a restored window frame
	FrameStroke = 1

	// ContentInset is the padding around the application content
	ContentInset = 4

	// TitleOffset is how far right of the bar's left edge the title starts
	TitleOffset = 30

	// TitleFontSize is the size hint passed along with the title text
	TitleFontSize = 12

	// TitleIconOffset is the horizontal center of the leading icon
	TitleIconOffset = 16

	// TitleIconSize is the side of the leading icon square
	TitleIconSize = 16

	// DragThreshold is how far a held pointer moves before it counts as a drag
	DragThreshold = 6
)

// =============================================================================
// Terminal Host Defaults (cell units)
// =============================================================================

const (
	// DefaultWindowWidth is the default width of the demo window
	DefaultWindowWidth = 60

	// DefaultWindowHeight is the default height of the demo window
	DefaultWindowHeight = 18

	// MinWindowWidth is the minimum width a window can be resized to
	MinWindowWidth = 14

	// MinWindowHeight is the minimum height a window can be resized to
	MinWindowHeight = 5

	// MinVisibleCells is how much of a dragged window must stay on screen
	MinVisibleCells = 3

	// DockHeight is the height of the row used by the dock pill
	DockHeight = 1
)

// =============================================================================
// Timeouts and Intervals
// =============================================================================

const (
	// NormalFPS is the frame rate handed to the program
	NormalFPS = 60

	// FrameInterval is the tick period that keeps hover stillness current
	FrameInterval = 100 * time.Millisecond

	// DefaultTooltipDelay is how long the pointer rests before a tooltip shows
	DefaultTooltipDelay = 500 * time.Millisecond
)

// Metrics holds every size the chrome lays itself out with. Values are in
// whatever unit the host draws in.
type Metrics struct {
	BorderThickness int
	TitleBarHeight  int

	ButtonWidth    int
	ButtonHeight   int
	ButtonIconW    int
	ButtonIconH    int
	ButtonSpacing  int
	TitleBarInset  int
	TitleOffset    int
	TitleFontSize  int
	TitleIconX     int
	TitleIconSize  int
	ContentInset   int
	Rounding       int
	Margin         int
	Stroke         int
	DragThreshold  int
	MinimumWidth   int
	MinimumHeight  int
	TooltipPadding int
}

// PixelMetrics returns the metrics for a pixel-based host.
func PixelMetrics() Metrics {
	return Metrics{
		BorderThickness: ResizeBorderThickness,
		TitleBarHeight:  TitleBarHeight,
		ButtonWidth:     ButtonWidth,
		ButtonHeight:    ButtonHeight,
		ButtonIconW:     ButtonIconWidth,
		ButtonIconH:     ButtonIconHeight,
		ButtonSpacing:   1,
		TitleBarInset:   1,
		TitleOffset:     TitleOffset,
		TitleFontSize:   TitleFontSize,
		TitleIconX:      TitleIconOffset,
		TitleIconSize:   TitleIconSize,
		ContentInset:    ContentInset,
		Rounding:        FrameRounding,
		Margin:          FrameMargin,
		Stroke:          FrameStroke,
		DragThreshold:   DragThreshold,
		MinimumWidth:    200,
		MinimumHeight:   TitleBarHeight + 2*ResizeBorderThickness,
		TooltipPadding:  4,
	}
}

// CellMetrics returns the metrics for the terminal host, where one unit is
// one character cell.
func CellMetrics() Metrics {
	return Metrics{
		BorderThickness: 1,
		TitleBarHeight:  1,
		ButtonWidth:     3,
		ButtonHeight:    1,
		ButtonIconW:     1,
		ButtonIconH:     1,
		ButtonSpacing:   0,
		TitleBarInset:   0,
		TitleOffset:     4,
		TitleFontSize:   1,
		TitleIconX:      2,
		TitleIconSize:   1,
		ContentInset:    1,
		Rounding:        1,
		Margin:          0,
		Stroke:          1,
		DragThreshold:   1,
		MinimumWidth:    MinWindowWidth,
		MinimumHeight:   MinWindowHeight,
		TooltipPadding:  1,
	}
}

// =============================================================================
// Icon Names and Glyphs
// =============================================================================

const (
	// IconClose is the close button icon
	IconClose = "close"
	// IconMaximize is the maximize button icon
	IconMaximize = "maximize"
	// IconRestore is the restore button icon
	IconRestore = "restore"
	// IconMinimize is the minimize button icon
	IconMinimize = "minimize"
	// IconApp is the leading title bar icon
	IconApp = "app"
)

const (
	// TooltipClose is shown over the close button
	TooltipClose = "Close the window"
	// TooltipMaximize is shown over the maximize button of a restored window
	TooltipMaximize = "Maximize window"
	// TooltipRestore is shown over the maximize button of a maximized window
	TooltipRestore = "Restore window"
	// TooltipMinimize is shown over the minimize button
	TooltipMinimize = "Minimize the window"
)

var iconGlyphs = map[string]string{
	IconClose:    "✕",                   // U+2715
	IconMaximize: "□",                   // U+25A1
	IconRestore:  "❐",                   // U+2750
	IconMinimize: "−",                   // U+2212
	IconApp:      string(rune(0xf489)), // nf-oct-terminal
}

var iconGlyphsASCII = map[string]string{
	IconClose:    "x",
	IconMaximize: "+",
	IconRestore:  "=",
	IconMinimize: "-",
	IconApp:      ">",
}

// GetIconGlyph returns the glyph for an icon name based on UseASCIIOnly.
func GetIconGlyph(name string) (string, bool) {
	if UseASCIIOnly {
		g, ok := iconGlyphsASCII[name]
		return g, ok
	}
	g, ok := iconGlyphs[name]
	return g, ok
}

// GetFrameBorder returns the characters used to stroke a window frame.
// Rounded strokes get rounded corners unless only ASCII is allowed.
func GetFrameBorder(rounded bool) lipgloss.Border {
	switch {
	case UseASCIIOnly:
		return lipgloss.ASCIIBorder()
	case rounded:
		return lipgloss.RoundedBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

// =============================================================================
// Dock Characters
// =============================================================================

const (
	// DockPillLeftChar is the left character for the minimized window pill
	DockPillLeftChar = string(rune(0xe0b6)) // Powerline left semicircle

	// DockPillRightChar is the right character for the minimized window pill
	DockPillRightChar = string(rune(0xe0b4)) // Powerline right semicircle

	// DockPillLeftCharASCII is the ASCII fallback for pill left
	DockPillLeftCharASCII = "["

	// DockPillRightCharASCII is the ASCII fallback for pill right
	DockPillRightCharASCII = "]"
)

// GetDockPillLeftChar returns the appropriate pill left character based on UseASCIIOnly
func GetDockPillLeftChar() string {
	if UseASCIIOnly {
		return DockPillLeftCharASCII
	}
	return DockPillLeftChar
}

// GetDockPillRightChar returns the appropriate pill right character based on UseASCIIOnly
func GetDockPillRightChar() string {
	if UseASCIIOnly {
		return DockPillRightCharASCII
	}
	return DockPillRightChar
}

// =============================================================================
// Runtime Configuration
// =============================================================================

// UseASCIIOnly controls whether to use ASCII fallback characters instead of Nerd Fonts
// Set via --ascii-only command-line flag or appearance.ascii_only config
var UseASCIIOnly = false

// PointerShapes controls whether cursor changes are sent to the terminal
// Disabled via --no-pointer-shape flag or appearance.pointer_shapes config
var PointerShapes = true

// TooltipDelay is the hover delay before tooltips appear
// Set via appearance.tooltip_delay_ms config
var TooltipDelay = DefaultTooltipDelay
