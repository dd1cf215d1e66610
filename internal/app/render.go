package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/tuichrome/internal/config"
	"github.com/Gaurav-Gosain/tuichrome/internal/theme"
	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

const (
	zDesktop = iota
	zDock
	zTooltip
)

// GetCanvas composes the desktop, the dock and the tooltip.
func (d *Desktop) GetCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(
		lipgloss.NewLayer(d.renderDesktop()).X(0).Y(0).Z(zDesktop).ID("desktop"),
		lipgloss.NewLayer(d.renderDock()).X(0).Y(d.Height-config.DockHeight).Z(zDock).ID("dock"),
	)
	if tip, x, y, ok := d.renderTooltip(); ok {
		canvas.AddLayers(lipgloss.NewLayer(tip).X(x).Y(y).Z(zTooltip).ID("tooltip"))
	}
	return canvas
}

// View renders the desktop with mouse tracking on for hover effects.
func (d *Desktop) View() tea.View {
	var view tea.View
	if d.Width > 0 && d.Height > 0 && !d.quitting {
		view.SetContent(lipgloss.Sprint(d.GetCanvas().Render()))
	}
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.ReportFocus = true
	return view
}

// renderDesktop rasterizes the last frame over the desktop background.
func (d *Desktop) renderDesktop() string {
	screen := d.Screen()
	r := newRaster(ui.Width(screen), ui.Height(screen), theme.DesktopBg())
	r.Paint(d.rec.Shapes())
	return r.String()
}

// dockPillText is the unstyled label of the window's dock pill.
func (d *Desktop) dockPillText() string {
	glyph, _ := config.GetIconGlyph(config.IconApp)
	title := d.window.Title
	if title == "" {
		title = "window"
	}
	return " " + glyph + " " + title + " "
}

// DockPillRect is the clickable area of the dock pill, caps included.
func (d *Desktop) DockPillRect() uv.Rectangle {
	if d.Height <= 0 {
		return uv.Rectangle{}
	}
	w := ansi.StringWidth(config.GetDockPillLeftChar()) +
		ansi.StringWidth(d.dockPillText()) +
		ansi.StringWidth(config.GetDockPillRightChar())
	y := d.Height - config.DockHeight
	return ui.Rect(1, y, 1+w, y+1)
}

// renderDock draws the pill for the window on the left and the key hints
// on the right.
func (d *Desktop) renderDock() string {
	bg := theme.DesktopBg()
	pillBg := theme.DockBg()
	caps := lipgloss.NewStyle().Foreground(pillBg).Background(bg)
	label := lipgloss.NewStyle().Foreground(theme.DockFg()).Background(pillBg)
	if d.Minimized {
		label = label.Italic(true)
	} else {
		label = label.Bold(true)
	}

	pill := caps.Render(config.GetDockPillLeftChar()) +
		label.Render(d.dockPillText()) +
		caps.Render(config.GetDockPillRightChar())
	left := lipgloss.NewStyle().Background(bg).Render(" ") + pill

	var hints []string
	for _, kb := range config.GetKeybindings(d.keys) {
		hints = append(hints, kb.Key+" "+strings.ToLower(kb.Description))
	}
	hintText := strings.Join(hints, " · ") + " "
	avail := d.Width - lipgloss.Width(left)
	if lipgloss.Width(hintText) > avail {
		hintText = ansi.Truncate(hintText, max(avail, 0), "")
	}
	gap := max(avail-lipgloss.Width(hintText), 0)
	right := lipgloss.NewStyle().Foreground(theme.DockFg()).Background(bg).
		Render(strings.Repeat(" ", gap) + hintText)
	return ansi.Truncate(left+right, d.Width, "")
}

// renderTooltip places the frame's tooltip just below and right of the
// pointer, kept on screen.
func (d *Desktop) renderTooltip() (string, int, int, bool) {
	if d.out.Tooltip == "" || d.Minimized {
		return "", 0, 0, false
	}
	pad := config.CellMetrics().TooltipPadding
	box := lipgloss.NewStyle().
		Foreground(theme.TooltipFg()).
		Background(theme.TooltipBg()).
		Padding(0, pad).
		Render(d.out.Tooltip)

	w := lipgloss.Width(box)
	x := min(d.out.TooltipPos.X+1, d.Width-w)
	y := d.out.TooltipPos.Y + 1
	if y >= d.Height-config.DockHeight {
		y = d.out.TooltipPos.Y - 1
	}
	return box, max(x, 0), max(y, 0), true
}
