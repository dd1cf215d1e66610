package chrome

import (
	"image/color"

	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
	uv "github.com/charmbracelet/ultraviolet"
)

// Default button tints.
var (
	DefaultButtonColor      color.Color = ui.WhiteAlpha(10)
	DefaultButtonHoverColor color.Color = ui.WhiteAlpha(2)
	DefaultIconHoverColor   color.Color = color.White
)

// Button is a flat title bar button. Build one per frame; zero fields take
// their defaults.
type Button struct {
	// Width and Height size the button inside the rect given to Show.
	// Zero means fill the rect.
	Width, Height int

	// Color fills the button while it is pressed.
	Color color.Color
	// HoverColor fills the button while the pointer is over it.
	HoverColor color.Color
	Rounding   ui.Rounding

	// Icon is resolved through the frame's image loader.
	Icon string
	// IconWidth and IconHeight bound the icon; it keeps its aspect ratio.
	// Zero means the button size.
	IconWidth, IconHeight int
	// IconColor tints the idle icon. Nil means the style's text color.
	IconColor color.Color
	// IconHoverColor tints the icon while hovered. Nil means white.
	IconHoverColor color.Color

	// HoverText is shown as a tooltip once the pointer rests on the button.
	HoverText string
}

// Show paints the button centered in area and reports how it was used this
// frame. A click is a press and release both inside the button.
func (b Button) Show(ctx *ui.Context, area uv.Rectangle) ui.Response {
	rect := area
	if b.Width > 0 && b.Height > 0 {
		rect = ui.Intersect(area, ui.FromCenterSize(ui.Center(area), b.Width, b.Height))
	}
	pressed := orDefault(b.Color, DefaultButtonColor)
	hovered := orDefault(b.HoverColor, DefaultButtonHoverColor)

	restore := ctx.OverrideStyle(func(s *ui.Style) {
		s.Visuals.Inactive.WeakBgFill = ui.Transparent
		s.Visuals.Active.WeakBgFill = pressed
		s.Visuals.Hovered.WeakBgFill = hovered
	})
	defer restore()

	resp := ctx.Interact(rect)
	vis := ctx.Style().Visuals

	fill := vis.Inactive.WeakBgFill
	switch {
	case resp.Pressed:
		fill = vis.Active.WeakBgFill
	case resp.Hovered:
		fill = vis.Hovered.WeakBgFill
	}
	ctx.Painter().FillRect(rect, fill, b.Rounding)

	if img, ok := ctx.LoadImage(b.Icon); ok {
		boxW, boxH := b.IconWidth, b.IconHeight
		if boxW <= 0 || boxH <= 0 {
			boxW, boxH = ui.Width(rect), ui.Height(rect)
		}
		w, h := ui.FitSize(img.Width, img.Height, boxW, boxH)
		tint := orDefault(b.IconColor, vis.Text)
		if resp.Hovered {
			tint = orDefault(b.IconHoverColor, DefaultIconHoverColor)
		}
		ctx.Painter().Image(ui.FromCenterSize(ui.Center(rect), w, h), img, tint)
	}

	if b.HoverText != "" && ctx.HoveredFor(resp) {
		ctx.ShowTooltip(b.HoverText)
	}
	return resp
}

func orDefault(c, def color.Color) color.Color {
	if c == nil {
		return def
	}
	return c
}
