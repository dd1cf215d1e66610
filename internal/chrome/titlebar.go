package chrome

import (
	"image/color"

	"github.com/Gaurav-Gosain/tuichrome/internal/config"
	"github.com/Gaurav-Gosain/tuichrome/internal/host"
	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
	uv "github.com/charmbracelet/ultraviolet"
)

// Close button tints.
var (
	ClosePressedColor color.Color = color.NRGBA{R: 255, A: 100}
	CloseHoverColor   color.Color = color.NRGBA{R: 255, A: 255}
)

// TitleBar is the draggable strip at the top of the window.
type TitleBar struct {
	Rect  uv.Rectangle
	Title string
	// Icon is drawn left of the title.
	Icon string
	// Maximize offers the maximize/restore button.
	Maximize bool
	Metrics  config.Metrics
	// Suppress holds rectangles where a press does not start a window drag,
	// usually the top resize zones.
	Suppress []uv.Rectangle
	// CloseColor replaces the close button's hover red.
	CloseColor color.Color
}

// TitleBarResponse reports what each part of the bar did this frame.
type TitleBarResponse struct {
	Drag        ui.Response
	Close       ui.Response
	Maximize    ui.Response
	Minimize    ui.Response
	HasMaximize bool
	// Buttons is the area covered by the button strip.
	Buttons uv.Rectangle
}

// ButtonRects lays out the close, maximize and minimize buttons right to
// left inside bar. The maximize rect is empty when maximize is false.
func ButtonRects(bar uv.Rectangle, m config.Metrics, maximize bool) (closeR, maxR, minR uv.Rectangle) {
	inner := ui.Shrink2(bar, 0, m.TitleBarInset)
	y0 := inner.Min.Y + (ui.Height(inner)-m.ButtonHeight)/2
	next := func(right int) uv.Rectangle {
		return ui.Canon(ui.Rect(right-m.ButtonWidth, y0, right, y0+m.ButtonHeight))
	}

	right := inner.Max.X - m.ButtonSpacing
	closeR = next(right)
	right = closeR.Min.X
	if maximize {
		maxR = next(right)
		right = maxR.Min.X
	} else {
		maxR = ui.Rect(right, y0, right, y0)
	}
	minR = next(right)
	return closeR, maxR, minR
}

// Show paints the bar and handles its buttons and drag region.
func (tb TitleBar) Show(ctx *ui.Context) TitleBarResponse {
	m := tb.Metrics
	vis := ctx.Style().Visuals
	maximized := ctx.Viewport().Maximized

	closeR, maxR, minR := ButtonRects(tb.Rect, m, tb.Maximize)
	strip := ui.Rect(max(minR.Min.X, tb.Rect.Min.X), tb.Rect.Min.Y, tb.Rect.Max.X, tb.Rect.Max.Y)
	dragR := ui.Canon(ui.Rect(tb.Rect.Min.X, tb.Rect.Min.Y, strip.Min.X, tb.Rect.Max.Y))

	resp := TitleBarResponse{HasMaximize: tb.Maximize, Buttons: strip}

	// Drag region
	resp.Drag = ctx.Interact(dragR)
	if resp.Drag.PressStarted && !PointerInAny(ctx.Pointer(), tb.Suppress...) {
		ctx.Send(host.BeginDrag{})
	}

	left := ui.LeftCenter(tb.Rect)
	label := ctx.Painter().WithClip(dragR)
	if tb.Title != "" {
		label.Text(uv.Pos(left.X+m.TitleOffset, left.Y), ui.AlignLeftCenter, tb.Title, m.TitleFontSize, vis.Text)
	}
	if img, ok := ctx.LoadImage(tb.Icon); ok {
		w, h := ui.FitSize(img.Width, img.Height, m.TitleIconSize, m.TitleIconSize)
		label.Image(ui.FromCenterSize(uv.Pos(left.X+m.TitleIconX, left.Y), w, h), img, nil)
	}

	// Buttons, right to left
	resp.Close = Button{
		Width:      m.ButtonWidth,
		Height:     m.ButtonHeight,
		Color:      ClosePressedColor,
		HoverColor: orDefault(tb.CloseColor, CloseHoverColor),
		Rounding:   ui.Rounding{NE: m.Rounding},
		Icon:       config.IconClose,
		IconWidth:  m.ButtonIconW,
		IconHeight: m.ButtonIconH,
		HoverText:  config.TooltipClose,
	}.Show(ctx, closeR)
	if resp.Close.Clicked {
		ctx.Send(host.Close{})
	}

	if tb.Maximize {
		icon, tip := config.IconMaximize, config.TooltipMaximize
		if maximized {
			icon, tip = config.IconRestore, config.TooltipRestore
		}
		resp.Maximize = tb.plainButton(icon, tip).Show(ctx, maxR)
		if resp.Maximize.Clicked {
			ctx.Send(host.SetMaximized{Maximized: !maximized})
		}
	}

	resp.Minimize = tb.plainButton(config.IconMinimize, config.TooltipMinimize).Show(ctx, minR)
	if resp.Minimize.Clicked {
		ctx.Send(host.SetMinimized{Minimized: true})
	}

	return resp
}

func (tb TitleBar) plainButton(icon, tip string) Button {
	return Button{
		Width:      tb.Metrics.ButtonWidth,
		Height:     tb.Metrics.ButtonHeight,
		Icon:       icon,
		IconWidth:  tb.Metrics.ButtonIconW,
		IconHeight: tb.Metrics.ButtonIconH,
		HoverText:  tip,
	}
}
