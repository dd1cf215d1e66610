package ui

import (
	"github.com/Gaurav-Gosain/tuichrome/internal/host"
	uv "github.com/charmbracelet/ultraviolet"
)

// Response is the interaction state of one control for the current frame.
// It is derived from the pointer snapshot on every call and never stored.
type Response struct {
	Rect uv.Rectangle

	// Hovered is true when the pointer is over the control and no other
	// control owns the current press.
	Hovered bool
	// Pressed is true while a press that began on the control is held.
	Pressed bool
	// PressStarted is true on the frame the primary button went down on
	// the control.
	PressStarted bool
	// Clicked is true when a press that began on the control was released
	// inside it this frame.
	Clicked bool
	// DragStarted is true on the frame a press that began on the control
	// turned into a drag.
	DragStarted bool
}

// Output is what a frame asks of the host besides commands.
type Output struct {
	Cursor     CursorIcon
	Tooltip    string
	TooltipPos uv.Position
}

// Config describes one frame.
type Config struct {
	Input   Input
	Style   *Style
	Painter Painter
	Queue   *host.Queue
	Loader  Loader
	// Rect is the area of the root context, usually the whole viewport.
	Rect uv.Rectangle
	// OnImageError is told about icons that failed to load.
	OnImageError func(name string, err error)
}

type frame struct {
	input        Input
	style        *Style
	queue        *host.Queue
	loader       Loader
	onImageError func(string, error)
	out          Output
	claims       []uv.Rectangle
}

// Context is the per-frame drawing and interaction handle. Child contexts
// share the frame but paint through a clipped painter.
type Context struct {
	f       *frame
	painter Painter
	rect    uv.Rectangle
}

// NewContext starts a frame.
func NewContext(cfg Config) *Context {
	style := cfg.Style
	if style == nil {
		style = DefaultStyle()
	}
	painter := cfg.Painter
	if painter == nil {
		painter = NewRecorder()
	}
	queue := cfg.Queue
	if queue == nil {
		queue = &host.Queue{}
	}
	return &Context{
		f: &frame{
			input:        cfg.Input,
			style:        style,
			queue:        queue,
			loader:       cfg.Loader,
			onImageError: cfg.OnImageError,
		},
		painter: painter,
		rect:    cfg.Rect,
	}
}

// Rect returns the area this context covers.
func (c *Context) Rect() uv.Rectangle { return c.rect }

// Input returns the frame's input snapshot.
func (c *Context) Input() Input { return c.f.input }

// Pointer returns the frame's pointer snapshot.
func (c *Context) Pointer() Pointer { return c.f.input.Pointer }

// Viewport returns the host window state for this frame.
func (c *Context) Viewport() Viewport { return c.f.input.Viewport }

// Style returns the shared style.
func (c *Context) Style() *Style { return c.f.style }

// Painter returns the painter for this context.
func (c *Context) Painter() Painter { return c.painter }

// Queue returns the frame's outbound command queue.
func (c *Context) Queue() *host.Queue { return c.f.queue }

// Send queues a command for the host.
func (c *Context) Send(cmd host.Command) { c.f.queue.Send(cmd) }

// Output returns what the frame has asked of the host so far.
func (c *Context) Output() Output { return c.f.out }

// SetCursor requests a pointer shape for this frame.
func (c *Context) SetCursor(icon CursorIcon) { c.f.out.Cursor = icon }

// ShowTooltip shows text next to the pointer for this frame.
func (c *Context) ShowTooltip(text string) {
	c.f.out.Tooltip = text
	c.f.out.TooltipPos = c.f.input.Pointer.Pos
}

// LoadImage resolves an icon. Failures are reported to the frame's error
// hook and otherwise ignored.
func (c *Context) LoadImage(name string) (Image, bool) {
	if name == "" {
		return Image{}, false
	}
	if c.f.loader == nil {
		c.imageError(name, ErrNoLoader)
		return Image{}, false
	}
	img, err := c.f.loader.Load(name)
	if err != nil {
		c.imageError(name, err)
		return Image{}, false
	}
	return img, true
}

func (c *Context) imageError(name string, err error) {
	if c.f.onImageError != nil {
		c.f.onImageError(name, err)
	}
}

// Claim reserves rects for the control that called it. Controls interacting
// later in the frame treat a pointer inside a claimed rect as elsewhere.
func (c *Context) Claim(rects ...uv.Rectangle) {
	for _, r := range rects {
		if !Empty(r) {
			c.f.claims = append(c.f.claims, r)
		}
	}
}

func (c *Context) claimed(p uv.Position) bool {
	for _, r := range c.f.claims {
		if Contains(r, p) {
			return true
		}
	}
	return false
}

// Interact hit-tests r against the frame's pointer.
func (c *Context) Interact(r uv.Rectangle) Response {
	p := c.f.input.Pointer
	resp := Response{Rect: r}
	if Empty(r) {
		return resp
	}

	ownsPress := (p.Down || p.Pressed || p.Released) &&
		Contains(r, p.Origin) && !c.claimed(p.Origin)
	over := p.Hovering && Contains(r, p.Pos) && !c.claimed(p.Pos)

	resp.Hovered = over && (!p.Down || ownsPress)
	resp.Pressed = p.Down && ownsPress
	resp.PressStarted = p.Pressed && ownsPress
	resp.Clicked = p.Released && ownsPress && over
	resp.DragStarted = p.DragStarted && ownsPress
	return resp
}

// HoveredFor reports whether resp has been hovered long enough for a
// tooltip.
func (c *Context) HoveredFor(resp Response) bool {
	return resp.Hovered && c.f.input.Pointer.Still >= c.f.style.TooltipDelay
}

// Child returns a context scoped to r. It shares the frame's input, style,
// queue and output, and its painter clips to r.
func (c *Context) Child(r uv.Rectangle) *Context {
	return &Context{f: c.f, painter: c.painter.WithClip(r), rect: r}
}

// OverrideStyle applies mutate to the shared style and returns a function
// that puts the previous style back. Call it with defer so every exit path
// restores the style.
func (c *Context) OverrideStyle(mutate func(*Style)) (restore func()) {
	saved := *c.f.style
	mutate(c.f.style)
	return func() { *c.f.style = saved }
}
