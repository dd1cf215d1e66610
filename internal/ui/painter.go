package ui

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Align anchors text relative to its position.
type Align int

const (
	// AlignLeftTop puts the text's top-left corner at the position.
	AlignLeftTop Align = iota
	// AlignLeftCenter puts the middle of the text's left edge at the position.
	AlignLeftCenter
	// AlignCenter centers the text on the position.
	AlignCenter
)

// Painter draws primitive shapes for the current frame.
type Painter interface {
	FillRect(r uv.Rectangle, fill color.Color, rounding Rounding)
	StrokeRect(r uv.Rectangle, width int, c color.Color, rounding Rounding)
	Text(pos uv.Position, align Align, text string, size int, c color.Color)
	Image(r uv.Rectangle, img Image, tint color.Color)
	// WithClip returns a painter whose output is limited to clip.
	WithClip(clip uv.Rectangle) Painter
}

// ShapeKind tells which Painter call produced a Shape.
type ShapeKind int

const (
	ShapeFill ShapeKind = iota
	ShapeStroke
	ShapeText
	ShapeImage
)

// Shape is one recorded paint call.
type Shape struct {
	Kind     ShapeKind
	Rect     uv.Rectangle
	Clip     uv.Rectangle
	Clipped  bool
	Color    color.Color
	Rounding Rounding
	Width    int

	Pos   uv.Position
	Align Align
	Text  string
	Size  int

	Image Image
}

// Recorder is a Painter that keeps a display list. Hosts rasterize the
// list after the frame; tests inspect it directly.
type Recorder struct {
	shapes  *[]Shape
	clip    uv.Rectangle
	clipped bool
}

var _ Painter = (*Recorder)(nil)

// NewRecorder returns an empty, unclipped recorder.
func NewRecorder() *Recorder {
	return &Recorder{shapes: new([]Shape)}
}

// Shapes returns every shape recorded so far, in paint order.
func (r *Recorder) Shapes() []Shape {
	return *r.shapes
}

// Reset drops the recorded shapes so the recorder can be reused.
func (r *Recorder) Reset() {
	*r.shapes = (*r.shapes)[:0]
}

func (r *Recorder) add(s Shape) {
	s.Clip = r.clip
	s.Clipped = r.clipped
	*r.shapes = append(*r.shapes, s)
}

func (r *Recorder) FillRect(rect uv.Rectangle, fill color.Color, rounding Rounding) {
	if Empty(rect) || IsTransparent(fill) {
		return
	}
	r.add(Shape{Kind: ShapeFill, Rect: rect, Color: fill, Rounding: rounding})
}

func (r *Recorder) StrokeRect(rect uv.Rectangle, width int, c color.Color, rounding Rounding) {
	if Empty(rect) || width <= 0 || IsTransparent(c) {
		return
	}
	r.add(Shape{Kind: ShapeStroke, Rect: rect, Width: width, Color: c, Rounding: rounding})
}

func (r *Recorder) Text(pos uv.Position, align Align, text string, size int, c color.Color) {
	if text == "" {
		return
	}
	r.add(Shape{Kind: ShapeText, Pos: pos, Align: align, Text: text, Size: size, Color: c})
}

func (r *Recorder) Image(rect uv.Rectangle, img Image, tint color.Color) {
	if Empty(rect) {
		return
	}
	r.add(Shape{Kind: ShapeImage, Rect: rect, Image: img, Color: tint})
}

// WithClip shares the display list but limits later shapes to clip,
// intersected with any clip already in effect.
func (r *Recorder) WithClip(clip uv.Rectangle) Painter {
	if r.clipped {
		clip = Intersect(r.clip, clip)
	}
	return &Recorder{shapes: r.shapes, clip: clip, clipped: true}
}
