package chrome

import (
	"errors"

	"github.com/Gaurav-Gosain/tuichrome/internal/host"
	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
	uv "github.com/charmbracelet/ultraviolet"
)

// frame is one test frame: a context, its display list and its queue.
type frame struct {
	ctx   *ui.Context
	rec   *ui.Recorder
	queue *host.Queue
	style *ui.Style
}

func newFrame(rect uv.Rectangle, ptr ui.Pointer, vp ui.Viewport, queue *host.Queue) frame {
	if queue == nil {
		queue = &host.Queue{}
	}
	rec := ui.NewRecorder()
	style := ui.DefaultStyle()
	ctx := ui.NewContext(ui.Config{
		Input:   ui.Input{Pointer: ptr, Viewport: vp},
		Style:   style,
		Painter: rec,
		Queue:   queue,
		Loader:  testLoader,
		Rect:    rect,
	})
	return frame{ctx: ctx, rec: rec, queue: queue, style: style}
}

var testLoader = ui.LoaderFunc(func(name string) (ui.Image, error) {
	if name == "broken" {
		return ui.Image{}, errors.New("cannot decode")
	}
	return ui.Image{Name: name, Glyph: name[:1], Width: 10, Height: 20}, nil
})

func hoverAt(x, y int) ui.Pointer {
	return ui.Pointer{Pos: uv.Pos(x, y), Hovering: true}
}

func pressAt(x, y int) ui.Pointer {
	return ui.Pointer{Pos: uv.Pos(x, y), Hovering: true, Down: true, Pressed: true, Origin: uv.Pos(x, y)}
}

func holdAt(x, y int, origin uv.Position, dragStarted bool) ui.Pointer {
	return ui.Pointer{Pos: uv.Pos(x, y), Hovering: true, Down: true, DragStarted: dragStarted, Origin: origin}
}

func releaseAt(x, y int, origin uv.Position) ui.Pointer {
	return ui.Pointer{Pos: uv.Pos(x, y), Hovering: true, Released: true, Origin: origin}
}

func countCommands[T host.Command](cmds []host.Command) int {
	n := 0
	for _, c := range cmds {
		if _, ok := c.(T); ok {
			n++
		}
	}
	return n
}

func shapesOf(rec *ui.Recorder, kind ui.ShapeKind) []ui.Shape {
	var out []ui.Shape
	for _, s := range rec.Shapes() {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}
