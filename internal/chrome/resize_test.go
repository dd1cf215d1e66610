package chrome

import (
	"testing"

	"github.com/Gaurav-Gosain/tuichrome/internal/host"
	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
	uv "github.com/charmbracelet/ultraviolet"
)

func TestResizeBordersHover(t *testing.T) {
	outer := ui.Rect(0, 0, 800, 600)
	tests := []struct {
		name       string
		ptr        ui.Pointer
		wantFound  bool
		wantDir    host.Direction
		wantCursor ui.CursorIcon
	}{
		{"north edge", hoverAt(400, 3), true, host.North, ui.CursorResizeVertical},
		{"south edge", hoverAt(400, 597), true, host.South, ui.CursorResizeVertical},
		{"west edge", hoverAt(2, 300), true, host.West, ui.CursorResizeHorizontal},
		{"east edge", hoverAt(797, 300), true, host.East, ui.CursorResizeHorizontal},
		{"north-west corner", hoverAt(2, 2), true, host.NorthWest, ui.CursorResizeNwSe},
		{"north-east corner", hoverAt(797, 2), true, host.NorthEast, ui.CursorResizeNeSw},
		{"south-west corner", hoverAt(2, 597), true, host.SouthWest, ui.CursorResizeNeSw},
		{"south-east corner", hoverAt(797, 597), true, host.SouthEast, ui.CursorResizeNwSe},
		{"interior", hoverAt(400, 300), false, 0, ui.CursorUnset},
		{"just inside border", hoverAt(6, 6), false, 0, ui.CursorUnset},
		{"off window", ui.Pointer{Pos: uv.Pos(400, 3)}, false, 0, ui.CursorUnset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFrame(outer, tt.ptr, ui.Viewport{}, nil)
			zone, found := ResizeBorders(f.ctx, outer, 6, true)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if found && zone.Dir != tt.wantDir {
				t.Errorf("dir = %v, want %v", zone.Dir, tt.wantDir)
			}
			if got := f.ctx.Output().Cursor; got != tt.wantCursor {
				t.Errorf("cursor = %v, want %v", got, tt.wantCursor)
			}
			if n := f.queue.Len(); n != 0 {
				t.Errorf("hovering queued %d commands, want 0", n)
			}
		})
	}
}

func TestResizeBordersOneCommandPerGesture(t *testing.T) {
	outer := ui.Rect(0, 0, 800, 600)
	origin := uv.Pos(797, 300)
	queue := &host.Queue{}

	gesture := []ui.Pointer{
		pressAt(797, 300),
		holdAt(790, 300, origin, true),
		holdAt(780, 300, origin, false),
		holdAt(760, 301, origin, false),
		holdAt(700, 310, origin, false),
		releaseAt(700, 310, origin),
	}
	for _, ptr := range gesture {
		f := newFrame(outer, ptr, ui.Viewport{}, queue)
		ResizeBorders(f.ctx, outer, 6, true)
	}

	cmds := queue.Drain()
	if len(cmds) != 1 {
		t.Fatalf("got %v, want exactly one command", cmds)
	}
	if cmds[0] != (host.BeginResize{Dir: host.East}) {
		t.Errorf("got %v, want BeginResize(East)", cmds[0])
	}
}

func TestResizeBordersDragOutsideZones(t *testing.T) {
	outer := ui.Rect(0, 0, 800, 600)
	origin := uv.Pos(400, 300)
	f := newFrame(outer, holdAt(400, 3, origin, true), ui.Viewport{}, nil)
	ResizeBorders(f.ctx, outer, 6, true)
	if n := f.queue.Len(); n != 0 {
		t.Errorf("a drag that began in the interior queued %d commands", n)
	}
}

func TestResizeBordersDisabled(t *testing.T) {
	outer := ui.Rect(0, 0, 800, 600)
	f := newFrame(outer, holdAt(400, 8, uv.Pos(400, 3), true), ui.Viewport{}, nil)
	if _, found := ResizeBorders(f.ctx, outer, 6, false); found {
		t.Error("disabled border matched a zone")
	}
	if f.ctx.Output().Cursor != ui.CursorUnset || f.queue.Len() != 0 {
		t.Error("disabled border produced output")
	}
	// Nothing claimed: the pointer is still visible to later controls.
	if !f.ctx.Interact(ui.Rect(0, 0, 800, 600)).DragStarted {
		t.Error("disabled border claimed the pointer")
	}
}

func TestResizeBordersClaimPointer(t *testing.T) {
	outer := ui.Rect(0, 0, 800, 600)
	f := newFrame(outer, pressAt(400, 3), ui.Viewport{}, nil)
	ResizeBorders(f.ctx, outer, 6, true)

	bar := ui.Rect(0, 0, 800, 32)
	resp := f.ctx.Interact(bar)
	if resp.Hovered || resp.PressStarted {
		t.Errorf("title bar saw a pointer owned by the border: %+v", resp)
	}
}
