package chrome

import (
	"github.com/Gaurav-Gosain/tuichrome/internal/host"
	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
	uv "github.com/charmbracelet/ultraviolet"
)

// ResizeBorders runs the resize zones of outer for one frame.
//
// The first zone under the pointer sets the cursor. A drag that starts in a
// zone sends BeginResize once; the pointer snapshot reports the drag start
// on a single frame, so a long drag does not repeat it. When the border is
// active it claims its zones, and controls interacting later in the frame
// do not see the pointer there.
//
// It returns the zone that matched, if any. Disabled borders do nothing.
func ResizeBorders(ctx *ui.Context, outer uv.Rectangle, t int, enabled bool) (Zone, bool) {
	if !enabled {
		return Zone{}, false
	}

	zones := ResizeZones(outer, t)
	var (
		hit   Zone
		found bool
	)
	for _, zone := range zones.All() {
		resp := ctx.Interact(zone.Rect)
		if !resp.Hovered && !resp.Pressed {
			continue
		}
		ctx.SetCursor(zone.Cursor)
		if resp.DragStarted {
			ctx.Send(host.BeginResize{Dir: zone.Dir})
		}
		hit, found = zone, true
		break
	}

	ctx.Claim(zones.Rects()...)
	return hit, found
}
