package chrome

import (
	"testing"

	"github.com/Gaurav-Gosain/tuichrome/internal/host"
	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
	uv "github.com/charmbracelet/ultraviolet"
)

func TestResizeZonesExample(t *testing.T) {
	z := ResizeZones(ui.Rect(0, 0, 800, 600), 6)

	tests := []struct {
		name string
		got  uv.Rectangle
		want uv.Rectangle
	}{
		{"north", z.N, ui.Rect(6, 0, 794, 6)},
		{"north-west", z.NW, ui.Rect(0, 0, 6, 6)},
		{"north-east", z.NE, ui.Rect(794, 0, 800, 6)},
		{"south-west", z.SW, ui.Rect(0, 594, 6, 600)},
		{"south-east", z.SE, ui.Rect(794, 594, 800, 600)},
		{"south", z.S, ui.Rect(6, 594, 794, 600)},
		{"west", z.W, ui.Rect(0, 6, 6, 594)},
		{"east", z.E, ui.Rect(794, 6, 800, 594)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	zone, ok := z.Find(uv.Pos(400, 3))
	if !ok || zone.Dir != host.North {
		t.Fatalf("Find(400,3) = %v, %v; want North", zone.Dir, ok)
	}
	matches := 0
	for _, zz := range z.All() {
		if ui.Contains(zz.Rect, uv.Pos(400, 3)) {
			matches++
		}
	}
	if matches != 1 {
		t.Errorf("(400,3) is inside %d zones, want 1", matches)
	}
}

func TestResizeZonesTileOuter(t *testing.T) {
	tests := []struct {
		name  string
		outer uv.Rectangle
		t     int
	}{
		{"exactly 2t", ui.Rect(0, 0, 12, 12), 6},
		{"offset origin", ui.Rect(3, 4, 40, 25), 6},
		{"negative origin", ui.Rect(-5, -5, 10, 10), 3},
		{"cell border", ui.Rect(0, 0, 20, 15), 1},
		{"zero thickness", ui.Rect(0, 0, 8, 8), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := ResizeZones(tt.outer, tt.t)
			rects := append(z.Rects(), Interior(tt.outer, tt.t))

			for i := range rects {
				for j := i + 1; j < len(rects); j++ {
					if ui.Overlaps(rects[i], rects[j]) {
						t.Errorf("rects %d %v and %d %v overlap", i, rects[i], j, rects[j])
					}
				}
			}

			for y := tt.outer.Min.Y; y < tt.outer.Max.Y; y++ {
				for x := tt.outer.Min.X; x < tt.outer.Max.X; x++ {
					n := 0
					for _, r := range rects {
						if ui.Contains(r, uv.Pos(x, y)) {
							n++
						}
					}
					if n != 1 {
						t.Fatalf("point (%d,%d) covered %d times, want 1", x, y, n)
					}
				}
			}
		})
	}
}

func TestResizeZonesNeverInverted(t *testing.T) {
	tests := []struct {
		name  string
		outer uv.Rectangle
		t     int
	}{
		{"narrow", ui.Rect(0, 0, 8, 100), 6},
		{"short", ui.Rect(0, 0, 100, 5), 6},
		{"tiny", ui.Rect(10, 10, 11, 11), 6},
		{"empty", ui.Rect(0, 0, 0, 0), 6},
		{"inverted", ui.Rect(50, 50, 10, 20), 6},
		{"negative thickness", ui.Rect(0, 0, 30, 30), -4},
		{"odd width", ui.Rect(0, 0, 7, 9), 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := ResizeZones(tt.outer, tt.t)
			hot := TopHotZones(tt.outer, tt.t)
			all := append(z.Rects(), hot[:]...)
			all = append(all, Interior(tt.outer, tt.t))
			for i, r := range all {
				if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y {
					t.Errorf("rect %d is inverted: %v", i, r)
				}
			}

			// Corners never overlap each other, even when squeezed.
			corners := []uv.Rectangle{z.NW, z.NE, z.SW, z.SE}
			for i := range corners {
				for j := i + 1; j < len(corners); j++ {
					if ui.Overlaps(corners[i], corners[j]) {
						t.Errorf("corners %v and %v overlap", corners[i], corners[j])
					}
				}
			}
		})
	}
}

func TestTopHotZones(t *testing.T) {
	outer := ui.Rect(0, 0, 800, 600)
	z := ResizeZones(outer, 6)
	hot := TopHotZones(outer, 6)
	if hot != [3]uv.Rectangle{z.NW, z.N, z.NE} {
		t.Errorf("TopHotZones = %v, want NW, N, NE", hot)
	}
}

func TestPointerInAny(t *testing.T) {
	rects := []uv.Rectangle{ui.Rect(0, 0, 10, 10), ui.Rect(20, 0, 30, 10)}
	tests := []struct {
		name string
		ptr  ui.Pointer
		want bool
	}{
		{"inside first", hoverAt(5, 5), true},
		{"inside second", hoverAt(25, 5), true},
		{"between", hoverAt(15, 5), false},
		{"max edge excluded", hoverAt(10, 5), false},
		{"off window", ui.Pointer{Pos: uv.Pos(5, 5)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointerInAny(tt.ptr, rects...); got != tt.want {
				t.Errorf("PointerInAny() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCursorFor(t *testing.T) {
	z := ResizeZones(ui.Rect(0, 0, 100, 100), 4)
	for _, zone := range z.All() {
		if got := CursorFor(zone.Dir); got != zone.Cursor {
			t.Errorf("CursorFor(%v) = %v, want %v", zone.Dir, got, zone.Cursor)
		}
	}
	if got := CursorFor(host.Direction(42)); got != ui.CursorUnset {
		t.Errorf("CursorFor(unknown) = %v, want unset", got)
	}
}
