package app

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuichrome/internal/config"
	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
	"github.com/charmbracelet/x/ansi"
)

// The 80×24 test desktop places the 60×18 window at (10,2)-(70,20). With
// cell metrics its title bar is row 3 and the buttons are close (66-68),
// maximize (63-65) and minimize (60-62).
func newTestDesktop(t *testing.T) (*Desktop, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	d := NewDesktop(Options{
		Title:        "Demo",
		Maximize:     true,
		Resizable:    true,
		PointerOut:   &out,
		ScreenWidth:  80,
		ScreenHeight: 24,
	})
	d.RunFrame()
	return d, &out
}

func send(d *Desktop, msgs ...tea.Msg) {
	for _, msg := range msgs {
		d.Update(msg)
	}
}

func press(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func move(x, y int) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func lift(x, y int) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func TestDesktopDragTitleBar(t *testing.T) {
	d, _ := newTestDesktop(t)

	send(d, press(30, 3))
	if g := d.Gesture(); g == nil || g.Kind != GestureMove {
		t.Fatalf("gesture after title bar press = %+v, want a move", g)
	}
	send(d, move(33, 4), move(35, 5))
	if want := ui.Rect(15, 5, 75, 23); d.Bounds != want {
		t.Errorf("bounds while dragging = %v, want %v", d.Bounds, want)
	}
	send(d, lift(35, 5))
	if d.Gesture() != nil {
		t.Error("gesture survived the release")
	}
	send(d, move(50, 10))
	if want := ui.Rect(15, 5, 75, 23); d.Bounds != want {
		t.Errorf("window moved after release: %v", d.Bounds)
	}
}

// Following the pointer moves the window under the press origin, so the
// frame that reports the drag start must not see a border there.
func TestDesktopDragStaysAMove(t *testing.T) {
	tests := []struct {
		name  string
		press [2]int
		moves [][2]int
		want  [4]int
	}{
		{"one cell down", [2]int{30, 3}, [][2]int{{30, 4}}, [4]int{10, 3, 70, 21}},
		{"right from the left end", [2]int{11, 3}, [][2]int{{12, 3}, {20, 3}}, [4]int{19, 2, 79, 20}},
		{"one cell left", [2]int{40, 3}, [][2]int{{39, 3}}, [4]int{9, 2, 69, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDesktop(t)
			send(d, press(tt.press[0], tt.press[1]))
			for _, m := range tt.moves {
				send(d, move(m[0], m[1]))
				if g := d.Gesture(); g == nil || g.Kind != GestureMove {
					t.Fatalf("gesture after move to %v = %+v, want a move", m, g)
				}
			}
			if want := ui.Rect(tt.want[0], tt.want[1], tt.want[2], tt.want[3]); d.Bounds != want {
				t.Errorf("bounds = %v, want %v", d.Bounds, want)
			}
		})
	}
}

func TestDesktopResizeFromEdge(t *testing.T) {
	d, out := newTestDesktop(t)

	send(d, move(69, 10))
	if !strings.Contains(out.String(), ansi.SetPointerShape("ew-resize")) {
		t.Errorf("hovering the east edge wrote %q, want the ew-resize shape", out.String())
	}

	send(d, press(69, 10))
	if d.Gesture() != nil {
		t.Fatal("pressing the border started a gesture before any drag")
	}
	send(d, move(72, 10))
	g := d.Gesture()
	if g == nil || g.Kind != GestureResize {
		t.Fatalf("gesture after dragging the border = %+v, want a resize", g)
	}
	if want := ui.Rect(10, 2, 73, 20); d.Bounds != want {
		t.Errorf("bounds = %v, want %v", d.Bounds, want)
	}
	send(d, move(100, 30))
	if want := ui.Rect(10, 2, 80, 20); d.Bounds != want {
		t.Errorf("bounds past the screen = %v, want %v", d.Bounds, want)
	}
	send(d, lift(100, 30))
	if d.Gesture() != nil {
		t.Error("resize survived the release")
	}
}

func TestDesktopEscapeCancelsGesture(t *testing.T) {
	d, _ := newTestDesktop(t)
	start := d.Bounds

	send(d, press(30, 3), move(40, 8))
	if d.Bounds == start {
		t.Fatal("drag did not move the window")
	}
	send(d, tea.KeyPressMsg{Code: tea.KeyEscape})
	if d.Bounds != start || d.Gesture() != nil {
		t.Errorf("after escape: bounds %v gesture %+v, want %v and none", d.Bounds, d.Gesture(), start)
	}
	// The held pointer no longer moves the window.
	send(d, move(50, 10), lift(50, 10))
	if d.Bounds != start {
		t.Errorf("cancelled drag resumed: %v", d.Bounds)
	}
}

func TestDesktopTitleBarButtons(t *testing.T) {
	tests := []struct {
		name string
		x    int
		want func(d *Desktop) bool
	}{
		{"close quits", 67, func(d *Desktop) bool { return d.Quitting() }},
		{"maximize", 64, func(d *Desktop) bool { return d.Maximized }},
		{"minimize", 61, func(d *Desktop) bool { return d.Minimized }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDesktop(t)
			send(d, press(tt.x, 3), lift(tt.x, 3))
			if !tt.want(d) {
				t.Errorf("clicking x=%d had no effect", tt.x)
			}
		})
	}
}

func TestDesktopCloseNeedsReleaseInside(t *testing.T) {
	d, _ := newTestDesktop(t)
	send(d, press(67, 3), move(40, 10), lift(40, 10))
	if d.Quitting() {
		t.Error("release outside the close button quit")
	}
}

func TestDesktopMaximizeAndRestore(t *testing.T) {
	d, _ := newTestDesktop(t)
	restored := d.Bounds

	send(d, press(64, 3), lift(64, 3))
	if !d.Maximized || d.Outer() != d.Screen() {
		t.Fatalf("maximized = %v outer = %v", d.Maximized, d.Outer())
	}

	// Maximized: no margin or stroke, buttons flush with the screen edge.
	send(d, press(75, 0), lift(75, 0))
	if d.Maximized {
		t.Fatal("restore button did not restore")
	}
	if d.Bounds != restored {
		t.Errorf("restored bounds = %v, want %v", d.Bounds, restored)
	}
}

func TestDesktopMinimizeAndDockRestore(t *testing.T) {
	d, _ := newTestDesktop(t)

	send(d, press(61, 3), lift(61, 3))
	if !d.Minimized {
		t.Fatal("minimize button did nothing")
	}
	// The click frame drew before the command was applied.
	send(d, TickerMsg(time.Now()))
	if n := len(d.Shapes()); n != 0 {
		t.Errorf("minimized window painted %d shapes", n)
	}

	pill := d.DockPillRect()
	p := ui.Center(pill)
	send(d, press(p.X, p.Y), lift(p.X, p.Y))
	if d.Minimized {
		t.Error("clicking the dock pill did not restore the window")
	}
	if len(d.Shapes()) == 0 {
		t.Error("restored window not painted")
	}
}

func TestDesktopKeybindings(t *testing.T) {
	d, _ := newTestDesktop(t)

	send(d, tea.KeyPressMsg{Code: 'm', Text: "m"})
	if !d.Maximized {
		t.Error("m did not maximize")
	}
	send(d, tea.KeyPressMsg{Code: 'm', Text: "m"})
	if d.Maximized {
		t.Error("second m did not restore")
	}
	send(d, tea.KeyPressMsg{Code: 'n', Text: "n"})
	if !d.Minimized {
		t.Error("n did not minimize")
	}
	send(d, tea.KeyPressMsg{Code: 'q', Text: "q"})
	if !d.Quitting() {
		t.Error("q did not quit")
	}
}

func TestDesktopMaximizeKeyNeedsButton(t *testing.T) {
	d := NewDesktop(Options{Maximize: false, ScreenWidth: 80, ScreenHeight: 24})
	send(d, tea.KeyPressMsg{Code: 'm', Text: "m"})
	if d.Maximized {
		t.Error("window without a maximize button was maximized")
	}
}

func TestDesktopTooltipAfterDelay(t *testing.T) {
	d, _ := newTestDesktop(t)
	now := time.Unix(0, 0)
	d.tracker.Now = func() time.Time { return now }

	send(d, move(67, 3))
	if d.Output().Tooltip != "" {
		t.Fatal("tooltip shown without resting")
	}
	now = now.Add(config.TooltipDelay)
	send(d, TickerMsg(now))
	if got := d.Output().Tooltip; got != config.TooltipClose {
		t.Fatalf("tooltip = %q, want %q", got, config.TooltipClose)
	}
	if _, x, y, ok := d.renderTooltip(); !ok || x > 67+1 || y != 4 {
		t.Errorf("tooltip placed at (%d,%d) ok=%v", x, y, ok)
	}
}

func TestDesktopBlurEndsGesture(t *testing.T) {
	d, _ := newTestDesktop(t)
	send(d, press(30, 3), move(32, 3))
	send(d, tea.BlurMsg{})
	if d.Gesture() != nil {
		t.Error("gesture survived losing focus")
	}
	if d.Focused {
		t.Error("desktop still focused after blur")
	}
}

func TestDesktopPointerOverDockIsOffWindow(t *testing.T) {
	d, _ := newTestDesktop(t)
	// Title bar on the dock row.
	d.Bounds = ui.Rect(10, 22, 70, 40)
	send(d, press(30, 23))
	if d.Gesture() != nil {
		t.Error("a press on the dock row started a window drag")
	}
}

func TestDesktopView(t *testing.T) {
	d, _ := newTestDesktop(t)
	v := d.View()
	if !v.AltScreen || v.MouseMode != tea.MouseModeAllMotion {
		t.Errorf("view modes = alt %v mouse %v", v.AltScreen, v.MouseMode)
	}
	if !strings.Contains(d.renderDesktop(), "Demo") {
		t.Error("desktop render is missing the title")
	}
	if !strings.Contains(d.renderDock(), "Demo") {
		t.Error("dock is missing the window pill")
	}
}
