package theme

import (
	"image/color"
	"testing"

	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
)

func TestOver(t *testing.T) {
	bg := color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	tests := []struct {
		name string
		c    color.Color
		want string
	}{
		{"nil keeps background", nil, "#000000"},
		{"transparent keeps background", ui.Transparent, "#000000"},
		{"opaque replaces background", color.NRGBA{R: 255, A: 255}, "#ff0000"},
		{"half white over black", color.NRGBA{R: 255, G: 255, B: 255, A: 128}, "#808080"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorToString(Over(tt.c, bg)); got != tt.want {
				t.Errorf("Over() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMixEndpoints(t *testing.T) {
	a := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	b := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	if got := ColorToString(Mix(a, b, 0)); got != "#0a141e" {
		t.Errorf("Mix(a, b, 0) = %s, want #0a141e", got)
	}
	if got := ColorToString(Mix(a, b, 1)); got != "#c86432" {
		t.Errorf("Mix(a, b, 1) = %s, want #c86432", got)
	}
}

func TestStyleWithoutTheme(t *testing.T) {
	Disable()
	s := Style()
	want := ui.DefaultStyle()
	if ColorToString(s.Visuals.WindowFill) != ColorToString(want.Visuals.WindowFill) {
		t.Errorf("window fill = %s, want default", ColorToString(s.Visuals.WindowFill))
	}
	if s.TooltipDelay != want.TooltipDelay {
		t.Errorf("tooltip delay = %v, want %v", s.TooltipDelay, want.TooltipDelay)
	}
}

func TestColorToString(t *testing.T) {
	if got := ColorToString(nil); got != "#000000" {
		t.Errorf("ColorToString(nil) = %s", got)
	}
	if got := ColorToString(color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}); got != "#123456" {
		t.Errorf("ColorToString = %s, want #123456", got)
	}
}
