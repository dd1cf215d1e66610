package ui

import (
	"errors"
	"math"
)

// ErrNoLoader is returned when a frame has no image loader configured.
var ErrNoLoader = errors.New("no image loader")

// Image is a decoded icon ready to paint. Width and Height are its natural
// size; Glyph is its text rendition for hosts that draw with characters.
type Image struct {
	Name   string
	Glyph  string
	Width  int
	Height int
}

// Loader resolves an icon name to a decoded image.
type Loader interface {
	Load(name string) (Image, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(name string) (Image, error)

// Load calls f(name).
func (f LoaderFunc) Load(name string) (Image, error) { return f(name) }

// FitSize scales a w×h image to fit inside maxW×maxH keeping its aspect
// ratio. Images without a natural size take the whole box.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	if w <= 0 || h <= 0 {
		return maxW, maxH
	}
	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	fw := max(int(math.Round(float64(w)*scale)), 1)
	fh := max(int(math.Round(float64(h)*scale)), 1)
	return min(fw, maxW), min(fh, maxH)
}
