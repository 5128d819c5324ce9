// Package ttesting contains small assertion helpers shared by the tests in
// this module.
package ttesting

import (
	"image"
	"image/color"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualString(t *testing.T, name string, got, want string) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %q; want %q", got, want)
		}
	})
}

func AssertEqualColor(t *testing.T, name string, got, want color.NRGBA) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %v; want %v", got, want)
		}
	})
}

func AssertEqualRect(t *testing.T, name string, got, want image.Rectangle) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %v; want %v", got, want)
		}
	})
}

// Fill paints r on img with c.
func Fill(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// NewSheetImage returns a w×h image filled with bg.
func NewSheetImage(w, h int, bg color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	Fill(img, img.Rect, bg)
	return img
}

var (
	White = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	Black = color.NRGBA{0, 0, 0, 0xFF}
	Red   = color.NRGBA{0xFF, 0, 0, 0xFF}
	Clear = color.NRGBA{}
)
