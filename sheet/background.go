package sheet

import (
	"image/color"

	"github.com/pkg/errors"
)

// BorderBackground returns the most frequent color on the outermost ring of
// pixels, and how many border pixels have it. Ties go to the color seen
// first when walking the border clockwise from (0,0).
func (s *Sheet) BorderBackground() (color.NRGBA, int) {
	w, h := s.Size()
	if w == 0 || h == 0 {
		return color.NRGBA{}, 0
	}

	counts := make(map[color.NRGBA]int)
	var order []color.NRGBA
	add := func(x, y int) {
		c := s.Image.NRGBAAt(x, y)
		if _, ok := counts[c]; !ok {
			order = append(order, c)
		}
		counts[c]++
	}

	for x := 0; x < w; x++ {
		add(x, 0)
	}
	for y := 1; y < h; y++ {
		add(w-1, y)
	}
	if h > 1 {
		for x := w - 2; x >= 0; x-- {
			add(x, h-1)
		}
	}
	if w > 1 {
		for y := h - 2; y > 0; y-- {
			add(0, y)
		}
	}

	best := order[0]
	for _, c := range order[1:] {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best, counts[best]
}

// CheckBackground verifies that the color sampled at (0,0) is also the most
// frequent border color. It never changes s.Background.
func (s *Sheet) CheckBackground() error {
	border, _ := s.BorderBackground()
	if border != s.Background {
		return errors.Wrapf(ErrBackgroundMismatch, "sampled %v, border %v", s.Background, border)
	}
	return nil
}
