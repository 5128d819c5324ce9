// Package spriteslice cuts the individual sprites out of a sprite sheet.
//
// A sheet is a single image where sprites sit on a uniform background color.
// Slicing loads the sheet, finds each 4-connected foreground region, drops
// regions that are too small to be anything but noise, puts the rest into
// reading order and crops each into its own transparent image.
//
// The individual stages live in the sheet, extract, sequence and render
// packages; this package strings them together.
package spriteslice

import (
	"image"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-spriteslice/extract"
	"badc0de.net/pkg/go-spriteslice/paths"
	"badc0de.net/pkg/go-spriteslice/render"
	"badc0de.net/pkg/go-spriteslice/sequence"
	"badc0de.net/pkg/go-spriteslice/sheet"
)

// Options control a slicing run.
type Options struct {
	// Start is the number given to the first sprite.
	Start int

	// RowHeight is the band height used to group sprites into rows; see
	// sequence.Sort for the meaning of zero and negative values.
	RowHeight int

	// NoiseThreshold is passed to extract.Options.
	NoiseThreshold int

	// Prefix starts every sprite name.
	Prefix string
}

// DefaultOptions returns the options used by the spriteslice command when no
// flags are given.
func DefaultOptions() Options {
	return Options{
		Start:          100,
		RowHeight:      sequence.DefaultRowHeight,
		NoiseThreshold: extract.DefaultNoiseThreshold,
		Prefix:         "smiley",
	}
}

// Sprite is one slice of a sheet.
type Sprite struct {
	Name      string
	Component extract.Component
	Image     *image.NRGBA
}

// Slice extracts, orders and renders all sprites of s. It does no I/O.
func Slice(s *sheet.Sheet, opts Options) []Sprite {
	res := extract.Extract(s.Image, s.Background, extract.Options{NoiseThreshold: opts.NoiseThreshold})
	glog.Infof("found %d components (%d discarded as noise)", len(res.Components), len(res.Noise))

	rowHeight := sequence.Sort(res.Components, opts.RowHeight)
	glog.V(1).Infof("ordered components using row height %d", rowHeight)

	sprites := make([]Sprite, len(res.Components))
	for i, c := range res.Components {
		sprites[i] = Sprite{
			Name:      paths.SpriteName(opts.Prefix, opts.Start+i),
			Component: c,
			Image:     render.Sprite(s.Image, c),
		}
	}
	return sprites
}

// Write stores sprites into outDir, numbered from opts.Start.
func Write(sprites []Sprite, outDir string, opts Options) (int, error) {
	images := make([]*image.NRGBA, len(sprites))
	for i, s := range sprites {
		images[i] = s.Image
	}
	w := &render.Writer{Dir: outDir, Prefix: opts.Prefix, Start: opts.Start}
	return w.WriteAll(images)
}

// SliceFile loads the sheet at in and writes its sprites into outDir. It
// returns the number of files written. Any error from loading the sheet
// matches sheet.ErrDecode.
func SliceFile(in, outDir string, opts Options) (int, error) {
	s, err := sheet.Load(in)
	if err != nil {
		return 0, err
	}
	return Write(Slice(s, opts), outDir, opts)
}
