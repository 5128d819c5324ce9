// Package gridscan reports on how a sprite sheet is laid out: which rows and
// columns are entirely background, and whether the remaining bands of
// content repeat at a regular pitch.
//
// It is a diagnostic. Nothing in the slicing pipeline depends on it.
package gridscan

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"

	"badc0de.net/pkg/go-spriteslice/sheet"
)

// SampleSize is how many indices Report.WriteTo prints from each end of
// the empty row and column lists.
const SampleSize = 10

// Band is a run of consecutive rows (or columns) with content. End is
// exclusive.
type Band struct {
	Start, End int
}

// Report is the result of Scan.
type Report struct {
	Format        string
	Width, Height int
	Mode          string
	Background    color.NRGBA

	// EmptyRows and EmptyCols hold, in ascending order, the indices of rows
	// and columns in which every pixel equals Background.
	EmptyRows []int
	EmptyCols []int

	// RowBands and ColBands are the spans between the empty rows and columns.
	RowBands []Band
	ColBands []Band

	// Dominant is the heaviest color cluster of the sheet and DominantWeight
	// its share of the pixels. DominantDistance is its CIE76 distance from
	// Background; a large value hints that (0,0) is not background.
	Dominant         color.RGBA
	DominantWeight   float64
	DominantDistance float64
}

// Scan inspects every row and column of s.
func Scan(s *sheet.Sheet) *Report {
	w, h := s.Size()
	r := &Report{
		Format:     s.Format,
		Width:      w,
		Height:     h,
		Mode:       s.Mode,
		Background: s.Background,
	}

	for y := 0; y < h; y++ {
		empty := true
		for x := 0; x < w && empty; x++ {
			empty = s.Image.NRGBAAt(x, y) == s.Background
		}
		if empty {
			r.EmptyRows = append(r.EmptyRows, y)
		}
	}
	for x := 0; x < w; x++ {
		empty := true
		for y := 0; y < h && empty; y++ {
			empty = s.Image.NRGBAAt(x, y) == s.Background
		}
		if empty {
			r.EmptyCols = append(r.EmptyCols, x)
		}
	}
	r.RowBands = Bands(r.EmptyRows, h)
	r.ColBands = Bands(r.EmptyCols, w)

	if weighted := dominantcolor.FindWeight(clusterable(s.Image), 3); len(weighted) > 0 {
		r.Dominant = weighted[0].RGBA
		r.DominantWeight = weighted[0].Weight
		r.DominantDistance = distance(r.Dominant, r.Background)
	}
	return r
}

// clusterSide is the side dominantcolor scales the longer edge down to.
const clusterSide = 256

// clusterable returns img, or a squashed copy of it when scaling the longer
// edge to clusterSide would leave the shorter one at zero pixels. A single
// row strip of sprites is the usual case.
func clusterable(img image.Image) image.Image {
	b := img.Bounds()
	long, short := max(b.Dx(), b.Dy()), min(b.Dx(), b.Dy())
	if short == 0 || short*clusterSide/long >= 1 {
		return img
	}
	w, h := uint(min(b.Dx(), clusterSide)), uint(min(b.Dy(), clusterSide))
	return resize.Resize(w, h, img, resize.NearestNeighbor)
}

func distance(a, b color.Color) float64 {
	ca, _ := colorful.MakeColor(opaque(a))
	cb, _ := colorful.MakeColor(opaque(b))
	return ca.DistanceCIE76(cb)
}

// opaque drops alpha; colorful refuses fully transparent colors.
func opaque(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xFF
	return n
}

// Bands returns the maximal runs of indices in [0,n) that are not listed in
// empty. empty must be sorted ascending.
func Bands(empty []int, n int) []Band {
	var bands []Band
	start := 0
	for _, e := range empty {
		if e > start {
			bands = append(bands, Band{start, e})
		}
		start = e + 1
	}
	if start < n {
		bands = append(bands, Band{start, n})
	}
	return bands
}

// Pitch reports the distance between the starts of consecutive bands when
// it is the same for all of them. At least two bands are required.
func Pitch(bands []Band) (int, bool) {
	if len(bands) < 2 {
		return 0, false
	}
	pitch := bands[1].Start - bands[0].Start
	for i := 2; i < len(bands); i++ {
		if bands[i].Start-bands[i-1].Start != pitch {
			return 0, false
		}
	}
	return pitch, true
}

// Sample returns up to n leading and n trailing entries of idx.
func Sample(idx []int, n int) (head, tail []int) {
	if len(idx) <= n {
		return idx, idx
	}
	return idx[:n], idx[len(idx)-n:]
}

// WriteTo prints the report in a human-readable form.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	b := &bytes.Buffer{}
	bg := r.Background
	fmt.Fprintf(b, "Format: %s, Size: (%d, %d), Mode: %s\n", r.Format, r.Width, r.Height, r.Mode)
	fmt.Fprintf(b, "Background color: (%d, %d, %d, %d)\n", bg.R, bg.G, bg.B, bg.A)
	fmt.Fprintf(b, "Empty rows count: %d\n", len(r.EmptyRows))
	fmt.Fprintf(b, "Empty cols count: %d\n", len(r.EmptyCols))
	if len(r.EmptyRows) > 0 {
		head, tail := Sample(r.EmptyRows, SampleSize)
		fmt.Fprintf(b, "Sample empty rows: %v ... %v\n", head, tail)
	}
	if len(r.EmptyCols) > 0 {
		head, tail := Sample(r.EmptyCols, SampleSize)
		fmt.Fprintf(b, "Sample empty cols: %v ... %v\n", head, tail)
	}
	writeBands(b, "Row", r.RowBands)
	writeBands(b, "Col", r.ColBands)

	dom, _ := colorful.MakeColor(opaque(r.Dominant))
	fmt.Fprintf(b, "Dominant color: %s (weight %.2f, distance from background %.2f)\n", dom.Hex(), r.DominantWeight, r.DominantDistance)

	n, err := w.Write(b.Bytes())
	return int64(n), err
}

func writeBands(b *bytes.Buffer, what string, bands []Band) {
	fmt.Fprintf(b, "%s bands: %d", what, len(bands))
	if pitch, ok := Pitch(bands); ok {
		fmt.Fprintf(b, ", regular pitch %d", pitch)
	}
	fmt.Fprintln(b)
}
