// Package render turns extracted components into standalone sprites and
// writes them out as PNG files.
package render

import (
	"image"
	"image/png"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-spriteslice/extract"
	"badc0de.net/pkg/go-spriteslice/paths"
)

// Sprite returns a new image sized to c's bounding box. Member pixels are
// copied from img unchanged, alpha included; everything else inside the box
// is left fully transparent, so holes and concavities stay see-through.
func Sprite(img *image.NRGBA, c extract.Component) *image.NRGBA {
	dst := image.NewNRGBA(image.Rectangle{Max: c.Size()})
	origin := img.Rect.Min
	for _, p := range c.Members {
		dst.SetNRGBA(p.X-c.MinX, p.Y-c.MinY, img.NRGBAAt(origin.X+p.X, origin.Y+p.Y))
	}
	return dst
}

// Writer stores sprites as <Prefix>_<n>.png in Dir, numbering from Start.
type Writer struct {
	Dir    string
	Prefix string
	Start  int
}

// WriteAll creates Dir if needed and writes sprites in order. It stops at
// the first failure and reports how many files were written before it;
// those files are left in place.
func (w *Writer) WriteAll(sprites []*image.NRGBA) (int, error) {
	if err := paths.Ensure(w.Dir); err != nil {
		return 0, err
	}
	for i, s := range sprites {
		path := paths.Sprite(w.Dir, w.Prefix, w.Start+i)
		if err := writePNG(path, s); err != nil {
			return i, err
		}
		glog.V(2).Infof("wrote %s (%dx%d)", path, s.Rect.Dx(), s.Rect.Dy())
	}
	return len(sprites), nil
}

// WriteComponents renders each of cs from img and writes the results.
func (w *Writer) WriteComponents(img *image.NRGBA, cs []extract.Component) (int, error) {
	sprites := make([]*image.NRGBA, len(cs))
	for i, c := range cs {
		sprites[i] = Sprite(img, c)
	}
	return w.WriteAll(sprites)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", path)
	}
	return nil
}
