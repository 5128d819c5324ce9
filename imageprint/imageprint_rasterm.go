//go:build !windows

package imageprint

import (
	"fmt"
	"image"
	"io"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
)

// PrintRasTerm draws an image using the RasTerm library, picking kitty,
// iTerm2 or sixel output depending on the terminal. Nothing is written on
// terminals that support none of them.
func PrintRasTerm(w io.Writer, i image.Image) error {
	if rasterm.IsTermKitty() {
		if err := (rasterm.Settings{}).KittyWriteImage(w, i); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}
	if rasterm.IsTermItermWez() {
		if err := (rasterm.Settings{}).ItermWriteImage(w, i); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		if err := (rasterm.Settings{}).SixelWriteImage(w, Paletted(i, 64)); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}
	return nil
}

// Paletted quantizes i down to at most n colors.
func Paletted(i image.Image, n int) *image.Paletted {
	p := image.NewPaletted(i.Bounds(), nil)
	quantizer := gogif.MedianCutQuantizer{NumColor: n}
	quantizer.Quantize(p, i.Bounds(), i, i.Bounds().Min)
	return p
}
