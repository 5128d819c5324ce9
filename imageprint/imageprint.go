// Package imageprint previews images on a terminal.
//
// It is meant for eyeballing sprites right after slicing; output is best
// effort and depends on what the terminal understands.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"

	"github.com/gookit/color"
	"github.com/pkg/errors"
)

// Mode selects how Print draws an image.
type Mode int

const (
	None Mode = iota
	TrueColor
	Color256
	NoColor
	ITerm
	RasTerm
)

var modeNames = map[string]Mode{
	"none":    None,
	"24bit":   TrueColor,
	"256":     Color256,
	"nocolor": NoColor,
	"iterm":   ITerm,
	"rasterm": RasTerm,
}

func (m Mode) String() string {
	for name, mode := range modeNames {
		if mode == m {
			return name
		}
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a flag value such as "24bit" to a Mode.
func ParseMode(s string) (Mode, error) {
	if m, ok := modeNames[s]; ok {
		return m, nil
	}
	return None, errors.Errorf("unknown preview mode %q", s)
}

// Print draws img on w in the given mode. name is used as the file name
// hint for iTerm2.
func Print(w io.Writer, img image.Image, mode Mode, name string) error {
	switch mode {
	case None:
		return nil
	case TrueColor:
		return Print24bit(w, img, true)
	case Color256:
		return Print256Color(w, img, true)
	case NoColor:
		return PrintNoColor(w, img, false)
	case ITerm:
		return PrintITerm(w, img, name)
	case RasTerm:
		return PrintRasTerm(w, img)
	}
	return errors.Errorf("unknown preview mode %d", int(mode))
}

type style int

const (
	styleTrueColor style = iota
	style256
	styleNone
)

// shade writes two cells for one pixel.
func shade(w io.Writer, col ic.Color, st style, blanks bool) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		fmt.Fprint(w, "\x1b[0m  ")
		return
	}

	cell := "  "
	if !blanks {
		a := ((cR + cG + cB) / 3) >> 8
		switch {
		case a < 32:
			cell = ".."
		case a < 64:
			cell = "--"
		case a < 128:
			cell = "=="
		default:
			cell = "##"
		}
	}

	r, g, b := uint8(cR>>8), uint8(cG>>8), uint8(cB>>8)
	switch st {
	case styleNone:
		fmt.Fprint(w, cell)
	case style256:
		fmt.Fprint(w, color.RGB(r, g, b, true).Sprint(cell))
	default:
		fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm%s\x1b[0m", r, g, b, cell)
	}
}

func printCells(w io.Writer, i image.Image, st style, blanks bool) error {
	bw := &errWriter{w: w}
	for y := i.Bounds().Min.Y; y < i.Bounds().Max.Y; y++ {
		for x := i.Bounds().Min.X; x < i.Bounds().Max.X; x++ {
			shade(bw, i.At(x, y), st, blanks)
		}
		if st != styleNone {
			fmt.Fprint(bw, "\x1b[0m")
		}
		fmt.Fprint(bw, "\n")
	}
	return bw.err
}

// Print256Color draws an image using 256color'd cells.
func Print256Color(w io.Writer, i image.Image, blanks bool) error {
	return printCells(w, i, style256, blanks)
}

// Print24bit draws an image using 24bit color escape sequences by changing background.
func Print24bit(w io.Writer, i image.Image, blanks bool) error {
	return printCells(w, i, styleTrueColor, blanks)
}

// PrintNoColor draws an image without using color escape sequences. Only makes sense with blanks=false.
func PrintNoColor(w io.Writer, i image.Image, blanks bool) error {
	return printCells(w, i, styleNone, blanks)
}

// PrintITerm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func PrintITerm(w io.Writer, i image.Image, fn string) error {
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	if err := png.Encode(bEnc, i); err != nil {
		return errors.Wrap(err, "encoding preview")
	}
	bEnc.Close()
	_, err := fmt.Fprintf(w, "\n\033]1337;File=name=%s;inline=1;size=%d;width=%dpx;height=%dpx:%s\a\n", name, b.Len(), i.Bounds().Dx(), i.Bounds().Dy(), b.String())
	return err
}

// errWriter remembers the first write error so that the cell loops don't
// have to check every call.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
