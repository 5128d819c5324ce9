// Package sheet loads sprite sheets into an addressable, non-premultiplied
// RGBA grid and samples the sheet's background color.
//
// The background is always taken from the pixel at (0,0). Sheets whose
// author did not leave a background-only pixel there will be sliced
// incorrectly; CheckBackground can be used to detect that case, but nothing
// in this package acts on it.
package sheet

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"

	// Formats a sheet may be stored in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pkg/errors"
)

var (
	// ErrDecode is matched (with errors.Is) by every error returned from
	// Load and Decode.
	ErrDecode = errors.New("sheet: cannot decode image")

	// ErrEmpty is reported when the decoded image has no pixels.
	ErrEmpty = errors.New("image has no pixels")

	// ErrBackgroundMismatch is returned by CheckBackground.
	ErrBackgroundMismatch = errors.New("sampled background is not the most frequent border color")
)

// DecodeError describes a sheet that could not be opened or parsed as a
// supported raster format.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return "sheet: could not decode image: " + e.Err.Error()
	}
	return "sheet: could not decode " + e.Path + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Cause implements the github.com/pkg/errors causer interface.
func (e *DecodeError) Cause() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// Sheet is a decoded sprite sheet.
type Sheet struct {
	// Image is the sheet converted to NRGBA with its origin at (0,0). It
	// must not be modified once the sheet has been constructed.
	Image *image.NRGBA

	// Format is the name of the codec that decoded the sheet ("png", "gif",
	// ...), or whatever was passed to FromImage.
	Format string

	// Mode names the color model of the image before conversion.
	Mode string

	// Background is the color sampled at (0,0).
	Background color.NRGBA
}

// Load opens the file at path and decodes it.
func Load(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		if de, ok := err.(*DecodeError); ok {
			de.Path = path
		}
		return nil, err
	}
	return s, nil
}

// Decode reads a sheet in any of the registered image formats.
func Decode(r io.Reader) (*Sheet, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if img.Bounds().Empty() {
		return nil, &DecodeError{Err: ErrEmpty}
	}
	return FromImage(img, format), nil
}

// FromImage builds a sheet out of an already decoded image. The pixels are
// copied, so img may be reused by the caller.
func FromImage(img image.Image, format string) *Sheet {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	s := &Sheet{
		Image:  dst,
		Format: format,
		Mode:   Mode(img),
	}
	if !dst.Bounds().Empty() {
		s.Background = dst.NRGBAAt(0, 0)
	}
	return s
}

// Size returns the sheet's width and height.
func (s *Sheet) Size() (width, height int) {
	return s.Image.Rect.Dx(), s.Image.Rect.Dy()
}

// Mode returns a short name for the color model used by img.
func Mode(img image.Image) string {
	switch img.(type) {
	case *image.RGBA:
		return "RGBA"
	case *image.NRGBA:
		return "NRGBA"
	case *image.RGBA64:
		return "RGBA64"
	case *image.NRGBA64:
		return "NRGBA64"
	case *image.Paletted:
		return "P"
	case *image.Gray:
		return "L"
	case *image.Gray16:
		return "L16"
	case *image.Alpha:
		return "A"
	case *image.Alpha16:
		return "A16"
	case *image.YCbCr:
		return "YCbCr"
	case *image.NYCbCrA:
		return "YCbCrA"
	case *image.CMYK:
		return "CMYK"
	default:
		return "unknown"
	}
}
