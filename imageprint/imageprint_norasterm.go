//go:build windows

package imageprint

import (
	"image"
	"io"

	"github.com/pkg/errors"
)

// ErrRasTermUnsupported is returned by PrintRasTerm where rasterm is not
// built in.
var ErrRasTermUnsupported = errors.New("rasterm preview not supported on windows")

func PrintRasTerm(w io.Writer, i image.Image) error {
	return ErrRasTermUnsupported
}
