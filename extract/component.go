// Package extract finds the connected foreground regions of a sprite sheet.
//
// A pixel is foreground when it differs in any channel from the sheet's
// background color. Foreground pixels sharing an edge (4-connectivity)
// belong to the same component. Regions of NoiseThreshold pixels or fewer are
// treated as noise.
package extract

import (
	"image"
)

// DefaultNoiseThreshold is the largest region, in pixels, that is dropped as
// noise.
const DefaultNoiseThreshold = 10

// Component is one connected foreground region.
type Component struct {
	// Members lists every pixel of the region in the order the flood fill
	// dequeued them.
	Members []image.Point

	// Inclusive bounding box.
	MinX, MinY, MaxX, MaxY int
}

// Bounds returns the component's bounding box as a half-open rectangle,
// suitable for use with the image packages.
func (c Component) Bounds() image.Rectangle {
	return image.Rect(c.MinX, c.MinY, c.MaxX+1, c.MaxY+1)
}

// Size is the width and height of the bounding box.
func (c Component) Size() image.Point {
	return image.Pt(c.MaxX-c.MinX+1, c.MaxY-c.MinY+1)
}

// Len returns the number of member pixels.
func (c Component) Len() int {
	return len(c.Members)
}
