package extract

import (
	"image"
	"image/color"
)

// Options tune Extract. The zero value selects the defaults.
type Options struct {
	// NoiseThreshold is the largest pixel count that is still discarded.
	// Zero means DefaultNoiseThreshold; a negative value keeps everything.
	NoiseThreshold int
}

func (o Options) threshold() int {
	if o.NoiseThreshold == 0 {
		return DefaultNoiseThreshold
	}
	return o.NoiseThreshold
}

// Result holds everything found during one sweep.
type Result struct {
	// Components are the retained regions in discovery (row-major) order.
	Components []Component

	// Noise are the regions that were too small to keep.
	Noise []Component

	// Visited is the number of pixels marked visited during the sweep. It
	// always equals the image's pixel count.
	Visited int
}

// Extract sweeps img once in row-major order and flood-fills every
// foreground region it meets. It never fails: a sheet with no foreground
// yields an empty result.
func Extract(img *image.NRGBA, bg color.NRGBA, opts Options) *Result {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	threshold := opts.threshold()

	visited := make([]bool, w*h)
	res := &Result{}
	mark := func(x, y int) {
		visited[y*w+x] = true
		res.Visited++
	}
	isBackground := func(x, y int) bool {
		return img.NRGBAAt(b.Min.X+x, b.Min.Y+y) == bg
	}

	var q queue
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if visited[y*w+x] {
				continue
			}
			mark(x, y)
			if isBackground(x, y) {
				continue
			}

			c := Component{MinX: x, MinY: y, MaxX: x, MaxY: y}
			q.reset()
			q.push(image.Pt(x, y))
			for q.len() > 0 {
				p := q.pop()
				c.Members = append(c.Members, p)
				c.MinX = min(c.MinX, p.X)
				c.MaxX = max(c.MaxX, p.X)
				c.MinY = min(c.MinY, p.Y)
				c.MaxY = max(c.MaxY, p.Y)

				for _, d := range neighbours {
					n := p.Add(d)
					if n.X < 0 || n.Y < 0 || n.X >= w || n.Y >= h || visited[n.Y*w+n.X] {
						continue
					}
					mark(n.X, n.Y)
					if !isBackground(n.X, n.Y) {
						q.push(n)
					}
				}
			}

			if c.Len() > threshold {
				res.Components = append(res.Components, c)
			} else {
				res.Noise = append(res.Noise, c)
			}
		}
	}
	return res
}

var neighbours = [4]image.Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
