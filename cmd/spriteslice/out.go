package main

import (
	"image"
	"io"

	"github.com/golang/glog"
	"github.com/nfnt/resize"

	"badc0de.net/pkg/go-spriteslice/imageprint"
)

func out(w io.Writer, img image.Image, mode imageprint.Mode, name string) {
	if *downsize {
		termSize, err := GetTermSize()
		if err == nil {
			if termSize.WSXPixel != 0 && termSize.WSYPixel != 0 && (mode == imageprint.RasTerm || mode == imageprint.ITerm) {
				// Real images can use the pixel size; cell modes spend two columns per pixel.
				img = resize.Thumbnail(termSize.WSXPixel/2, termSize.WSYPixel/2, img, resize.NearestNeighbor)
			} else {
				img = resize.Thumbnail(termSize.WSCol/2, termSize.WSRow, img, resize.NearestNeighbor)
			}
		} else {
			glog.V(1).Infof("not downsizing %s: %v", name, err)
		}
	}

	if err := imageprint.Print(w, img, mode, name); err != nil {
		glog.Errorf("previewing %s: %v", name, err)
	}
}
