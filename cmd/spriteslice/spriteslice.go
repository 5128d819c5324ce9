// Command spriteslice cuts every sprite out of a sprite sheet and stores
// each one as its own transparent PNG.
//
//	spriteslice [flags] <image_path> <output_dir>
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	spriteslice "badc0de.net/pkg/go-spriteslice"
	"badc0de.net/pkg/go-spriteslice/extract"
	"badc0de.net/pkg/go-spriteslice/imageprint"
	"badc0de.net/pkg/go-spriteslice/sheet"
)

var (
	start           = flag.Int("start", 100, "number given to the first sprite")
	rowHeight       = flag.Int("row_height", 20, "height of the bands used to group sprites into rows; 0 estimates it from the sprites")
	noiseThreshold  = flag.Int("noise_threshold", extract.DefaultNoiseThreshold, fmt.Sprintf("regions with this many pixels or fewer are dropped; 0 means %d, a negative value keeps every region", extract.DefaultNoiseThreshold))
	prefix          = flag.String("prefix", "smiley", "file name prefix for sprites")
	checkBackground = flag.Bool("check_background", true, "warn when the color at (0,0) is not the most common border color")
	preview         = flag.String("preview", "none", "print sprites on the terminal: none, 24bit, 256, nocolor, iterm or rasterm")
	downsize        = flag.Bool("downsize", false, "shrink previews to fit the terminal")
)

const usage = "Usage: spriteslice [flags] <image_path> <output_dir>\n"

func options() spriteslice.Options {
	return spriteslice.Options{
		Start:          *start,
		RowHeight:      *rowHeight,
		NoiseThreshold: *noiseThreshold,
		Prefix:         *prefix,
	}
}

// run slices the sheet named in args and returns the process exit status.
func run(args []string, opts spriteslice.Options, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		fmt.Fprint(stderr, usage)
		return 1
	}
	in, outDir := args[0], args[1]

	mode, err := imageprint.ParseMode(*preview)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	s, err := sheet.Load(in)
	if err != nil {
		glog.Errorf("%v", err)
		return 1
	}
	bg := s.Background
	fmt.Fprintf(stdout, "Background color: (%d, %d, %d, %d)\n", bg.R, bg.G, bg.B, bg.A)
	if *checkBackground {
		if err := s.CheckBackground(); err != nil {
			glog.Warningf("%s: %v", in, err)
		}
	}

	sprites := spriteslice.Slice(s, opts)
	fmt.Fprintf(stdout, "Found %d components.\n", len(sprites))

	n, err := spriteslice.Write(sprites, outDir, opts)
	if err != nil {
		glog.Errorf("wrote %d of %d sprites: %v", n, len(sprites), err)
		return 1
	}
	fmt.Fprintf(stdout, "Saved %d emojis to %s\n", n, outDir)

	if mode != imageprint.None {
		for _, sp := range sprites {
			fmt.Fprintln(stdout, sp.Name)
			out(stdout, sp.Image, mode, sp.Name)
		}
	}
	return 0
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}
	os.Exit(run(flag.Args(), options(), os.Stdout, os.Stderr))
}
