// Command sheetinfo prints a short report on a sprite sheet's layout:
// format, size, sampled background, and which rows and columns contain
// nothing but background. It writes no files.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-spriteslice/gridscan"
	"badc0de.net/pkg/go-spriteslice/sheet"
)

const usage = "Usage: sheetinfo [flags] <image_path>\n"

// run reports on the sheet named in args and returns the process exit
// status.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return 1
	}

	s, err := sheet.Load(args[0])
	if err != nil {
		glog.Errorf("%v", err)
		return 1
	}
	if _, err := gridscan.Scan(s).WriteTo(stdout); err != nil {
		glog.Errorf("writing report: %v", err)
		return 1
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

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	os.Exit(run(flag.Args(), os.Stdout, os.Stderr))
}
