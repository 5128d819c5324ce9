// Command spriteweb serves the sprites of one sheet over HTTP.
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	spriteslice "badc0de.net/pkg/go-spriteslice"
	"badc0de.net/pkg/go-spriteslice/extract"
	"badc0de.net/pkg/go-spriteslice/paths"
	"badc0de.net/pkg/go-spriteslice/web"
)

var (
	listenAddress  = flag.String("listen_address", ":8080", "http listen address for spriteweb")
	start          = flag.Int("start", 100, "number given to the first sprite")
	rowHeight      = flag.Int("row_height", 20, "height of the bands used to group sprites into rows; 0 estimates it from the sprites")
	noiseThreshold = flag.Int("noise_threshold", extract.DefaultNoiseThreshold, fmt.Sprintf("regions with this many pixels or fewer are dropped; 0 means %d, a negative value keeps every region", extract.DefaultNoiseThreshold))
	prefix         = flag.String("prefix", "smiley", "file name prefix for sprites")

	sheetPath string
)

// newRouter returns the sprite routes for sheetPath wrapped in an access
// log written to logOut.
func newRouter(sheetPath string, opts spriteslice.Options, logOut io.Writer) http.Handler {
	h := web.NewHandler(sheetPath, opts)
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	return handlers.CombinedLoggingHandler(logOut, r)
}

func main() {
	paths.SetupFilePathFlag("sheet.png", "sheet", &sheetPath)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if sheetPath == "" {
		glog.Exitf("no sheet found; pass -sheet")
	}

	r := newRouter(sheetPath, spriteslice.Options{
		Start:          *start,
		RowHeight:      *rowHeight,
		NoiseThreshold: *noiseThreshold,
		Prefix:         *prefix,
	}, os.Stderr)

	glog.Infof("serving %s on %s", sheetPath, *listenAddress)
	glog.Fatal(http.ListenAndServe(*listenAddress, r))
}
