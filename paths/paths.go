// Package paths names sprite output files and locates input sheets.
package paths

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// SpriteName returns the file name of the n-th sprite, e.g. "smiley_100.png".
func SpriteName(prefix string, n int) string {
	return prefix + "_" + strconv.Itoa(n) + ".png"
}

// Sprite returns the path of the n-th sprite inside dir.
func Sprite(dir, prefix string, n int) string {
	return filepath.Join(dir, SpriteName(prefix, n))
}

// Ensure creates dir and any missing parents. It is a no-op when dir exists.
func Ensure(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "creating output directory %q", dir)
	}
	return nil
}

// SearchDirs lists the directories Find looks in, in order: the working
// directory, then each entry of $SPRITESLICE_SHEETS.
func SearchDirs() []string {
	dirs := []string{"."}
	if env := os.Getenv("SPRITESLICE_SHEETS"); env != "" {
		dirs = append(dirs, filepath.SplitList(env)...)
	}
	return dirs
}

// Find returns the first existing path for fileName among SearchDirs, or ""
// if there is none.
func Find(fileName string) string {
	if filepath.IsAbs(fileName) {
		if _, err := os.Stat(fileName); err == nil {
			return fileName
		}
		return ""
	}
	for _, dir := range SearchDirs() {
		path := filepath.Join(dir, fileName)
		if st, err := os.Stat(path); err == nil && !st.IsDir() {
			glog.V(1).Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}
	return ""
}

// SetupFilePathFlag registers a string flag whose default is whatever Find
// returns for fileName.
func SetupFilePathFlag(fileName, flagName string, flagPtr *string) {
	flag.StringVar(flagPtr, flagName, Find(fileName), "Path to "+fileName)
}
