package main

import (
	"bytes"
	"flag"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	spriteslice "badc0de.net/pkg/go-spriteslice"
	"badc0de.net/pkg/go-spriteslice/ttesting"
)

func TestRunUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"sheet.png"}} {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		ttesting.AssertEqualInt(t, "exit status", run(args, spriteslice.DefaultOptions(), stdout, stderr), 1)
		ttesting.AssertEqualString(t, "usage", stderr.String(), usage)
		ttesting.AssertEqualInt(t, "stdout", stdout.Len(), 0)
	}
}

func TestRunSlicesSheet(t *testing.T) {
	img := ttesting.NewSheetImage(100, 20, ttesting.White)
	ttesting.Fill(img, image.Rect(5, 5, 13, 13), ttesting.Black)
	ttesting.Fill(img, image.Rect(50, 5, 58, 13), ttesting.Black)
	dir := t.TempDir()
	in := filepath.Join(dir, "sheet.png")
	f, err := os.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()
	outDir := filepath.Join(dir, "out")

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	ttesting.AssertEqualInt(t, "exit status", run([]string{in, outDir}, spriteslice.DefaultOptions(), stdout, stderr), 0)
	for _, want := range []string{
		"Background color: (255, 255, 255, 255)\n",
		"Found 2 components.\n",
		"Saved 2 emojis to " + outDir + "\n",
	} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("output lacks %q:\n%s", want, stdout.String())
		}
	}
	for _, name := range []string{"smiley_100.png", "smiley_101.png"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestRunDecodeFailure(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	ttesting.AssertEqualInt(t, "exit status", run([]string{filepath.Join(dir, "missing.png"), outDir}, spriteslice.DefaultOptions(), stdout, stderr), 1)
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Errorf("output directory created after decode failure")
	}
}

func TestNoiseThresholdHelp(t *testing.T) {
	f := flag.Lookup("noise_threshold")
	if f == nil {
		t.Fatal("no -noise_threshold flag")
	}
	for _, want := range []string{"0 means 10", "negative value keeps every region"} {
		if !strings.Contains(f.Usage, want) {
			t.Errorf("-noise_threshold help %q lacks %q", f.Usage, want)
		}
	}
}
