package imageprint

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"badc0de.net/pkg/go-spriteslice/ttesting"
)

func sprite() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, ttesting.White)
	img.SetNRGBA(1, 0, ttesting.Black)
	return img
}

func TestPrintNoColor(t *testing.T) {
	b := &bytes.Buffer{}
	if err := PrintNoColor(b, sprite(), false); err != nil {
		t.Fatal(err)
	}
	want := "##..\x1b[0m  \n\x1b[0m  \x1b[0m  \x1b[0m  \n"
	ttesting.AssertEqualString(t, "output", b.String(), want)
}

func TestPrint24bit(t *testing.T) {
	b := &bytes.Buffer{}
	if err := Print24bit(b, sprite(), true); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), "\x1b[48;2;255;255;255m  \x1b[0m\x1b[48;2;0;0;0m  ") {
		t.Errorf("unexpected output %q", b.String())
	}
	ttesting.AssertEqualInt(t, "lines", strings.Count(b.String(), "\n"), 2)
}

func TestPrintITerm(t *testing.T) {
	b := &bytes.Buffer{}
	if err := PrintITerm(b, sprite(), "smiley_100.png"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "\033]1337;File=name=c21pbGV5XzEwMC5wbmc=;inline=1;") {
		t.Errorf("unexpected output %q", b.String())
	}
	if !strings.Contains(b.String(), "width=3px;height=2px:") {
		t.Errorf("size missing from %q", b.String())
	}
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"none", "24bit", "256", "nocolor", "iterm", "rasterm"} {
		m, err := ParseMode(name)
		if err != nil {
			t.Errorf("ParseMode(%q): %v", name, err)
			continue
		}
		ttesting.AssertEqualString(t, name, m.String(), name)
	}
	if _, err := ParseMode("sixel"); err == nil {
		t.Errorf("ParseMode accepted an unknown mode")
	}
}

func TestPrintNone(t *testing.T) {
	b := &bytes.Buffer{}
	if err := Print(b, sprite(), None, "x.png"); err != nil {
		t.Fatal(err)
	}
	ttesting.AssertEqualInt(t, "bytes", b.Len(), 0)
}
