package paths

import (
	"os"
	"path/filepath"
	"testing"

	"badc0de.net/pkg/go-spriteslice/ttesting"
)

func TestSpriteName(t *testing.T) {
	ttesting.AssertEqualString(t, "default prefix", SpriteName("smiley", 100), "smiley_100.png")
	ttesting.AssertEqualString(t, "path", Sprite("out", "icon", 7), filepath.Join("out", "icon_7.png"))
}

func TestEnsureIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	for i := 0; i < 2; i++ {
		if err := Ensure(dir); err != nil {
			t.Fatalf("Ensure #%d: %v", i, err)
		}
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		t.Errorf("%s not created: %v", dir, err)
	}
}

func TestEnsureOverFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := Ensure(filepath.Join(file, "sub")); err == nil {
		t.Errorf("Ensure below a regular file succeeded")
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sheet.png"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SPRITESLICE_SHEETS", dir)

	ttesting.AssertEqualString(t, "found in env dir", Find("sheet.png"), filepath.Join(dir, "sheet.png"))
	ttesting.AssertEqualString(t, "missing", Find("nope.png"), "")
	ttesting.AssertEqualString(t, "absolute", Find(filepath.Join(dir, "sheet.png")), filepath.Join(dir, "sheet.png"))
}
