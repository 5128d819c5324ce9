package main

import (
	"bytes"
	"flag"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	spriteslice "badc0de.net/pkg/go-spriteslice"
	"badc0de.net/pkg/go-spriteslice/ttesting"
)

// syncBuffer lets the access log be written from server goroutines.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestRouter(t *testing.T) {
	img := ttesting.NewSheetImage(100, 20, ttesting.White)
	ttesting.Fill(img, image.Rect(5, 5, 13, 13), ttesting.Black)
	in := filepath.Join(t.TempDir(), "sheet.png")
	f, err := os.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	log := &syncBuffer{}
	srv := httptest.NewServer(newRouter(in, spriteslice.DefaultOptions(), log))
	defer srv.Close()

	for _, tc := range []struct {
		path string
		want int
	}{
		{"/", http.StatusOK},
		{"/sprite/100.png", http.StatusOK},
		{"/sprite/101.png", http.StatusNotFound},
		{"/sprites.gif", http.StatusOK},
		{"/nothing", http.StatusNotFound},
	} {
		resp, err := http.Get(srv.URL + tc.path)
		if err != nil {
			t.Fatalf("GET %s: %v", tc.path, err)
		}
		resp.Body.Close()
		ttesting.AssertEqualInt(t, tc.path, resp.StatusCode, tc.want)
	}
	srv.Close()

	if !strings.Contains(log.String(), `"GET /sprite/100.png HTTP/1.1" 200`) {
		t.Errorf("access log lacks sprite request:\n%s", log.String())
	}
}

func TestNoiseThresholdHelp(t *testing.T) {
	if u := flag.Lookup("noise_threshold").Usage; !strings.Contains(u, "0 means 10") {
		t.Errorf("-noise_threshold help %q does not name the default", u)
	}
}
