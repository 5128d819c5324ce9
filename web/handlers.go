// Package web serves the sprites of a single sheet over HTTP.
//
// The sheet is sliced on first use and the result kept for the lifetime of
// the handler; restart the server to pick up a changed sheet.
package web

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"html/template"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/vincent-petithory/dataurl"
	"golang.org/x/sync/singleflight"

	spriteslice "badc0de.net/pkg/go-spriteslice"
	"badc0de.net/pkg/go-spriteslice/datafiles"
	"badc0de.net/pkg/go-spriteslice/sheet"
)

var spriteTable = template.Must(template.New("spritetable").Parse(datafiles.SpriteTableHTML))

type Handler struct {
	sheetPath string
	opts      spriteslice.Options

	group singleflight.Group

	mu        sync.Mutex
	sprites   []spriteslice.Sprite
	modTime   time.Time
	signature uint64
}

// NewHandler constructs a web handler for the sheet at sheetPath. Nothing
// is read until the first request.
func NewHandler(sheetPath string, opts spriteslice.Options) *Handler {
	return &Handler{
		sheetPath: sheetPath,
		opts:      opts,
	}
}

// Sprites returns the sliced sheet, slicing it if this is the first call.
// Concurrent first calls share one slicing run. Failures are not cached.
func (h *Handler) Sprites() ([]spriteslice.Sprite, error) {
	h.mu.Lock()
	if h.sprites != nil {
		defer h.mu.Unlock()
		return h.sprites, nil
	}
	h.mu.Unlock()

	v, err, _ := h.group.Do(h.sheetPath, func() (interface{}, error) {
		h.mu.Lock()
		done := h.sprites
		h.mu.Unlock()
		if done != nil {
			return done, nil
		}

		s, err := sheet.Load(h.sheetPath)
		if err != nil {
			return nil, err
		}
		sprites := spriteslice.Slice(s, h.opts)
		if sprites == nil {
			sprites = []spriteslice.Sprite{}
		}

		h.mu.Lock()
		h.sprites = sprites
		h.signature = signature(s)
		if st, err := os.Stat(h.sheetPath); err == nil {
			h.modTime = st.ModTime()
		}
		h.mu.Unlock()
		glog.Infof("sliced %s into %d sprites", h.sheetPath, len(sprites))
		return sprites, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]spriteslice.Sprite), nil
}

// signature identifies the pixels of s, so that a rewritten sheet served
// after a restart does not match ETags handed out for the old one.
func signature(s *sheet.Sheet) uint64 {
	f := fnv.New64a()
	w, h := s.Size()
	fmt.Fprintf(f, "%dx%d:", w, h)
	f.Write(s.Image.Pix)
	return f.Sum64()
}

func (h *Handler) etag(what, mime string) string {
	generation := 2 // bump if the way we generate it changes
	h.mu.Lock()
	sig := h.signature
	h.mu.Unlock()
	o := h.opts
	return fmt.Sprintf(`W/"%s:%d:%016x:%d:%d:%d:%s:%s"`, what, generation, sig, o.Start, o.RowHeight, o.NoiseThreshold, o.Prefix, mime)
}

// notModified sets the caching headers and reports whether the client
// already has the current version.
func (h *Handler) notModified(w http.ResponseWriter, r *http.Request, etag string) bool {
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	h.mu.Lock()
	modTime := h.modTime
	h.mu.Unlock()
	if !modTime.IsZero() {
		w.Header().Set("Last-Modified", modTime.UTC().Format(http.TimeFormat))
	}
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}

func (h *Handler) spritesOrError(w http.ResponseWriter) ([]spriteslice.Sprite, bool) {
	sprites, err := h.Sprites()
	if err != nil {
		glog.Errorf("slicing %s: %v", h.sheetPath, err)
		if errors.Is(err, sheet.ErrDecode) {
			http.Error(w, "sheet could not be decoded", http.StatusNotFound)
		} else {
			http.Error(w, "sheet could not be sliced", http.StatusInternalServerError)
		}
		return nil, false
	}
	return sprites, true
}

func (h *Handler) spriteHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	idx, err := strconv.Atoi(vars["idx"])
	if err != nil {
		http.Error(w, "idx not a number", http.StatusBadRequest)
		return
	}

	sprites, ok := h.spritesOrError(w)
	if !ok {
		return
	}
	i := idx - h.opts.Start
	if i < 0 || i >= len(sprites) {
		http.Error(w, "no such sprite", http.StatusNotFound)
		return
	}

	mime := "image/png"
	if h.notModified(w, r, h.etag("sprite:"+strconv.Itoa(idx), mime)) {
		return
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, sprites[i].Image); err != nil {
		glog.Errorf("encoding sprite %d: %v", idx, err)
		http.Error(w, "sprite could not be encoded", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) gifHandler(w http.ResponseWriter, r *http.Request) {
	sprites, ok := h.spritesOrError(w)
	if !ok {
		return
	}
	if len(sprites) == 0 {
		http.Error(w, "sheet has no sprites", http.StatusNotFound)
		return
	}

	mime := "image/gif"
	if h.notModified(w, r, h.etag("sprites", mime)) {
		return
	}

	g := Animate(sprites, 50)
	buf := &bytes.Buffer{}
	if err := gif.EncodeAll(buf, g); err != nil {
		glog.Errorf("encoding gif: %v", err)
		http.Error(w, "gif could not be encoded", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Animate builds a GIF showing one sprite per frame, each centered on a
// canvas large enough for the biggest sprite. delay is in 100ths of a
// second.
func Animate(sprites []spriteslice.Sprite, delay int) *gif.GIF {
	var canvas image.Point
	for _, s := range sprites {
		canvas.X = max(canvas.X, s.Image.Rect.Dx())
		canvas.Y = max(canvas.Y, s.Image.Rect.Dy())
	}

	g := &gif.GIF{
		Config: image.Config{Width: canvas.X, Height: canvas.Y},
	}
	quantizer := quantize.MedianCutQuantizer{}
	for _, s := range sprites {
		// Index 0 is transparent so the untouched canvas stays see-through.
		pal := quantizer.Quantize(append(make(color.Palette, 0, 256), color.Transparent), s.Image)
		frame := image.NewPaletted(image.Rectangle{Max: canvas}, pal)

		size := s.Image.Rect.Size()
		at := canvas.Sub(size).Div(2)
		draw.Draw(frame, image.Rectangle{Min: at, Max: at.Add(size)}, s.Image, image.Point{}, draw.Src)

		g.Image = append(g.Image, frame)
		g.Delay = append(g.Delay, delay)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	g.BackgroundIndex = 0
	return g
}

type spriteRow struct {
	Number        int
	Name          string
	DataURL       template.URL
	MinX, MinY    int
	Width, Height int
	Pixels        int
}

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	sprites, ok := h.spritesOrError(w)
	if !ok {
		return
	}

	data := struct {
		Sheet   string
		Sprites []spriteRow
	}{Sheet: filepath.Base(h.sheetPath)}
	for i, s := range sprites {
		buf := &bytes.Buffer{}
		if err := png.Encode(buf, s.Image); err != nil {
			glog.Errorf("encoding sprite %s: %v", s.Name, err)
			continue
		}
		u, err := dataurl.New(buf.Bytes(), "image/png").MarshalText()
		if err != nil {
			glog.Errorf("encoding data url for %s: %v", s.Name, err)
			continue
		}
		size := s.Component.Size()
		data.Sprites = append(data.Sprites, spriteRow{
			Number:  h.opts.Start + i,
			Name:    s.Name,
			DataURL: template.URL(u),
			MinX:    s.Component.MinX,
			MinY:    s.Component.MinY,
			Width:   size.X,
			Height:  size.Y,
			Pixels:  s.Component.Len(),
		})
	}

	buf := &bytes.Buffer{}
	if err := spriteTable.Execute(buf, data); err != nil {
		glog.Errorf("rendering index: %v", err)
		http.Error(w, "index could not be rendered", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.indexHandler)
	r.HandleFunc("/sprite/{idx:[0-9]+}.png", h.spriteHandler)
	r.HandleFunc("/sprites.gif", h.gifHandler)
}
