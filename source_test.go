package coverart

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wbrown/coverart/imageutil"
)

func encodePNG(t *testing.T, buf *imageutil.PixelBuffer) []byte {
	t.Helper()
	var out bytes.Buffer
	if err := png.Encode(&out, buf); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return out.Bytes()
}

// newImageServer serves a PNG at /cover.png, garbage at /garbage and 404
// everywhere else.
func newImageServer(t *testing.T, buf *imageutil.PixelBuffer) *httptest.Server {
	t.Helper()
	data := encodePNG(t, buf)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cover.png":
			if r.Header.Get("User-Agent") == "" {
				http.Error(w, "missing user agent", http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "image/png")
			w.Write(data)
		case "/garbage":
			w.Write([]byte("definitely not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSourceFor(t *testing.T) {
	if _, ok := SourceFor("https://example.com/a.png").(*URLSource); !ok {
		t.Error("https location should use URLSource")
	}
	if _, ok := SourceFor("http://example.com/a.png").(*URLSource); !ok {
		t.Error("http location should use URLSource")
	}
	if _, ok := SourceFor("covers/a.png").(*FileSource); !ok {
		t.Error("Plain path should use FileSource")
	}
}

func TestURLSourceAcquire(t *testing.T) {
	want := imageutil.CreateColorBarsImage(32, 16)
	srv := newImageServer(t, want)

	src := &URLSource{URL: srv.URL + "/cover.png", Client: srv.Client()}
	buf, err := src.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if !imageutil.ImagesEqual(want, buf) {
		t.Error("Fetched image does not match the served image")
	}
}

func TestURLSourceFailures(t *testing.T) {
	srv := newImageServer(t, imageutil.CreateGradientImage(8, 8))

	for _, path := range []string{"/missing.png", "/garbage"} {
		t.Run(strings.TrimPrefix(path, "/"), func(t *testing.T) {
			src := &URLSource{URL: srv.URL + path, Client: srv.Client()}
			buf, err := src.Acquire(context.Background())
			var acqErr *AcquisitionError
			if !errors.As(err, &acqErr) {
				t.Fatalf("Expected *AcquisitionError, got %v", err)
			}
			if buf != nil {
				t.Error("Failed acquisition should not return a buffer")
			}
			if !IsNoCover(err) {
				t.Error("Acquisition errors should map to the no-cover outcome")
			}
		})
	}
}

func TestURLSourceCancelled(t *testing.T) {
	srv := newImageServer(t, imageutil.CreateGradientImage(8, 8))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &URLSource{URL: srv.URL + "/cover.png", Client: srv.Client()}
	_, err := src.Acquire(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	want := imageutil.CreateCheckerboardImage(20, 10, 5)
	path := filepath.Join(dir, "cover.png")
	if err := os.WriteFile(path, encodePNG(t, want), 0644); err != nil {
		t.Fatalf("Failed to write image: %v", err)
	}

	buf, err := (&FileSource{Path: path}).Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if !imageutil.ImagesEqual(want, buf) {
		t.Error("Loaded image does not match the written image")
	}

	_, err = (&FileSource{Path: filepath.Join(dir, "missing.png")}).Acquire(context.Background())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a wrapped not-exist error, got %v", err)
	}

	empty := filepath.Join(dir, "empty.png")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatalf("Failed to write empty file: %v", err)
	}
	_, err = (&FileSource{Path: empty}).Acquire(context.Background())
	if !errors.Is(err, ErrNoImage) {
		t.Errorf("Expected ErrNoImage for an empty file, got %v", err)
	}
}

func TestReaderSource(t *testing.T) {
	want := imageutil.CreateGradientImage(12, 6)
	src := &ReaderSource{Reader: bytes.NewReader(encodePNG(t, want))}
	buf, err := src.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if !imageutil.ImagesEqual(want, buf) {
		t.Error("Decoded image does not match")
	}
	if src.String() != "reader" {
		t.Errorf("Unexpected default name %q", src.String())
	}

	_, err = (&ReaderSource{Name: "junk", Reader: strings.NewReader("junk")}).Acquire(context.Background())
	var acqErr *AcquisitionError
	if !errors.As(err, &acqErr) || acqErr.Source != "junk" {
		t.Errorf("Expected *AcquisitionError naming the source, got %v", err)
	}
}
