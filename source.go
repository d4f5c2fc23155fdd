package coverart

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/wbrown/coverart/imageutil"
)

const (
	// MaxImageBytes caps how much a source will read before giving up.
	MaxImageBytes = 20 << 20

	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "coverart/1.0"
)

// Source supplies a decoded bitmap. Every failure is an
// *AcquisitionError.
type Source interface {
	Acquire(ctx context.Context) (*imageutil.PixelBuffer, error)
	String() string
}

// SourceFor returns a URLSource for http(s) locations and a FileSource
// for anything else.
func SourceFor(location string) Source {
	if isHTTP(location) {
		return &URLSource{URL: location}
	}
	return &FileSource{Path: location}
}

func isHTTP(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// URLSource fetches an image over HTTP.
type URLSource struct {
	URL       string
	Client    *http.Client
	UserAgent string
}

func (s *URLSource) String() string {
	return s.URL
}

// Acquire performs a GET and decodes the body. Any non-2xx status is an
// acquisition failure.
func (s *URLSource) Acquire(ctx context.Context) (*imageutil.PixelBuffer, error) {
	data, err := s.fetch(ctx)
	if err != nil {
		return nil, &AcquisitionError{Source: s.URL, Err: err}
	}
	return decodeBytes(s.URL, data)
}

func (s *URLSource) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	userAgent := s.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "image/webp,image/png,image/jpeg,image/*;q=0.8,*/*;q=0.5")

	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("http status %s", resp.Status)
	}
	return readLimited(resp.Body)
}

// FileSource reads an image from the local filesystem.
type FileSource struct {
	Path string
}

func (s *FileSource) String() string {
	return s.Path
}

// Acquire reads and decodes the file.
func (s *FileSource) Acquire(ctx context.Context) (*imageutil.PixelBuffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, &AcquisitionError{Source: s.Path, Err: err}
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, &AcquisitionError{Source: s.Path, Err: err}
	}
	defer f.Close()

	data, err := readLimited(f)
	if err != nil {
		return nil, &AcquisitionError{Source: s.Path, Err: err}
	}
	return decodeBytes(s.Path, data)
}

// ReaderSource decodes an image from an arbitrary stream.
type ReaderSource struct {
	Name   string
	Reader io.Reader
}

func (s *ReaderSource) String() string {
	if s.Name == "" {
		return "reader"
	}
	return s.Name
}

// Acquire reads the stream to its end and decodes it.
func (s *ReaderSource) Acquire(ctx context.Context) (*imageutil.PixelBuffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, &AcquisitionError{Source: s.String(), Err: err}
	}
	data, err := readLimited(s.Reader)
	if err != nil {
		return nil, &AcquisitionError{Source: s.String(), Err: err}
	}
	return decodeBytes(s.String(), data)
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("image too large (> %d bytes)", MaxImageBytes)
	}
	return data, nil
}

func decodeBytes(source string, data []byte) (*imageutil.PixelBuffer, error) {
	if len(data) == 0 {
		return nil, &AcquisitionError{Source: source, Err: ErrNoImage}
	}
	buf, _, err := imageutil.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &AcquisitionError{Source: source, Err: err}
	}
	if buf.Width() == 0 || buf.Height() == 0 {
		return nil, &AcquisitionError{Source: source, Err: ErrNoImage}
	}
	return buf, nil
}
