// Package coverart turns raster images into blocks of printable glyphs,
// optionally colored with 24-bit terminal escape sequences.
//
// The pipeline is linear: resize to the target width with an
// aspect-corrected height, sharpen, map each pixel's luma to a glyph, color
// it, and join the glyphs into rows. Every stage is pure, so concurrent
// renders need no locking.
package coverart

import (
	"fmt"
	"image"
	"math"

	"github.com/wbrown/coverart/imageutil"
)

// maxScaledHeight bounds the row count so the float result always fits an
// int on every platform.
const maxScaledHeight = math.MaxInt32

// ScaledHeight returns the row count for a source of srcWidth x srcHeight:
// round(srcHeight/srcWidth * TargetWidth * HeightScale), at least 1.
func ScaledHeight(srcWidth, srcHeight int, cfg Config) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if srcWidth <= 0 {
		return 0, &ConfigError{Field: "source width", Value: srcWidth, Reason: "must be positive"}
	}
	if srcHeight <= 0 {
		return 0, &ConfigError{Field: "source height", Value: srcHeight, Reason: "must be positive"}
	}

	aspectRatio := float64(srcHeight) / float64(srcWidth)
	height := math.Round(aspectRatio * float64(cfg.TargetWidth) * cfg.HeightScale)
	if height > maxScaledHeight {
		return 0, &ConfigError{
			Field:  "height scale",
			Value:  cfg.HeightScale,
			Reason: fmt.Sprintf("scaled height %g of a %dx%d source exceeds %d rows", height, srcWidth, srcHeight, maxScaledHeight),
		}
	}
	return max(int(height), 1), nil
}

// Prepare resizes buf to TargetWidth x ScaledHeight and sharpens it. The
// returned buffer holds exactly one pixel per output glyph.
func Prepare(buf *imageutil.PixelBuffer, cfg Config) (*imageutil.PixelBuffer, error) {
	if buf.Empty() {
		return nil, ErrNoImage
	}
	height, err := ScaledHeight(buf.Width(), buf.Height(), cfg)
	if err != nil {
		return nil, err
	}
	return imageutil.PrepareForText(buf, cfg.TargetWidth, height, cfg.Interpolation), nil
}

// Render converts buf into a Block of ScaledHeight rows, each exactly
// TargetWidth glyphs wide. On error no output is produced.
func Render(buf *imageutil.PixelBuffer, cfg Config) (Block, error) {
	prepared, err := Prepare(buf, cfg)
	if err != nil {
		return "", err
	}

	mode := cfg.Mode()
	pixels := prepared.Pixels()
	cells := make([]string, len(pixels))
	for i, p := range pixels {
		cells[i] = mode.Encode(GlyphFor(p), p)
	}
	return Compose(cells, prepared.Width())
}

// RenderImage renders any decoded image.
func RenderImage(img image.Image, cfg Config) (Block, error) {
	buf := imageutil.PixelBufferFromImage(img)
	if buf == nil {
		return "", ErrNoImage
	}
	return Render(buf, cfg)
}
