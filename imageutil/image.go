// Package imageutil provides the pure Go raster primitives used by the
// text renderer: an owned RGBA pixel buffer, resizing, sharpening,
// luma and decoding.
package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// Pixel is one sampled RGBA value with straight (non-premultiplied)
// alpha.
type Pixel struct {
	R, G, B, A uint8
}

// Transparent reports whether the pixel is fully transparent.
func (p Pixel) Transparent() bool {
	return p.A == 0
}

// ToColor converts the pixel to color.NRGBA for use with the standard
// library.
func (p Pixel) ToColor() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// PixelBuffer is a row-major width x height grid of Pixels. It wraps
// image.NRGBA so it can be handed directly to image/draw and
// golang.org/x/image/draw.
//
// Pixel coordinates passed to PixelAt and SetPixel are relative to the
// buffer origin, so (0, 0) is always the top-left pixel even when the
// wrapped image is a sub-image.
type PixelBuffer struct {
	*image.NRGBA
}

// NewPixelBuffer creates a transparent buffer with the given dimensions.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// PixelBufferFromImage copies any image.Image into a new buffer whose
// origin is (0, 0). It returns nil when img holds no image.
func PixelBufferFromImage(img image.Image) *PixelBuffer {
	switch src := img.(type) {
	case nil:
		return nil
	case *PixelBuffer:
		if src.Empty() {
			return nil
		}
		return src.Clone()
	case *image.NRGBA:
		if src == nil {
			return nil
		}
		return (&PixelBuffer{NRGBA: src}).Clone()
	}
	bounds := img.Bounds()
	buf := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	draw.Draw(buf.NRGBA, buf.Bounds(), img, bounds.Min, draw.Src)
	return buf
}

// Empty reports whether buf has no backing image. Zero-value buffers are
// empty.
func (buf *PixelBuffer) Empty() bool {
	return buf == nil || buf.NRGBA == nil
}

// Width returns the buffer width.
func (buf *PixelBuffer) Width() int {
	return buf.Bounds().Dx()
}

// Height returns the buffer height.
func (buf *PixelBuffer) Height() int {
	return buf.Bounds().Dy()
}

// Len returns the number of pixels, width * height.
func (buf *PixelBuffer) Len() int {
	return buf.Width() * buf.Height()
}

// PixelAt returns the pixel at (x, y).
func (buf *PixelBuffer) PixelAt(x, y int) Pixel {
	i := buf.offset(x, y)
	s := buf.Pix[i : i+4 : i+4]
	return Pixel{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// SetPixel sets the pixel at (x, y).
func (buf *PixelBuffer) SetPixel(x, y int, p Pixel) {
	i := buf.offset(x, y)
	s := buf.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = p.R, p.G, p.B, p.A
}

// offset returns the index in Pix of the origin-relative pixel (x, y).
func (buf *PixelBuffer) offset(x, y int) int {
	return buf.PixOffset(buf.Rect.Min.X+x, buf.Rect.Min.Y+y)
}

// Pixels returns every pixel in row-major order.
func (buf *PixelBuffer) Pixels() []Pixel {
	width, height := buf.Width(), buf.Height()
	out := make([]Pixel, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out = append(out, buf.PixelAt(x, y))
		}
	}
	return out
}

// Clone creates a deep copy of the buffer.
func (buf *PixelBuffer) Clone() *PixelBuffer {
	clone := NewPixelBuffer(buf.Width(), buf.Height())
	for y := 0; y < buf.Height(); y++ {
		start := buf.offset(0, y)
		copy(clone.Pix[y*clone.Stride:], buf.Pix[start:start+4*buf.Width()])
	}
	return clone
}
