package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationCubic uses Catmull-Rom, a bicubic kernel that holds up
	// for both up and down scaling.
	InterpolationCubic Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

// String returns the name used for the method on the command line.
func (interp Interpolation) String() string {
	switch interp {
	case InterpolationLinear:
		return "linear"
	case InterpolationNearest:
		return "nearest"
	default:
		return "cubic"
	}
}

// ParseInterpolation maps a method name back to its Interpolation. Unknown
// names report ok == false.
func ParseInterpolation(name string) (interp Interpolation, ok bool) {
	switch name {
	case "cubic", "catmullrom", "":
		return InterpolationCubic, true
	case "linear", "bilinear":
		return InterpolationLinear, true
	case "nearest":
		return InterpolationNearest, true
	}
	return InterpolationCubic, false
}

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resamples buf to exactly width x height using the given
// interpolation method. The source is not modified. Alpha is carried
// through, so transparent regions stay transparent.
func Resize(buf *PixelBuffer, width, height int, interp Interpolation) *PixelBuffer {
	dst := NewPixelBuffer(width, height)
	dstRect := image.Rect(0, 0, width, height)

	interp.scaler().Scale(dst.NRGBA, dstRect, buf.NRGBA, buf.Bounds(), draw.Src, nil)
	return dst
}
