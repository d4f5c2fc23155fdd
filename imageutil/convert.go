package imageutil

// Fixed-point luma weights. They sum to 1<<16, so a pure white pixel maps
// to exactly 255.
const (
	lumaR     = 19595
	lumaG     = 38470
	lumaB     = 7471
	lumaShift = 16
	lumaBias  = 1 << (lumaShift - 1)
)

// Luma returns the perceptual brightness of an RGB triple:
// (R*19595 + G*38470 + B*7471 + 32768) >> 16.
func Luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*lumaR + uint32(g)*lumaG + uint32(b)*lumaB + lumaBias) >> lumaShift)
}

// Luma returns the brightness of the pixel's colour channels. Alpha is
// ignored.
func (p Pixel) Luma() uint8 {
	return Luma(p.R, p.G, p.B)
}
