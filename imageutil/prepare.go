package imageutil

// DefaultSharpness is the sharpness factor applied after resizing; it
// doubles local edge contrast.
const DefaultSharpness = 2.0

// PrepareForText prepares an image for conversion to one glyph per pixel.
//
// The function:
//  1. Resizes to exactly width x height (one pixel per output character)
//  2. Applies sharpness enhancement to restore edges lost in downscaling
//
// Parameters:
//   - buf: The input image, left unmodified
//   - width: Target width in characters
//   - height: Target height in rows
//   - interp: The resampling kernel
//
// Returns:
//   - The processed buffer at (width x height)
func PrepareForText(buf *PixelBuffer, width, height int, interp Interpolation) *PixelBuffer {
	resized := Resize(buf, width, height, interp)
	return Sharpen(resized, DefaultSharpness)
}
