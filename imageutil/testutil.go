package imageutil

// CreateGradientImage creates a horizontal black-to-white gradient test
// image.
func CreateGradientImage(width, height int) *PixelBuffer {
	buf := NewPixelBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(0)
			if width > 1 {
				v = uint8(255 * x / (width - 1))
			}
			buf.SetPixel(x, y, Pixel{R: v, G: v, B: v, A: 255})
		}
	}
	return buf
}

// CreateCheckerboardImage creates a black and white checkerboard pattern
// for edge testing.
func CreateCheckerboardImage(width, height, squareSize int) *PixelBuffer {
	buf := NewPixelBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			isWhite := ((x/squareSize)+(y/squareSize))%2 == 0
			if isWhite {
				buf.SetPixel(x, y, Pixel{R: 255, G: 255, B: 255, A: 255})
			} else {
				buf.SetPixel(x, y, Pixel{R: 0, G: 0, B: 0, A: 255})
			}
		}
	}
	return buf
}

// CreateSolidImage creates a buffer filled with a single pixel value.
func CreateSolidImage(width, height int, p Pixel) *PixelBuffer {
	buf := NewPixelBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.SetPixel(x, y, p)
		}
	}
	return buf
}

// CreateColorBarsImage creates a color bars test pattern.
func CreateColorBarsImage(width, height int) *PixelBuffer {
	buf := NewPixelBuffer(width, height)
	colors := []Pixel{
		{255, 255, 255, 255}, // White
		{255, 255, 0, 255},   // Yellow
		{0, 255, 255, 255},   // Cyan
		{0, 255, 0, 255},     // Green
		{255, 0, 255, 255},   // Magenta
		{255, 0, 0, 255},     // Red
		{0, 0, 255, 255},     // Blue
		{0, 0, 0, 255},       // Black
	}

	barWidth := width / len(colors)
	if barWidth == 0 {
		barWidth = 1
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			colorIdx := x / barWidth
			if colorIdx >= len(colors) {
				colorIdx = len(colors) - 1
			}
			buf.SetPixel(x, y, colors[colorIdx])
		}
	}
	return buf
}

// ImagesEqual reports whether two buffers have the same dimensions and
// identical pixels.
func ImagesEqual(a, b *PixelBuffer) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.PixelAt(x, y) != b.PixelAt(x, y) {
				return false
			}
		}
	}
	return true
}
