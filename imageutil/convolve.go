package imageutil

import "math"

// Kernel represents a convolution kernel.
type Kernel struct {
	Values [][]float64
	Width  int
	Height int
}

// NewKernel creates a new kernel from a 2D slice.
func NewKernel(values [][]float64) *Kernel {
	height := len(values)
	width := 0
	if height > 0 {
		width = len(values[0])
	}
	return &Kernel{
		Values: values,
		Width:  width,
		Height: height,
	}
}

// SmoothKernel returns the 3x3 smoothing filter that sharpness
// enhancement blends against.
func SmoothKernel() *Kernel {
	return NewKernel([][]float64{
		{1.0 / 13, 1.0 / 13, 1.0 / 13},
		{1.0 / 13, 5.0 / 13, 1.0 / 13},
		{1.0 / 13, 1.0 / 13, 1.0 / 13},
	})
}

// SharpnessKernel folds "smooth + factor*(orig - smooth)" into a single
// kernel. A factor of 1 is the identity; 2 doubles local edge contrast.
func SharpnessKernel(factor float64) *Kernel {
	smooth := SmoothKernel()
	values := make([][]float64, smooth.Height)
	for ky := range values {
		values[ky] = make([]float64, smooth.Width)
		for kx := range values[ky] {
			v := (1 - factor) * smooth.Values[ky][kx]
			if ky == smooth.Height/2 && kx == smooth.Width/2 {
				v += factor
			}
			values[ky][kx] = v
		}
	}
	return NewKernel(values)
}

// Convolve applies a kernel to the colour channels of buf. Alpha is copied
// from the source unchanged, and so are border pixels whose neighbourhood
// extends past the buffer.
func Convolve(buf *PixelBuffer, kernel *Kernel) *PixelBuffer {
	width, height := buf.Width(), buf.Height()
	dst := NewPixelBuffer(width, height)

	halfKW := kernel.Width / 2
	halfKH := kernel.Height / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src := buf.PixelAt(x, y)
			if x < halfKW || y < halfKH || x >= width-halfKW || y >= height-halfKH {
				dst.SetPixel(x, y, src)
				continue
			}

			var sumR, sumG, sumB float64
			for ky := 0; ky < kernel.Height; ky++ {
				for kx := 0; kx < kernel.Width; kx++ {
					c := buf.PixelAt(x+kx-halfKW, y+ky-halfKH)
					k := kernel.Values[ky][kx]

					sumR += float64(c.R) * k
					sumG += float64(c.G) * k
					sumB += float64(c.B) * k
				}
			}

			dst.SetPixel(x, y, Pixel{
				R: clampUint8(sumR),
				G: clampUint8(sumG),
				B: clampUint8(sumB),
				A: src.A,
			})
		}
	}

	return dst
}

// Sharpen applies sharpness enhancement with the given factor. Border
// pixels are left untouched.
func Sharpen(buf *PixelBuffer, factor float64) *PixelBuffer {
	return Convolve(buf, SharpnessKernel(factor))
}

// clampUint8 clamps a float64 to [0, 255] and converts to uint8.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
