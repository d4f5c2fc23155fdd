package coverart

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/wbrown/coverart/imageutil"
)

// PreviewFontSize is the glyph size in pixels at scale 1.
const PreviewFontSize = 12.0

// Rasterizer draws glyph grids into an image with the Go Mono font, the
// way a truecolor terminal would display them.
type Rasterizer struct {
	Background color.Color
	// Foreground colors glyphs in Plain mode and transparent cells.
	Foreground color.Color

	font       *truetype.Font
	size       float64
	cellWidth  int
	cellHeight int
	ascent     int
}

// NewRasterizer loads the embedded font at PreviewFontSize*scale.
func NewRasterizer(scale int) (*Rasterizer, error) {
	if scale < 1 {
		scale = 1
	}
	ttf, err := freetype.ParseFont(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	size := PreviewFontSize * float64(scale)
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	// Monospace: every ramp glyph shares the advance of 'M'
	advance, ok := face.GlyphAdvance('M')
	if !ok {
		return nil, fmt.Errorf("font has no advance for 'M'")
	}
	metrics := face.Metrics()

	return &Rasterizer{
		Background: color.Black,
		Foreground: color.White,
		font:       ttf,
		size:       size,
		cellWidth:  advance.Ceil(),
		cellHeight: (metrics.Ascent + metrics.Descent).Ceil(),
		ascent:     metrics.Ascent.Ceil(),
	}, nil
}

// CellSize returns the pixel size of one character cell.
func (r *Rasterizer) CellSize() (width, height int) {
	return r.cellWidth, r.cellHeight
}

// Rasterize draws one glyph per pixel of buf. buf should already be at
// text resolution (see Prepare).
func (r *Rasterizer) Rasterize(buf *imageutil.PixelBuffer, mode GlyphMode) (*image.RGBA, error) {
	cols, rows := buf.Width(), buf.Height()
	img := image.NewRGBA(image.Rect(0, 0, cols*r.cellWidth, rows*r.cellHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(r.font)
	ctx.SetFontSize(r.size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetHinting(font.HintingFull)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := buf.PixelAt(x, y)
			glyph := GlyphFor(p)
			if glyph == rune(GlyphRamp[BlankIndex]) {
				continue
			}

			ctx.SetSrc(image.NewUniform(r.glyphColor(mode, p)))
			pt := freetype.Pt(x*r.cellWidth, y*r.cellHeight+r.ascent)
			if _, err := ctx.DrawString(string(glyph), pt); err != nil {
				return nil, fmt.Errorf("failed to draw %q at (%d,%d): %w", glyph, x, y, err)
			}
		}
	}
	return img, nil
}

func (r *Rasterizer) glyphColor(mode GlyphMode, p imageutil.Pixel) color.Color {
	if mode == Plain || p.Transparent() {
		return r.Foreground
	}
	c := p.ToColor()
	c.A = 255
	return c
}

// Preview renders buf the same way Render does, but into an image instead
// of text.
func Preview(buf *imageutil.PixelBuffer, cfg Config, scale int) (*image.RGBA, error) {
	prepared, err := Prepare(buf, cfg)
	if err != nil {
		return nil, err
	}
	r, err := NewRasterizer(scale)
	if err != nil {
		return nil, err
	}
	return r.Rasterize(prepared, cfg.Mode())
}
