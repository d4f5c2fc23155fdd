package coverart

import (
	"strings"

	"github.com/wbrown/coverart/imageutil"
)

// GlyphRamp orders glyphs from densest (index 0) to blank (BlankIndex).
// Darker pixels get denser glyphs. Every entry is a single ASCII byte.
const GlyphRamp = "BS#&@$%*!. "

const (
	// BlankIndex is the ramp position of the space glyph.
	BlankIndex = len(GlyphRamp) - 1

	// bucketWidth is the luma span covered by one ramp entry. The last
	// bucket also absorbs luma 250-255.
	bucketWidth = 25
)

// GlyphIndex returns the ramp index for a pixel. Fully transparent pixels
// are always blank.
func GlyphIndex(p imageutil.Pixel) int {
	if p.Transparent() {
		return BlankIndex
	}
	return LumaIndex(p.Luma())
}

// LumaIndex maps a luma value onto the ramp: min(luma/25, 10).
func LumaIndex(luma uint8) int {
	return min(int(luma)/bucketWidth, BlankIndex)
}

// GlyphFor returns the ramp glyph for a pixel.
func GlyphFor(p imageutil.Pixel) rune {
	return rune(GlyphRamp[GlyphIndex(p)])
}

// IsRampGlyph reports whether r belongs to GlyphRamp.
func IsRampGlyph(r rune) bool {
	return strings.ContainsRune(GlyphRamp, r)
}
