package coverart

import (
	"strconv"
	"strings"

	"github.com/wbrown/coverart/imageutil"
)

const (
	ESC = "\u001b"

	// Reset clears all SGR attributes.
	Reset = ESC + "[0m"
)

// GlyphMode selects how a glyph is written.
type GlyphMode int

const (
	// Plain writes the bare glyph.
	Plain GlyphMode = iota

	// TrueColor wraps the glyph in a 24-bit foreground color sequence
	// followed by Reset.
	TrueColor
)

func (m GlyphMode) String() string {
	if m == TrueColor {
		return "truecolor"
	}
	return "plain"
}

// ForegroundCode returns the SGR sequence that sets a 24-bit foreground
// color.
func ForegroundCode(r, g, b uint8) string {
	var sb strings.Builder
	writeForeground(&sb, r, g, b)
	return sb.String()
}

// Encode renders one glyph for pixel p. The same inputs always produce
// the same string.
func (m GlyphMode) Encode(glyph rune, p imageutil.Pixel) string {
	var sb strings.Builder
	m.writeGlyph(&sb, glyph, p)
	return sb.String()
}

// writeGlyph appends the encoded glyph to sb. A transparent pixel has no
// meaningful color, so it is written bare in either mode.
func (m GlyphMode) writeGlyph(sb *strings.Builder, glyph rune, p imageutil.Pixel) {
	if m == Plain || p.Transparent() {
		sb.WriteRune(glyph)
		return
	}
	writeForeground(sb, p.R, p.G, p.B)
	sb.WriteRune(glyph)
	sb.WriteString(Reset)
}

func writeForeground(sb *strings.Builder, r, g, b uint8) {
	sb.WriteString(ESC)
	sb.WriteString("[38;2;")
	sb.WriteString(strconv.Itoa(int(r)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(g)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(b)))
	sb.WriteByte('m')
}
