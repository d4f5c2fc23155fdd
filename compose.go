package coverart

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Block is a rendered image: rows of equal glyph width separated by '\n',
// with no trailing newline. Rows may contain color escape sequences.
type Block string

var sgrPattern = regexp.MustCompile(ESC + `\[[0-9;]*m`)

// Compose joins the per-pixel glyph stream into rows of width glyphs.
// len(cells) must be a whole number of rows.
func Compose(cells []string, width int) (Block, error) {
	if width <= 0 {
		return "", &ConfigError{Field: "width", Value: width, Reason: "must be positive"}
	}
	if len(cells)%width != 0 {
		return "", fmt.Errorf("compose: %d cells do not fill rows of %d", len(cells), width)
	}

	var sb strings.Builder
	for start := 0; start < len(cells); start += width {
		if start > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range cells[start : start+width] {
			sb.WriteString(cell)
		}
	}
	return Block(sb.String()), nil
}

// String returns the block as text.
func (b Block) String() string {
	return string(b)
}

// Rows splits the block into its rows.
func (b Block) Rows() []string {
	if b == "" {
		return nil
	}
	return strings.Split(string(b), "\n")
}

// Plain returns the block with every color sequence removed.
func (b Block) Plain() Block {
	return Block(sgrPattern.ReplaceAllString(string(b), ""))
}

// Width returns the glyph count of the first row, ignoring color
// sequences.
func (b Block) Width() int {
	rows := b.Plain().Rows()
	if len(rows) == 0 {
		return 0
	}
	return utf8.RuneCountInString(rows[0])
}

// Height returns the number of rows.
func (b Block) Height() int {
	return len(b.Rows())
}
