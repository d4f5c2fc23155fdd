package coverart

import (
	"strings"
	"unicode/utf8"
)

// Compact merges runs of adjacent glyphs that share a color into a single
// color sequence and reset. Bare glyphs are left bare. The plain text of
// the block is unchanged, but the per-glyph wrapping is not preserved.
func (b Block) Compact() Block {
	var sb strings.Builder
	sb.Grow(len(b))
	for i, row := range b.Rows() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		compactRow(&sb, row)
	}
	return Block(sb.String())
}

// compactRow writes one row with color runs merged. current is the color
// sequence of the run being built, empty for bare glyphs.
func compactRow(sb *strings.Builder, row string) {
	var current string
	var run strings.Builder

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if current != "" {
			sb.WriteString(current)
			sb.WriteString(run.String())
			sb.WriteString(Reset)
		} else {
			sb.WriteString(run.String())
		}
		run.Reset()
	}

	for len(row) > 0 {
		code := ""
		if strings.HasPrefix(row, ESC+"[") && !strings.HasPrefix(row, Reset) {
			if end := strings.IndexByte(row, 'm'); end >= 0 {
				code = row[:end+1]
				row = row[end+1:]
			}
		}
		if strings.HasPrefix(row, Reset) {
			row = row[len(Reset):]
			continue
		}
		if len(row) == 0 {
			break
		}

		r, size := utf8.DecodeRuneInString(row)
		row = row[size:]
		if code != "" {
			row = strings.TrimPrefix(row, Reset)
		}

		if code != current {
			flush()
			current = code
		}
		run.WriteRune(r)
	}
	flush()
}
