package gfx

import (
	"image/color"
	"unicode/utf8"

	"github.com/louistrue/T-Display-S3-Long/internal/fonts/term6x8"
)

// Text rendering over the fixed 6x8 glyph table with integer scaling.
// (x, y) is the top-left corner of the glyph cell, not the baseline.

// charGap is the extra pixel gap inserted between characters per scale
// step above 1; at scale 1 the glyph's blank spacing column is enough.
func charGap(scale int) int {
	if scale <= 1 {
		return 0
	}
	return scale - 1
}

// CharAdvance returns the cursor advance for one character at scale.
func CharAdvance(scale int) int {
	if scale < 1 {
		scale = 1
	}
	return term6x8.Width*scale + charGap(scale)
}

// TextWidth returns the pixel width of s drawn at scale. The cursor
// advances once per rune, whether or not the glyph table covers it.
func TextWidth(s string, scale int) int {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return 0
	}
	return n*CharAdvance(scale) - charGap(scale)
}

// DrawChar draws one character; characters outside the glyph table are
// no-ops. Each set glyph bit becomes a scale x scale block.
func (c *Canvas) DrawChar(x, y int, r rune, scale int, col color.RGBA) {
	if scale < 1 {
		scale = 1
	}
	rows, ok := term6x8.GlyphRows(r)
	if !ok {
		return
	}
	for row := 0; row < term6x8.Height; row++ {
		b := rows[row]
		for cx := 0; cx < term6x8.Width; cx++ {
			if b&(0x20>>cx) == 0 {
				continue
			}
			c.FillRect(x+cx*scale, y+row*scale, scale, scale, col)
		}
	}
}

// DrawText draws s left-to-right starting at (x, y), advancing the
// cursor by glyph width x scale plus the inter-character gap.
func (c *Canvas) DrawText(x, y int, s string, scale int, col color.RGBA) {
	if scale < 1 {
		scale = 1
	}
	for _, r := range s {
		c.DrawChar(x, y, r, scale, col)
		x += CharAdvance(scale)
	}
}

// DrawTextCentered measures s first, then draws it horizontally centered
// on the canvas. Oversized strings start left of the edge and clip; any
// truncation or ellipsis policy belongs to the caller.
func (c *Canvas) DrawTextCentered(y int, s string, scale int, col color.RGBA) {
	x := (c.w - TextWidth(s, scale)) / 2
	c.DrawText(x, y, s, scale, col)
}
