// Package term6x8 is the system bitmap font: one fixed 6x8 glyph per
// printable ASCII character.
package term6x8

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Cell metrics of every glyph in the table.
const (
	Width  = 6
	Height = 8
)

// Font implements tinyfont.Fonter so the table can be used by tinyterm
// and tinyfont.WriteLine. Concurrent access is not safe due to internal
// glyph reuse.
var Font tinyfont.Fonter = &font6x8{}

type font6x8 struct {
	g glyph
}

type glyph struct {
	r rune
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	rows, ok := GlyphRows(g.r)
	if !ok {
		rows, _ = GlyphRows('?')
	}
	for row := 0; row < Height; row++ {
		b := rows[row]
		// Bits are stored as 0b00xxxxxx (bit5 = leftmost pixel).
		for col := 0; col < Width; col++ {
			if b&(0x20>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(Height-1-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    Width,
		Height:   Height,
		XAdvance: Width,
		XOffset:  0,
		YOffset:  -(Height - 1),
	}
}

func (f *font6x8) GetYAdvance() uint8 { return Height }

func (f *font6x8) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

// GlyphRows returns the 8 raw row bytes for r, or ok=false when r is
// outside the supported range. Callers must not mutate the slice.
func GlyphRows(r rune) ([]byte, bool) {
	if r < 0x20 || r > 0x7e {
		return nil, false
	}
	base := (int(r) - 0x20) * Height
	return glyphData[base : base+Height], true
}
