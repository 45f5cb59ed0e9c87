package term6x8

import (
	"image/color"
	"testing"
)

func TestGlyphRowsRange(t *testing.T) {
	for _, r := range []rune{' ', '0', 'A', 'z', '~'} {
		rows, ok := GlyphRows(r)
		if !ok || len(rows) != Height {
			t.Fatalf("GlyphRows(%q): ok=%v len=%d, want ok with %d rows", r, ok, len(rows), Height)
		}
	}
	for _, r := range []rune{0x1f, 0x7f, 'é', '€'} {
		if _, ok := GlyphRows(r); ok {
			t.Fatalf("GlyphRows(%q) ok = true, want false", r)
		}
	}
}

func TestGlyphRowsFitCell(t *testing.T) {
	for r := rune(0x20); r <= 0x7e; r++ {
		rows, _ := GlyphRows(r)
		for i, b := range rows {
			if b&0xc0 != 0 {
				t.Fatalf("glyph %q row %d uses bits outside the 6-pixel cell: %#02x", r, i, b)
			}
		}
	}
}

type recordingDisplay struct {
	pixels map[[2]int16]bool
}

func (d *recordingDisplay) Size() (int16, int16) { return 64, 64 }
func (d *recordingDisplay) Display() error       { return nil }
func (d *recordingDisplay) SetPixel(x, y int16, _ color.RGBA) {
	d.pixels[[2]int16{x, y}] = true
}

func draw(r rune) map[[2]int16]bool {
	d := &recordingDisplay{pixels: map[[2]int16]bool{}}
	g := Font.GetGlyph(r)
	g.Draw(d, 10, 10, color.RGBA{R: 0xff, A: 0xff})
	return d.pixels
}

func TestFonterFallbackToQuestionMark(t *testing.T) {
	got := draw('€')
	want := draw('?')

	if len(got) != len(want) {
		t.Fatalf("fallback drew %d pixels, '?' draws %d", len(got), len(want))
	}
	for p := range want {
		if !got[p] {
			t.Fatalf("fallback missing pixel %v of '?'", p)
		}
	}
}

func TestFonterMetrics(t *testing.T) {
	info := Font.GetGlyph('A').Info()
	if info.Width != Width || info.Height != Height || info.XAdvance != Width {
		t.Fatalf("glyph info = %+v, want %dx%d advance %d", info, Width, Height, Width)
	}
	if Font.GetYAdvance() != Height {
		t.Fatalf("YAdvance = %d, want %d", Font.GetYAdvance(), Height)
	}
}
