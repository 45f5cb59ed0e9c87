package gfx

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/louistrue/T-Display-S3-Long/hal"
)

type testFB struct {
	w   int
	h   int
	buf []byte
}

func newTestFB(w, h int) *testFB {
	return &testFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) Present() error          { return nil }

func (f *testFB) ClearRGB(r, g, b uint8) {
	p := uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
)

func isSet(c *Canvas, x, y int) bool {
	r, g, b := c.PixelAt(x, y)
	return r != 0 || g != 0 || b != 0
}

func TestFillRectClipsAtEdges(t *testing.T) {
	c := NewCanvas(newTestFB(20, 20))
	c.FillRect(-5, -5, 10, 10, white)

	if !isSet(c, 0, 0) || !isSet(c, 4, 4) {
		t.Fatalf("expected clipped rect to cover the visible corner")
	}
	if isSet(c, 5, 0) || isSet(c, 0, 5) {
		t.Fatalf("rect leaked past its clipped extent")
	}
}

func TestFillRectFullyOffscreenIsNoop(t *testing.T) {
	fb := newTestFB(20, 20)
	c := NewCanvas(fb)
	before := append([]byte(nil), fb.buf...)

	c.FillRect(100, 100, 10, 10, white)
	c.FillRect(-50, -50, 10, 10, white)

	if !bytes.Equal(before, fb.buf) {
		t.Fatalf("offscreen rect modified the buffer")
	}
}

func TestDrawingIsIdempotent(t *testing.T) {
	fb := newTestFB(32, 32)
	c := NewCanvas(fb)

	draw := func() {
		c.FillRect(2, 2, 10, 6, white)
		c.FillCircle(20, 20, 5, red)
		c.FillRoundRect(4, 16, 12, 10, 3, blue)
		c.Line(0, 0, 31, 31, white)
	}
	draw()
	first := append([]byte(nil), fb.buf...)
	draw()

	if !bytes.Equal(first, fb.buf) {
		t.Fatalf("repeating identical draw calls changed the buffer")
	}
}

func TestPainterOverwrite(t *testing.T) {
	c := NewCanvas(newTestFB(16, 16))
	c.FillRect(0, 0, 16, 16, red)
	c.FillRect(4, 4, 4, 4, blue)

	if _, _, b := c.PixelAt(5, 5); b == 0 {
		t.Fatalf("later draw did not overwrite earlier pixels")
	}
	if r, _, _ := c.PixelAt(5, 5); r != 0 {
		t.Fatalf("overwrite blended instead of replacing")
	}
}

func TestFillCircleMembership(t *testing.T) {
	c := NewCanvas(newTestFB(21, 21))
	c.FillCircle(10, 10, 5, white)

	if !isSet(c, 10, 10) || !isSet(c, 10, 5) || !isSet(c, 15, 10) {
		t.Fatalf("circle missing interior or axis extremes")
	}
	// (4,4) from center fails 4*4+4*4 <= 25.
	if isSet(c, 14, 14) {
		t.Fatalf("circle includes a point outside i*i+j*j <= r*r")
	}
}

func TestRoundRectCornersRounded(t *testing.T) {
	c := NewCanvas(newTestFB(40, 40))
	c.FillRoundRect(0, 0, 20, 20, 6, white)

	if isSet(c, 0, 0) {
		t.Fatalf("corner pixel should be outside the quarter-disk")
	}
	if !isSet(c, 10, 0) || !isSet(c, 0, 10) || !isSet(c, 10, 10) {
		t.Fatalf("round rect missing edge or interior coverage")
	}
	// The corner disk center itself is always inside.
	if !isSet(c, 6, 6) {
		t.Fatalf("corner disk center not filled")
	}
}

func TestRoundRectOversizedRadiusDegradesToRect(t *testing.T) {
	fbA := newTestFB(30, 30)
	fbB := newTestFB(30, 30)
	a := NewCanvas(fbA)
	b := NewCanvas(fbB)

	a.FillRoundRect(2, 2, 10, 10, 50, white)
	b.FillRect(2, 2, 10, 10, white)

	if !bytes.Equal(fbA.buf, fbB.buf) {
		t.Fatalf("oversized radius should fall back to a plain rect")
	}
}

func TestLineEndpoints(t *testing.T) {
	c := NewCanvas(newTestFB(32, 32))
	c.Line(3, 5, 28, 17, white)

	if !isSet(c, 3, 5) || !isSet(c, 28, 17) {
		t.Fatalf("line endpoints not drawn")
	}
}

func TestPixelOutOfRangeIsSilent(t *testing.T) {
	fb := newTestFB(8, 8)
	c := NewCanvas(fb)
	before := append([]byte(nil), fb.buf...)

	c.Pixel(-1, 0, white)
	c.Pixel(0, -1, white)
	c.Pixel(8, 0, white)
	c.Pixel(0, 8, white)

	if !bytes.Equal(before, fb.buf) {
		t.Fatalf("out-of-range pixel writes modified the buffer")
	}
}
