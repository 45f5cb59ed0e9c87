// Package gfx provides software rasterization into an RGB565 framebuffer.
//
// All drawing is painter's-algorithm overwrite with silent clipping:
// out-of-range coordinates are never an error. The Canvas implements
// drivers.Displayer so tinyfont and tinyterm can draw through it.
package gfx

import (
	"image/color"

	"github.com/louistrue/T-Display-S3-Long/hal"
)

// Canvas draws into a hal.Framebuffer.
type Canvas struct {
	fb     hal.Framebuffer
	buf    []byte
	w      int
	h      int
	stride int
}

// NewCanvas returns a Canvas over fb. Only RGB565 framebuffers are
// supported; any other format yields a Canvas that silently drops pixels.
func NewCanvas(fb hal.Framebuffer) *Canvas {
	c := &Canvas{fb: fb}
	if fb != nil && fb.Format() == hal.PixelFormatRGB565 {
		c.buf = fb.Buffer()
		c.w = fb.Width()
		c.h = fb.Height()
		c.stride = fb.StrideBytes()
	}
	return c
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

// Size implements drivers.Displayer.
func (c *Canvas) Size() (x, y int16) {
	return int16(c.w), int16(c.h)
}

// SetPixel implements drivers.Displayer.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.Pixel(int(x), int(y), col)
}

// Display implements drivers.Displayer by flushing the whole buffer.
func (c *Canvas) Display() error {
	if c.fb == nil {
		return nil
	}
	return c.fb.Present()
}

// Pixel sets one pixel; out-of-bounds coordinates are dropped.
func (c *Canvas) Pixel(x, y int, col color.RGBA) {
	if c.buf == nil || x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	off := y*c.stride + x*2
	if off < 0 || off+1 >= len(c.buf) {
		return
	}
	p := rgb565From888(col.R, col.G, col.B)
	c.buf[off] = byte(p)
	c.buf[off+1] = byte(p >> 8)
}

// Clear fills the whole buffer with col.
func (c *Canvas) Clear(col color.RGBA) {
	c.FillRect(0, 0, c.w, c.h, col)
}

// FillRect fills the rectangle, clipping each row and column at the
// buffer edges.
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	if c.buf == nil || w <= 0 || h <= 0 {
		return
	}
	x0 := x
	y0 := y
	x1 := x + w
	y1 := y + h
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > c.w {
		x1 = c.w
	}
	if y1 > c.h {
		y1 = c.h
	}
	if x0 >= x1 || y0 >= y1 {
		return
	}

	p := rgb565From888(col.R, col.G, col.B)
	lo := byte(p)
	hi := byte(p >> 8)
	for yy := y0; yy < y1; yy++ {
		row := yy * c.stride
		for xx := x0; xx < x1; xx++ {
			off := row + xx*2
			if off < 0 || off+1 >= len(c.buf) {
				continue
			}
			c.buf[off] = lo
			c.buf[off+1] = hi
		}
	}
}

// FillCircle fills a disk of radius r centered at (cx, cy) using the
// membership test i*i+j*j <= r*r.
func (c *Canvas) FillCircle(cx, cy, r int, col color.RGBA) {
	if r < 0 {
		return
	}
	rr := r * r
	for j := -r; j <= r; j++ {
		for i := -r; i <= r; i++ {
			if i*i+j*j <= rr {
				c.Pixel(cx+i, cy+j, col)
			}
		}
	}
}

// FillRoundRect fills a rectangle with rounded corners: three inner
// rects plus four corner quarter-disks sharing FillCircle's membership
// test. A radius too large for the rect degrades to a plain rect.
func (c *Canvas) FillRoundRect(x, y, w, h, r int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	if r < 0 {
		r = 0
	}
	if 2*r > w || 2*r > h {
		c.FillRect(x, y, w, h, col)
		return
	}

	c.FillRect(x+r, y, w-2*r, h, col)
	c.FillRect(x, y+r, r, h-2*r, col)
	c.FillRect(x+w-r, y+r, r, h-2*r, col)

	rr := r * r
	quarter := func(cx, cy, si, sj int) {
		for j := 0; j <= r; j++ {
			for i := 0; i <= r; i++ {
				if i*i+j*j <= rr {
					c.Pixel(cx+si*i, cy+sj*j, col)
				}
			}
		}
	}
	quarter(x+r, y+r, -1, -1)
	quarter(x+w-1-r, y+r, 1, -1)
	quarter(x+r, y+h-1-r, -1, 1)
	quarter(x+w-1-r, y+h-1-r, 1, 1)
}

// HLine draws a horizontal run of w pixels starting at (x, y).
func (c *Canvas) HLine(x, y, w int, col color.RGBA) {
	c.FillRect(x, y, w, 1, col)
}

// VLine draws a vertical run of h pixels starting at (x, y).
func (c *Canvas) VLine(x, y, h int, col color.RGBA) {
	c.FillRect(x, y, 1, h, col)
}

// Line draws an arbitrary segment with integer Bresenham stepping.
func (c *Canvas) Line(x0, y0, x1, y1 int, col color.RGBA) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	e := dx - dy
	for {
		c.Pixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x0 += sx
		}
		if e2 < dx {
			e += dx
			y0 += sy
		}
	}
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

// PixelAt reads back one pixel as RGB888. Out-of-bounds reads return
// black; intended for tests and the host snapshot path.
func (c *Canvas) PixelAt(x, y int) (r, g, b uint8) {
	if c.buf == nil || x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0, 0, 0
	}
	off := y*c.stride + x*2
	if off < 0 || off+1 >= len(c.buf) {
		return 0, 0, 0
	}
	p := uint16(c.buf[off]) | uint16(c.buf[off+1])<<8
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F
	return uint8((rr * 255) / 31), uint8((gg * 255) / 63), uint8((bb * 255) / 31)
}
