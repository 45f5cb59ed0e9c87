package gfx

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// tinyterm.Displayer extras on top of drivers.Displayer, so the diag
// console can run on a Canvas.

// FillRectangle fills with the same clipping rules as FillRect.
func (c *Canvas) FillRectangle(x, y, w, h int16, col color.RGBA) error {
	c.FillRect(int(x), int(y), int(w), int(h), col)
	return nil
}

// SetScroll is a no-op; the console is configured for software scroll.
func (c *Canvas) SetScroll(line int16) {
	_ = line
}

// SetRotation is a no-op; the buffer is already in display orientation.
func (c *Canvas) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}
