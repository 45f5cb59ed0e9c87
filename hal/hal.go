package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Backlight is a minimal output pin abstraction for the panel backlight.
type Backlight interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// Present pushes the whole buffer to the panel; partial flushes are a
// platform optimization and never part of this contract.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// TouchData is one raw controller sample in the controller's own
// coordinate space. Points is the contact count reported by the
// controller; GestureCode is its firmware gesture register (0 = none).
type TouchData struct {
	Present     bool
	Points      int
	GestureCode uint8
	X           int
	Y           int
}

// Touchscreen yields one raw sample per poll.
//
// Implementations bound the poll by a short internal timeout; a slow or
// failed read reports an absent sample, not an error. The error return is
// reserved for unrecoverable bus faults at bring-up.
type Touchscreen interface {
	Poll() (TouchData, error)
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to the touch panel (if available).
type Input interface {
	Touchscreen() Touchscreen
}

// Time provides a base millisecond tick stream.
//
// Higher-level timers and animation phases are derived in userland.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the firmware and the panel.
type HAL interface {
	Logger() Logger
	Backlight() Backlight
	Display() Display
	Input() Input
	Time() Time
}
