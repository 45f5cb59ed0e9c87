//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// Host framebuffer matches the T-Display-S3-Long panel in its portrait
// mount: 180 wide, 640 tall.
const (
	hostPanelWidth  = 180
	hostPanelHeight = 640
)

type hostHAL struct {
	logger *hostLogger
	bl     *hostBacklight
	fb     *hostFramebuffer
	touch  *hostTouch
	t      *hostTime
}

// New returns a host HAL implementation.
func New() HAL {
	logger := &hostLogger{w: os.Stdout}
	return &hostHAL{
		logger: logger,
		bl:     &hostBacklight{logger: logger},
		fb:     newHostFramebuffer(hostPanelWidth, hostPanelHeight),
		touch:  newHostTouch(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger       { return h.logger }
func (h *hostHAL) Backlight() Backlight { return h.bl }
func (h *hostHAL) Display() Display     { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input         { return hostInput{touch: h.touch} }
func (h *hostHAL) Time() Time           { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	touch *hostTouch
}

func (in hostInput) Touchscreen() Touchscreen { return in.touch }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostBacklight struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (b *hostBacklight) High() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.on = true
	b.logger.WriteLineString("backlight: HIGH")
}

func (b *hostBacklight) Low() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.on = false
	b.logger.WriteLineString("backlight: LOW")
}
