//go:build tinygo && baremetal

package hal

import "machine"

type tDisplayHAL struct {
	logger *uartLogger
	bl     *pinBacklight
	fb     Framebuffer
	touch  Touchscreen
	t      *tinyGoTime
}

// New returns a LilyGo T-Display-S3-Long HAL implementation.
//
// UART: UART0 at 115200 8N1 on the default console pins.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
	})

	blPin := tdBacklightPin
	blPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	bl := &pinBacklight{pin: blPin}

	var fb Framebuffer
	if lcd, err := newTDisplayPanel(); err == nil {
		fb = lcd
	} else {
		fb = &stubFramebuffer{w: tdPanelWidth, h: tdPanelHeight, format: PixelFormatRGB565}
	}

	var touch Touchscreen
	if ts, err := newTDisplayTouch(); err == nil {
		touch = ts
	} else {
		touch = &stubTouchscreen{}
	}

	return &tDisplayHAL{
		logger: &uartLogger{uart: uart},
		bl:     bl,
		fb:     fb,
		touch:  touch,
		t:      newTinyGoTime(),
	}
}

func (h *tDisplayHAL) Logger() Logger       { return h.logger }
func (h *tDisplayHAL) Backlight() Backlight { return h.bl }
func (h *tDisplayHAL) Display() Display     { return tinyGoDisplay{fb: h.fb} }
func (h *tDisplayHAL) Input() Input         { return tinyGoInput{touch: h.touch} }
func (h *tDisplayHAL) Time() Time           { return h.t }
