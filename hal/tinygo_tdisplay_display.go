//go:build tinygo && baremetal

package hal

import (
	"errors"
	"machine"
	"time"
)

// T-Display-S3-Long panel: AXS15231B controller, 180x640, portrait mount.
const (
	tdPanelWidth  = 180
	tdPanelHeight = 640
)

// Board pin map (LilyGo schematic v1.0).
var (
	tdBacklightPin = machine.GPIO1
	tdLCDCS        = machine.GPIO16
	tdLCDSCK       = machine.GPIO17
	tdLCDSDO       = machine.GPIO13
	tdLCDDC        = machine.GPIO7
	tdLCDRST       = machine.GPIO5
)

type axs15231b struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	txBuf []byte
}

func newTDisplayPanel() (*tDisplayFramebuffer, error) {
	lcd, err := initAXS15231B()
	if err != nil {
		return nil, err
	}
	stride := tdPanelWidth * 2
	return &tDisplayFramebuffer{
		w:      tdPanelWidth,
		h:      tdPanelHeight,
		stride: stride,
		buf:    make([]byte, stride*tdPanelHeight),
		lcd:    lcd,
	}, nil
}

func initAXS15231B() (*axs15231b, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("SPI1 unavailable")
	}

	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       tdLCDSCK,
		SDO:       tdLCDSDO,
		Frequency: 40_000_000,
	})

	lcd := &axs15231b{
		spi:   *machine.SPI1,
		cs:    tdLCDCS,
		dc:    tdLCDDC,
		rst:   tdLCDRST,
		txBuf: make([]byte, 4096),
	}

	lcd.cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.dc.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.rst.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.cs.High()
	lcd.dc.High()
	lcd.rst.High()

	lcd.reset()
	lcd.init()

	return lcd, nil
}

func (d *axs15231b) reset() {
	d.rst.Low()
	time.Sleep(20 * time.Millisecond)
	d.rst.High()
	time.Sleep(150 * time.Millisecond)
}

func (d *axs15231b) init() {
	// Unlock vendor command page.
	d.cmd(0xBB, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x5A, 0xA5)

	// Pixel format: 16bpp.
	d.cmd(0x3A, 0x55) // COLMOD

	// Tearing effect off; the loop flushes whole frames anyway.
	d.cmd(0x35, 0x00) // TEON

	// Memory access: column order for the long-edge-down mount.
	d.cmd(0x36, 0x00) // MADCTL

	// Inversion on. The panel ships with an inverted gamma stack.
	d.cmd(0x21) // INVON

	d.cmd(0x11) // SLPOUT
	time.Sleep(120 * time.Millisecond)
	d.cmd(0x29) // DISPON
	time.Sleep(20 * time.Millisecond)
}

func (d *axs15231b) cmd(cmd byte, data ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

func (d *axs15231b) setWindow(x0, y0, x1, y1 uint16) {
	d.cmd(
		0x2A,
		byte(x0>>8), byte(x0),
		byte(x1>>8), byte(x1),
	)
	d.cmd(
		0x2B,
		byte(y0>>8), byte(y0),
		byte(y1>>8), byte(y1),
	)
	d.cmd(0x2C)
}

func (d *axs15231b) blitRGB565LittleEndian(buf []byte, w, h int) error {
	if w <= 0 || h <= 0 || len(buf) < w*h*2 {
		return errors.New("invalid framebuffer")
	}

	d.setWindow(0, 0, uint16(w-1), uint16(h-1))

	d.cs.Low()
	d.dc.High()

	chunk := d.txBuf
	if len(chunk)%2 != 0 {
		chunk = chunk[:len(chunk)-1]
	}
	if len(chunk) < 2 {
		return errors.New("tx buffer too small")
	}

	for off := 0; off < w*h*2; {
		n := len(chunk)
		remain := w*h*2 - off
		if n > remain {
			n = remain
			n &^= 1
		}
		src := buf[off : off+n]

		for i := 0; i < n; i += 2 {
			// The core stores RGB565 little-endian. The LCD expects big-endian.
			chunk[i] = src[i+1]
			chunk[i+1] = src[i]
		}
		d.spi.Tx(chunk[:n], nil)
		off += n
	}

	d.cs.High()
	return nil
}

type tDisplayFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	lcd *axs15231b
}

func (f *tDisplayFramebuffer) Width() int          { return f.w }
func (f *tDisplayFramebuffer) Height() int         { return f.h }
func (f *tDisplayFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *tDisplayFramebuffer) StrideBytes() int    { return f.stride }
func (f *tDisplayFramebuffer) Buffer() []byte      { return f.buf }

func (f *tDisplayFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *tDisplayFramebuffer) Present() error {
	if f.lcd == nil {
		return ErrNotImplemented
	}
	return f.lcd.blitRGB565LittleEndian(f.buf, f.w, f.h)
}
