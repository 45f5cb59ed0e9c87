//go:build tinygo

package app

import (
	"image/color"

	"tinygo.org/x/tinyfont"

	"github.com/louistrue/T-Display-S3-Long/hal"
	"github.com/louistrue/T-Display-S3-Long/internal/fonts/term6x8"
	"github.com/louistrue/T-Display-S3-Long/internal/gfx"
)

func bootScreen(h hal.HAL, msg string) {
	if h == nil {
		return
	}
	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	fb.ClearRGB(0, 0, 0)

	c := gfx.NewCanvas(fb)
	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	tinyfont.WriteLine(c, term6x8.Font, 10, 20, "uptime-panel boot", fg)
	tinyfont.WriteLine(c, term6x8.Font, 10, 36, msg, fg)
	_ = fb.Present()
}
