//go:build !tinygo

package app

import "github.com/louistrue/T-Display-S3-Long/hal"

func bootScreen(h hal.HAL, msg string) {
	if h == nil {
		return
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString("boot: " + msg)
	}
}
