// Package app wires the HAL, the data provider and the UI core into the
// single cooperative loop that drives the panel.
package app

import (
	"github.com/louistrue/T-Display-S3-Long/hal"
	"github.com/louistrue/T-Display-S3-Long/internal/monitor"
)

// Config selects optional behavior for a run.
type Config struct {
	// Diag replaces the UI with a scrolling diagnostic console.
	Diag bool
	// Seed seeds the simulated provider (0 = default seed).
	Seed uint32
	// Provider overrides the data source; nil selects the simulated one.
	Provider monitor.Provider
}

// New initializes the firmware with default config and returns the
// per-frame step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig initializes the firmware and returns the per-frame step
// function. The host window and headless runners call it once per frame;
// Run drives it in a sleep loop on hardware.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	e := newEngine(h, cfg)
	return e.step
}

// Run starts the firmware and blocks forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, Config{})
}

func RunWithConfig(h hal.HAL, cfg Config) {
	bootScreen(h, "starting")
	step := NewWithConfig(h, cfg)
	for {
		if err := step(); err != nil {
			if l := h.Logger(); l != nil {
				l.WriteLineString("app: step failed: " + err.Error())
			}
		}
		yield()
	}
}
