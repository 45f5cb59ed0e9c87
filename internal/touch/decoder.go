// Package touch turns raw controller samples into display-space points
// and classifies touch cycles into taps, drags and swipes.
package touch

import "github.com/louistrue/T-Display-S3-Long/hal"

// Sample is one decoded poll result in display space.
type Sample struct {
	Present bool
	X       int
	Y       int
}

// Decoder maps controller samples onto the portrait display. The
// controller reports in its native landscape frame; the panel is mounted
// long edge vertical, so the axes swap and the vertical axis mirrors.
type Decoder struct {
	panelW int
	panelH int
}

func NewDecoder(panelW, panelH int) *Decoder {
	return &Decoder{panelW: panelW, panelH: panelH}
}

// Decode converts one raw sample. Multi-touch reports and controller
// firmware gestures collapse to "no touch" for the poll; so does an
// absent or timed-out sample upstream.
func (d *Decoder) Decode(raw hal.TouchData) Sample {
	if !raw.Present || raw.Points != 1 || raw.GestureCode != 0 {
		return Sample{}
	}

	x := raw.Y
	y := d.panelH - 1 - raw.X

	if x < 0 {
		x = 0
	}
	if x >= d.panelW {
		x = d.panelW - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= d.panelH {
		y = d.panelH - 1
	}
	return Sample{Present: true, X: x, Y: y}
}
