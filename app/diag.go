package app

import (
	"tinygo.org/x/tinyterm"

	"github.com/louistrue/T-Display-S3-Long/internal/fonts/term6x8"
	"github.com/louistrue/T-Display-S3-Long/internal/gfx"
	"github.com/louistrue/T-Display-S3-Long/internal/monitor"
)

// diagConsole replaces the UI with a scrolling text console for panel
// bring-up: every refresh dumps the snapshot as plain lines.
type diagConsole struct {
	term   *tinyterm.Terminal
	canvas *gfx.Canvas
}

func newDiagConsole(c *gfx.Canvas) *diagConsole {
	t := tinyterm.NewTerminal(c)
	t.Configure(&tinyterm.Config{
		Font:              term6x8.Font,
		FontHeight:        10,
		FontOffset:        8,
		UseSoftwareScroll: true,
	})
	return &diagConsole{term: t, canvas: c}
}

func (d *diagConsole) report(snap monitor.Snapshot, nowMs int64) {
	d.term.Printf("-- refresh @%dms --\r\n", nowMs)
	for _, m := range snap.Monitors {
		d.term.Printf("%-4s %3dms %s\r\n", m.Status, m.PingMs, m.Name)
	}
	if snap.Track.Title != "" {
		state := "paused"
		if snap.Track.Playing {
			state = "playing"
		}
		d.term.Printf("np: %s - %s (%s)\r\n", snap.Track.Artist, snap.Track.Title, state)
	}
	d.term.Display()
	_ = d.canvas.Display()
}
