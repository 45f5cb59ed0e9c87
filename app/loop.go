package app

import (
	"time"

	"github.com/louistrue/T-Display-S3-Long/hal"
	"github.com/louistrue/T-Display-S3-Long/internal/gfx"
	"github.com/louistrue/T-Display-S3-Long/internal/monitor"
	"github.com/louistrue/T-Display-S3-Long/internal/touch"
	"github.com/louistrue/T-Display-S3-Long/internal/ui"
)

// engine runs the cooperative loop. One step: fold time, poll touch,
// advance the gesture and view machines, refresh data at decision
// points, redraw when dirty. The framebuffer has exactly one writer by
// construction; nothing here needs a lock.
type engine struct {
	log      hal.Logger
	touchHW  hal.Touchscreen
	canvas   *gfx.Canvas
	ticks    <-chan uint64
	provider monitor.Provider

	decoder *touch.Decoder
	gesture *touch.Gesture
	view    *ui.State
	diag    *diagConsole

	nowMs         int64
	lastRefreshMs int64
}

func newEngine(h hal.HAL, cfg Config) *engine {
	e := &engine{log: h.Logger()}

	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	e.canvas = gfx.NewCanvas(fb)

	if in := h.Input(); in != nil {
		e.touchHW = in.Touchscreen()
	}
	if t := h.Time(); t != nil {
		e.ticks = t.Ticks()
	}

	uiCfg := ui.DefaultConfig()
	if e.canvas.Width() > 0 && e.canvas.Height() > 0 {
		uiCfg.Width = e.canvas.Width()
		uiCfg.Height = e.canvas.Height()
	}
	e.view = ui.NewState(uiCfg)
	e.decoder = touch.NewDecoder(uiCfg.Width, uiCfg.Height)
	e.gesture = touch.NewGesture(touch.DefaultConfig())

	e.provider = cfg.Provider
	if e.provider == nil {
		e.provider = monitor.NewSimProvider(cfg.Seed)
	}

	if cfg.Diag {
		e.diag = newDiagConsole(e.canvas)
	}

	if bl := h.Backlight(); bl != nil {
		bl.High()
	}

	e.refresh()
	if e.log != nil {
		e.log.WriteLineString("app: started")
	}
	return e
}

// advanceClock folds pending HAL ticks into the monotonic ms counter.
func (e *engine) advanceClock() {
	if e.ticks == nil {
		return
	}
	for {
		select {
		case seq := <-e.ticks:
			if int64(seq) > e.nowMs {
				e.nowMs = int64(seq)
			}
		default:
			return
		}
	}
}

// refresh pulls a new snapshot synchronously and reconciles the view.
// The UI is not updated while the provider works; that is the accepted
// trade-off of the single-threaded design.
func (e *engine) refresh() {
	e.provider.Refresh(e.nowMs)
	e.lastRefreshMs = e.nowMs
	snap := e.provider.Snapshot()
	e.view.SnapshotReplaced(len(snap.Monitors))
	if e.diag != nil {
		e.diag.report(snap, e.nowMs)
	}
}

func (e *engine) step() error {
	e.advanceClock()

	var raw hal.TouchData
	if e.touchHW != nil {
		raw, _ = e.touchHW.Poll()
	}
	sample := e.decoder.Decode(raw)
	ev := e.gesture.Step(sample, e.nowMs)
	e.view.HandleEvent(ev, e.nowMs)
	e.view.Tick(e.nowMs)

	autoDue := e.view.Config().AutoRefreshMs > 0 &&
		e.nowMs-e.lastRefreshMs >= e.view.Config().AutoRefreshMs
	if e.view.TakeRefreshRequest() || autoDue {
		e.refresh()
	}

	if e.diag != nil {
		// Diag mode owns the screen; the console draws on report.
		e.view.ConsumeDirty()
		return nil
	}

	if e.view.ConsumeDirty() {
		ui.Render(e.canvas, e.view, e.provider.Snapshot(), e.nowMs)
		if err := e.canvas.Display(); err != nil {
			return err
		}
	}
	return nil
}

// yield gives the scheduler a breather between hardware loop passes.
func yield() {
	time.Sleep(5 * time.Millisecond)
}
