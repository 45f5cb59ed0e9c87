// Package ui holds the view state machine and the renderer for the
// status panel. The state machine consumes gesture events and timer
// ticks; rendering is a pure function of (state, snapshot, now).
package ui

import "github.com/louistrue/T-Display-S3-Long/internal/touch"

// Screen identifies the active view.
type Screen uint8

const (
	ScreenList Screen = iota
	ScreenDetail
	ScreenNowPlaying
)

// Config fixes the panel geometry and view timing.
type Config struct {
	Width  int
	Height int

	HeaderHeight int
	RowHeight    int

	DetailTimeoutMs int64
	MarqueeStepMs   int64
	AutoRefreshMs   int64
}

// DefaultConfig matches the 180x640 portrait panel.
func DefaultConfig() Config {
	return Config{
		Width:           180,
		Height:          640,
		HeaderHeight:    70,
		RowHeight:       95,
		DetailTimeoutMs: 10_000,
		MarqueeStepMs:   300,
		AutoRefreshMs:   30_000,
	}
}

// State is the single process-wide view state. All mutation goes through
// the Handle*/Tick methods, which keep the invariants: scroll stays in
// [0, maxScroll] and the detail index is valid or the screen is not
// Detail.
type State struct {
	cfg Config

	screen      Screen
	detailIndex int
	scroll      int

	detailEnteredAt int64
	monitorCount    int

	marqueePhase int64

	dirty         bool
	refreshWanted bool
}

// NewState starts on the list screen with a pending first render.
func NewState(cfg Config) *State {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg = DefaultConfig()
	}
	return &State{cfg: cfg, screen: ScreenList, detailIndex: -1, dirty: true}
}

func (s *State) Config() Config    { return s.cfg }
func (s *State) Screen() Screen    { return s.screen }
func (s *State) DetailIndex() int  { return s.detailIndex }
func (s *State) ScrollOffset() int { return s.scroll }

// viewportHeight is the list area below the header.
func (s *State) viewportHeight() int {
	return s.cfg.Height - s.cfg.HeaderHeight
}

// maxScroll is max(0, contentHeight - viewportHeight).
func (s *State) maxScroll() int {
	m := s.monitorCount*s.cfg.RowHeight - s.viewportHeight()
	if m < 0 {
		m = 0
	}
	return m
}

func (s *State) clampScroll() {
	if s.scroll < 0 {
		s.scroll = 0
	}
	if m := s.maxScroll(); s.scroll > m {
		s.scroll = m
	}
}

// HandleEvent feeds one gesture event into the machine.
func (s *State) HandleEvent(ev touch.Event, nowMs int64) {
	switch ev.Kind {
	case touch.EventTap:
		s.handleTap(ev.X, ev.Y, nowMs)
	case touch.EventDrag:
		s.handleDrag(ev.DeltaY)
	case touch.EventSwipe:
		s.handleSwipe(ev.Down)
	}
}

func (s *State) handleTap(x, y int, nowMs int64) {
	_ = x
	switch s.screen {
	case ScreenList:
		if y < s.cfg.HeaderHeight {
			s.refreshWanted = true
			return
		}
		row := (y - s.cfg.HeaderHeight + s.scroll) / s.cfg.RowHeight
		if row >= 0 && row < s.monitorCount {
			s.screen = ScreenDetail
			s.detailIndex = row
			s.detailEnteredAt = nowMs
			s.dirty = true
		}
	case ScreenDetail:
		// Any tap keeps the detail view alive.
		s.detailEnteredAt = nowMs
	case ScreenNowPlaying:
		// Header and album art both act as the refresh surface.
		if y < s.cfg.HeaderHeight || y < npArtBottom {
			s.refreshWanted = true
		}
	}
}

func (s *State) handleDrag(deltaY int) {
	if s.screen != ScreenList {
		return
	}
	old := s.scroll
	s.scroll -= deltaY
	s.clampScroll()
	if s.scroll != old {
		s.dirty = true
	}
}

// handleSwipe toggles List and NowPlaying. Each mode's sub-state (the
// list scroll, the detail selection none) persists across the toggle.
func (s *State) handleSwipe(down bool) {
	if !down {
		return
	}
	switch s.screen {
	case ScreenList:
		s.screen = ScreenNowPlaying
		s.dirty = true
	case ScreenNowPlaying:
		s.screen = ScreenList
		s.dirty = true
	}
}

// Tick advances timers: the detail auto-return and the marquee phase.
func (s *State) Tick(nowMs int64) {
	if s.screen == ScreenDetail && nowMs-s.detailEnteredAt >= s.cfg.DetailTimeoutMs {
		s.screen = ScreenList
		s.detailIndex = -1
		s.dirty = true
	}

	if s.cfg.MarqueeStepMs > 0 {
		phase := nowMs / s.cfg.MarqueeStepMs
		if phase != s.marqueePhase {
			s.marqueePhase = phase
			s.dirty = true
		}
	}
}

// SnapshotReplaced reconciles the state with a new snapshot of n
// records: a detail index that no longer exists forces List, and the
// scroll re-clamps against the new content height.
func (s *State) SnapshotReplaced(n int) {
	s.monitorCount = n
	if s.screen == ScreenDetail && (s.detailIndex < 0 || s.detailIndex >= n) {
		s.screen = ScreenList
		s.detailIndex = -1
	}
	s.clampScroll()
	s.dirty = true
}

// TakeRefreshRequest consumes a pending header-tap refresh request.
func (s *State) TakeRefreshRequest() bool {
	r := s.refreshWanted
	s.refreshWanted = false
	return r
}

// ConsumeDirty reports whether a redraw is due and clears the flag.
func (s *State) ConsumeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}
