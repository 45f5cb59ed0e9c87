package ui

import (
	"bytes"
	"testing"

	"github.com/louistrue/T-Display-S3-Long/hal"
	"github.com/louistrue/T-Display-S3-Long/internal/gfx"
	"github.com/louistrue/T-Display-S3-Long/internal/monitor"
)

type testFB struct {
	w, h int
	buf  []byte
}

func newTestFB(w, h int) *testFB {
	return &testFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) ClearRGB(r, g, b uint8)  {}
func (f *testFB) Present() error          { return nil }

func testSnapshot(n int) monitor.Snapshot {
	snap := monitor.Snapshot{TakenAtMs: 1000}
	for i := 0; i < n; i++ {
		snap.Monitors = append(snap.Monitors, monitor.Monitor{
			ID:        i + 1,
			Name:      "SVC",
			URL:       "https://svc.example",
			Status:    monitor.StatusUp,
			UptimePct: 99.5,
			PingMs:    42,
		})
	}
	return snap
}

func renderOnce(s *State, snap monitor.Snapshot, nowMs int64) []byte {
	fb := newTestFB(180, 640)
	Render(gfx.NewCanvas(fb), s, snap, nowMs)
	return fb.buf
}

func TestRenderIsDeterministic(t *testing.T) {
	s := newListState(20)
	s.HandleEvent(drag(-200), 0)
	snap := testSnapshot(20)

	a := renderOnce(s, snap, 5000)
	b := renderOnce(s, snap, 5000)
	if !bytes.Equal(a, b) {
		t.Fatalf("two renders of identical inputs differ")
	}
}

func TestRenderAllScreensProduceOutput(t *testing.T) {
	snap := testSnapshot(5)
	snap.Track = monitor.Track{
		Title: "SONG", Artist: "BAND",
		DurationMs: 180_000, PositionMs: 30_000,
		Playing: true, FetchedAtMs: 1000,
	}

	for _, open := range []func(s *State){
		func(s *State) {},
		func(s *State) { s.HandleEvent(tap(90, 100), 0) },
		func(s *State) { s.HandleEvent(swipeDown(), 0) },
	} {
		s := newListState(5)
		open(s)
		buf := renderOnce(s, snap, 2000)
		lit := false
		for _, b := range buf {
			if b != 0 {
				lit = true
				break
			}
		}
		if !lit {
			t.Fatalf("screen %v rendered an all-black frame", s.Screen())
		}
	}
}

func TestEmptySnapshotHasNoScrollbar(t *testing.T) {
	s := newListState(0)
	fb := newTestFB(180, 640)
	c := gfx.NewCanvas(fb)
	Render(c, s, monitor.Snapshot{}, 0)

	// The scrollbar track lives in the rightmost 4 columns below the
	// header; an empty list must leave it black.
	for y := 70; y < 640; y++ {
		for x := 176; x < 180; x++ {
			if r, g, b := c.PixelAt(x, y); r != 0 || g != 0 || b != 0 {
				t.Fatalf("scrollbar pixel lit at (%d,%d) with no content", x, y)
			}
		}
	}
}

func TestOverflowingListHasScrollbar(t *testing.T) {
	s := newListState(20)
	fb := newTestFB(180, 640)
	c := gfx.NewCanvas(fb)
	Render(c, s, testSnapshot(20), 0)

	lit := false
	for y := 70; y < 640 && !lit; y++ {
		for x := 176; x < 180; x++ {
			if r, g, b := c.PixelAt(x, y); r != 0 || g != 0 || b != 0 {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Fatalf("20-row list rendered no scrollbar thumb")
	}
}

func TestStaleDetailFallsBackToList(t *testing.T) {
	s := newListState(5)
	s.HandleEvent(tap(90, 100+4*95), 0) // detail of row 4

	// Render against a snapshot that no longer has that record: both
	// frames must be the plain list, not stale detail data.
	small := testSnapshot(2)
	a := renderOnce(s, small, 3000)

	list := newListState(5)
	b := renderOnce(list, small, 3000)
	if !bytes.Equal(a, b) {
		t.Fatalf("stale detail render differs from the list render")
	}
}

func TestMarqueeRotatesLongText(t *testing.T) {
	if got := marqueeText("ABCDE", 3, 0, 300); got != "ABC" {
		t.Fatalf("phase 0 = %q, want %q", got, "ABC")
	}
	if got := marqueeText("ABCDE", 3, 300, 300); got != "BCD" {
		t.Fatalf("phase 1 = %q, want %q", got, "BCD")
	}
	// The gap wraps back to the head.
	if got := marqueeText("ABCDE", 3, 6*300, 300); got != "  A" {
		t.Fatalf("phase 6 = %q, want %q", got, "  A")
	}
	if got := marqueeText("ABCDE", 3, 8*300, 300); got != "ABC" {
		t.Fatalf("full cycle = %q, want %q", got, "ABC")
	}
}

func TestMarqueeShortTextUntouched(t *testing.T) {
	if got := marqueeText("AB", 3, 900, 300); got != "AB" {
		t.Fatalf("short text = %q, want unchanged", got)
	}
}

func TestFmtClock(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "0:00"},
		{59_999, "0:59"},
		{60_000, "1:00"},
		{754_000, "12:34"},
		{-5, "0:00"},
	}
	for _, c := range cases {
		if got := fmtClock(c.ms); got != c.want {
			t.Fatalf("fmtClock(%d) = %q, want %q", c.ms, got, c.want)
		}
	}
}
