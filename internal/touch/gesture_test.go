package touch

import "testing"

func press(x, y int) Sample { return Sample{Present: true, X: x, Y: y} }

func TestTapShortStillPress(t *testing.T) {
	g := NewGesture(Config{})

	if ev := g.Step(press(10, 10), 0); ev.Kind != EventNone {
		t.Fatalf("touch-down emitted %v, want none", ev.Kind)
	}
	if ev := g.Step(press(12, 14), 150); ev.Kind != EventNone {
		t.Fatalf("hold emitted %v, want none", ev.Kind)
	}
	ev := g.Step(Sample{}, 300)
	if ev.Kind != EventTap {
		t.Fatalf("touch-up emitted %v, want tap", ev.Kind)
	}
	if ev.X != 12 || ev.Y != 14 {
		t.Fatalf("tap at (%d,%d), want last-known (12,14)", ev.X, ev.Y)
	}
}

func TestTapTooSlowBecomesDragEnd(t *testing.T) {
	g := NewGesture(Config{})

	g.Step(press(10, 100), 0)
	if ev := g.Step(Sample{}, 600); ev.Kind != EventDragEnd {
		t.Fatalf("slow press classified %v, want drag end", ev.Kind)
	}
}

func TestSwipeDownFromTopBand(t *testing.T) {
	g := NewGesture(Config{})

	g.Step(press(90, 30), 0)
	// Movement through the swipe zone must not leak drag deltas.
	if ev := g.Step(press(90, 70), 100); ev.Kind != EventNone {
		t.Fatalf("zone movement emitted %v, want none", ev.Kind)
	}
	if ev := g.Step(press(90, 120), 250); ev.Kind != EventNone {
		t.Fatalf("zone movement emitted %v, want none", ev.Kind)
	}
	ev := g.Step(Sample{}, 400)
	if ev.Kind != EventSwipe {
		t.Fatalf("touch-up emitted %v, want swipe", ev.Kind)
	}
	if !ev.Down {
		t.Fatalf("swipe direction up, want down")
	}
}

func TestSwipeHorizontalDominantDiscarded(t *testing.T) {
	g := NewGesture(Config{})

	// Vertical travel clears the distance bar but the motion is mostly
	// sideways, so it is not a swipe.
	g.Step(press(10, 30), 0)
	g.Step(press(170, 115), 200)
	if ev := g.Step(Sample{}, 300); ev.Kind != EventDragEnd {
		t.Fatalf("diagonal motion classified %v, want drag end", ev.Kind)
	}
}

func TestSwipeTooShortDiscarded(t *testing.T) {
	g := NewGesture(Config{})

	g.Step(press(90, 30), 0)
	g.Step(press(90, 80), 100)
	if ev := g.Step(Sample{}, 200); ev.Kind != EventDragEnd {
		t.Fatalf("50px zone motion classified %v, want drag end", ev.Kind)
	}
}

func TestSwipeTooSlowDiscarded(t *testing.T) {
	g := NewGesture(Config{})

	g.Step(press(90, 30), 0)
	g.Step(press(90, 150), 600)
	if ev := g.Step(Sample{}, 1200); ev.Kind != EventDragEnd {
		t.Fatalf("slow zone motion classified %v, want drag end", ev.Kind)
	}
}

func TestSwipeRequiresZoneStart(t *testing.T) {
	g := NewGesture(Config{})

	// Same motion as a valid swipe, but starting below the zone scrolls
	// instead.
	g.Step(press(90, 200), 0)
	if ev := g.Step(press(90, 300), 100); ev.Kind != EventDrag {
		t.Fatalf("below-zone motion emitted %v, want drag", ev.Kind)
	}
	if ev := g.Step(Sample{}, 200); ev.Kind != EventDragEnd {
		t.Fatalf("below-zone release classified %v, want drag end", ev.Kind)
	}
}

func TestDragEmitsIncrementalDeltas(t *testing.T) {
	g := NewGesture(Config{})

	g.Step(press(50, 300), 0)
	ev := g.Step(press(50, 330), 50)
	if ev.Kind != EventDrag || ev.DeltaY != 30 {
		t.Fatalf("first move = %v delta %d, want drag 30", ev.Kind, ev.DeltaY)
	}
	ev = g.Step(press(50, 320), 100)
	if ev.Kind != EventDrag || ev.DeltaY != -10 {
		t.Fatalf("second move = %v delta %d, want drag -10", ev.Kind, ev.DeltaY)
	}
	// A still poll mid-drag emits nothing.
	if ev := g.Step(press(50, 320), 150); ev.Kind != EventNone {
		t.Fatalf("still poll emitted %v, want none", ev.Kind)
	}
	if ev := g.Step(Sample{}, 200); ev.Kind != EventDragEnd {
		t.Fatalf("release emitted %v, want drag end", ev.Kind)
	}
}

func TestSmallJitterStaysPressed(t *testing.T) {
	g := NewGesture(Config{})

	g.Step(press(50, 300), 0)
	// Within the move threshold: no drag starts.
	if ev := g.Step(press(55, 310), 50); ev.Kind != EventNone {
		t.Fatalf("jitter emitted %v, want none", ev.Kind)
	}
	if ev := g.Step(Sample{}, 100); ev.Kind != EventTap {
		t.Fatalf("release classified %v, want tap", ev.Kind)
	}
}

func TestIdleAbsentSampleIsNoop(t *testing.T) {
	g := NewGesture(Config{})

	for i := int64(0); i < 3; i++ {
		if ev := g.Step(Sample{}, i*10); ev.Kind != EventNone {
			t.Fatalf("idle poll emitted %v, want none", ev.Kind)
		}
	}
}

func TestCycleResetsAfterRelease(t *testing.T) {
	g := NewGesture(Config{})

	g.Step(press(90, 30), 0)
	g.Step(press(90, 120), 200)
	g.Step(Sample{}, 300)

	// The next cycle below the zone must not inherit the zone flag.
	g.Step(press(50, 300), 1000)
	if ev := g.Step(press(50, 340), 1050); ev.Kind != EventDrag {
		t.Fatalf("fresh cycle emitted %v, want drag", ev.Kind)
	}
}
