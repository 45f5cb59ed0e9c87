package touch

// Config holds the gesture thresholds. Zero values are replaced by the
// defaults, so a partially filled literal is safe in tests.
type Config struct {
	MoveThresholdPx   int
	TapTimeMs         int64
	SwipeDistPx       int
	SwipeTimeMs       int64
	SwipeZoneHeightPx int
}

// DefaultConfig returns the tuned thresholds for the 180x640 panel.
func DefaultConfig() Config {
	return Config{
		MoveThresholdPx:   15,
		TapTimeMs:         500,
		SwipeDistPx:       80,
		SwipeTimeMs:       1000,
		SwipeZoneHeightPx: 80,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MoveThresholdPx <= 0 {
		c.MoveThresholdPx = d.MoveThresholdPx
	}
	if c.TapTimeMs <= 0 {
		c.TapTimeMs = d.TapTimeMs
	}
	if c.SwipeDistPx <= 0 {
		c.SwipeDistPx = d.SwipeDistPx
	}
	if c.SwipeTimeMs <= 0 {
		c.SwipeTimeMs = d.SwipeTimeMs
	}
	if c.SwipeZoneHeightPx <= 0 {
		c.SwipeZoneHeightPx = d.SwipeZoneHeightPx
	}
	return c
}

// EventKind is the outcome of one gesture step.
type EventKind uint8

const (
	EventNone EventKind = iota
	// EventTap fires at touch-up for a short, still press. X/Y carry the
	// last known position.
	EventTap
	// EventDrag fires once per poll while dragging outside the swipe
	// zone; DeltaY is the incremental vertical movement since the
	// previous poll.
	EventDrag
	// EventSwipe fires at touch-up for a fast, long, vertically dominant
	// motion that started inside the swipe zone. Down reports direction.
	EventSwipe
	// EventDragEnd closes a drag cycle; the deltas were already emitted.
	EventDragEnd
)

// Event is a single gesture output. At most one event per Step call.
type Event struct {
	Kind   EventKind
	X      int
	Y      int
	DeltaY int
	Down   bool
}

type gestureState uint8

const (
	stateIdle gestureState = iota
	statePressed
	stateDragging
)

// Gesture tracks one touch-down-to-up cycle. There is never more than
// one cycle in flight; the machine's transition function is total.
type Gesture struct {
	cfg Config
	st  gestureState

	startX  int
	startY  int
	startMs int64

	lastX int
	lastY int
	prevY int

	inSwipeZone bool
}

func NewGesture(cfg Config) *Gesture {
	return &Gesture{cfg: cfg.withDefaults()}
}

// Step advances the machine with one decoded sample. An absent sample
// while touching is the touch-up; the classification uses the last known
// position since the controller usually reports nothing at the up poll.
func (g *Gesture) Step(s Sample, nowMs int64) Event {
	switch g.st {
	case stateIdle:
		if !s.Present {
			return Event{}
		}
		g.st = statePressed
		g.startX = s.X
		g.startY = s.Y
		g.startMs = nowMs
		g.lastX = s.X
		g.lastY = s.Y
		g.prevY = s.Y
		g.inSwipeZone = s.Y < g.cfg.SwipeZoneHeightPx
		return Event{}

	case statePressed:
		if !s.Present {
			g.st = stateIdle
			return g.classify(nowMs)
		}
		g.lastX = s.X
		g.lastY = s.Y
		if abs(s.X-g.startX) > g.cfg.MoveThresholdPx || abs(s.Y-g.startY) > g.cfg.MoveThresholdPx {
			g.st = stateDragging
			delta := s.Y - g.prevY
			g.prevY = s.Y
			// The swipe zone is swipe-exclusive: drags starting there
			// never scroll, they either become a swipe or are discarded.
			if !g.inSwipeZone && delta != 0 {
				return Event{Kind: EventDrag, DeltaY: delta}
			}
		}
		return Event{}

	case stateDragging:
		if !s.Present {
			g.st = stateIdle
			return g.classify(nowMs)
		}
		g.lastX = s.X
		g.lastY = s.Y
		if g.inSwipeZone {
			return Event{}
		}
		delta := s.Y - g.prevY
		g.prevY = s.Y
		if delta == 0 {
			return Event{}
		}
		return Event{Kind: EventDrag, DeltaY: delta}
	}
	return Event{}
}

// classify emits the single terminal event for the finished cycle.
func (g *Gesture) classify(nowMs int64) Event {
	dur := nowMs - g.startMs
	dx := g.lastX - g.startX
	dy := g.lastY - g.startY

	if dur < g.cfg.TapTimeMs && abs(dx) < g.cfg.MoveThresholdPx && abs(dy) < g.cfg.MoveThresholdPx {
		return Event{Kind: EventTap, X: g.lastX, Y: g.lastY}
	}

	if g.inSwipeZone && dur < g.cfg.SwipeTimeMs && abs(dy) >= g.cfg.SwipeDistPx && abs(dy) > abs(dx) {
		return Event{Kind: EventSwipe, X: g.lastX, Y: g.lastY, Down: dy > 0}
	}

	return Event{Kind: EventDragEnd, X: g.lastX, Y: g.lastY}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
