package monitor

// SimProvider is a deterministic stand-in for the network collaborator,
// used on the host the same way the host HAL fakes its hardware inputs.
// Same seed, same tap sequence, same snapshots.
type SimProvider struct {
	rng  uint32
	snap Snapshot
}

var simFleet = []Monitor{
	{ID: 1, Name: "edge-gateway", URL: "https://gw.example.net", UptimePct: 99.98},
	{ID: 2, Name: "api-core", URL: "https://api.example.net", UptimePct: 99.95},
	{ID: 3, Name: "postgres-primary", URL: "db01.internal:5432", UptimePct: 100},
	{ID: 4, Name: "object-storage", URL: "https://s3.example.net", UptimePct: 99.99},
	{ID: 5, Name: "auth-service", URL: "https://auth.example.net", UptimePct: 99.90},
	{ID: 6, Name: "build-runner", URL: "ci.internal:8080", UptimePct: 98.72},
	{ID: 7, Name: "mail-relay", URL: "smtp.example.net:587", UptimePct: 99.40},
	{ID: 8, Name: "grafana", URL: "https://metrics.example.net", UptimePct: 99.87},
	{ID: 9, Name: "backup-nas", URL: "nas.internal:445", UptimePct: 97.60},
	{ID: 10, Name: "home-assistant", URL: "hass.internal:8123", UptimePct: 99.10},
}

var simTracks = []Track{
	{Title: "Harvest Moon", Artist: "Neil Young", DurationMs: 303_000},
	{Title: "Breathe (In the Air)", Artist: "Pink Floyd", DurationMs: 169_000},
	{Title: "So What", Artist: "Miles Davis", DurationMs: 562_000},
	{Title: "Everything In Its Right Place", Artist: "Radiohead", DurationMs: 251_000},
}

// NewSimProvider returns a provider seeded for reproducible runs.
func NewSimProvider(seed uint32) *SimProvider {
	if seed == 0 {
		seed = 0x5eed
	}
	p := &SimProvider{rng: seed}
	p.Refresh(0)
	return p
}

func (p *SimProvider) Snapshot() Snapshot { return p.snap }

// Refresh rebuilds the snapshot: ping/uptime jitter, the occasional
// status flip, and an advancing playhead.
func (p *SimProvider) Refresh(nowMs int64) {
	mons := make([]Monitor, 0, len(simFleet))
	for _, m := range simFleet {
		m.PingMs = 8 + int(p.next()%120)
		if p.next()%17 == 0 {
			m.Status = StatusDown
			m.PingMs = 0
		} else if p.next()%23 == 0 {
			m.Status = StatusPending
		} else {
			m.Status = StatusUp
		}
		mons = append(mons, m)
	}
	if len(mons) > MaxMonitors {
		mons = mons[:MaxMonitors]
	}

	// Index with unsigned math: int(next()) flips negative on 32-bit
	// targets for half of all draws.
	tr := simTracks[p.next()%uint32(len(simTracks))]
	tr.Playing = p.next()%4 != 0
	if tr.DurationMs > 0 {
		tr.PositionMs = int64(p.next()) % tr.DurationMs
	}
	tr.FetchedAtMs = nowMs

	p.snap = Snapshot{
		Monitors:  mons,
		Track:     tr,
		TakenAtMs: nowMs,
	}
}

// next is a small xorshift PRNG; good enough for fake jitter and free of
// math/rand's global state.
func (p *SimProvider) next() uint32 {
	x := p.rng
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	p.rng = x
	return x
}
