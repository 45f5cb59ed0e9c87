package monitor

import "testing"

func TestSimProviderDeterministic(t *testing.T) {
	a := NewSimProvider(42)
	b := NewSimProvider(42)

	for i := int64(0); i < 5; i++ {
		a.Refresh(i * 1000)
		b.Refresh(i * 1000)
		sa, sb := a.Snapshot(), b.Snapshot()
		if len(sa.Monitors) != len(sb.Monitors) {
			t.Fatalf("refresh %d: %d vs %d monitors", i, len(sa.Monitors), len(sb.Monitors))
		}
		for j := range sa.Monitors {
			if sa.Monitors[j] != sb.Monitors[j] {
				t.Fatalf("refresh %d monitor %d: %+v vs %+v", i, j, sa.Monitors[j], sb.Monitors[j])
			}
		}
		if sa.Track != sb.Track {
			t.Fatalf("refresh %d track: %+v vs %+v", i, sa.Track, sb.Track)
		}
	}
}

func TestSimProviderSeedsDiffer(t *testing.T) {
	a := NewSimProvider(1)
	b := NewSimProvider(2)

	same := true
	for i := range a.Snapshot().Monitors {
		if a.Snapshot().Monitors[i] != b.Snapshot().Monitors[i] {
			same = false
			break
		}
	}
	if same && a.Snapshot().Track == b.Snapshot().Track {
		t.Fatalf("different seeds produced identical snapshots")
	}
}

func TestSimProviderZeroSeedFallsBack(t *testing.T) {
	p := NewSimProvider(0)
	if len(p.Snapshot().Monitors) == 0 {
		t.Fatalf("zero-seed provider produced no monitors")
	}
}

func TestSimProviderStampsSnapshot(t *testing.T) {
	p := NewSimProvider(7)
	p.Refresh(12_345)

	snap := p.Snapshot()
	if snap.TakenAtMs != 12_345 {
		t.Fatalf("TakenAtMs = %d, want 12345", snap.TakenAtMs)
	}
	if snap.Track.FetchedAtMs != 12_345 {
		t.Fatalf("Track.FetchedAtMs = %d, want 12345", snap.Track.FetchedAtMs)
	}
}

func TestSimProviderBounds(t *testing.T) {
	p := NewSimProvider(9)
	for i := 0; i < 20; i++ {
		p.Refresh(int64(i))
		snap := p.Snapshot()
		if len(snap.Monitors) > MaxMonitors {
			t.Fatalf("refresh %d: %d monitors, cap %d", i, len(snap.Monitors), MaxMonitors)
		}
		for _, m := range snap.Monitors {
			if m.Status == StatusDown && m.PingMs != 0 {
				t.Fatalf("down monitor %q has ping %d", m.Name, m.PingMs)
			}
			if m.PingMs < 0 || m.PingMs > 127 {
				t.Fatalf("monitor %q ping %d out of range", m.Name, m.PingMs)
			}
		}
		if tr := snap.Track; tr.DurationMs > 0 && (tr.PositionMs < 0 || tr.PositionMs >= tr.DurationMs) {
			t.Fatalf("refresh %d: playhead %d outside 0..%d", i, tr.PositionMs, tr.DurationMs)
		}
	}
}

func TestTrackDrawIndexIsUnsigned(t *testing.T) {
	// Draws with the top bit set would go negative through a 32-bit int;
	// the unsigned modulo must keep them inside the table.
	for _, draw := range []uint32{0x80000000, 0xfffffffd, 0xffffffff} {
		idx := draw % uint32(len(simTracks))
		if int32(idx) < 0 || int(idx) >= len(simTracks) {
			t.Fatalf("draw %#x maps to index %d, want 0..%d", draw, int32(idx), len(simTracks)-1)
		}
	}
}

func TestRefreshTrackAlwaysFromTable(t *testing.T) {
	for seed := uint32(1); seed <= 200; seed++ {
		p := NewSimProvider(seed)
		for i := 0; i < 8; i++ {
			p.Refresh(int64(i) * 1000)
			tr := p.Snapshot().Track
			found := false
			for _, want := range simTracks {
				if tr.Title == want.Title && tr.Artist == want.Artist {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("seed %d refresh %d: track %q not from the table", seed, i, tr.Title)
			}
		}
	}
}

func TestStatusString(t *testing.T) {
	cases := []struct {
		st   Status
		want string
	}{
		{StatusPending, "WAIT"},
		{StatusUp, "UP"},
		{StatusDown, "DOWN"},
	}
	for _, c := range cases {
		if got := c.st.String(); got != c.want {
			t.Fatalf("Status(%d).String() = %q, want %q", c.st, got, c.want)
		}
	}
}
