// Package monitor holds the display records the UI renders: the service
// fleet and the now-playing track. Snapshots come from a provider
// collaborator and are replaced wholesale; the wire format, retries and
// truncation all live on the provider's side of that contract.
package monitor

// MaxMonitors bounds a snapshot. Providers truncate before publishing.
const MaxMonitors = 20

// Status is a service's last known state tag.
type Status uint8

const (
	StatusPending Status = iota
	StatusUp
	StatusDown
)

func (s Status) String() string {
	switch s {
	case StatusUp:
		return "UP"
	case StatusDown:
		return "DOWN"
	default:
		return "WAIT"
	}
}

// Monitor is one service-uptime record.
type Monitor struct {
	ID        int
	Name      string
	URL       string
	Status    Status
	UptimePct float64
	PingMs    int
}

// Track is the now-playing record. PositionMs is the playhead at
// FetchedAtMs; renderers extrapolate from there while Playing.
type Track struct {
	Title      string
	Artist     string
	DurationMs int64
	PositionMs int64
	Playing    bool
	FetchedAtMs int64
}

// Snapshot is the read-only record set the UI renders. A provider
// replaces it wholesale; the UI never mutates one.
type Snapshot struct {
	Monitors  []Monitor
	Track     Track
	TakenAtMs int64
}

// Provider supplies snapshots. Refresh is synchronous and is invoked
// only from the main loop at explicit decision points (header tap,
// periodic timer).
type Provider interface {
	Snapshot() Snapshot
	Refresh(nowMs int64)
}
