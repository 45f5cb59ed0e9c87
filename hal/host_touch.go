//go:build !tinygo

package hal

import "sync"

// hostTouch latches the most recent simulated controller sample. The
// window backend writes one sample per frame; Poll hands out whatever is
// latched, which matches the real controller's read-current-state model.
type hostTouch struct {
	mu     sync.Mutex
	sample TouchData
}

func newHostTouch() *hostTouch {
	return &hostTouch{}
}

func (t *hostTouch) Poll() (TouchData, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sample, nil
}

// setDisplayPoint injects a touch at display coordinates, converting to
// the controller's landscape frame so the decoder transform stays on the
// host code path too.
func (t *hostTouch) setDisplayPoint(down bool, dispX, dispY int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !down {
		t.sample = TouchData{}
		return
	}
	if dispX < 0 {
		dispX = 0
	}
	if dispX >= hostPanelWidth {
		dispX = hostPanelWidth - 1
	}
	if dispY < 0 {
		dispY = 0
	}
	if dispY >= hostPanelHeight {
		dispY = hostPanelHeight - 1
	}
	t.sample = TouchData{
		Present: true,
		Points:  1,
		X:       hostPanelHeight - 1 - dispY,
		Y:       dispX,
	}
}
