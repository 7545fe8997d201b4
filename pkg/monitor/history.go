package monitor

import (
	"sync"

	"github.com/samber/lo"

	"speedscreen/pkg/radar"
)

func NewHistory(max int) *History {
	if max < 1 {
		max = 1
	}
	return &History{max: max}
}

// History keeps the last max readings, oldest first.
type History struct {
	l     sync.RWMutex
	max   int
	items []radar.Reading
}

func (h *History) Add(r radar.Reading) {
	h.l.Lock()
	defer h.l.Unlock()

	h.items = append(h.items, r)
	if len(h.items) > h.max {
		h.items = h.items[len(h.items)-h.max:]
	}
}

func (h *History) Logs() []radar.Reading {
	h.l.RLock()
	defer h.l.RUnlock()
	return append([]radar.Reading(nil), h.items...)
}

func (h *History) Curr() (radar.Reading, bool) {
	h.l.RLock()
	defer h.l.RUnlock()
	r, err := lo.Last(h.items)
	return r, err == nil
}

func (h *History) Prev() (radar.Reading, bool) {
	h.l.RLock()
	defer h.l.RUnlock()
	r, err := lo.Nth(h.items, -2)
	return r, err == nil
}

// Peak is the fastest kept reading.
func (h *History) Peak() (radar.Reading, bool) {
	h.l.RLock()
	defer h.l.RUnlock()

	if len(h.items) == 0 {
		return radar.Reading{}, false
	}
	peak := h.items[0]
	for _, r := range h.items[1:] {
		peak = lo.Ternary(r.Velocity > peak.Velocity, r, peak)
	}
	return peak, true
}
