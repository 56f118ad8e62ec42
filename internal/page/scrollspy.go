package page

import "time"

// DefaultProbeOffset compensates for the fixed header when probing the scroll position.
const DefaultProbeOffset = 100

// ActiveSection returns the first section, in order, whose extent contains
// probe. Sections the layout cannot measure are skipped.
func ActiveSection(sections []SectionID, layout Layout, probe float64) (SectionID, bool) {
	if layout == nil {
		return "", false
	}
	for _, id := range sections {
		rect, ok := layout.Geometry(id)
		if !ok {
			continue
		}
		if rect.Contains(probe) {
			return id, true
		}
	}
	return "", false
}

// ScrollSpy keeps UIState.activeSection in step with the scroll position.
type ScrollSpy struct {
	state    *UIState
	sections []SectionID
	layout   Layout
	probe    float64

	throttle *throttle
	scroll   float64
	pending  bool
}

func newScrollSpy(state *UIState, sections []SectionID, layout Layout, probe float64, minInterval time.Duration) *ScrollSpy {
	return &ScrollSpy{
		state:    state,
		sections: sections,
		layout:   layout,
		probe:    probe,
		throttle: newThrottle(minInterval),
	}
}

// Observe records a scroll offset and recomputes the active section unless the
// throttle defers it; a deferred computation is flushed by Flush.
func (s *ScrollSpy) Observe(scroll float64, now time.Time) bool {
	s.scroll = scroll
	if !s.throttle.allow(now) {
		s.pending = true
		return false
	}
	return s.recompute()
}

// Flush runs a deferred recomputation once the throttle window has passed.
func (s *ScrollSpy) Flush(now time.Time) bool {
	if !s.pending || !s.throttle.allow(now) {
		return false
	}
	return s.recompute()
}

// Recompute ignores the throttle; resize notifications use it.
func (s *ScrollSpy) Recompute() bool {
	return s.recompute()
}

func (s *ScrollSpy) recompute() bool {
	s.pending = false
	id, ok := ActiveSection(s.sections, s.layout, s.scroll+s.probe)
	if !ok || id == s.state.activeSection {
		return false
	}
	s.state.activeSection = id
	return true
}

// throttle admits at most one operation per interval of caller supplied time.
type throttle struct {
	interval time.Duration
	next     time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

func (t *throttle) allow(now time.Time) bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	if now.Before(t.next) {
		return false
	}
	t.next = now.Add(t.interval)
	return true
}
