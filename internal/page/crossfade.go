package page

import "time"

// DefaultCrossfadeInterval is how long each background stays in the foreground.
const DefaultCrossfadeInterval = 5 * time.Second

// Crossfader alternates the foreground background image on a fixed interval.
// The opacity transition itself belongs to the presentation layer.
type Crossfader struct {
	state    *UIState
	interval time.Duration
	task     *Task
}

func newCrossfader(state *UIState, interval time.Duration) *Crossfader {
	if interval <= 0 {
		interval = DefaultCrossfadeInterval
	}
	return &Crossfader{state: state, interval: interval}
}

// Start schedules the recurring toggle. Starting twice keeps a single task.
func (c *Crossfader) Start(s *Scheduler) {
	if !c.task.Cancelled() {
		return
	}
	c.task = s.Every(c.interval, func(time.Time) { c.Toggle() })
}

// Toggle swaps the foreground index between 0 and 1.
func (c *Crossfader) Toggle() {
	c.state.background = 1 - c.state.background
}

// Stop cancels the recurring toggle.
func (c *Crossfader) Stop() {
	c.task.Cancel()
}

// Interval returns the configured toggle interval.
func (c *Crossfader) Interval() time.Duration {
	return c.interval
}
