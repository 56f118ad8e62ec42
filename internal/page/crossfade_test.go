package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossfaderAlternatesOncePerInterval(t *testing.T) {
	o, _ := newTestOrchestrator(t)
	require.Zero(t, o.Snapshot().Background)

	want := 0
	for step := 1; step <= 20; step++ {
		// Sample just before and at each boundary.
		o.Advance(epoch.Add(time.Duration(step)*DefaultCrossfadeInterval - time.Millisecond))
		assert.Equal(t, want, o.Snapshot().Background, "before boundary %d", step)

		o.Advance(epoch.Add(time.Duration(step) * DefaultCrossfadeInterval))
		want = 1 - want
		assert.Equal(t, want, o.Snapshot().Background, "at boundary %d", step)
	}
}

func TestCrossfaderCatchesUpOnSkippedFrames(t *testing.T) {
	o, _ := newTestOrchestrator(t)

	o.Advance(epoch.Add(3 * DefaultCrossfadeInterval))
	assert.Equal(t, 1, o.Snapshot().Background, "three toggles from 0 land on 1")

	o.Advance(epoch.Add(4 * DefaultCrossfadeInterval))
	assert.Equal(t, 0, o.Snapshot().Background)
}

func TestCrossfaderCustomInterval(t *testing.T) {
	o, _ := newTestOrchestrator(t, func(opts *Options) { opts.CrossfadeInterval = ms(250) })
	assert.Equal(t, ms(250), o.Crossfader.Interval())

	o.Advance(epoch.Add(ms(250)))
	assert.Equal(t, 1, o.Snapshot().Background)
}

func TestCrossfaderStopsOnTeardown(t *testing.T) {
	o, _ := newTestOrchestrator(t)
	o.Advance(epoch.Add(DefaultCrossfadeInterval))
	require.Equal(t, 1, o.Snapshot().Background)

	o.Teardown()
	o.Advance(epoch.Add(10 * DefaultCrossfadeInterval))
	assert.Equal(t, 1, o.Snapshot().Background)
}

func TestCrossfaderStartIsIdempotent(t *testing.T) {
	s := NewScheduler(epoch)
	state := newUIState("home", Desktop)
	c := newCrossfader(state, time.Second)
	c.Start(s)
	c.Start(s)
	assert.Equal(t, 1, s.Active())

	s.Advance(epoch.Add(time.Second))
	assert.Equal(t, 1, state.background)

	c.Stop()
	c.Stop()
	assert.Zero(t, s.Active())
}
