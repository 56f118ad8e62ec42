package page

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveSectionReferenceScenario(t *testing.T) {
	sections := []SectionID{"first", "second", "third"}
	layout := fixedLayout{
		"first":  {Top: 0, Height: 500},
		"second": {Top: 500, Height: 700},
		"third":  {Top: 1200, Height: math.Inf(1)},
	}

	id, ok := ActiveSection(sections, layout, 600)
	require.True(t, ok)
	assert.Equal(t, SectionID("second"), id)
}

func TestActiveSectionPartition(t *testing.T) {
	sections := referenceSections()
	layout := referenceLayout()

	for probe := -50.0; probe < 2800; probe += 7 {
		matches := 0
		for _, id := range sections {
			if layout[id].Contains(probe) {
				matches++
			}
		}
		require.LessOrEqual(t, matches, 1, "layout must partition the axis")

		id, ok := ActiveSection(sections, layout, probe)
		if matches == 0 {
			assert.False(t, ok, "probe %v", probe)
			continue
		}
		require.True(t, ok, "probe %v", probe)
		assert.True(t, layout[id].Contains(probe), "probe %v selected %s", probe, id)
	}
}

func TestActiveSectionBoundaries(t *testing.T) {
	layout := referenceLayout()
	sections := referenceSections()

	id, _ := ActiveSection(sections, layout, 499.999)
	assert.Equal(t, SectionID("home"), id)
	id, _ = ActiveSection(sections, layout, 500)
	assert.Equal(t, SectionID("about"), id, "top edge belongs to the section")
}

func TestActiveSectionSkipsUnmountedSections(t *testing.T) {
	layout := referenceLayout()
	delete(layout, "about")

	_, ok := ActiveSection(referenceSections(), layout, 600)
	assert.False(t, ok)

	_, ok = ActiveSection(referenceSections(), nil, 600)
	assert.False(t, ok)
}

func TestScrollDefaultsToFirstSection(t *testing.T) {
	o, _ := newTestOrchestrator(t, func(opts *Options) { opts.Layout = nil })
	assert.Equal(t, SectionID("home"), o.Snapshot().ActiveSection)
}

func TestScrollUpdatesActiveSectionWithProbeOffset(t *testing.T) {
	o, _ := newTestOrchestrator(t)

	o.Scroll(399)
	assert.Equal(t, SectionID("home"), o.Snapshot().ActiveSection)

	o.Scroll(400)
	assert.Equal(t, SectionID("about"), o.Snapshot().ActiveSection)

	o.Scroll(2050)
	assert.Equal(t, SectionID("contacts"), o.Snapshot().ActiveSection)
}

func TestScrollOutsideEverySectionLeavesStateUnchanged(t *testing.T) {
	o, _ := newTestOrchestrator(t)
	o.Scroll(1500)
	require.Equal(t, SectionID("masterclasses"), o.Snapshot().ActiveSection)

	o.Scroll(10_000)
	assert.Equal(t, SectionID("masterclasses"), o.Snapshot().ActiveSection)
}

func TestScrollThrottleDefersButNeverLoses(t *testing.T) {
	o, _ := newTestOrchestrator(t, func(opts *Options) { opts.ScrollThrottle = ms(100) })

	o.Scroll(450)
	assert.Equal(t, SectionID("about"), o.Snapshot().ActiveSection)

	o.Scroll(1500)
	assert.Equal(t, SectionID("about"), o.Snapshot().ActiveSection, "second event inside the window is deferred")

	o.Advance(epoch.Add(ms(50)))
	assert.Equal(t, SectionID("about"), o.Snapshot().ActiveSection)

	o.Advance(epoch.Add(ms(120)))
	assert.Equal(t, SectionID("masterclasses"), o.Snapshot().ActiveSection, "deferred pass flushed on a later tick")
}

func TestScrollRecomputesOnResize(t *testing.T) {
	layout := referenceLayout()
	o, _ := newTestOrchestrator(t, func(opts *Options) { opts.Layout = layout })

	o.Scroll(450)
	require.Equal(t, SectionID("about"), o.Snapshot().ActiveSection)

	layout["home"] = Rect{Top: 0, Height: 900}
	layout["about"] = Rect{Top: 900, Height: 700}
	o.Resize(600)
	assert.Equal(t, SectionID("home"), o.Snapshot().ActiveSection)
}

func TestThrottleAllowsOncePerInterval(t *testing.T) {
	th := newThrottle(10 * time.Millisecond)
	assert.True(t, th.allow(epoch))
	assert.False(t, th.allow(epoch.Add(ms(5))))
	assert.True(t, th.allow(epoch.Add(ms(10))))

	off := newThrottle(0)
	assert.True(t, off.allow(epoch))
	assert.True(t, off.allow(epoch))
}
