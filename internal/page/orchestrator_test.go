package page

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showcase/internal/logger"
)

func TestNewRejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "no sections", opts: Options{}},
		{name: "empty id", opts: Options{Sections: []SectionID{"home", ""}}},
		{name: "duplicate id", opts: Options{Sections: []SectionID{"home", "home"}}},
		{name: "negative gallery", opts: Options{Sections: []SectionID{"home"}, GallerySize: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			require.Error(t, err)
		})
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	o, _ := newTestOrchestrator(t)
	snap := o.Snapshot()

	assert.Equal(t, SectionID("home"), snap.ActiveSection)
	assert.False(t, snap.MobileMenuOpen)
	assert.False(t, snap.LightboxOpen)
	assert.False(t, snap.CarouselPaused)
	assert.Zero(t, snap.Background)
	assert.Equal(t, Desktop, snap.Device)
	assert.Equal(t, DefaultCrossfadeInterval, o.Crossfader.Interval())
	assert.Equal(t, epoch, o.Now())
	assert.Equal(t, referenceSections(), o.Sections())
}

func TestTeardownReleasesEverything(t *testing.T) {
	o, scroller := newTestOrchestrator(t, func(opts *Options) { opts.InitialWidth = 390 })
	o.ToggleMobileMenu()
	o.CloseImage()
	require.NoError(t, o.OpenImage(2))
	require.Equal(t, 2, o.ActiveTasks(), "crossfade timer and carousel frame loop")
	require.Equal(t, 3, o.ActiveListeners(), "menu click-outside, lightbox keys and overlay")

	o.Teardown()
	assert.True(t, o.TornDown())
	assert.Zero(t, o.ActiveTasks())
	assert.Zero(t, o.ActiveListeners())

	before := o.Snapshot()
	o.Advance(epoch.Add(time.Minute))
	o.Scroll(1500)
	o.Resize(1400)
	assert.False(t, o.Key(KeyRight))
	o.Click(Click{Region: RegionPage, Primary: true})
	require.NoError(t, o.NavigateTo("contacts"))
	require.NoError(t, o.OpenImage(99))
	o.ToggleMobileMenu()
	o.NextImage()
	o.PrevImage()
	o.CloseImage()
	assert.Equal(t, before, o.Snapshot(), "no state updates after teardown")
	assert.Empty(t, scroller.calls)

	assert.NotPanics(t, o.Teardown, "second teardown is a no-op")
}

func TestReloadRestoresDefaults(t *testing.T) {
	o, _ := newTestOrchestrator(t, func(opts *Options) { opts.InitialWidth = 390 })
	o.Scroll(1500)
	o.ToggleMobileMenu()
	o.Advance(epoch.Add(DefaultCrossfadeInterval))
	require.Equal(t, 1, o.Snapshot().Background)

	later := epoch.Add(time.Minute)
	o.Reload(later)

	snap := o.Snapshot()
	assert.False(t, o.TornDown())
	assert.Equal(t, SectionID("home"), snap.ActiveSection)
	assert.False(t, snap.MobileMenuOpen)
	assert.Zero(t, snap.Background)
	assert.Equal(t, Mobile, snap.Device, "device class keeps the last viewport width")
	assert.Equal(t, 2, o.ActiveTasks())
	assert.Zero(t, o.ActiveListeners())

	o.Advance(later.Add(DefaultCrossfadeInterval))
	assert.Equal(t, 1, o.Snapshot().Background, "timer re-armed from the reload time")
}

func TestMenuClosedBeforeNavigationScroll(t *testing.T) {
	var menuOpenDuringScroll []bool
	var o *Orchestrator
	o, _ = newTestOrchestrator(t, func(opts *Options) {
		opts.Scroller = ScrollFunc(func(float64) {
			menuOpenDuringScroll = append(menuOpenDuringScroll, o.Snapshot().MobileMenuOpen)
		})
	})

	o.ToggleMobileMenu()
	require.NoError(t, o.NavigateTo("about"))
	assert.Equal(t, []bool{false}, menuOpenDuringScroll)
}

func TestOrchestratorLogsTransitions(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	o, _ := newTestOrchestrator(t, func(opts *Options) { opts.Logger = log })
	o.Scroll(600)
	_ = o.OpenImage(42)

	out := buf.String()
	assert.Contains(t, out, "page activated")
	assert.Contains(t, out, "active section changed")
	assert.Contains(t, out, "lightbox open rejected")
}
