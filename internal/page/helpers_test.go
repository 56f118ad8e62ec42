package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)

type fixedLayout map[SectionID]Rect

func (f fixedLayout) Geometry(id SectionID) (Rect, bool) {
	r, ok := f[id]
	return r, ok
}

type recordingScroller struct {
	calls []float64
}

func (r *recordingScroller) ScrollTo(top float64) {
	r.calls = append(r.calls, top)
}

func referenceSections() []SectionID {
	return []SectionID{"home", "about", "masterclasses", "contacts"}
}

func referenceLayout() fixedLayout {
	return fixedLayout{
		"home":          {Top: 0, Height: 500},
		"about":         {Top: 500, Height: 700},
		"masterclasses": {Top: 1200, Height: 900},
		"contacts":      {Top: 2100, Height: 600},
	}
}

func newTestOrchestrator(t *testing.T, mutate ...func(*Options)) (*Orchestrator, *recordingScroller) {
	t.Helper()
	scroller := &recordingScroller{}
	opts := Options{
		Sections:     referenceSections(),
		GallerySize:  6,
		ProbeOffset:  DefaultProbeOffset,
		InitialWidth: 1280,
		Start:        epoch,
		Layout:       referenceLayout(),
		Scroller:     scroller,
	}
	for _, m := range mutate {
		m(&opts)
	}
	o, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(o.Teardown)
	return o, scroller
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
