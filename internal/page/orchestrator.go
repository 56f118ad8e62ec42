package page

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/showcase/internal/logger"
)

// Options configures an Orchestrator.
type Options struct {
	// Sections is the ordered list the ScrollSpy and Navigator work over.
	Sections    []SectionID
	GallerySize int

	Breakpoint        float64
	ProbeOffset       float64
	CarouselSpeed     float64
	CrossfadeInterval time.Duration
	ScrollThrottle    time.Duration

	// InitialWidth is the viewport width at activation, in logical units.
	InitialWidth float64
	// Start anchors the scheduler clock.
	Start time.Time

	Layout   Layout
	Scroller Scroller
	Logger   *logger.Logger
}

// Orchestrator owns the UIState and routes notifications to the component
// owning each field. It is not safe for concurrent use; every call is expected
// on the presentation layer's event loop.
type Orchestrator struct {
	opts  Options
	state *UIState
	log   *logger.Logger

	listeners *listenerSet
	scheduler *Scheduler

	Classifier *Classifier
	Spy        *ScrollSpy
	Navigator  *Navigator
	Lightbox   *Lightbox
	Carousel   *Carousel
	Crossfader *Crossfader

	frames   *Task
	tornDown bool
}

// New validates opts and activates a page with default state: first section
// active, menu and lightbox closed, carousel running, background 0.
func New(opts Options) (*Orchestrator, error) {
	if len(opts.Sections) == 0 {
		return nil, fmt.Errorf("page: at least one section is required")
	}
	seen := make(map[SectionID]struct{}, len(opts.Sections))
	for _, id := range opts.Sections {
		if id == "" {
			return nil, fmt.Errorf("page: empty section id")
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("page: duplicate section id %q", id)
		}
		seen[id] = struct{}{}
	}
	if opts.GallerySize < 0 {
		return nil, fmt.Errorf("page: negative gallery size %d", opts.GallerySize)
	}
	if opts.Breakpoint <= 0 {
		opts.Breakpoint = DefaultBreakpoint
	}
	if opts.CarouselSpeed == 0 {
		opts.CarouselSpeed = DefaultCarouselSpeed
	}
	if opts.CrossfadeInterval <= 0 {
		opts.CrossfadeInterval = DefaultCrossfadeInterval
	}
	if opts.Layout == nil {
		opts.Layout = LayoutFunc(func(SectionID) (Rect, bool) { return Rect{}, false })
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	o := &Orchestrator{opts: opts, log: opts.Logger.Component("page")}
	o.activate(opts.Start, opts.InitialWidth)
	return o, nil
}

func (o *Orchestrator) activate(start time.Time, width float64) {
	opts := o.opts
	o.state = newUIState(opts.Sections[0], Classify(width, opts.Breakpoint))
	o.listeners = newListenerSet()
	o.scheduler = NewScheduler(start)
	o.tornDown = false

	o.Classifier = newClassifier(o.state, opts.Breakpoint)
	o.Classifier.width = width
	o.Spy = newScrollSpy(o.state, opts.Sections, opts.Layout, opts.ProbeOffset, opts.ScrollThrottle)
	o.Navigator = newNavigator(o.state, opts.Sections, opts.Layout, opts.Scroller, o.listeners, o.log.Component("navigator"))
	o.Lightbox = newLightbox(o.state, opts.GallerySize, o.listeners, o.log.Component("lightbox"))
	o.Carousel = newCarousel(o.state, opts.CarouselSpeed)
	o.Crossfader = newCrossfader(o.state, opts.CrossfadeInterval)

	o.Crossfader.Start(o.scheduler)
	o.frames = o.scheduler.Frames(o.Carousel.Frame)
	o.Spy.Recompute()

	o.log.Debugf("page activated", map[string]any{
		"device":  o.state.device.String(),
		"section": string(o.state.activeSection),
	})
}

// Snapshot returns a copy of the current UIState.
func (o *Orchestrator) Snapshot() Snapshot {
	return o.state.snapshot()
}

// Sections returns the ordered section list.
func (o *Orchestrator) Sections() []SectionID {
	return append([]SectionID(nil), o.opts.Sections...)
}

// Now returns the scheduler clock.
func (o *Orchestrator) Now() time.Time {
	return o.scheduler.Now()
}

// Scroll handles a scroll notification at the given offset.
func (o *Orchestrator) Scroll(offset float64) {
	if o.tornDown {
		return
	}
	before := o.state.activeSection
	o.Spy.Observe(offset, o.scheduler.Now())
	o.Navigator.retry()
	o.logSection(before)
}

// Resize handles a viewport resize. The device class is republished first so
// that the following scroll-spy pass already sees it.
func (o *Orchestrator) Resize(width float64) {
	if o.tornDown {
		return
	}
	if o.Classifier.Resize(width) {
		o.log.Debugf("device class changed", map[string]any{"device": o.state.device.String(), "width": width})
	}
	before := o.state.activeSection
	o.Spy.Recompute()
	o.Navigator.retry()
	o.logSection(before)
}

// Advance moves time forward: due timers fire, the carousel steps one frame,
// and a throttled scroll-spy pass is flushed.
func (o *Orchestrator) Advance(now time.Time) {
	if o.tornDown {
		return
	}
	o.scheduler.Advance(now)
	before := o.state.activeSection
	o.Spy.Flush(o.scheduler.Now())
	o.Navigator.retry()
	o.logSection(before)
}

// Key routes a key notification to the listeners registered for the current
// state and reports whether one consumed it. With the lightbox closed there
// are none, so page keys pass through untouched.
func (o *Orchestrator) Key(k Key) bool {
	if o.tornDown {
		return false
	}
	return o.listeners.dispatchKey(k)
}

// Click routes a click to the listeners registered before the call. The
// presentation layer calls this before acting on the clicked control, so a
// listener registered by that action never sees the click that created it.
func (o *Orchestrator) Click(c Click) {
	if o.tornDown {
		return
	}
	o.listeners.dispatchClick(c)
}

// NavigateTo scrolls to a section and closes the mobile menu.
func (o *Orchestrator) NavigateTo(id SectionID) error {
	if o.tornDown {
		return nil
	}
	return o.Navigator.NavigateTo(id)
}

// ToggleMobileMenu flips the mobile menu.
func (o *Orchestrator) ToggleMobileMenu() {
	if o.tornDown {
		return
	}
	o.Navigator.ToggleMobileMenu()
}

// OpenImage opens the lightbox on image i.
func (o *Orchestrator) OpenImage(i int) error {
	if o.tornDown {
		return nil
	}
	return o.Lightbox.Open(i)
}

// CloseImage closes the lightbox.
func (o *Orchestrator) CloseImage() {
	if o.tornDown {
		return
	}
	o.Lightbox.Close()
}

// NextImage advances the lightbox.
func (o *Orchestrator) NextImage() {
	if o.tornDown {
		return
	}
	o.Lightbox.Next()
}

// PrevImage steps the lightbox back.
func (o *Orchestrator) PrevImage() {
	if o.tornDown {
		return
	}
	o.Lightbox.Prev()
}

// Profile returns the animation profile for kind on the current device class.
func (o *Orchestrator) Profile(kind AnimationKind) Profile {
	return ProfileFor(o.state.device, kind)
}

// ActiveListeners counts registered key and click listeners.
func (o *Orchestrator) ActiveListeners() int {
	return o.listeners.len()
}

// ActiveTasks counts scheduled tasks that have not been cancelled.
func (o *Orchestrator) ActiveTasks() int {
	return o.scheduler.Active()
}

// TornDown reports whether Teardown has run.
func (o *Orchestrator) TornDown() bool {
	return o.tornDown
}

// Teardown cancels every listener and scheduled task. Later notifications are
// ignored. Calling Teardown again is a no-op.
func (o *Orchestrator) Teardown() {
	if o.tornDown {
		return
	}
	o.tornDown = true
	o.Lightbox.keys.Cancel()
	o.Lightbox.overlay.Cancel()
	o.Navigator.teardown()
	o.Crossfader.Stop()
	o.frames.Cancel()
	o.scheduler.CancelAll()
	o.log.Debug("page torn down")
}

// Reload tears the page down and activates it again with default state, the
// way a browser reload would.
func (o *Orchestrator) Reload(now time.Time) {
	width := o.Classifier.Width()
	o.Teardown()
	o.activate(now, width)
}

func (o *Orchestrator) logSection(before SectionID) {
	if o.state.activeSection == before {
		return
	}
	o.log.Debugf("active section changed", map[string]any{
		"from": string(before),
		"to":   string(o.state.activeSection),
	})
}
