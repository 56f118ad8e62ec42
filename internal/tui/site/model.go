package site

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/showcase/internal/config"
	"github.com/alexisbeaulieu97/showcase/internal/logger"
	"github.com/alexisbeaulieu97/showcase/internal/manifest"
	"github.com/alexisbeaulieu97/showcase/internal/page"
)

const (
	navHeight    = 2
	marginX      = 2
	slideMargin  = 4
	statusLinger = 3 * time.Second
	// smoothScroll is how long a navigation glide takes.
	smoothScroll = 450 * time.Millisecond
)

// Options configures a Model.
type Options struct {
	Manifest *manifest.Manifest
	Settings config.Settings
	Logger   *logger.Logger
	// Now anchors the page clock; defaults to time.Now.
	Now func() time.Time
}

// Model is the terminal rendition of the page. It owns no page state of its
// own beyond presentation concerns; everything the page core owns is read
// from Orchestrator snapshots.
type Model struct {
	// Core data
	manifest *manifest.Manifest
	settings config.Settings
	log      *logger.Logger
	page     *page.Orchestrator

	// Presentation state shared across model copies
	layout   *docLayout
	scroller *scrollRequest
	anim     *animations

	// Components
	viewport     viewport.Model
	help         help.Model
	keys         keyMap
	lightboxKeys lightboxKeyMap
	prompt       textinput.Model
	prompting    bool

	// Pointer state over the review carousel
	hoverCarousel   bool
	touchedCarousel bool

	// Status line
	status      string
	statusErr   bool
	statusUntil time.Time

	// Dimensions
	width  int
	height int

	// Frame loop
	frameGen int
	now      time.Time
}

// NewModel creates the page model and activates the page core.
func NewModel(opts Options) (Model, error) {
	if opts.Manifest == nil {
		return Model{}, fmt.Errorf("site: manifest is required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	layout := newDocLayout(opts.Settings)
	scroller := &scrollRequest{settings: opts.Settings}
	start := opts.Now()

	orch, err := page.New(page.Options{
		Sections:          opts.Manifest.NavSections(),
		GallerySize:       len(opts.Manifest.Gallery),
		Breakpoint:        float64(opts.Settings.Breakpoint),
		ProbeOffset:       opts.Settings.ProbeOffset,
		CarouselSpeed:     opts.Settings.CarouselSpeed,
		CrossfadeInterval: opts.Settings.CrossfadeInterval.Std(),
		ScrollThrottle:    opts.Settings.ScrollThrottle.Std(),
		Start:             start,
		Layout:            layout,
		Scroller:          scroller,
		Logger:            log,
	})
	if err != nil {
		return Model{}, fmt.Errorf("site: %w", err)
	}

	prompt := textinput.New()
	prompt.Prompt = "jump to: "
	prompt.Placeholder = "section"
	prompt.CharLimit = 32

	return Model{
		manifest:     opts.Manifest,
		settings:     opts.Settings,
		log:          log.Component("tui"),
		page:         orch,
		layout:       layout,
		scroller:     scroller,
		anim:         newAnimations(start),
		viewport:     viewport.New(0, 0),
		help:         help.New(),
		keys:         defaultKeyMap(),
		lightboxKeys: newLightboxKeyMap(),
		prompt:       prompt,
		now:          start,
	}, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.settings.FrameInterval.Std(), m.frameGen)
}

// Page exposes the page core, mainly for the CLI and tests.
func (m Model) Page() *page.Orchestrator {
	return m.page
}

// Snapshot returns the page state the view is rendered from.
func (m Model) Snapshot() page.Snapshot {
	return m.page.Snapshot()
}

// Ready reports whether the first window size has arrived.
func (m Model) Ready() bool {
	return m.width > 0 && m.height > 0
}

// Static renders a single frame at the given size, for non-interactive output.
func (m Model) Static(width, height int) string {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	sm := updated.(Model)
	sm.anim.settle(sm.now, sm.layout.sections, sm.page.Snapshot().Device)
	sm.refresh()
	return sm.View()
}

func (m Model) bodyHeight() int {
	h := m.height - navHeight - m.footerHeight()
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) contentWidth() int {
	w := m.width - 2*marginX
	if w < 10 {
		w = 10
	}
	return w
}

func (m Model) mobile() bool {
	return m.page.Snapshot().Device == page.Mobile
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
	m.statusUntil = m.now.Add(statusLinger)
}
