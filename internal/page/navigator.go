package page

import (
	"github.com/alexisbeaulieu97/showcase/internal/logger"
	pageerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

// Navigator scrolls sections into view and owns the mobile menu flag.
type Navigator struct {
	state     *UIState
	known     map[SectionID]struct{}
	layout    Layout
	scroller  Scroller
	listeners *listenerSet
	log       *logger.Logger

	outside *Registration
	pending SectionID
}

func newNavigator(state *UIState, sections []SectionID, layout Layout, scroller Scroller, listeners *listenerSet, log *logger.Logger) *Navigator {
	known := make(map[SectionID]struct{}, len(sections))
	for _, id := range sections {
		known[id] = struct{}{}
	}
	return &Navigator{
		state:     state,
		known:     known,
		layout:    layout,
		scroller:  scroller,
		listeners: listeners,
		log:       log,
	}
}

// NavigateTo closes the mobile menu and scrolls the section's top to the
// viewport top. Unknown ids are rejected without touching state. When the
// section is not laid out yet the scroll is retried on the next notification.
func (n *Navigator) NavigateTo(id SectionID) error {
	if _, ok := n.known[id]; !ok {
		n.log.Warn("navigation to unknown section " + string(id))
		return pageerrors.NewContractError("navigate", "unknown section %q", id)
	}

	n.CloseMobileMenu()
	n.pending = id
	n.retry()
	return nil
}

// Pending returns the section whose scroll is waiting for layout.
func (n *Navigator) Pending() (SectionID, bool) {
	return n.pending, n.pending != ""
}

func (n *Navigator) retry() {
	if n.pending == "" {
		return
	}
	rect, ok := n.layout.Geometry(n.pending)
	if !ok {
		n.log.Debugf("section not laid out, deferring scroll", map[string]any{"section": string(n.pending)})
		return
	}
	n.pending = ""
	if n.scroller != nil {
		n.scroller.ScrollTo(rect.Top)
	}
}

// ToggleMobileMenu opens a closed menu and closes an open one.
func (n *Navigator) ToggleMobileMenu() {
	if n.state.mobileMenuOpen {
		n.CloseMobileMenu()
		return
	}
	n.state.mobileMenuOpen = true
	n.outside = n.listeners.onClick(n.onClickOutside)
}

// CloseMobileMenu closes the menu and drops the click-outside listener.
func (n *Navigator) CloseMobileMenu() {
	n.state.mobileMenuOpen = false
	n.outside.Cancel()
	n.outside = nil
}

func (n *Navigator) onClickOutside(c Click) {
	if !c.Primary || c.Region == RegionNav {
		return
	}
	n.CloseMobileMenu()
}

func (n *Navigator) teardown() {
	n.outside.Cancel()
	n.outside = nil
	n.pending = ""
}
