package site

import (
	"github.com/alexisbeaulieu97/showcase/internal/config"
	"github.com/alexisbeaulieu97/showcase/internal/page"
)

// zone is a half-open cell rectangle [x0,x1) x [y0,y1).
type zone struct {
	x0, y0, x1, y1 int
}

func (z zone) contains(x, y int) bool {
	return x >= z.x0 && x < z.x1 && y >= z.y0 && y < z.y1
}

type actionKind int

const (
	actNone actionKind = iota
	actNav
	actMenuToggle
	actBrand
	actImage
	actLightboxPrev
	actLightboxNext
	actLightboxClose
	actLink
)

type action struct {
	kind    actionKind
	section page.SectionID
	index   int
	url     string
}

// hotspot is a clickable area. Document hotspots use document rows,
// screen hotspots use terminal rows.
type hotspot struct {
	zone   zone
	region page.Region
	action action
}

// span is the row range a section occupies in the rendered document.
type span struct {
	top, height int
}

// docLayout is the geometry of the last rendered document. It implements
// page.Layout; until the first render nothing is mounted.
type docLayout struct {
	settings config.Settings

	mounted  bool
	sections map[page.SectionID]span
	hotspots []hotspot
	carousel zone
	rows     int
}

func newDocLayout(settings config.Settings) *docLayout {
	return &docLayout{settings: settings}
}

// Geometry implements page.Layout.
func (l *docLayout) Geometry(id page.SectionID) (page.Rect, bool) {
	if !l.mounted {
		return page.Rect{}, false
	}
	s, ok := l.sections[id]
	if !ok {
		return page.Rect{}, false
	}
	return page.Rect{Top: l.settings.Rows(s.top), Height: l.settings.Rows(s.height)}, true
}

func (l *docLayout) replace(sections map[page.SectionID]span, hotspots []hotspot, carousel zone, rows int) {
	l.mounted = true
	l.sections = sections
	l.hotspots = hotspots
	l.carousel = carousel
	l.rows = rows
}

func (l *docLayout) hit(x, row int) (hotspot, bool) {
	for _, h := range l.hotspots {
		if h.zone.contains(x, row) {
			return h, true
		}
	}
	return hotspot{}, false
}

// scrollRequest is the page.Scroller handed to the orchestrator. The model
// picks the request up after each notification and glides the viewport.
type scrollRequest struct {
	settings config.Settings
	row      int
	pending  bool
}

// ScrollTo implements page.Scroller.
func (s *scrollRequest) ScrollTo(top float64) {
	s.row = int(top) / s.settings.CellHeight
	s.pending = true
}

func (s *scrollRequest) take() (int, bool) {
	if !s.pending {
		return 0, false
	}
	s.pending = false
	return s.row, true
}
