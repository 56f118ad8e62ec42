package page

// Rect is the vertical extent of a section in logical units.
type Rect struct {
	Top    float64
	Height float64
}

// Contains reports whether y falls inside [Top, Top+Height).
func (r Rect) Contains(y float64) bool {
	return y >= r.Top && y < r.Top+r.Height
}

// Layout supplies element geometry from the presentation layer. ok is false
// while a section is not mounted yet.
type Layout interface {
	Geometry(id SectionID) (rect Rect, ok bool)
}

// Scroller performs the actual viewport scroll requested by the Navigator.
type Scroller interface {
	ScrollTo(top float64)
}

// Region classifies the target of a pointer click.
type Region int

const (
	RegionPage Region = iota
	RegionNav
	RegionOverlay
	RegionLightboxContent
	RegionCarousel
)

func (r Region) String() string {
	switch r {
	case RegionNav:
		return "nav"
	case RegionOverlay:
		return "overlay"
	case RegionLightboxContent:
		return "lightbox-content"
	case RegionCarousel:
		return "carousel"
	default:
		return "page"
	}
}

// Click is a pointer click notification.
type Click struct {
	Region  Region
	Primary bool
}

// Key is a keyboard notification relevant to the core.
type Key int

const (
	KeyOther Key = iota
	KeyLeft
	KeyRight
	KeyEscape
)

// LayoutFunc adapts a function to Layout.
type LayoutFunc func(id SectionID) (Rect, bool)

// Geometry implements Layout.
func (f LayoutFunc) Geometry(id SectionID) (Rect, bool) { return f(id) }

// ScrollFunc adapts a function to Scroller.
type ScrollFunc func(top float64)

// ScrollTo implements Scroller.
func (f ScrollFunc) ScrollTo(top float64) { f(top) }
