package page

import "fmt"

// SectionID names a navigable content region.
type SectionID string

// DeviceClass is the coarse viewport classification used to scale animations.
type DeviceClass int

const (
	Desktop DeviceClass = iota
	Mobile
)

func (d DeviceClass) String() string {
	switch d {
	case Mobile:
		return "mobile"
	case Desktop:
		return "desktop"
	default:
		return fmt.Sprintf("device(%d)", int(d))
	}
}

// UIState is the single page-lifetime state record. Fields are unexported
// through the components that own them; readers take a Snapshot.
type UIState struct {
	activeSection  SectionID
	mobileMenuOpen bool
	lightboxOpen   bool
	selectedImage  int
	carouselPaused bool
	carouselOffset float64
	background     int
	device         DeviceClass
}

func newUIState(first SectionID, device DeviceClass) *UIState {
	return &UIState{
		activeSection: first,
		device:        device,
	}
}

// Snapshot is an immutable copy of UIState handed to the presentation layer.
type Snapshot struct {
	ActiveSection  SectionID
	MobileMenuOpen bool
	LightboxOpen   bool
	// SelectedImage is meaningful only while LightboxOpen is true.
	SelectedImage  int
	CarouselPaused bool
	CarouselOffset float64
	Background     int
	Device         DeviceClass
}

// SelectedImageIndex returns the lightbox index and whether the lightbox is open.
func (s Snapshot) SelectedImageIndex() (int, bool) {
	if !s.LightboxOpen {
		return 0, false
	}
	return s.SelectedImage, true
}

func (s *UIState) snapshot() Snapshot {
	return Snapshot{
		ActiveSection:  s.activeSection,
		MobileMenuOpen: s.mobileMenuOpen,
		LightboxOpen:   s.lightboxOpen,
		SelectedImage:  s.selectedImage,
		CarouselPaused: s.carouselPaused,
		CarouselOffset: s.carouselOffset,
		Background:     s.background,
		Device:         s.device,
	}
}
