package page

import (
	"fmt"
	"time"
)

// AnimationKind identifies an entrance animation on the page.
type AnimationKind int

const (
	AnimContainer AnimationKind = iota
	AnimItem
	AnimGalleryItem
	AnimHeading
	AnimHeroTitle
	AnimHeroSubtitle
	AnimHeroButton
)

// AnimationKinds lists every kind in declaration order.
var AnimationKinds = []AnimationKind{
	AnimContainer, AnimItem, AnimGalleryItem, AnimHeading,
	AnimHeroTitle, AnimHeroSubtitle, AnimHeroButton,
}

func (k AnimationKind) String() string {
	switch k {
	case AnimContainer:
		return "container"
	case AnimItem:
		return "item"
	case AnimGalleryItem:
		return "gallery-item"
	case AnimHeading:
		return "heading"
	case AnimHeroTitle:
		return "hero-title"
	case AnimHeroSubtitle:
		return "hero-subtitle"
	case AnimHeroButton:
		return "hero-button"
	default:
		return fmt.Sprintf("animation(%d)", int(k))
	}
}

// Profile holds the timing parameters of one entrance animation.
// Displacement is in logical units along the entrance axis.
type Profile struct {
	Duration     time.Duration
	Displacement float64
	Stagger      time.Duration
	Delay        time.Duration
	Easing       Easing
}

type profilePair struct {
	desktop Profile
	mobile  Profile
}

var profiles = map[AnimationKind]profilePair{
	AnimContainer: {
		desktop: Profile{Duration: 400 * time.Millisecond, Stagger: 120 * time.Millisecond, Easing: Linear},
		mobile:  Profile{Duration: 300 * time.Millisecond, Stagger: 80 * time.Millisecond, Easing: Linear},
	},
	AnimItem: {
		desktop: Profile{Duration: 600 * time.Millisecond, Displacement: 30, Stagger: 120 * time.Millisecond, Easing: Emphasized},
		mobile:  Profile{Duration: 400 * time.Millisecond, Displacement: 20, Stagger: 80 * time.Millisecond, Easing: Emphasized},
	},
	AnimGalleryItem: {
		desktop: Profile{Duration: 500 * time.Millisecond, Displacement: 30, Stagger: 150 * time.Millisecond, Delay: 200 * time.Millisecond, Easing: Emphasized},
		mobile:  Profile{Duration: 300 * time.Millisecond, Displacement: 20, Stagger: 80 * time.Millisecond, Delay: 100 * time.Millisecond, Easing: Emphasized},
	},
	AnimHeading: {
		desktop: Profile{Duration: 600 * time.Millisecond, Displacement: 20, Easing: EaseOut},
		mobile:  Profile{Duration: 400 * time.Millisecond, Displacement: 12, Easing: EaseOut},
	},
	AnimHeroTitle: {
		desktop: Profile{Duration: 800 * time.Millisecond, Displacement: 30, Delay: 600 * time.Millisecond, Easing: Gentle},
		mobile:  Profile{Duration: 500 * time.Millisecond, Displacement: 20, Delay: 300 * time.Millisecond, Easing: Gentle},
	},
	AnimHeroSubtitle: {
		desktop: Profile{Duration: 600 * time.Millisecond, Displacement: 30, Delay: 1000 * time.Millisecond, Easing: EaseOut},
		mobile:  Profile{Duration: 400 * time.Millisecond, Displacement: 20, Delay: 700 * time.Millisecond, Easing: EaseOut},
	},
	AnimHeroButton: {
		desktop: Profile{Duration: 600 * time.Millisecond, Displacement: 30, Delay: 1300 * time.Millisecond, Easing: EaseOut},
		mobile:  Profile{Duration: 400 * time.Millisecond, Displacement: 20, Delay: 900 * time.Millisecond, Easing: EaseOut},
	},
}

// ProfileFor returns the entrance parameters for kind on device. Unknown kinds
// fall back to the item profile.
func ProfileFor(device DeviceClass, kind AnimationKind) Profile {
	pair, ok := profiles[kind]
	if !ok {
		pair = profiles[AnimItem]
	}
	if device == Mobile {
		return pair.mobile
	}
	return pair.desktop
}

// Progress returns the eased completion of the animation for the element at
// position index, elapsed after the animation was triggered.
func (p Profile) Progress(elapsed time.Duration, index int) float64 {
	start := p.Delay + time.Duration(index)*p.Stagger
	if elapsed <= start {
		return 0
	}
	if p.Duration <= 0 {
		return 1
	}
	return p.Easing.At(float64(elapsed-start) / float64(p.Duration))
}

// Offset returns the remaining displacement at the given point of the animation.
func (p Profile) Offset(elapsed time.Duration, index int) float64 {
	return p.Displacement * (1 - p.Progress(elapsed, index))
}

// Settled reports whether every one of count staggered elements has finished.
func (p Profile) Settled(elapsed time.Duration, count int) bool {
	if count < 1 {
		count = 1
	}
	end := p.Delay + time.Duration(count-1)*p.Stagger + p.Duration
	return elapsed >= end
}
