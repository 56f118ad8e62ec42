package page

// DefaultBreakpoint is the width, in logical units, at which layouts switch to desktop.
const DefaultBreakpoint = 768

// Classify returns Mobile when width is below breakpoint and Desktop otherwise.
func Classify(width, breakpoint float64) DeviceClass {
	if width < breakpoint {
		return Mobile
	}
	return Desktop
}

// Classifier republishes the device class whenever the viewport is resized.
type Classifier struct {
	state      *UIState
	breakpoint float64
	width      float64
}

func newClassifier(state *UIState, breakpoint float64) *Classifier {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	return &Classifier{state: state, breakpoint: breakpoint}
}

// Resize records the new viewport width and reports whether the class changed.
func (c *Classifier) Resize(width float64) bool {
	c.width = width
	next := Classify(width, c.breakpoint)
	if next == c.state.device {
		return false
	}
	c.state.device = next
	return true
}

// Width returns the last observed viewport width.
func (c *Classifier) Width() float64 {
	return c.width
}
