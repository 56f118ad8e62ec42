package page

import "time"

// DefaultCarouselSpeed is the auto-scroll speed in logical units per millisecond.
const DefaultCarouselSpeed = 0.08

// Carousel auto-scrolls the review strip on mobile layouts. The offset never
// exceeds ContentWidth-ViewportWidth; reaching that bound cuts back to zero.
type Carousel struct {
	state *UIState
	speed float64

	content  float64
	viewport float64

	last    time.Time
	hasLast bool
}

func newCarousel(state *UIState, speed float64) *Carousel {
	if speed < 0 {
		speed = 0
	}
	return &Carousel{state: state, speed: speed}
}

// SetGeometry updates the strip and viewport widths. An offset left beyond the
// new bound is reset to zero.
func (c *Carousel) SetGeometry(contentWidth, viewportWidth float64) {
	c.content = contentWidth
	c.viewport = viewportWidth
	if limit := c.limit(); limit <= 0 || c.state.carouselOffset >= limit {
		c.state.carouselOffset = 0
	}
}

// Limit returns the largest offset the strip can scroll to.
func (c *Carousel) Limit() float64 {
	if l := c.limit(); l > 0 {
		return l
	}
	return 0
}

func (c *Carousel) limit() float64 {
	return c.content - c.viewport
}

// Frame advances the offset by the time elapsed since the previous frame.
// The first frame after creation or Restart only records its timestamp.
func (c *Carousel) Frame(now time.Time) {
	dt := time.Duration(0)
	if c.hasLast {
		dt = now.Sub(c.last)
	}
	c.last = now
	c.hasLast = true

	if dt <= 0 || c.state.device != Mobile || c.state.carouselPaused {
		return
	}
	limit := c.limit()
	if limit <= 0 {
		return
	}

	ms := float64(dt) / float64(time.Millisecond)
	next := c.state.carouselOffset + ms*c.speed
	if next >= limit {
		next = 0
	}
	c.state.carouselOffset = next
}

// Pause holds the offset until Resume.
func (c *Carousel) Pause() { c.state.carouselPaused = true }

// Resume releases a pause regardless of how many pauses preceded it.
func (c *Carousel) Resume() { c.state.carouselPaused = false }

// PointerEnter pauses the strip.
func (c *Carousel) PointerEnter() { c.Pause() }

// PointerLeave resumes the strip.
func (c *Carousel) PointerLeave() { c.Resume() }

// TouchStart pauses the strip.
func (c *Carousel) TouchStart() { c.Pause() }

// TouchEnd resumes the strip.
func (c *Carousel) TouchEnd() { c.Resume() }

// Restart rewinds to the first card and forgets the previous frame time.
func (c *Carousel) Restart() {
	c.state.carouselOffset = 0
	c.hasLast = false
}
