package site

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/showcase/internal/manifest"
	"github.com/alexisbeaulieu97/showcase/internal/page"
)

// canvas is the colour text fades in from.
var canvas = mustHex("#121212")

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// animations holds presentation-only timing: entrance reveals, the
// background fade and the smooth-scroll glide.
type animations struct {
	activated time.Time
	// hero is the device the hero entrance was started on; pinned once the
	// first sized frame renders.
	hero       page.DeviceClass
	heroPinned bool
	revealed   map[page.SectionID]entrance

	fadeFrom  int
	fadeTo    int
	fadeStart time.Time

	glide glide
}

// entrance is a started reveal. Its profiles come from the device it started
// on, so a later resize does not reshape it.
type entrance struct {
	at     time.Time
	device page.DeviceClass
}

type glide struct {
	active   bool
	from, to int
	start    time.Time
}

func newAnimations(activated time.Time) *animations {
	return &animations{
		activated: activated,
		revealed:  make(map[page.SectionID]entrance),
	}
}

func (a *animations) reset(activated time.Time) {
	*a = *newAnimations(activated)
}

// pinHero fixes the device of the hero entrance the first time it is called
// after activation or reset.
func (a *animations) pinHero(device page.DeviceClass) {
	if a.heroPinned {
		return
	}
	a.hero = device
	a.heroPinned = true
}

// heroProfile returns the hero entrance profile for kind.
func (a *animations) heroProfile(kind page.AnimationKind) page.Profile {
	return page.ProfileFor(a.hero, kind)
}

// settle jumps every entrance animation to its end state.
func (a *animations) settle(now time.Time, sections map[page.SectionID]span, device page.DeviceClass) {
	long := now.Add(-time.Minute)
	a.activated = long
	a.pinHero(device)
	for id := range sections {
		a.revealed[id] = entrance{at: long, device: device}
	}
}

// trackBackground starts a fade whenever the page switches background.
func (a *animations) trackBackground(background int, now time.Time) {
	if background == a.fadeTo {
		return
	}
	a.fadeFrom = a.fadeTo
	a.fadeTo = background
	a.fadeStart = now
}

// fadeProgress is the eased share of the target background in the blend.
func (a *animations) fadeProgress(now time.Time, duration time.Duration) float64 {
	if a.fadeFrom == a.fadeTo || duration <= 0 {
		return 1
	}
	t := float64(now.Sub(a.fadeStart)) / float64(duration)
	return page.EaseInOut.At(t)
}

func (a *animations) startGlide(from, to int, now time.Time) {
	if from == to {
		a.glide = glide{}
		return
	}
	a.glide = glide{active: true, from: from, to: to, start: now}
}

// step returns the glide row for now and whether the glide is still running.
func (g *glide) step(now time.Time) (int, bool) {
	if !g.active {
		return 0, false
	}
	t := float64(now.Sub(g.start)) / float64(smoothScroll)
	if t >= 1 {
		g.active = false
		return g.to, true
	}
	row := page.Lerp(float64(g.from), float64(g.to), page.EaseInOut.At(t))
	return int(math.Round(row)), true
}

// reveal marks sections that are in view for the first time.
func (a *animations) reveal(sections map[page.SectionID]span, top, height int, now time.Time, device page.DeviceClass) {
	bottom := top + height
	for id, s := range sections {
		if _, done := a.revealed[id]; done {
			continue
		}
		visible := min(bottom, s.top+s.height) - max(top, s.top)
		if visible <= 0 {
			continue
		}
		// Reveal once a fifth of the section, or of the screen, shows.
		if visible*5 >= min(s.height, height) {
			a.revealed[id] = entrance{at: now, device: device}
		}
	}
}

// since reports the time elapsed since id was revealed.
func (a *animations) since(id page.SectionID, now time.Time) (time.Duration, bool) {
	e, ok := a.revealed[id]
	if !ok {
		return 0, false
	}
	return now.Sub(e.at), true
}

// profile returns the entrance profile of kind for section id, as chosen for
// the device the section was revealed on.
func (a *animations) profile(id page.SectionID, kind page.AnimationKind) page.Profile {
	return page.ProfileFor(a.revealed[id].device, kind)
}

// fadeColor blends from the canvas to target by progress p.
func fadeColor(target colorful.Color, p float64) lipgloss.Color {
	if p >= 1 {
		return lipgloss.Color(target.Hex())
	}
	return lipgloss.Color(canvas.BlendLab(target, clamp01(p)).Clamped().Hex())
}

// backgroundAt returns the hero background colour for row of rows, blending
// the outgoing and incoming gradients by the crossfade progress.
func backgroundAt(bgs []manifest.Background, from, to int, p float64, row, rows int) colorful.Color {
	grad := func(i int) colorful.Color {
		if i < 0 || i >= len(bgs) {
			return canvas
		}
		top, errTop := colorful.Hex(bgs[i].Top)
		base, errBase := colorful.Hex(bgs[i].Base)
		if errTop != nil || errBase != nil {
			return canvas
		}
		t := 0.0
		if rows > 1 {
			t = float64(row) / float64(rows-1)
		}
		return top.BlendLab(base, t)
	}
	if from == to || p >= 1 {
		return grad(to).Clamped()
	}
	return grad(from).BlendLab(grad(to), clamp01(p)).Clamped()
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
