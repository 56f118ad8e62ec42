package site

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showcase/internal/config"
	"github.com/alexisbeaulieu97/showcase/internal/manifest"
	"github.com/alexisbeaulieu97/showcase/internal/page"
)

var epoch = time.Date(2025, time.October, 15, 14, 0, 0, 0, time.UTC)

// Harness drives the model programmatically. Commands are not executed;
// time moves only through Advance, which feeds frames of the current loop.
type Harness struct {
	t     *testing.T
	model Model
	clock time.Time
	last  tea.Cmd
}

func newHarness(t *testing.T, width, height int) *Harness {
	t.Helper()

	m, err := NewModel(Options{
		Manifest: manifest.Default(),
		Settings: config.Default(),
		Now:      func() time.Time { return epoch },
	})
	require.NoError(t, err)

	h := &Harness{t: t, model: m, clock: epoch}
	t.Cleanup(func() { h.model.page.Teardown() })
	if width > 0 {
		h.Send(tea.WindowSizeMsg{Width: width, Height: height})
	}
	return h
}

// Send routes a message through the model.
func (h *Harness) Send(msg tea.Msg) {
	h.t.Helper()
	mdl, cmd := h.model.Update(msg)
	updated, ok := mdl.(Model)
	require.True(h.t, ok)
	h.model = updated
	h.last = cmd
}

// Advance feeds frames at the configured interval until d has elapsed.
func (h *Harness) Advance(d time.Duration) {
	h.t.Helper()
	step := h.model.settings.FrameInterval.Std()
	end := h.clock.Add(d)
	for h.clock.Before(end) {
		h.clock = h.clock.Add(step)
		if h.clock.After(end) {
			h.clock = end
		}
		h.Send(frameMsg{gen: h.model.frameGen, at: h.clock})
	}
}

func (h *Harness) Runes(s string) {
	h.t.Helper()
	for _, r := range s {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *Harness) Key(k tea.KeyType) {
	h.t.Helper()
	h.Send(tea.KeyMsg{Type: k})
}

func (h *Harness) Click(x, y int) {
	h.t.Helper()
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

func (h *Harness) Move(x, y int) {
	h.t.Helper()
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
}

// ScreenRow scrolls the body so document row is visible and returns its
// terminal row.
func (h *Harness) ScreenRow(row int) int {
	h.model.viewport.SetYOffset(row)
	return navHeight + row - h.model.viewport.YOffset
}

func (h *Harness) Snapshot() page.Snapshot {
	return h.model.page.Snapshot()
}

func (h *Harness) docHotspot(kind actionKind, index int) hotspot {
	h.t.Helper()
	for _, hs := range h.model.layout.hotspots {
		if hs.action.kind == kind && hs.action.index == index {
			return hs
		}
	}
	h.t.Fatalf("no document hotspot for action %d/%d", kind, index)
	return hotspot{}
}

func findHotspot(t *testing.T, hs []hotspot, match func(action) bool) hotspot {
	t.Helper()
	for _, h := range hs {
		if match(h.action) {
			return h
		}
	}
	t.Fatalf("hotspot not found")
	return hotspot{}
}
