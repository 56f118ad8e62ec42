package site

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showcase/internal/config"
	"github.com/alexisbeaulieu97/showcase/internal/manifest"
)

func TestView_Initializing(t *testing.T) {
	h := newHarness(t, 0, 0)
	assert.Equal(t, "Initializing...", h.model.View())
}

func TestView_DesktopNavBar(t *testing.T) {
	h := newHarness(t, 120, 40)
	view := h.model.View()

	assert.Contains(t, view, "Barber Baxha")
	for _, label := range []string{"Home", "About", "Masterclasses", "Contacts"} {
		assert.Contains(t, view, label)
	}
	assert.NotContains(t, view, "☰ Menu")
	assert.Equal(t, 40, lipgloss.Height(view))
}

func TestView_MobileMenu(t *testing.T) {
	h := newHarness(t, 80, 30)
	assert.Contains(t, h.model.View(), "☰ Menu")

	h.Runes("m")
	view := h.model.View()
	assert.Contains(t, view, "✕ Close")
	lines := strings.Split(view, "\n")
	require.Greater(t, len(lines), navHeight+4)
	assert.Contains(t, lines[navHeight], "Home")
	assert.Contains(t, lines[navHeight+3], "Contacts")
}

func TestView_Lightbox(t *testing.T) {
	h := newHarness(t, 120, 40)
	h.Runes("o")

	view := h.model.View()
	assert.Contains(t, view, "Interior")
	assert.Contains(t, view, "1 of 6")
	assert.Contains(t, view, "Next ›")
	assert.NotContains(t, view, "Masterclasses", "the page is hidden behind the modal")

	h.Key(tea.KeyRight)
	view = h.model.View()
	assert.Contains(t, view, "Work 1")
	assert.Contains(t, view, "2 of 6")
}

func TestView_HeroEntrance(t *testing.T) {
	h := newHarness(t, 120, 40)
	assert.NotContains(t, h.model.View(), "BAKHA BABADZHANOV", "title waits for its delay")

	h.Advance(2 * time.Second)
	assert.Contains(t, h.model.View(), "BAKHA BABADZHANOV")
}

func TestView_StatusReplacesHelp(t *testing.T) {
	h := newHarness(t, 120, 40)
	assert.Contains(t, h.model.View(), "quit")

	h.Runes("r")
	view := h.model.View()
	assert.Contains(t, view, "reloaded")
	assert.NotContains(t, view, "quit")
}

func TestStatic(t *testing.T) {
	m, err := NewModel(Options{Manifest: manifest.Default(), Settings: config.Default()})
	require.NoError(t, err)
	defer m.Page().Teardown()

	out := m.Static(100, 30)
	assert.Contains(t, out, "BAKHA BABADZHANOV")
	assert.Contains(t, out, "Barber Baxha")
}
