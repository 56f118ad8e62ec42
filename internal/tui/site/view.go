package site

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/showcase/internal/page"
)

// chrome is a fixed piece of screen with its clickable areas in terminal cells.
type chrome struct {
	view     string
	box      zone
	hotspots []hotspot
}

// View renders the current model state
func (m Model) View() string {
	if !m.Ready() {
		return "Initializing..."
	}

	snap := m.page.Snapshot()
	if snap.LightboxOpen {
		return lipgloss.JoinVertical(lipgloss.Left, m.lightbox().view, m.footer())
	}

	body := m.viewport.View()
	if snap.MobileMenuOpen {
		body = overlayTop(body, m.menu().view)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.navBar().view, body, m.footer())
}

func (m Model) footerHeight() int {
	return lipgloss.Height(m.footer())
}

func (m Model) footer() string {
	switch {
	case m.prompting:
		return m.prompt.View()
	case m.status != "" && m.statusErr:
		return statusErrorStyle.Render(ansi.Truncate(m.status, max(m.width, 1), "…"))
	case m.status != "":
		return statusStyle.Render(ansi.Truncate(m.status, max(m.width, 1), "…"))
	case m.page.Snapshot().LightboxOpen:
		return m.help.View(m.lightboxKeys)
	default:
		return m.help.View(m.keys)
	}
}

func (m Model) sectionLabel(id page.SectionID) string {
	if sec, ok := m.manifest.Section(string(id)); ok {
		return sec.Label
	}
	return string(id)
}

// navBar renders the fixed top bar: brand on the left, section links on wide
// screens or the menu toggle on narrow ones.
func (m Model) navBar() chrome {
	snap := m.page.Snapshot()
	var hs []hotspot

	brand := brandStyle.Render(m.manifest.Site.Brand)
	bw := lipgloss.Width(brand)
	hs = append(hs, hotspot{zone: zone{x0: 1, y0: 0, x1: 1 + bw, y1: 1}, region: page.RegionNav, action: action{kind: actBrand}})

	left := " " + brand
	var right string
	if snap.Device == page.Mobile {
		left += mutedStyle.Render(" · " + m.sectionLabel(snap.ActiveSection))
		label := "☰ Menu"
		if snap.MobileMenuOpen {
			label = "✕ Close"
		}
		right = navItemStyle.Render(label)
		rx := m.width - 1 - lipgloss.Width(right)
		hs = append(hs, hotspot{zone: zone{x0: rx, y0: 0, x1: rx + lipgloss.Width(right), y1: 1}, region: page.RegionNav, action: action{kind: actMenuToggle}})
	} else {
		var items []string
		for _, id := range m.page.Sections() {
			style := navItemStyle
			if id == snap.ActiveSection {
				style = navActiveStyle
			}
			items = append(items, style.Render(m.sectionLabel(id)))
		}
		right = strings.Join(items, "")
		x := m.width - 1 - lipgloss.Width(right)
		for i, id := range m.page.Sections() {
			w := lipgloss.Width(items[i])
			hs = append(hs, hotspot{zone: zone{x0: x, y0: 0, x1: x + w, y1: 1}, region: page.RegionNav, action: action{kind: actNav, section: id}})
			x += w
		}
	}

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-1, 1)
	line := ansi.Truncate(left+strings.Repeat(" ", gap)+right+" ", m.width, "")
	return chrome{view: navBarStyle.Render(line), hotspots: hs}
}

// menu renders the mobile dropdown that covers the top of the body.
func (m Model) menu() chrome {
	snap := m.page.Snapshot()
	var rows []string
	var hs []hotspot
	for i, id := range m.page.Sections() {
		style := menuStyle
		if id == snap.ActiveSection {
			style = navActiveStyle
		}
		rows = append(rows, style.Width(m.width).Render("  "+m.sectionLabel(id)))
		y := navHeight + i
		hs = append(hs, hotspot{zone: zone{x0: 0, y0: y, x1: m.width, y1: y + 1}, region: page.RegionNav, action: action{kind: actNav, section: id}})
	}
	return chrome{view: strings.Join(rows, "\n"), hotspots: hs}
}

// lightbox renders the gallery modal over the whole body area.
func (m Model) lightbox() chrome {
	snap := m.page.Snapshot()
	i, _ := snap.SelectedImageIndex()
	gallery := m.manifest.Gallery
	area := max(m.height-m.footerHeight(), 1)

	boxW := max(min(m.width-4, 64), 24)
	inner := boxW - 2 - 4
	picH := min(max(area-12, 3), 12)

	hue := colorful.Hsv(float64(i)*360/float64(max(len(gallery), 1)), 0.35, 0.55)
	var alt string
	if i >= 0 && i < len(gallery) {
		alt = gallery[i].Alt
	}
	var picture []string
	for row := 0; row < picH; row++ {
		shade := hue.BlendLab(canvas, float64(row)/float64(picH)).Clamped()
		style := lipgloss.NewStyle().Background(lipgloss.Color(shade.Hex())).Foreground(lipgloss.Color("#ffffff")).Width(inner).Align(lipgloss.Center)
		text := ""
		if row == picH/2 {
			text = ansi.Truncate(alt, inner-2, "…")
		}
		picture = append(picture, style.Render(text))
	}

	caption := accentStyle.Render(m.manifest.Caption(i))
	position := mutedStyle.Render(m.page.Lightbox.Position())
	info := caption + strings.Repeat(" ", max(inner-lipgloss.Width(caption)-lipgloss.Width(position), 1)) + position

	prev := lightboxButtonStyle.Render("‹ Prev")
	closeBtn := lightboxButtonStyle.Render("✕ Close")
	next := lightboxButtonStyle.Render("Next ›")
	wp, wc, wn := lipgloss.Width(prev), lipgloss.Width(closeBtn), lipgloss.Width(next)
	g1 := max((inner-wc)/2-wp, 1)
	g2 := max(inner-wn-(wp+g1+wc), 1)
	buttons := prev + strings.Repeat(" ", g1) + closeBtn + strings.Repeat(" ", g2) + next

	prefix := lipgloss.JoinVertical(lipgloss.Left, strings.Join(picture, "\n"), "", info, "")
	box := lightboxStyle.Width(boxW - 2).Render(lipgloss.JoinVertical(lipgloss.Left, prefix, buttons))

	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	left := max((m.width-bw)/2, 0)
	top := max((area-bh)/2, 0)

	// border plus padding
	y := top + 2 + lipgloss.Height(prefix)
	x := left + 3
	hs := []hotspot{
		{zone: zone{x0: x, y0: y, x1: x + wp, y1: y + 1}, region: page.RegionLightboxContent, action: action{kind: actLightboxPrev}},
		{zone: zone{x0: x + wp + g1, y0: y, x1: x + wp + g1 + wc, y1: y + 1}, region: page.RegionLightboxContent, action: action{kind: actLightboxClose}},
		{zone: zone{x0: x + wp + g1 + wc + g2, y0: y, x1: x + wp + g1 + wc + g2 + wn, y1: y + 1}, region: page.RegionLightboxContent, action: action{kind: actLightboxNext}},
	}

	view := lipgloss.NewStyle().
		Width(m.width).
		Height(area).
		PaddingTop(top).
		PaddingLeft(left).
		Render(box)
	return chrome{view: view, box: zone{x0: left, y0: top, x1: left + bw, y1: top + bh}, hotspots: hs}
}

// overlayTop replaces the first lines of base with those of top.
func overlayTop(base, top string) string {
	lines := strings.Split(base, "\n")
	for i, line := range strings.Split(top, "\n") {
		if i < len(lines) {
			lines[i] = line
		}
	}
	return strings.Join(lines, "\n")
}
