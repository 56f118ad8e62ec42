package site

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/alexisbeaulieu97/showcase/internal/page"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.page.Resize(m.settings.Columns(m.width))
		m.help.Width = m.width
		m.prompt.Width = max(m.width-len(m.prompt.Prompt)-2, 8)
		m.refresh()
		// Geometry exists only after the first render.
		m.notifyScroll()
		return m, nil

	case frameMsg:
		if msg.gen != m.frameGen {
			return m, nil
		}
		m.frame(msg)
		return m, frameCmd(m.settings.FrameInterval.Std(), m.frameGen)

	case statusMsg:
		m.setStatus(msg.text, msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// frame advances the page clock and every presentation animation.
func (m *Model) frame(msg frameMsg) {
	m.now = msg.at
	m.page.Advance(msg.at)

	if row, running := m.anim.glide.step(m.now); running {
		m.viewport.SetYOffset(row)
		m.notifyScroll()
	}
	m.applyScrollRequest()

	if m.status != "" && !m.now.Before(m.statusUntil) {
		m.status = ""
	}
	m.refresh()
}

// refresh re-renders the page body and publishes its geometry.
func (m *Model) refresh() {
	if !m.Ready() {
		return
	}
	snap := m.page.Snapshot()
	m.anim.trackBackground(snap.Background, m.now)
	m.anim.pinHero(snap.Device)

	m.viewport.Width = m.width
	m.viewport.Height = m.bodyHeight()

	doc := m.renderDocument()
	m.layout.replace(doc.sections, doc.hotspots, doc.carousel, len(doc.lines))
	m.page.Carousel.SetGeometry(m.settings.Columns(doc.strip), m.settings.Columns(doc.view))
	m.viewport.SetContent(strings.Join(doc.lines, "\n"))

	m.anim.reveal(doc.sections, m.viewport.YOffset, m.viewport.Height, m.now, snap.Device)
}

// notifyScroll reports the current scroll offset to the page core.
func (m *Model) notifyScroll() {
	if !m.Ready() {
		return
	}
	m.page.Scroll(m.settings.Rows(m.viewport.YOffset))
	m.applyScrollRequest()
}

// applyScrollRequest turns a navigator scroll into a glide.
func (m *Model) applyScrollRequest() {
	row, ok := m.scroller.take()
	if !ok {
		return
	}
	m.anim.startGlide(m.viewport.YOffset, row, m.now)
}

func (m *Model) scrollBy(rows int) {
	m.anim.glide = glide{}
	m.viewport.SetYOffset(m.viewport.YOffset + rows)
	m.notifyScroll()
	m.refresh()
}

func (m *Model) navigate(id page.SectionID) {
	if err := m.page.NavigateTo(id); err != nil {
		m.log.Error(err, "navigation rejected")
		m.setStatus(err.Error(), true)
		return
	}
	m.applyScrollRequest()
	if pending, ok := m.page.Navigator.Pending(); ok {
		m.log.Debugf("navigation pending layout", map[string]any{"section": string(pending)})
	}
	m.refresh()
}

func (m *Model) reload() tea.Cmd {
	m.page.Reload(m.now)
	m.anim.reset(m.now)
	m.frameGen++
	m.hoverCarousel = false
	m.touchedCarousel = false
	m.viewport.SetYOffset(0)
	m.setStatus("reloaded", false)
	m.log.Debugf("page reloaded", map[string]any{"generation": m.frameGen})
	m.refresh()
	m.notifyScroll()
	return frameCmd(m.settings.FrameInterval.Std(), m.frameGen)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.page.Teardown()
	return m, tea.Quit
}

func coreKey(msg tea.KeyMsg) page.Key {
	switch msg.String() {
	case "left":
		return page.KeyLeft
	case "right":
		return page.KeyRight
	case "esc":
		return page.KeyEscape
	default:
		return page.KeyOther
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	if m.prompting {
		return m.handlePromptKey(msg)
	}

	// Listeners registered by the page come first.
	if m.page.Key(coreKey(msg)) {
		m.refresh()
		return m, nil
	}
	if m.page.Snapshot().LightboxOpen {
		// Modal: the rest of the page ignores keys.
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Close):
		if m.page.Snapshot().MobileMenuOpen {
			m.page.ToggleMobileMenu()
			m.refresh()
		}

	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.viewport.Height)
	case key.Matches(msg, m.keys.Top):
		m.scrollBy(-m.viewport.YOffset)
	case key.Matches(msg, m.keys.Bottom):
		m.scrollBy(m.layout.rows)

	case key.Matches(msg, m.keys.NextNav):
		m.navigate(m.neighbourSection(1))
	case key.Matches(msg, m.keys.PrevNav):
		m.navigate(m.neighbourSection(-1))
	case key.Matches(msg, m.keys.NavIndex):
		ids := m.page.Sections()
		if i := int(msg.String()[0] - '1'); i < len(ids) {
			m.navigate(ids[i])
		}

	case key.Matches(msg, m.keys.Menu):
		if m.mobile() {
			m.page.ToggleMobileMenu()
			m.refresh()
		}

	case key.Matches(msg, m.keys.Gallery):
		m.openImage(0)
		m.refresh()

	case key.Matches(msg, m.keys.Jump):
		m.prompting = true
		m.prompt.SetValue("")
		m.refresh()
		return m, m.prompt.Focus()

	case key.Matches(msg, m.keys.Reload):
		return m, m.reload()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.refresh()
	}

	return m, nil
}

// neighbourSection returns the nav section dir steps from the active one, wrapping.
func (m Model) neighbourSection(dir int) page.SectionID {
	ids := m.page.Sections()
	active := m.page.Snapshot().ActiveSection
	for i, id := range ids {
		if id == active {
			return ids[(i+dir+len(ids))%len(ids)]
		}
	}
	return ids[0]
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closePrompt()
		return m, nil
	case tea.KeyEnter:
		query := m.prompt.Value()
		m.closePrompt()
		id, ok := m.resolveSection(query)
		if !ok {
			m.setStatus(fmt.Sprintf("no section matches %q", query), true)
			return m, nil
		}
		m.navigate(id)
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
	m.refresh()
}

// resolveSection fuzzy-matches query against nav section labels and ids.
func (m Model) resolveSection(query string) (page.SectionID, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", false
	}

	ids := m.page.Sections()
	targets := make([]string, 0, 2*len(ids))
	owners := make([]page.SectionID, 0, 2*len(ids))
	for _, id := range ids {
		label := string(id)
		if sec, ok := m.manifest.Section(string(id)); ok {
			label = sec.Label
		}
		targets = append(targets, label, string(id))
		owners = append(owners, id, id)
	}

	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return owners[ranks[0].OriginalIndex], true
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.Ready() {
		return m, nil
	}
	snap := m.page.Snapshot()

	switch {
	case msg.Action == tea.MouseActionMotion:
		if snap.LightboxOpen {
			return m, nil
		}
		over := m.overCarousel(msg.X, msg.Y)
		switch {
		case over && !m.hoverCarousel:
			m.page.Carousel.PointerEnter()
		case !over && m.hoverCarousel:
			m.page.Carousel.PointerLeave()
		}
		m.hoverCarousel = over
		return m, nil

	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if snap.LightboxOpen || msg.Action != tea.MouseActionPress {
			return m, nil
		}
		delta := 3
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -3
		}
		m.scrollBy(delta)
		return m, nil

	case msg.Action == tea.MouseActionRelease:
		if m.touchedCarousel {
			m.touchedCarousel = false
			m.page.Carousel.TouchEnd()
			m.refresh()
		}
		return m, nil

	case msg.Action == tea.MouseActionPress:
		region, act := m.hitTest(msg.X, msg.Y)
		primary := msg.Button == tea.MouseButtonLeft
		// Listeners see the click before the clicked control acts on it.
		m.page.Click(page.Click{Region: region, Primary: primary})
		if region == page.RegionCarousel {
			m.touchedCarousel = true
			m.page.Carousel.TouchStart()
		}
		var cmd tea.Cmd
		if primary {
			cmd = m.perform(act)
		}
		m.refresh()
		return m, cmd
	}

	return m, nil
}

// openImage opens the lightbox. The modal covers the review strip, so a
// pointer resting on it counts as having left.
func (m *Model) openImage(i int) {
	if err := m.page.OpenImage(i); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if m.hoverCarousel {
		m.hoverCarousel = false
		m.page.Carousel.PointerLeave()
	}
}

func (m *Model) perform(act action) tea.Cmd {
	switch act.kind {
	case actNav:
		m.navigate(act.section)
	case actMenuToggle:
		m.page.ToggleMobileMenu()
	case actBrand:
		return m.reload()
	case actImage:
		m.openImage(act.index)
	case actLightboxPrev:
		m.page.PrevImage()
	case actLightboxNext:
		m.page.NextImage()
	case actLightboxClose:
		m.page.CloseImage()
	case actLink:
		return statusCmd("open "+act.url, false)
	}
	return nil
}

// hitTest resolves a terminal cell to the page region under it and the
// action of the control there, if any.
func (m Model) hitTest(x, y int) (page.Region, action) {
	snap := m.page.Snapshot()
	if snap.LightboxOpen {
		lb := m.lightbox()
		if !lb.box.contains(x, y) {
			return page.RegionOverlay, action{}
		}
		for _, h := range lb.hotspots {
			if h.zone.contains(x, y) {
				return page.RegionLightboxContent, h.action
			}
		}
		return page.RegionLightboxContent, action{}
	}

	for _, h := range m.navBar().hotspots {
		if h.zone.contains(x, y) {
			return page.RegionNav, h.action
		}
	}
	if y < navHeight {
		return page.RegionNav, action{}
	}
	if snap.MobileMenuOpen {
		for _, h := range m.menu().hotspots {
			if h.zone.contains(x, y) {
				return page.RegionNav, h.action
			}
		}
	}

	if y >= navHeight+m.viewport.Height {
		return page.RegionPage, action{}
	}
	row := y - navHeight + m.viewport.YOffset
	if h, ok := m.layout.hit(x, row); ok {
		return h.region, h.action
	}
	if m.layout.carousel.contains(x, row) {
		return page.RegionCarousel, action{}
	}
	return page.RegionPage, action{}
}

func (m Model) overCarousel(x, y int) bool {
	if y < navHeight || y >= navHeight+m.viewport.Height {
		return false
	}
	return m.layout.carousel.contains(x, y-navHeight+m.viewport.YOffset)
}
