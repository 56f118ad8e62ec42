package site

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/showcase/internal/manifest"
	"github.com/alexisbeaulieu97/showcase/internal/page"
)

var (
	goldTone  = mustHex("#d4a762")
	textTone  = mustHex("#d0d0d0")
	mutedTone = mustHex("#8a8a8a")
	whiteTone = mustHex("#ffffff")
)

// document is one rendering of the scrollable page body.
type document struct {
	lines    []string
	sections map[page.SectionID]span
	hotspots []hotspot
	carousel zone
	// strip and view are the review carousel widths in columns.
	strip, view int
}

func (d *document) row() int { return len(d.lines) }

// add appends block indented by the page margin and returns its first row.
func (d *document) add(block string) int {
	return d.addAt(block, marginX)
}

func (d *document) addAt(block string, indent int) int {
	top := len(d.lines)
	pad := strings.Repeat(" ", indent)
	for _, line := range strings.Split(block, "\n") {
		d.lines = append(d.lines, pad+line)
	}
	return top
}

func (d *document) blank(n int) {
	for i := 0; i < n; i++ {
		d.lines = append(d.lines, "")
	}
}

func (d *document) hot(z zone, region page.Region, act action) {
	d.hotspots = append(d.hotspots, hotspot{zone: z, region: region, action: act})
}

// renderer renders the document for one model state.
type renderer struct {
	m    Model
	snap page.Snapshot
	doc  *document
	w    int
}

func (m Model) renderDocument() *document {
	r := &renderer{
		m:    m,
		snap: m.page.Snapshot(),
		doc:  &document{sections: make(map[page.SectionID]span)},
		w:    m.contentWidth(),
	}

	for _, sec := range m.manifest.Sections {
		top := r.doc.row()
		switch sec.Kind {
		case manifest.KindHero:
			r.hero(sec)
		case manifest.KindGallery:
			r.gallery(sec)
		case manifest.KindMasterclasses:
			r.masterclasses(sec)
		case manifest.KindReviews:
			r.reviews(sec)
		case manifest.KindContacts:
			r.contacts(sec)
		default:
			r.text(sec)
		}
		r.doc.sections[page.SectionID(sec.ID)] = span{top: top, height: r.doc.row() - top}
	}
	r.footer()
	return r.doc
}

// progress is the entrance progress of element index of kind in section id.
func (r *renderer) progress(id string, kind page.AnimationKind, index int) (float64, int) {
	elapsed, ok := r.m.anim.since(page.SectionID(id), r.m.now)
	if !ok {
		return 0, slideMargin
	}
	prof := r.m.anim.profile(page.SectionID(id), kind)
	slide := int(math.Round(prof.Offset(elapsed, index) / float64(r.m.settings.CellWidth)))
	return prof.Progress(elapsed, index), min(max(slide, 0), slideMargin)
}

func (r *renderer) heading(sec manifest.Section) {
	title := sec.Title
	if title == "" {
		title = sec.Label
	}
	p, slide := r.progress(sec.ID, page.AnimHeading, 0)
	r.doc.addAt(headingStyle.Foreground(fadeColor(goldTone, p)).Render(title), marginX+slide)
}

func (r *renderer) paragraph(sec manifest.Section, text string, index int) {
	p, slide := r.progress(sec.ID, page.AnimItem, index)
	block := paragraphStyle.
		Width(r.w - slideMargin).
		Foreground(fadeColor(textTone, p)).
		Render(text)
	r.doc.addAt(block, marginX+slide)
}

func (r *renderer) button(label string, act action) {
	btn := buttonStyle.Render(label)
	top := r.doc.add(btn)
	r.doc.hot(zone{x0: marginX, y0: top, x1: marginX + lipgloss.Width(btn), y1: top + lipgloss.Height(btn)}, page.RegionPage, act)
}

func (r *renderer) hero(sec manifest.Section) {
	m := r.m
	rows := max(m.bodyHeight(), 9)
	width := max(m.width, 1)
	elapsed := m.now.Sub(m.anim.activated)

	type cell struct {
		text string
		fg   colorful.Color
		bold bool
		act  *action
		set  bool
	}
	cells := make([]cell, rows)

	subtitle := wrapLines(sec.Body, min(width-8, 70))
	block := 2 + len(subtitle) + 2
	top := max((rows-block)/2, 0)

	place := func(kind page.AnimationKind, row int, c cell) {
		prof := m.anim.heroProfile(kind)
		p := prof.Progress(elapsed, 0)
		if p <= 0 {
			return
		}
		row += int(math.Round(prof.Offset(elapsed, 0) / float64(m.settings.CellHeight)))
		if row < 0 || row >= rows {
			return
		}
		c.fg = canvas.BlendLab(c.fg, clamp01(p)).Clamped()
		c.set = true
		cells[row] = c
	}

	place(page.AnimHeroTitle, top, cell{text: strings.ToUpper(sec.Title), fg: whiteTone, bold: true})
	for i, line := range subtitle {
		place(page.AnimHeroSubtitle, top+2+i, cell{text: line, fg: textTone})
	}
	if sec.Action != nil {
		act := action{kind: actLink, url: sec.Action.URL}
		place(page.AnimHeroButton, top+3+len(subtitle), cell{text: "[ " + sec.Action.Label + " ]", fg: goldTone, bold: true, act: &act})
	}

	base := r.doc.row()
	p := m.anim.fadeProgress(m.now, m.settings.FadeDuration.Std())
	for row, c := range cells {
		bg := lipgloss.Color(backgroundAt(m.manifest.Backgrounds, m.anim.fadeFrom, m.anim.fadeTo, p, row, rows).Hex())
		fill := lipgloss.NewStyle().Background(bg)
		if !c.set {
			r.doc.addAt(fill.Render(strings.Repeat(" ", width)), 0)
			continue
		}
		text := ansi.Truncate(c.text, width, "…")
		tw := lipgloss.Width(text)
		left := (width - tw) / 2
		line := fill.Render(strings.Repeat(" ", left)) +
			lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(c.fg.Hex())).Bold(c.bold).Render(text) +
			fill.Render(strings.Repeat(" ", width-left-tw))
		r.doc.addAt(line, 0)
		if c.act != nil {
			r.doc.hot(zone{x0: left, y0: base + row, x1: left + tw, y1: base + row + 1}, page.RegionPage, *c.act)
		}
	}
}

func (r *renderer) text(sec manifest.Section) {
	r.doc.blank(1)
	r.heading(sec)
	for i, body := range sec.Body {
		r.paragraph(sec, body, i)
		r.doc.blank(1)
	}
	if sec.Callout != nil {
		p, slide := r.progress(sec.ID, page.AnimItem, len(sec.Body))
		inner := lipgloss.JoinVertical(lipgloss.Left,
			accentStyle.Render("✂ "+sec.Callout.Title),
			paragraphStyle.Width(r.w-slideMargin-3).Foreground(fadeColor(textTone, p)).Render(sec.Callout.Text),
		)
		r.doc.addAt(calloutStyle.Render(inner), marginX+slide)
		r.doc.blank(1)
	}
	if sec.Action != nil {
		r.button(sec.Action.Label, action{kind: actLink, url: sec.Action.URL})
	}
	r.doc.blank(1)
}

func (r *renderer) gallery(sec manifest.Section) {
	r.doc.blank(1)
	r.heading(sec)
	for i, body := range sec.Body {
		r.paragraph(sec, body, i)
		r.doc.blank(1)
	}

	cols := 3
	if r.snap.Device == page.Mobile {
		cols = 2
	}
	const gap = 2
	tileW := max((r.w-gap*(cols-1))/cols, 8)

	var tiles []string
	for i, img := range r.m.manifest.Gallery {
		p, _ := r.progress(sec.ID, page.AnimGalleryItem, i)
		label := accentStyle.Foreground(fadeColor(goldTone, p)).Render(fmt.Sprintf("▣ %d", i+1))
		caption := r.m.manifest.Caption(i)
		body := lipgloss.JoinVertical(lipgloss.Left,
			label+" "+mutedStyle.Foreground(fadeColor(mutedTone, p)).Render(caption),
			mutedStyle.Foreground(fadeColor(mutedTone, p)).Render(ansi.Truncate(img.Alt, tileW-4, "…")),
		)
		tiles = append(tiles, tileStyle.Width(tileW-2).Height(3).Render(body))
	}

	top := r.doc.row()
	for _, z := range r.grid(tiles, cols, gap) {
		z.zone.y0 += top
		z.zone.y1 += top
		r.doc.hot(z.zone, page.RegionPage, action{kind: actImage, index: z.index})
	}
	r.doc.blank(1)
}

type placed struct {
	zone  zone
	index int
}

// grid lays cards out in rows of cols and appends them; the returned zones
// are relative to the first appended row.
func (r *renderer) grid(cards []string, cols, gap int) []placed {
	var out []placed
	spacer := strings.Repeat(" ", gap)
	row := 0
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		var parts []string
		x := marginX
		for i := start; i < end; i++ {
			if i > start {
				parts = append(parts, spacer)
				x += gap
			}
			w := lipgloss.Width(cards[i])
			out = append(out, placed{zone: zone{x0: x, y0: row, x1: x + w, y1: row + lipgloss.Height(cards[i])}, index: i})
			parts = append(parts, cards[i])
			x += w
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		r.doc.add(line)
		row += lipgloss.Height(line)
		if end < len(cards) {
			r.doc.blank(1)
			row++
		}
	}
	return out
}

func (r *renderer) masterclasses(sec manifest.Section) {
	m := r.m.manifest
	r.doc.blank(1)
	r.heading(sec)
	for i, body := range sec.Body {
		r.paragraph(sec, body, i)
		r.doc.blank(1)
	}
	if sec.Action != nil {
		r.button(sec.Action.Label, action{kind: actLink, url: sec.Action.URL})
		r.doc.blank(1)
	}

	cols := 2
	if r.snap.Device == page.Mobile {
		cols = 1
	}
	const gap = 2
	cardW := max((r.w-gap*(cols-1))/cols, 12)
	var cards []string
	for i, mc := range m.Masterclasses {
		p, _ := r.progress(sec.ID, page.AnimItem, len(sec.Body)+i)
		lines := []string{
			lipgloss.NewStyle().Bold(true).Foreground(fadeColor(whiteTone, p)).Render(mc.Date),
			paragraphStyle.Foreground(fadeColor(textTone, p)).Render("Topic: " + mc.Topic),
		}
		if mc.Summary != "" {
			lines = append(lines, mutedStyle.Width(cardW-4).Render(mc.Summary))
		}
		var facts []string
		if mc.Duration != "" {
			facts = append(facts, mc.Duration)
		}
		if mc.Price != "" {
			facts = append(facts, mc.Price)
		}
		if len(facts) > 0 {
			lines = append(lines, mutedStyle.Render(strings.Join(facts, " · ")))
		}
		lines = append(lines, accentStyle.Render(fmt.Sprintf("Seats: %d/%d", mc.Seats, mc.Capacity)))
		cards = append(cards, cardStyle.Width(cardW-2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}
	r.grid(cards, cols, gap)

	if c := m.Course; c != nil {
		r.doc.blank(1)
		inner := r.w - 4
		parts := []string{accentStyle.Render(c.Title), ""}
		for _, line := range c.Intro {
			parts = append(parts, paragraphStyle.Width(inner).Render(line))
		}
		parts = append(parts, "", lipgloss.NewStyle().Bold(true).Render("Included in the programme:"))
		for _, topic := range c.Topics {
			parts = append(parts, accentStyle.Render("✓ ")+paragraphStyle.Render(topic))
		}
		if len(c.Facts) > 0 {
			parts = append(parts, "")
			for _, f := range c.Facts {
				parts = append(parts, lipgloss.NewStyle().Bold(true).Render(f.Label+": ")+paragraphStyle.Render(f.Value))
			}
		}
		var btnRow, btnW int
		if c.Action != nil {
			parts = append(parts, "")
			btnRow = lipgloss.Height(lipgloss.JoinVertical(lipgloss.Left, parts...))
			btn := buttonStyle.Render(c.Action.Label)
			btnW = lipgloss.Width(btn)
			parts = append(parts, btn)
		}
		top := r.doc.add(cardStyle.Width(r.w - 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
		if c.Action != nil {
			// border plus left padding
			x := marginX + 2
			y := top + 1 + btnRow
			r.doc.hot(zone{x0: x, y0: y, x1: x + btnW, y1: y + 1}, page.RegionPage, action{kind: actLink, url: c.Action.URL})
		}
	}
	r.doc.blank(2)
}

func (r *renderer) reviews(sec manifest.Section) {
	r.doc.blank(1)
	r.heading(sec)

	reviews := r.m.manifest.Reviews
	mobile := r.snap.Device == page.Mobile
	const gap = 2
	cardW := max((r.w-2*gap)/3, 16)
	if mobile {
		cardW = max(min(r.w-6, 36), 16)
	}

	cards := make([]string, 0, len(reviews))
	height := 0
	for _, rv := range reviews {
		initial := strings.ToUpper(string([]rune(rv.Author)[:1]))
		head := lipgloss.JoinHorizontal(lipgloss.Top,
			buttonStyle.Padding(0, 1).Render(initial), " ",
			lipgloss.NewStyle().Bold(true).Render(rv.Author),
		)
		body := paragraphStyle.Width(cardW - 4).Render("“" + rv.Text + "”")
		card := lipgloss.JoinVertical(lipgloss.Left, head, "", body)
		height = max(height, lipgloss.Height(card))
		cards = append(cards, card)
	}
	for i := range cards {
		cards[i] = cardStyle.Width(cardW - 2).Height(height).Render(cards[i])
	}

	top := r.doc.row()
	if !mobile {
		r.grid(cards, 3, gap)
		r.doc.strip, r.doc.view = r.w, r.w
		r.doc.carousel = zone{x0: marginX, y0: top, x1: marginX + r.w, y1: r.doc.row()}
		r.doc.blank(2)
		return
	}

	var parts []string
	for i, c := range cards {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", gap))
		}
		parts = append(parts, c)
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	r.doc.strip, r.doc.view = lipgloss.Width(strip), r.w

	offset := int(r.snap.CarouselOffset) / r.m.settings.CellWidth
	lines := strings.Split(strip, "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, offset, offset+r.w)
	}
	r.doc.add(strings.Join(lines, "\n"))
	r.doc.carousel = zone{x0: marginX, y0: top, x1: marginX + r.w, y1: r.doc.row()}

	state := "auto-scrolling"
	if r.snap.CarouselPaused {
		state = "paused"
	}
	limit := float64(r.doc.strip-r.doc.view) * float64(r.m.settings.CellWidth)
	r.doc.add(newStripProgress(min(r.w-len(state)-1, 30)).View(state, r.snap.CarouselOffset, limit))
	r.doc.blank(1)
}

func (r *renderer) contacts(sec manifest.Section) {
	c := r.m.manifest.Contacts
	r.doc.blank(1)
	r.heading(sec)
	r.doc.add(lipgloss.NewStyle().Bold(true).Render("How to book"))
	r.doc.blank(1)
	idx := 0
	line := func(label, value string) {
		if value == "" {
			return
		}
		p, slide := r.progress(sec.ID, page.AnimItem, idx)
		idx++
		r.doc.addAt(mutedStyle.Render(label+": ")+paragraphStyle.Foreground(fadeColor(textTone, p)).Render(value), marginX+slide)
	}
	line("Phone", c.Phone)
	line("WhatsApp", c.WhatsApp)
	line("Telegram", c.Telegram)
	r.doc.blank(1)
	if c.Booking != nil {
		r.button(c.Booking.Label, action{kind: actLink, url: c.Booking.URL})
	}
	r.doc.blank(1)
}

func (r *renderer) footer() {
	m := r.m.manifest
	r.doc.add(mutedStyle.Render(strings.Repeat("─", r.w)))
	r.doc.blank(1)

	brand := brandStyle.Render(m.Site.Brand)
	top := r.doc.add(brand)
	r.doc.hot(zone{x0: marginX, y0: top, x1: marginX + lipgloss.Width(brand), y1: top + 1}, page.RegionPage, action{kind: actBrand})

	if m.Site.Footer != "" {
		r.doc.add(mutedStyle.Render(m.Site.Footer))
	}
	if m.Site.Tagline != "" {
		r.doc.add(mutedStyle.Render(m.Site.Tagline))
	}
	if len(m.Links) > 0 {
		r.doc.blank(1)
		row := r.doc.row()
		x := marginX
		var parts []string
		for i, link := range m.Links {
			if i > 0 {
				parts = append(parts, mutedStyle.Render(" · "))
				x += 3
			}
			label := accentStyle.Render(link.Label)
			w := lipgloss.Width(label)
			r.doc.hot(zone{x0: x, y0: row, x1: x + w, y1: row + 1}, page.RegionPage, action{kind: actLink, url: link.URL})
			parts = append(parts, label)
			x += w
		}
		r.doc.add(strings.Join(parts, ""))
	}
	r.doc.blank(1)
}

// wrapLines word-wraps each paragraph to width and flattens the result.
func wrapLines(paragraphs []string, width int) []string {
	width = max(width, 10)
	var out []string
	for _, p := range paragraphs {
		for _, line := range strings.Split(ansi.Wordwrap(p, width, ""), "\n") {
			out = append(out, strings.TrimRight(line, " "))
		}
	}
	return out
}
