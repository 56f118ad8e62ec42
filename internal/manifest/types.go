package manifest

import (
	"strconv"

	"github.com/alexisbeaulieu97/showcase/internal/page"
)

// Section kinds understood by the presentation layer.
const (
	KindHero          = "hero"
	KindText          = "text"
	KindGallery       = "gallery"
	KindMasterclasses = "masterclasses"
	KindReviews       = "reviews"
	KindContacts      = "contacts"
)

// Manifest is the static content payload of the page. It is read-only once loaded.
type Manifest struct {
	Site          Site          `yaml:"site" validate:"required"`
	Nav           []string      `yaml:"nav" validate:"required,min=1,dive,section_id"`
	Sections      []Section     `yaml:"sections" validate:"required,min=1,dive"`
	Backgrounds   []Background  `yaml:"backgrounds" validate:"len=2,dive"`
	Gallery       []Image       `yaml:"gallery" validate:"required,min=1,dive"`
	Reviews       []Review      `yaml:"reviews" validate:"omitempty,dive"`
	Masterclasses []Masterclass `yaml:"masterclasses" validate:"omitempty,dive"`
	Course        *Course       `yaml:"course,omitempty"`
	Contacts      Contacts      `yaml:"contacts"`
	Links         []Link        `yaml:"links" validate:"omitempty,dive"`
}

// Site carries the brand line shown in the nav bar and footer.
type Site struct {
	Brand   string `yaml:"brand" validate:"required"`
	Tagline string `yaml:"tagline,omitempty"`
	Footer  string `yaml:"footer,omitempty"`
}

// Section is one vertically ordered content region.
type Section struct {
	ID    string   `yaml:"id" validate:"required,section_id"`
	Label string   `yaml:"label" validate:"required"`
	Kind  string   `yaml:"kind" validate:"required,oneof=hero text gallery masterclasses reviews contacts"`
	Title string   `yaml:"title,omitempty"`
	Body  []string `yaml:"body,omitempty"`
	// Callout is an optional highlighted block under the body.
	Callout *Callout `yaml:"callout,omitempty"`
	Action  *Link    `yaml:"action,omitempty"`
}

// Callout is a titled highlighted paragraph.
type Callout struct {
	Title string `yaml:"title" validate:"required"`
	Text  string `yaml:"text" validate:"required"`
}

// Background describes one of the two hero backgrounds as a vertical gradient.
type Background struct {
	Name string `yaml:"name" validate:"required"`
	Top  string `yaml:"top" validate:"required,hexcolor"`
	Base string `yaml:"base" validate:"required,hexcolor"`
}

// Image is a gallery entry; its position in the list is its identity.
type Image struct {
	URL     string `yaml:"url" validate:"required"`
	Alt     string `yaml:"alt" validate:"required"`
	Caption string `yaml:"caption,omitempty"`
}

// Review is one testimonial card in the carousel.
type Review struct {
	Author string `yaml:"author" validate:"required"`
	Text   string `yaml:"text" validate:"required"`
}

// Masterclass is a scheduled session card.
type Masterclass struct {
	Date     string `yaml:"date" validate:"required"`
	Topic    string `yaml:"topic" validate:"required"`
	Seats    int    `yaml:"seats" validate:"gte=0,ltefield=Capacity"`
	Capacity int    `yaml:"capacity" validate:"gt=0"`
	Duration string `yaml:"duration,omitempty"`
	Price    string `yaml:"price,omitempty"`
	Summary  string `yaml:"summary,omitempty"`
}

// Course is the long-form training programme.
type Course struct {
	Title  string   `yaml:"title" validate:"required"`
	Intro  []string `yaml:"intro,omitempty"`
	Topics []string `yaml:"topics" validate:"required,min=1"`
	Facts  []Fact   `yaml:"facts,omitempty" validate:"omitempty,dive"`
	Action *Link    `yaml:"action,omitempty"`
}

// Fact is a label/value pair such as "Duration: 40 hours".
type Fact struct {
	Label string `yaml:"label" validate:"required"`
	Value string `yaml:"value" validate:"required"`
}

// Contacts lists the ways to book.
type Contacts struct {
	Phone    string `yaml:"phone,omitempty"`
	WhatsApp string `yaml:"whatsapp,omitempty"`
	Telegram string `yaml:"telegram,omitempty"`
	Booking  *Link  `yaml:"booking,omitempty"`
}

// Link is an outbound link.
type Link struct {
	Label string `yaml:"label" validate:"required"`
	URL   string `yaml:"url" validate:"required,url"`
}

// NavSections returns the nav ids as page section ids, in order.
func (m *Manifest) NavSections() []page.SectionID {
	ids := make([]page.SectionID, 0, len(m.Nav))
	for _, id := range m.Nav {
		ids = append(ids, page.SectionID(id))
	}
	return ids
}

// Section looks up a section by id.
func (m *Manifest) Section(id string) (Section, bool) {
	for _, s := range m.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Caption returns the lightbox caption of image i, falling back to "Work i".
func (m *Manifest) Caption(i int) string {
	if i < 0 || i >= len(m.Gallery) {
		return ""
	}
	if c := m.Gallery[i].Caption; c != "" {
		return c
	}
	return "Work " + strconv.Itoa(i)
}
