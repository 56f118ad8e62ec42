package site

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	NextNav  key.Binding
	PrevNav  key.Binding
	NavIndex key.Binding
	Menu     key.Binding
	Gallery  key.Binding
	Jump     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		NextNav:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevNav:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous section")),
		NavIndex: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to section")),
		Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Gallery:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open gallery")),
		Jump:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.NextNav, k.Jump, k.Gallery, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.NextNav, k.PrevNav, k.NavIndex, k.Jump, k.Menu},
		{k.Gallery, k.Reload, k.Help, k.Close, k.Quit},
	}
}

// lightboxKeyMap is shown while the gallery is open; the bindings themselves
// are handled by the page's key listeners.
type lightboxKeyMap struct {
	prev, next, close key.Binding
}

func newLightboxKeyMap() lightboxKeyMap {
	return lightboxKeyMap{
		prev:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous")),
		next:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
		close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func (k lightboxKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.prev, k.next, k.close}
}

func (k lightboxKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
