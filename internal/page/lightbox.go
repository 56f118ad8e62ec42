package page

import (
	"fmt"

	"github.com/alexisbeaulieu97/showcase/internal/logger"
	pageerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

// Lightbox is the modal gallery viewer. It is Closed or Open(i) with 0 <= i < N.
type Lightbox struct {
	state     *UIState
	size      int
	listeners *listenerSet
	log       *logger.Logger

	keys    *Registration
	overlay *Registration
}

func newLightbox(state *UIState, size int, listeners *listenerSet, log *logger.Logger) *Lightbox {
	return &Lightbox{state: state, size: size, listeners: listeners, log: log}
}

// Size returns the number of gallery images.
func (l *Lightbox) Size() int {
	return l.size
}

// Open shows image i. Indices outside [0,N) are rejected, never clamped or
// wrapped. Opening while already open moves to i.
func (l *Lightbox) Open(i int) error {
	if i < 0 || i >= l.size {
		l.log.Warn(fmt.Sprintf("lightbox open rejected: index %d of %d", i, l.size))
		return pageerrors.NewContractError("lightbox.open", "index %d outside [0,%d)", i, l.size)
	}
	l.state.selectedImage = i
	if l.state.lightboxOpen {
		return nil
	}
	l.state.lightboxOpen = true
	l.keys = l.listeners.onKey(l.onKey)
	l.overlay = l.listeners.onClick(l.onClick)
	return nil
}

// Close returns to Closed and unregisters the key and overlay listeners.
func (l *Lightbox) Close() {
	l.state.lightboxOpen = false
	l.state.selectedImage = 0
	l.keys.Cancel()
	l.overlay.Cancel()
	l.keys, l.overlay = nil, nil
}

// Next advances with wrap-around. No-op while Closed.
func (l *Lightbox) Next() {
	if !l.state.lightboxOpen {
		return
	}
	l.state.selectedImage = (l.state.selectedImage + 1) % l.size
}

// Prev steps back with wrap-around. No-op while Closed.
func (l *Lightbox) Prev() {
	if !l.state.lightboxOpen {
		return
	}
	l.state.selectedImage = (l.state.selectedImage - 1 + l.size) % l.size
}

// IsOpen reports whether an image is displayed.
func (l *Lightbox) IsOpen() bool {
	return l.state.lightboxOpen
}

// Position renders the "{i+1} of N" indicator, or "" while Closed.
func (l *Lightbox) Position() string {
	if !l.state.lightboxOpen {
		return ""
	}
	return fmt.Sprintf("%d of %d", l.state.selectedImage+1, l.size)
}

func (l *Lightbox) onKey(k Key) bool {
	switch k {
	case KeyLeft:
		l.Prev()
	case KeyRight:
		l.Next()
	case KeyEscape:
		l.Close()
	default:
		return false
	}
	return true
}

func (l *Lightbox) onClick(c Click) {
	if c.Primary && c.Region != RegionLightboxContent {
		l.Close()
	}
}
