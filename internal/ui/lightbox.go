package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/carousel"
)

// Lightbox binds a carousel to the Document for as long as it is open.
// Opening acquires the scroll lock and a document key listener inside a
// Scope; every way out (Close, re-Open with another entity, Unmount)
// releases that Scope, so the listener never outlives the modal.
type Lightbox[E any] struct {
	doc      *Document
	carousel carousel.Carousel[E]
	scope    *Scope
}

// NewLightbox returns a closed lightbox on doc.
func NewLightbox[E any](doc *Document) *Lightbox[E] {
	return &Lightbox[E]{doc: doc}
}

// Open shows e with n images starting at the first one.
func (l *Lightbox[E]) Open(e E, n int) {
	l.release()
	l.carousel.Open(e, n)

	s := &Scope{}
	s.Defer(l.doc.LockScroll())
	s.Defer(l.doc.AddKeyListener(l.handleKey))
	l.scope = s
}

// Close hides the lightbox and gives back what Open acquired.
func (l *Lightbox[E]) Close() {
	l.release()
	l.carousel.Close()
}

// Unmount is Close for a lightbox whose owner is going away.
func (l *Lightbox[E]) Unmount() {
	l.Close()
}

func (l *Lightbox[E]) release() {
	if l.scope != nil {
		l.scope.Release()
		l.scope = nil
	}
}

// handleKey is the document listener: esc closes at once and then asks the
// owner to drop its selection; arrows and digits only navigate when there
// is more than one image.
func (l *Lightbox[E]) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch s := msg.String(); s {
	case "esc":
		l.Close()
		return true, dismissModal
	case "left":
		if l.carousel.Navigable() {
			l.carousel.Prev()
			return true, nil
		}
	case "right":
		if l.carousel.Navigable() {
			l.carousel.Next()
			return true, nil
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if l.carousel.Navigable() {
			l.carousel.Jump(int(s[0] - '1'))
			return true, nil
		}
	}
	return false, nil
}

// IsOpen reports whether an entity is shown.
func (l *Lightbox[E]) IsOpen() bool { return l.carousel.IsOpen() }

// Entity returns the shown entity.
func (l *Lightbox[E]) Entity() (E, bool) { return l.carousel.Entity() }

// Index is the current image.
func (l *Lightbox[E]) Index() int { return l.carousel.Index() }

// Len is the number of images.
func (l *Lightbox[E]) Len() int { return l.carousel.Len() }

// Navigable reports whether navigation controls should be shown.
func (l *Lightbox[E]) Navigable() bool { return l.carousel.Navigable() }

// Jump selects image k when it exists (thumbnail clicks).
func (l *Lightbox[E]) Jump(k int) bool { return l.carousel.Jump(k) }

// Next and Prev are the on-screen arrow controls.
func (l *Lightbox[E]) Next() { l.carousel.Next() }
func (l *Lightbox[E]) Prev() { l.carousel.Prev() }
