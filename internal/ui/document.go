package ui

import tea "github.com/charmbracelet/bubbletea"

// KeyListener receives keys at document level, before any component.
// Returning handled=true stops the key from reaching anything else.
type KeyListener func(msg tea.KeyMsg) (handled bool, cmd tea.Cmd)

type registeredListener struct {
	id int
	fn KeyListener
}

// Document owns the page-wide resources a modal borrows while it is open:
// the scroll lock and the document key listeners.
type Document struct {
	scrollLocks int
	listeners   []registeredListener
	nextID      int
}

// NewDocument returns a document with scrolling enabled and no listeners.
func NewDocument() *Document {
	return &Document{}
}

// ScrollLocked reports whether page scrolling is disabled.
func (d *Document) ScrollLocked() bool {
	return d.scrollLocks > 0
}

// LockScroll disables page scrolling until every lock has been released,
// in any order. Calling the returned release more than once is harmless.
func (d *Document) LockScroll() (release func()) {
	d.scrollLocks++
	released := false
	return func() {
		if released {
			return
		}
		released = true
		d.scrollLocks--
	}
}

// AddKeyListener registers fn and returns its remover. Removing twice is harmless.
func (d *Document) AddKeyListener(fn KeyListener) (remove func()) {
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, registeredListener{id: id, fn: fn})
	return func() {
		for i, l := range d.listeners {
			if l.id == id {
				d.listeners = append(d.listeners[:i:i], d.listeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of registered key listeners.
func (d *Document) ListenerCount() int {
	return len(d.listeners)
}

// DispatchKey offers msg to listeners, newest first, until one handles it.
// It walks a snapshot so a listener may remove itself (or others) mid-dispatch.
func (d *Document) DispatchKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	snapshot := make([]registeredListener, len(d.listeners))
	copy(snapshot, d.listeners)
	for i := len(snapshot) - 1; i >= 0; i-- {
		if handled, cmd := snapshot[i].fn(msg); handled {
			return true, cmd
		}
	}
	return false, nil
}

// Scope collects release functions for resources acquired together and
// runs them once, last acquired first.
type Scope struct {
	releases []func()
	released bool
}

// Defer registers release. On an already released scope it runs at once.
func (s *Scope) Defer(release func()) {
	if release == nil {
		return
	}
	if s.released {
		release()
		return
	}
	s.releases = append(s.releases, release)
}

// Release runs every registered release in reverse order. Later calls do nothing.
func (s *Scope) Release() {
	if s.released {
		return
	}
	s.released = true
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}

// Released reports whether Release has run.
func (s *Scope) Released() bool {
	return s.released
}
