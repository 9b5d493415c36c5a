package ui

import "termfolio/internal/content"

// SelectionStore holds the one piece of state shared across the page: the
// selected project. Set is the only writer; the value is replaced
// wholesale and the most recent call wins.
type SelectionStore struct {
	project  *content.Project
	onChange []func(*content.Project)
}

// Project returns the selected project, or nil when no modal should show.
func (s *SelectionStore) Project() *content.Project {
	return s.project
}

// Set replaces the selection (nil clears it) and notifies subscribers.
func (s *SelectionStore) Set(p *content.Project) {
	if p != nil {
		cp := *p
		p = &cp
	}
	s.project = p
	for _, fn := range s.onChange {
		fn(p)
	}
}

// Subscribe registers fn to run after every Set.
func (s *SelectionStore) Subscribe(fn func(*content.Project)) {
	s.onChange = append(s.onChange, fn)
}
