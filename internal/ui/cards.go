package ui

import (
	"termfolio/internal/anim"
	"termfolio/internal/reveal"
)

// CardSet is the type-independent view of a Cards grid the Page drives.
type CardSet interface {
	Len() int
	Hover() int
	SetHover(i int) bool
	MoveHover(delta int) bool
	HitTest(x, y int) int
	Observe(sectionTop, viewTop, viewHeight int) bool
	Step() bool
	Moving() bool
}

// Cards holds the interaction state every card grid repeats: which card is
// hovered, which card images have loaded, and each card's reveal latch and
// entrance tween. Rects are written by the owning section while rendering,
// relative to the section's first line.
type Cards[T any] struct {
	items     []T
	hover     int
	loaded    []bool
	observers []*reveal.Observer
	tweens    []anim.Tween
	rects     []Rect
}

// Ensure Cards implements CardSet.
var _ CardSet = (*Cards[int])(nil)

// NewCards returns cards for items, each revealed at threshold.
func NewCards[T any](items []T, threshold float64) *Cards[T] {
	c := &Cards[T]{
		items:     items,
		hover:     -1,
		loaded:    make([]bool, len(items)),
		observers: make([]*reveal.Observer, len(items)),
		tweens:    make([]anim.Tween, len(items)),
		rects:     make([]Rect, len(items)),
	}
	for i := range items {
		c.observers[i] = reveal.NewObserver(threshold)
		c.tweens[i] = anim.NewReveal()
	}
	return c
}

// Len returns the number of cards.
func (c *Cards[T]) Len() int { return len(c.items) }

// Item returns card i's content.
func (c *Cards[T]) Item(i int) T { return c.items[i] }

// Items returns all card contents in order.
func (c *Cards[T]) Items() []T { return c.items }

// SetThreshold changes card i's reveal threshold (featured cards).
func (c *Cards[T]) SetThreshold(i int, threshold float64) {
	if i >= 0 && i < len(c.observers) && !c.observers[i].Revealed() {
		c.observers[i] = reveal.NewObserver(threshold)
	}
}

// Hover returns the hovered card, or -1.
func (c *Cards[T]) Hover() int { return c.hover }

// Hovered reports whether card i is hovered.
func (c *Cards[T]) Hovered(i int) bool { return c.hover == i }

// SetHover hovers card i; -1 clears. Out-of-range indices are ignored.
// It reports whether the hover changed.
func (c *Cards[T]) SetHover(i int) bool {
	if i < -1 || i >= len(c.items) || i == c.hover {
		return false
	}
	c.hover = i
	return true
}

// MoveHover steps the hover by delta, clamped to the grid. With nothing
// hovered it starts at the first card.
func (c *Cards[T]) MoveHover(delta int) bool {
	if len(c.items) == 0 {
		return false
	}
	if c.hover < 0 {
		return c.SetHover(0)
	}
	return c.SetHover(min(max(c.hover+delta, 0), len(c.items)-1))
}

// Loaded reports whether card i's image has loaded.
func (c *Cards[T]) Loaded(i int) bool {
	return i >= 0 && i < len(c.loaded) && c.loaded[i]
}

// SetLoaded records that card i's image finished loading.
func (c *Cards[T]) SetLoaded(i int, loaded bool) {
	if i >= 0 && i < len(c.loaded) {
		c.loaded[i] = loaded
	}
}

// SetRect records where card i was drawn, relative to its section.
func (c *Cards[T]) SetRect(i int, r Rect) {
	if i >= 0 && i < len(c.rects) {
		c.rects[i] = r
	}
}

// Rect returns where card i was last drawn.
func (c *Cards[T]) Rect(i int) Rect { return c.rects[i] }

// HitTest returns the card under section-relative cell (x, y), or -1.
func (c *Cards[T]) HitTest(x, y int) int {
	for i, r := range c.rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Observe feeds the viewport into every card's latch and starts the
// entrance of cards that just became visible. It reports whether any did.
func (c *Cards[T]) Observe(sectionTop, viewTop, viewHeight int) bool {
	fired := false
	for i, r := range c.rects {
		if c.observers[i].Observe(sectionTop+r.Y, r.H, viewTop, viewHeight) {
			c.tweens[i].SetTarget(1)
			fired = true
		}
	}
	return fired
}

// Revealed reports whether card i has been seen.
func (c *Cards[T]) Revealed(i int) bool { return c.observers[i].Revealed() }

// Progress is card i's entrance progress in [0, 1].
func (c *Cards[T]) Progress(i int) float64 { return c.tweens[i].Value() }

// Step advances every entrance by one frame and reports whether any is
// still moving.
func (c *Cards[T]) Step() bool {
	moving := false
	for i := range c.tweens {
		if !c.tweens[i].Step() {
			moving = true
		}
	}
	return moving
}

// Moving reports whether any entrance has yet to settle.
func (c *Cards[T]) Moving() bool {
	for i := range c.tweens {
		if !c.tweens[i].Settled() {
			return true
		}
	}
	return false
}
