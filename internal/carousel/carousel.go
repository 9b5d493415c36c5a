// Package carousel implements the image navigation state shared by the
// project and artwork modals.
//
// A Carousel is either Closed or Open(entity, index). Opening always starts
// at index 0. Next and Prev wrap modulo the image count; Jump only accepts an
// index inside [0, N). With zero images every navigation call is a no-op and
// the index stays 0.
package carousel

// State is the carousel's top-level state.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	switch s {
	case Closed:
		return "Closed"
	case Open:
		return "Open"
	default:
		return "Unknown"
	}
}

// Carousel holds the selected entity and the current image index.
// The zero value is a closed carousel.
type Carousel[E any] struct {
	state  State
	entity E
	n      int
	index  int
}

// Open selects entity e with n images and resets the index to 0.
// Opening while already open replaces the entity wholesale.
func (c *Carousel[E]) Open(e E, n int) {
	if n < 0 {
		n = 0
	}
	c.state = Open
	c.entity = e
	c.n = n
	c.index = 0
}

// Close returns to the Closed state and drops the entity.
func (c *Carousel[E]) Close() {
	var zero E
	c.state = Closed
	c.entity = zero
	c.n = 0
	c.index = 0
}

// Next advances one image, wrapping to the first.
func (c *Carousel[E]) Next() {
	if c.state != Open || c.n == 0 {
		return
	}
	c.index = (c.index + 1) % c.n
}

// Prev goes back one image, wrapping to the last.
func (c *Carousel[E]) Prev() {
	if c.state != Open || c.n == 0 {
		return
	}
	c.index = (c.index - 1 + c.n) % c.n
}

// Jump moves directly to image k. Out-of-range k is ignored.
// Returns true if the index was applied.
func (c *Carousel[E]) Jump(k int) bool {
	if c.state != Open || k < 0 || k >= c.n {
		return false
	}
	c.index = k
	return true
}

// State returns Closed or Open.
func (c *Carousel[E]) State() State { return c.state }

// IsOpen reports whether an entity is selected.
func (c *Carousel[E]) IsOpen() bool { return c.state == Open }

// Index returns the current image index (0 when closed or empty).
func (c *Carousel[E]) Index() int { return c.index }

// Len returns the number of images of the open entity.
func (c *Carousel[E]) Len() int { return c.n }

// Navigable reports whether prev/next controls should be offered.
func (c *Carousel[E]) Navigable() bool { return c.state == Open && c.n > 1 }

// Entity returns the selected entity and whether the carousel is open.
func (c *Carousel[E]) Entity() (E, bool) {
	return c.entity, c.state == Open
}
