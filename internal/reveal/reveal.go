// Package reveal decides when an element has scrolled into view.
//
// Visibility is measured in terminal lines: an element occupying
// [top, top+height) is compared with the viewport [viewTop, viewTop+viewHeight).
// A Latch remembers the first time the element was visible and never forgets.
package reveal

// Thresholds used by the page.
const (
	SectionThreshold  = 0.1
	CardThreshold     = 0.1
	GalleryThreshold  = 0.05
	FeaturedThreshold = 0.2
)

// Fraction returns the share of the element's lines inside the viewport,
// in [0, 1]. Elements with no height are never visible.
func Fraction(top, height, viewTop, viewHeight int) float64 {
	if height <= 0 || viewHeight <= 0 {
		return 0
	}
	lo := max(top, viewTop)
	hi := min(top+height, viewTop+viewHeight)
	if hi <= lo {
		return 0
	}
	return float64(hi-lo) / float64(height)
}

// Latch is a write-once boolean: the first true observation sticks.
type Latch struct {
	fired bool
}

// Observe records an intersection signal. It returns true only for the
// observation that fires the latch.
func (l *Latch) Observe(intersecting bool) bool {
	if l.fired || !intersecting {
		return false
	}
	l.fired = true
	return true
}

// Fired reports whether the latch has fired.
func (l *Latch) Fired() bool { return l.fired }

// Observer pairs a latch with its visibility threshold.
type Observer struct {
	Threshold float64
	latch     Latch
}

// NewObserver returns an observer for the given threshold.
func NewObserver(threshold float64) *Observer {
	return &Observer{Threshold: threshold}
}

// Observe feeds the element's current position into the latch and reports
// whether this call fired it.
func (o *Observer) Observe(top, height, viewTop, viewHeight int) bool {
	f := Fraction(top, height, viewTop, viewHeight)
	return o.latch.Observe(f > 0 && f >= o.Threshold)
}

// Revealed reports whether the element has ever been visible enough.
func (o *Observer) Revealed() bool { return o.latch.Fired() }
