package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFraction(t *testing.T) {
	tests := []struct {
		name                             string
		top, height, viewTop, viewHeight int
		want                             float64
	}{
		{"fully inside", 5, 10, 0, 20, 1},
		{"below viewport", 30, 10, 0, 20, 0},
		{"above viewport", 0, 10, 15, 20, 0},
		{"top half visible", 15, 10, 0, 20, 0.5},
		{"bottom edge touching", 20, 10, 0, 20, 0},
		{"taller than viewport", 0, 100, 10, 20, 0.2},
		{"zero height", 5, 0, 0, 20, 0},
		{"zero viewport", 5, 10, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fraction(tt.top, tt.height, tt.viewTop, tt.viewHeight)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestLatch_StaysFiredAfterFalse(t *testing.T) {
	var l Latch
	assert.False(t, l.Observe(false))
	assert.False(t, l.Fired())

	assert.True(t, l.Observe(true))
	assert.True(t, l.Fired())

	assert.False(t, l.Observe(false))
	assert.True(t, l.Fired())
	assert.False(t, l.Observe(true), "second true must not fire again")
	assert.True(t, l.Fired())
}

func TestObserver_Threshold(t *testing.T) {
	o := NewObserver(0.2)

	// 1 of 10 lines visible: 0.1 < 0.2
	assert.False(t, o.Observe(19, 10, 0, 20))
	assert.False(t, o.Revealed())

	// 3 of 10 lines visible.
	assert.True(t, o.Observe(17, 10, 0, 20))
	assert.True(t, o.Revealed())

	// Scrolled far away; still revealed.
	assert.False(t, o.Observe(500, 10, 0, 20))
	assert.True(t, o.Revealed())
}

func TestObserver_ZeroThresholdNeedsSomeVisibility(t *testing.T) {
	o := NewObserver(0)
	assert.False(t, o.Observe(40, 10, 0, 20))
	assert.False(t, o.Revealed())
	assert.True(t, o.Observe(19, 10, 0, 20))
}
