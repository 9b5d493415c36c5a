// Package anim drives entrance and scroll transitions with critically damped
// springs stepped by frame ticks on the Bubble Tea loop.
package anim

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

// FPS is the frame rate of every animation.
const FPS = 60

// settleEpsilon is how close position and velocity must be to the target
// before a tween snaps and stops.
const settleEpsilon = 0.01

// FrameMsg is delivered once per animation frame.
type FrameMsg time.Time

// Frame schedules the next animation frame.
func Frame() tea.Cmd {
	return tea.Tick(time.Second/FPS, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Tween animates a single value toward a target.
type Tween struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	scale  float64
}

// NewTween returns a tween resting at from. frequency controls speed; a
// damping ratio of 1 means no overshoot.
func NewTween(from, frequency, damping float64) Tween {
	return Tween{
		spring: harmonica.NewSpring(harmonica.FPS(FPS), frequency, damping),
		pos:    from,
		target: from,
		scale:  1,
	}
}

// NewReveal returns a 0 → 1 entrance tween at rest on 0.
func NewReveal() Tween {
	return NewTween(0, 8, 1)
}

// NewScroll returns a tween for scroll offsets measured in lines.
func NewScroll(from float64) Tween {
	return NewTween(from, 10, 1)
}

// SetTarget starts moving toward v.
func (t *Tween) SetTarget(v float64) {
	t.target = v
	d := math.Abs(v - t.pos)
	if d > 1 {
		t.scale = d
	} else {
		t.scale = 1
	}
}

// Jump moves to v immediately and stops.
func (t *Tween) Jump(v float64) {
	t.pos = v
	t.vel = 0
	t.target = v
	t.scale = 1
}

// Step advances one frame. It returns true once the tween has settled.
func (t *Tween) Step() bool {
	if t.Settled() {
		return true
	}
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, t.target)
	eps := settleEpsilon * t.scale
	if math.Abs(t.pos-t.target) < eps && math.Abs(t.vel) < eps*FPS {
		t.pos = t.target
		t.vel = 0
		return true
	}
	return false
}

// Settled reports whether the tween is at rest on its target.
func (t *Tween) Settled() bool {
	return t.pos == t.target && t.vel == 0
}

// Value is the current position.
func (t *Tween) Value() float64 { return t.pos }

// Target is the position the tween is moving toward.
func (t *Tween) Target() float64 { return t.target }
