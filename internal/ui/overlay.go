package ui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Overlay is a modal view drawn in place of the page while open.
type Overlay interface {
	View
	IsOpen() bool
	Close()
}

// Rect is a region of terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// centerOffset matches how lipgloss.Place splits a gap around centered content.
func centerOffset(total, size int) int {
	gap := total - size
	if gap <= 0 {
		return 0
	}
	return gap - int(math.Round(float64(gap)*0.5))
}

// placeCenter centers box on a blank width×height screen and returns the
// screen plus where the box landed. Everything outside the box is backdrop.
func placeCenter(width, height int, box string) (string, Rect) {
	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	r := Rect{X: centerOffset(width, bw), Y: centerOffset(height, bh), W: bw, H: bh}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box), r
}
