package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/ui/textutil"
)

// navHeight is the NavBar's height in both styles.
const navHeight = 2

// navScrollThreshold is the page offset, in lines, past which the NavBar
// switches to its scrolled style.
const navScrollThreshold = 2

type navItem struct {
	number int
	label  string
	anchor string
}

// NavBar is the fixed top bar: the owner's initials (back to top) and one
// numbered link per labelled section.
type NavBar struct {
	initials string
	items    []navItem
	scrolled bool
	active   string

	logo  Rect
	spans []Rect // per item, screen x on the first line
}

// NewNavBar lists every section with a label, numbered in page order.
func NewNavBar(name string, sections []Section) *NavBar {
	n := &NavBar{initials: textutil.Initials(name, 2)}
	for _, s := range sections {
		if s.Label() == "" {
			continue
		}
		n.items = append(n.items, navItem{number: len(n.items) + 1, label: s.Label(), anchor: s.Anchor()})
	}
	return n
}

// SetScroll updates the style for the page offset.
func (n *NavBar) SetScroll(offset int) { n.scrolled = offset > navScrollThreshold }

// Scrolled reports whether the compact style is in use.
func (n *NavBar) Scrolled() bool { return n.scrolled }

// SetActive marks the section the reader is in.
func (n *NavBar) SetActive(anchor string) { n.active = anchor }

// Active is the marked section anchor.
func (n *NavBar) Active() string { return n.active }

// Anchor returns the selector for the k-th link (1-based), or "".
func (n *NavBar) Anchor(k int) string {
	if k < 1 || k > len(n.items) {
		return ""
	}
	return "#" + n.items[k-1].anchor
}

// Render draws the bar at width.
func (n *NavBar) Render(width int) string {
	style := Styles.NavBar
	if n.scrolled {
		style = Styles.NavBarScrolled
	}
	left := style.GetPaddingLeft()
	inner := max(width-style.GetHorizontalFrameSize(), 0)

	logo := Styles.Title.Render(n.initials)
	n.logo = Rect{X: left, Y: 0, W: lipgloss.Width(logo), H: 1}

	compact := n.linksWidth(false) > inner-n.logo.W-2
	links := make([]string, len(n.items))
	for i, it := range n.items {
		num := textutil.Number(it.number)
		text := num + " " + it.label
		if compact {
			text = num
		}
		if it.anchor == n.active {
			links[i] = Styles.Selected.Render("▸" + text)
		} else {
			links[i] = Styles.Muted.Render(" " + text)
		}
	}
	bar := strings.Join(links, "  ")
	gap := max(inner-n.logo.W-lipgloss.Width(bar), 1)

	n.spans = n.spans[:0]
	x := left + n.logo.W + gap
	for _, l := range links {
		w := lipgloss.Width(l)
		n.spans = append(n.spans, Rect{X: x, Y: 0, W: w, H: 1})
		x += w + 2
	}

	line := logo + strings.Repeat(" ", gap) + bar
	return style.Width(width - style.GetHorizontalBorderSize()).MaxHeight(navHeight).Render(textutil.Truncate(line, inner))
}

func (n *NavBar) linksWidth(compact bool) int {
	w := 0
	for i, it := range n.items {
		if i > 0 {
			w += 2
		}
		w += 1 + len(textutil.Number(it.number))
		if !compact {
			w += 1 + textutil.VisualWidth(it.label)
		}
	}
	return w
}

// HitTest returns the selector under screen cell (x, y), or "".
func (n *NavBar) HitTest(x, y int) string {
	if y != 0 {
		return ""
	}
	if n.logo.Contains(x, y) {
		return "#hero"
	}
	for i, r := range n.spans {
		if r.Contains(x, y) {
			return "#" + n.items[i].anchor
		}
	}
	return ""
}
