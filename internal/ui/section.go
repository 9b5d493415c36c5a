package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/anim"
	"termfolio/internal/reveal"
	"termfolio/internal/ui/textutil"
)

// Section is one region of the page, addressed by an anchor ("#work").
type Section interface {
	// Anchor is the section id without '#'.
	Anchor() string
	// Label is the navigation label; empty for sections not in the NavBar.
	Label() string
	// Threshold is the visible share that triggers the section's entrance.
	Threshold() float64
	// Render draws the section at width. Sections with cards record card
	// rects relative to the first line while rendering.
	Render(width int) string
	// Cards returns the hoverable cards, or nil.
	Cards() CardSet
	// Activate is enter or a click on card i.
	Activate(i int) tea.Cmd
}

// baseSection carries the fields every section shares.
type baseSection struct {
	anchor    string
	label     string
	number    int
	threshold float64
}

func (b baseSection) Anchor() string       { return b.anchor }
func (b baseSection) Label() string        { return b.label }
func (b baseSection) Threshold() float64   { return b.threshold }
func (b baseSection) Cards() CardSet       { return nil }
func (b baseSection) Activate(int) tea.Cmd { return nil }

func newBaseSection(anchor, label string, number int) baseSection {
	return baseSection{anchor: anchor, label: label, number: number, threshold: reveal.SectionThreshold}
}

// contentWidth is the usable text width inside the page margins.
func contentWidth(width int) int {
	return max(min(width-4, 110), 20)
}

// heading renders "05  C R E A T I V E   W O R K" over a rule, followed by
// an optional intro paragraph.
func heading(number int, title, intro string, width int) string {
	var b strings.Builder
	b.WriteString(Styles.SectionNumber.Render(textutil.Number(number)))
	b.WriteString("  ")
	b.WriteString(Styles.SectionLabel.Render(textutil.Tracked(title)))
	b.WriteString("\n")
	b.WriteString(Styles.Rule.Render(strings.Repeat("─", min(40, width))))
	if intro != "" {
		b.WriteString("\n\n")
		b.WriteString(Styles.Muted.Width(width).Render(intro))
	}
	return b.String()
}

// frameSection pads a section body with the page margins and the blank
// lines that separate sections.
func frameSection(body string) string {
	return lipgloss.NewStyle().Padding(1, 2, 2).Render(body)
}

// Lines within frameSection's padding, used to offset card rects.
const (
	frameTop  = 1
	frameLeft = 2
)

// renderCard draws one card box with hover styling, masked by its entrance.
func renderCard(body string, width int, hovered bool, progress float64) string {
	style := Styles.Card
	if hovered {
		style = Styles.CardHover
	}
	box := style.Width(width - style.GetHorizontalBorderSize()).Render(body)
	return anim.Mask(box, progress)
}

// tags renders chips in one wrapped line group.
func tags(items []string, width int) string {
	var lines []string
	var line string
	for _, it := range items {
		chip := Styles.Tag.Render(it)
		if line != "" && lipgloss.Width(line)+1+lipgloss.Width(chip) > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += chip
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// bullets renders items as a dash list wrapped to width.
func bullets(items []string, width int) string {
	out := make([]string, len(items))
	item := Styles.Normal.Width(width - 2)
	for i, it := range items {
		out[i] = lipgloss.JoinHorizontal(lipgloss.Top, Styles.Muted.Render("– "), item.Render(it))
	}
	return strings.Join(out, "\n")
}

// stack accumulates a section body top to bottom so card rects can be
// recorded as cards are placed.
type stack struct {
	lines []string
}

// add appends block and returns the line it starts on.
func (s *stack) add(block string) int {
	y := len(s.lines)
	s.lines = append(s.lines, strings.Split(block, "\n")...)
	return y
}

func (s *stack) gap() { s.lines = append(s.lines, "") }

func (s *stack) String() string { return strings.Join(s.lines, "\n") }

// row joins blocks left to right, gap cells apart, and returns the x
// offset of each block.
func row(blocks []string, gap int) (string, []int) {
	xs := make([]int, len(blocks))
	parts := make([]string, 0, 2*len(blocks))
	x := 0
	for i, b := range blocks {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", gap))
			x += gap
		}
		xs[i] = x
		parts = append(parts, b)
		x += lipgloss.Width(b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...), xs
}

// placeCards records where each block of a row landed for the card indices
// in idx, given the row's first line y within the section body.
func placeCards[T any](c *Cards[T], idx []int, blocks []string, xs []int, y int) {
	for k, i := range idx {
		c.SetRect(i, Rect{
			X: frameLeft + xs[k],
			Y: frameTop + y,
			W: lipgloss.Width(blocks[k]),
			H: lipgloss.Height(blocks[k]),
		})
	}
}

// columns splits width into n equal columns gap cells apart.
func columns(width, n, gap int) int {
	return (width - gap*(n-1)) / n
}
