package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/anim"
	"termfolio/internal/reveal"
)

// wheelStep is how many lines one wheel notch scrolls.
const wheelStep = 3

// Page stacks the sections in one scrolling viewport. It records where
// each section starts, feeds the viewport into every reveal latch after
// each layout, and runs the frame loop for entrances and smooth scrolling.
type Page struct {
	doc      *Document
	sections []Section
	view     viewport.Model
	width    int

	observers []*reveal.Observer
	entrances []anim.Tween
	tops      []int
	heights   []int

	scroll    anim.Tween
	scrolling bool
	animating bool
}

// Ensure Page implements View.
var _ View = (*Page)(nil)

// NewPage stacks sections in order.
func NewPage(doc *Document, sections ...Section) *Page {
	p := &Page{
		doc:       doc,
		sections:  sections,
		view:      viewport.New(0, 0),
		observers: make([]*reveal.Observer, len(sections)),
		entrances: make([]anim.Tween, len(sections)),
		tops:      make([]int, len(sections)),
		heights:   make([]int, len(sections)),
		scroll:    anim.NewScroll(0),
	}
	for i, s := range sections {
		p.observers[i] = reveal.NewObserver(s.Threshold())
		p.entrances[i] = anim.NewReveal()
	}
	return p
}

// Sections returns the sections in page order.
func (p *Page) Sections() []Section { return p.sections }

// SetSize sets the viewport to width×height.
func (p *Page) SetSize(width, height int) {
	p.width = width
	p.view.Width = width
	p.view.Height = max(height, 1)
	for _, s := range p.sections {
		if h, ok := s.(*HeroSection); ok {
			h.SetMinHeight(p.view.Height)
		}
	}
}

// Height is the viewport height.
func (p *Page) Height() int { return p.view.Height }

// YOffset is the first visible line.
func (p *Page) YOffset() int { return p.view.YOffset }

// Scrolling reports whether a smooth scroll is in progress.
func (p *Page) Scrolling() bool { return p.scrolling }

func (p *Page) index(selector string) int {
	anchor := strings.TrimPrefix(selector, "#")
	for i, s := range p.sections {
		if s.Anchor() == anchor {
			return i
		}
	}
	return -1
}

// Top returns the first line of the section for selector.
func (p *Page) Top(selector string) (int, bool) {
	i := p.index(selector)
	if i < 0 {
		return 0, false
	}
	return p.tops[i], true
}

// Revealed reports whether the section for selector has entered.
func (p *Page) Revealed(selector string) bool {
	i := p.index(selector)
	return i >= 0 && p.observers[i].Revealed()
}

func (p *Page) maxOffset() int {
	return max(p.view.TotalLineCount()-p.view.Height, 0)
}

// Layout renders every section at the current width, records section
// positions and observes the viewport. It returns the frame command when
// an entrance or scroll needs animating.
func (p *Page) Layout() tea.Cmd {
	if p.width == 0 {
		return nil
	}
	y := 0
	parts := make([]string, len(p.sections))
	for i, s := range p.sections {
		parts[i] = anim.Mask(s.Render(p.width), p.entrances[i].Value())
		p.tops[i] = y
		p.heights[i] = lipgloss.Height(parts[i])
		y += p.heights[i]
	}
	offset := p.view.YOffset
	p.view.SetContent(strings.Join(parts, "\n"))
	p.view.SetYOffset(offset)
	p.observe()
	return p.Animate()
}

func (p *Page) observe() {
	top, h := p.view.YOffset, p.view.Height
	for i, s := range p.sections {
		if p.observers[i].Observe(p.tops[i], p.heights[i], top, h) {
			p.entrances[i].SetTarget(1)
		}
		if c := s.Cards(); c != nil {
			c.Observe(p.tops[i], top, h)
		}
	}
}

// Animate starts the frame loop if something is moving and the loop is
// not already running.
func (p *Page) Animate() tea.Cmd {
	if p.animating || !p.moving() {
		return nil
	}
	p.animating = true
	return anim.Frame()
}

func (p *Page) moving() bool {
	if p.scrolling {
		return true
	}
	for i := range p.entrances {
		if !p.entrances[i].Settled() {
			return true
		}
	}
	for _, s := range p.sections {
		if c := s.Cards(); c != nil && c.Moving() {
			return true
		}
	}
	return false
}

// step advances every tween one frame and reports whether any still moves.
func (p *Page) step() bool {
	moving := false
	if p.scrolling {
		if p.scroll.Step() {
			p.scrolling = false
		} else {
			moving = true
		}
		p.view.SetYOffset(int(math.Round(p.scroll.Value())))
	}
	for i := range p.entrances {
		if !p.entrances[i].Step() {
			moving = true
		}
	}
	for _, s := range p.sections {
		if c := s.Cards(); c != nil && c.Step() {
			moving = true
		}
	}
	return moving
}

// ScrollTo smoothly scrolls to the section for selector ("#work"). Unknown
// selectors, and any selector while page scroll is locked, do nothing and
// return false.
func (p *Page) ScrollTo(selector string) bool {
	i := p.index(selector)
	if i < 0 || p.doc.ScrollLocked() {
		return false
	}
	target := min(p.tops[i], p.maxOffset())
	if !p.scrolling {
		p.scroll.Jump(float64(p.view.YOffset))
	}
	p.scroll.SetTarget(float64(target))
	p.scrolling = p.scroll.Target() != p.scroll.Value()
	return true
}

// ScrollBy scrolls delta lines immediately, cancelling a smooth scroll.
func (p *Page) ScrollBy(delta int) {
	if p.doc.ScrollLocked() {
		return
	}
	p.scrolling = false
	p.view.SetYOffset(p.view.YOffset + delta)
	p.observe()
}

func (p *Page) scrollToLine(y int) {
	p.ScrollBy(y - p.view.YOffset)
}

// ActiveSection is the section containing the line a third of the way
// down the viewport.
func (p *Page) ActiveSection() Section {
	if len(p.sections) == 0 {
		return nil
	}
	return p.sections[p.sectionAt(p.view.YOffset+p.view.Height/3)]
}

func (p *Page) sectionAt(line int) int {
	for i := len(p.sections) - 1; i >= 0; i-- {
		if line >= p.tops[i] {
			return i
		}
	}
	return 0
}

// hoverOnly moves hover into section i, clearing every other section.
func (p *Page) hoverOnly(i int) {
	for k, s := range p.sections {
		if c := s.Cards(); c != nil && k != i {
			c.SetHover(-1)
		}
	}
}

// Init implements View.
func (p *Page) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *Page) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)
		return p, p.Layout()

	case anim.FrameMsg:
		if p.step() {
			return p, anim.Frame()
		}
		p.animating = false
		return p, nil

	case tea.KeyMsg:
		return p, p.handleKey(msg)

	case tea.MouseMsg:
		return p, p.handleMouse(msg)
	}
	return p, nil
}

func (p *Page) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		p.ScrollBy(-1)
	case "down", "j":
		p.ScrollBy(1)
	case "pgup", "b":
		p.ScrollBy(-p.view.Height)
	case "pgdown", "f":
		p.ScrollBy(p.view.Height)
	case "ctrl+u":
		p.ScrollBy(-p.view.Height / 2)
	case "ctrl+d":
		p.ScrollBy(p.view.Height / 2)
	case "home":
		p.scrollToLine(0)
	case "end":
		p.scrollToLine(p.maxOffset())
	case "left", "h":
		p.moveHover(-1)
	case "right", "l":
		p.moveHover(1)
	case "enter":
		s := p.ActiveSection()
		if s == nil || s.Cards() == nil || s.Cards().Hover() < 0 {
			return nil
		}
		return s.Activate(s.Cards().Hover())
	}
	return nil
}

func (p *Page) moveHover(delta int) {
	if len(p.sections) == 0 {
		return
	}
	i := p.sectionAt(p.view.YOffset + p.view.Height/3)
	p.hoverOnly(i)
	if c := p.sections[i].Cards(); c != nil {
		c.MoveHover(delta)
	}
}

// handleMouse expects coordinates relative to the page's first line.
func (p *Page) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		p.ScrollBy(-wheelStep)
		return nil
	case tea.MouseButtonWheelDown:
		p.ScrollBy(wheelStep)
		return nil
	}

	if msg.Y < 0 || msg.Y >= p.view.Height {
		return nil
	}
	line := p.view.YOffset + msg.Y
	i := p.sectionAt(line)
	c := p.sections[i].Cards()
	hit := -1
	if c != nil {
		hit = c.HitTest(msg.X, line-p.tops[i])
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		p.hoverOnly(i)
		if c != nil {
			c.SetHover(hit)
		}
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && hit >= 0 {
			p.hoverOnly(i)
			c.SetHover(hit)
			return p.sections[i].Activate(hit)
		}
	}
	return nil
}

// View implements View.
func (p *Page) View() string {
	return p.view.View()
}
