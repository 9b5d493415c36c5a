package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/anim"
)

// fakeSection is n lines tall with one 4-line card at line 1 when cards
// is set.
type fakeSection struct {
	baseSection
	n     int
	cards *Cards[int]
}

func newFakeSection(anchor string, n int, withCard bool) *fakeSection {
	s := &fakeSection{baseSection: newBaseSection(anchor, strings.ToUpper(anchor), 0), n: n}
	if withCard {
		s.cards = NewCards([]int{1, 2}, 0.1)
	}
	return s
}

func (s *fakeSection) Cards() CardSet {
	if s.cards == nil {
		return nil
	}
	return s.cards
}

func (s *fakeSection) Activate(i int) tea.Cmd {
	return func() tea.Msg { return SelectProjectMsg{ID: i} }
}

func (s *fakeSection) Render(int) string {
	lines := make([]string, s.n)
	for i := range lines {
		lines[i] = s.anchor
	}
	if s.cards != nil {
		s.cards.SetRect(0, Rect{X: 0, Y: 1, W: 10, H: 4})
		s.cards.SetRect(1, Rect{X: 12, Y: 1, W: 10, H: 4})
	}
	return strings.Join(lines, "\n")
}

func newTestPage(t *testing.T) (*Page, *Document) {
	t.Helper()
	doc := NewDocument()
	p := NewPage(doc,
		newFakeSection("a", 30, true),
		newFakeSection("b", 30, false),
		newFakeSection("c", 5, true),
	)
	p.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	return p, doc
}

func settleScroll(p *Page) {
	for i := 0; i < 2000 && p.Scrolling(); i++ {
		p.Update(anim.FrameMsg{})
	}
}

func TestPage_LayoutRecordsTops(t *testing.T) {
	p, _ := newTestPage(t)
	for sel, want := range map[string]int{"#a": 0, "#b": 30, "c": 60} {
		if got, ok := p.Top(sel); !ok || got != want {
			t.Errorf("Top(%q) = %d, %v; want %d", sel, got, ok, want)
		}
	}
	if _, ok := p.Top("#nope"); ok {
		t.Error("unknown anchor should not resolve")
	}
}

func TestPage_ScrollToUnknownIsNoop(t *testing.T) {
	p, _ := newTestPage(t)
	p.ScrollBy(5)
	if p.ScrollTo("#missing") {
		t.Error("unknown selector should report false")
	}
	if p.Scrolling() || p.YOffset() != 5 {
		t.Errorf("offset moved: %d scrolling=%v", p.YOffset(), p.Scrolling())
	}
}

func TestPage_ScrollToAnimatesToSection(t *testing.T) {
	p, _ := newTestPage(t)
	if !p.ScrollTo("#b") {
		t.Fatal("ScrollTo(#b) should succeed")
	}
	if !p.Scrolling() {
		t.Fatal("expected a smooth scroll")
	}
	settleScroll(p)
	if p.YOffset() != 30 {
		t.Errorf("YOffset = %d, want 30", p.YOffset())
	}
}

func TestPage_ScrollToClampsAtBottom(t *testing.T) {
	p, _ := newTestPage(t)
	p.ScrollTo("#c")
	settleScroll(p)
	if want := 65 - 10; p.YOffset() != want {
		t.Errorf("YOffset = %d, want %d", p.YOffset(), want)
	}
}

func TestPage_ScrollLocked(t *testing.T) {
	p, doc := newTestPage(t)
	restore := doc.LockScroll()

	p.Update(keyMsg("down"))
	p.Update(wheel(true))
	if p.YOffset() != 0 {
		t.Errorf("locked page scrolled to %d", p.YOffset())
	}
	if p.ScrollTo("#b") {
		t.Error("ScrollTo should refuse while locked")
	}

	restore()
	p.Update(keyMsg("down"))
	p.Update(wheel(true))
	if p.YOffset() != 1+wheelStep {
		t.Errorf("YOffset = %d, want %d", p.YOffset(), 1+wheelStep)
	}
}

func TestPage_Keys(t *testing.T) {
	p, _ := newTestPage(t)
	p.Update(keyMsg("pgdown"))
	if p.YOffset() != 10 {
		t.Errorf("pgdown: %d", p.YOffset())
	}
	p.Update(keyMsg("end"))
	if p.YOffset() != 55 {
		t.Errorf("end: %d", p.YOffset())
	}
	p.Update(keyMsg("home"))
	if p.YOffset() != 0 {
		t.Errorf("home: %d", p.YOffset())
	}
}

func TestPage_RevealFollowsScroll(t *testing.T) {
	p, _ := newTestPage(t)
	if !p.Revealed("#a") || p.Revealed("#c") {
		t.Fatalf("initial reveal: a=%v c=%v", p.Revealed("#a"), p.Revealed("#c"))
	}
	p.Update(keyMsg("end"))
	p.Layout()
	if !p.Revealed("#c") {
		t.Error("c should reveal once scrolled into view")
	}
	p.Update(keyMsg("home"))
	p.Layout()
	if !p.Revealed("#c") {
		t.Error("reveal must not reset when scrolling away")
	}
}

func TestPage_ActiveSectionAndHover(t *testing.T) {
	p, _ := newTestPage(t)
	if got := p.ActiveSection().Anchor(); got != "a" {
		t.Fatalf("ActiveSection = %q, want a", got)
	}

	p.Update(keyMsg("right"))
	a := p.Sections()[0].Cards()
	if a.Hover() != 0 {
		t.Fatalf("right should hover the first card, got %d", a.Hover())
	}
	p.Update(keyMsg("right"))
	_, cmd := p.Update(keyMsg("enter"))
	if msg, ok := msgOf(cmd).(SelectProjectMsg); !ok || msg.ID != 1 {
		t.Errorf("enter activated %v", msgOf(cmd))
	}

	// Section b has no cards: arrows and enter do nothing there.
	p.ScrollBy(30)
	p.Update(keyMsg("right"))
	if _, cmd := p.Update(keyMsg("enter")); cmd != nil {
		t.Error("enter in a section without cards should do nothing")
	}
	if a.Hover() != -1 {
		t.Error("hover should leave section a")
	}
}

func TestPage_MouseHoverAndClick(t *testing.T) {
	p, _ := newTestPage(t)
	a := p.Sections()[0].Cards()

	p.Update(hover(13, 2))
	if a.Hover() != 1 {
		t.Errorf("hover = %d, want 1", a.Hover())
	}
	p.Update(hover(40, 2))
	if a.Hover() != -1 {
		t.Errorf("hover off the cards should clear, got %d", a.Hover())
	}

	_, cmd := p.Update(leftClick(3, 1))
	if msg, ok := msgOf(cmd).(SelectProjectMsg); !ok || msg.ID != 0 {
		t.Errorf("click activated %v", msgOf(cmd))
	}
	if _, cmd := p.Update(leftClick(40, 1)); cmd != nil {
		t.Error("click on blank space should do nothing")
	}
}
