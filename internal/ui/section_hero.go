package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/content"
	"termfolio/internal/reveal"
	"termfolio/internal/ui/textutil"
)

type heroAction struct {
	key    string
	label  string
	anchor string
}

// HeroSection is the first screen: name, roles, tagline and two actions.
type HeroSection struct {
	baseSection
	profile   content.Profile
	actions   *Cards[heroAction]
	minHeight int
}

// NewHeroSection creates the hero for profile.
func NewHeroSection(profile content.Profile) *HeroSection {
	return &HeroSection{
		baseSection: newBaseSection("hero", "", 0),
		profile:     profile,
		actions: NewCards([]heroAction{
			{key: "w", label: "View work", anchor: "#work"},
			{key: "c", label: "Get in touch", anchor: "#contact"},
		}, reveal.CardThreshold),
	}
}

// SetMinHeight makes the hero fill at least h lines.
func (s *HeroSection) SetMinHeight(h int) { s.minHeight = h }

// Cards implements Section.
func (s *HeroSection) Cards() CardSet { return s.actions }

// Activate scrolls to the action's section.
func (s *HeroSection) Activate(i int) tea.Cmd {
	if i < 0 || i >= s.actions.Len() {
		return nil
	}
	anchor := s.actions.Item(i).anchor
	return func() tea.Msg { return ScrollToMsg{Selector: anchor} }
}

// Render implements Section.
func (s *HeroSection) Render(width int) string {
	cw := contentWidth(width)
	p := s.profile

	var body stack
	body.add(Styles.Muted.Render(textutil.Tracked(p.Location)))
	body.gap()
	body.add(Styles.Title.Render(strings.ToUpper(p.Name)))
	body.add(Styles.Selected.Render(strings.Join(p.Roles, "  /  ")))
	body.gap()
	body.add(Styles.Normal.Width(min(cw, 72)).Render(p.Tagline))
	body.gap()

	blocks := make([]string, s.actions.Len())
	idx := make([]int, s.actions.Len())
	for i, a := range s.actions.Items() {
		label := Styles.Hint.Render("["+a.key+"] ") + Styles.Normal.Render(a.label+" →")
		blocks[i] = renderCard(label, lipgloss.Width(label)+4, s.actions.Hovered(i), 1)
		idx[i] = i
	}
	actions, xs := row(blocks, 2)

	// Vertically center in the first screen; the actions row moves with it.
	top := 0
	if h := len(body.lines) + lipgloss.Height(actions) + 2 + frameTop + 2; s.minHeight > h {
		top = (s.minHeight - h) / 2
	}
	y := top + body.add(actions)
	placeCards(s.actions, idx, blocks, xs, y)
	body.gap()
	body.add(Styles.Hint.Render("↓ scroll"))

	if top > 0 {
		body.lines = append(make([]string, top), body.lines...)
	}
	if pad := s.minHeight - frameTop - 2 - len(body.lines); pad > 0 {
		body.lines = append(body.lines, make([]string, pad)...)
	}
	return frameSection(body.String())
}
