package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/content"
	"termfolio/internal/reveal"
)

type footerLink struct {
	label  string
	anchor string // "#work" for in-page links
	href   string // external or asset reference otherwise
}

// FooterSection lists the page anchors, the socials and the résumé.
type FooterSection struct {
	baseSection
	name  string
	year  int
	links *Cards[footerLink]
}

// NewFooterSection creates the footer. anchors are the NavBar sections.
func NewFooterSection(profile content.Profile, anchors []Section) *FooterSection {
	var links []footerLink
	for _, a := range anchors {
		links = append(links, footerLink{label: a.Label(), anchor: "#" + a.Anchor()})
	}
	for _, l := range profile.Socials {
		links = append(links, footerLink{label: l.Label, href: l.Href})
	}
	if profile.Resume != "" {
		links = append(links, footerLink{label: "Résumé", href: profile.Resume})
	}
	return &FooterSection{
		baseSection: newBaseSection("footer", "", 0),
		name:        profile.Name,
		year:        time.Now().Year(),
		links:       NewCards(links, reveal.CardThreshold),
	}
}

// Cards implements Section.
func (s *FooterSection) Cards() CardSet { return s.links }

// Activate scrolls to an anchor or opens a link.
func (s *FooterSection) Activate(i int) tea.Cmd {
	if i < 0 || i >= s.links.Len() {
		return nil
	}
	l := s.links.Item(i)
	if l.anchor != "" {
		return func() tea.Msg { return ScrollToMsg{Selector: l.anchor} }
	}
	return openLink(l.href)
}

// Render implements Section.
func (s *FooterSection) Render(width int) string {
	cw := contentWidth(width)

	var body stack
	body.add(Styles.Rule.Render(strings.Repeat("─", cw)))
	body.gap()

	var blocks []string
	var idx []int
	flush := func() {
		if len(blocks) == 0 {
			return
		}
		r, xs := row(blocks, 3)
		placeCards(s.links, idx, blocks, xs, body.add(r))
		blocks, idx = nil, nil
	}
	x := 0
	for i, l := range s.links.Items() {
		style := Styles.Muted
		if s.links.Hovered(i) {
			style = Styles.Selected
		}
		label := l.label
		if l.href != "" {
			label += " ↗"
		}
		block := style.Render(label)
		if w := lipgloss.Width(block); x > 0 && x+3+w > cw {
			flush()
			x = 0
		}
		if x > 0 {
			x += 3
		}
		x += lipgloss.Width(block)
		blocks = append(blocks, block)
		idx = append(idx, i)
	}
	flush()

	body.gap()
	body.add(Styles.Hint.Render(fmt.Sprintf("© %d %s", s.year, s.name)))
	return frameSection(body.String())
}
