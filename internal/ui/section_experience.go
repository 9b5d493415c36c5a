package ui

import (
	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/content"
	"termfolio/internal/reveal"
)

// ExperienceSection is the work timeline.
type ExperienceSection struct {
	baseSection
	cards *Cards[content.Experience]
}

// NewExperienceSection creates the timeline.
func NewExperienceSection(items []content.Experience) *ExperienceSection {
	return &ExperienceSection{
		baseSection: newBaseSection("experience", "Experience", 3),
		cards:       NewCards(items, reveal.CardThreshold),
	}
}

// Cards implements Section.
func (s *ExperienceSection) Cards() CardSet { return s.cards }

// Render implements Section.
func (s *ExperienceSection) Render(width int) string {
	cw := contentWidth(width)
	const rail = 3 // "●  " before each card

	var body stack
	body.add(heading(s.number, "Experience", "", cw))
	body.gap()
	for i, e := range s.cards.Items() {
		inner := cw - rail - Styles.Card.GetHorizontalFrameSize()
		head := Styles.Title.Render(e.Position) + Styles.Muted.Render("  @ "+e.Company)
		meta := Styles.Muted.Render(e.Period + "  ·  " + e.Location)
		text := lipgloss.JoinVertical(lipgloss.Left,
			head,
			meta,
			"",
			Styles.Normal.Width(inner).Render(e.Description),
		)
		if len(e.Highlights) > 0 {
			text = lipgloss.JoinVertical(lipgloss.Left, text, "", bullets(e.Highlights, inner))
		}
		card := renderCard(text, cw-rail, s.cards.Hovered(i), s.cards.Progress(i))

		marker := Styles.Muted.Render("●")
		if s.cards.Hovered(i) {
			marker = Styles.Selected.Render("●")
		}
		line := Styles.Rule.Render("│")
		railCol := marker
		for range lipgloss.Height(card) - 1 {
			railCol += "\n" + line
		}
		y := body.add(lipgloss.JoinHorizontal(lipgloss.Top, railCol, "  ", card))
		s.cards.SetRect(i, Rect{X: frameLeft + rail, Y: frameTop + y, W: lipgloss.Width(card), H: lipgloss.Height(card)})
		if i < s.cards.Len()-1 {
			body.add(Styles.Rule.Render("│"))
		}
	}
	return frameSection(body.String())
}
