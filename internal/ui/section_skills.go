package ui

import (
	"termfolio/internal/content"
	"termfolio/internal/reveal"
	"termfolio/internal/ui/textutil"
)

// SkillsSection lays skill categories out as a grid of chip cards.
type SkillsSection struct {
	baseSection
	cards *Cards[content.SkillCategory]
}

// NewSkillsSection creates the skills grid.
func NewSkillsSection(categories []content.SkillCategory) *SkillsSection {
	return &SkillsSection{
		baseSection: newBaseSection("skills", "Skills", 4),
		cards:       NewCards(categories, reveal.CardThreshold),
	}
}

// Cards implements Section.
func (s *SkillsSection) Cards() CardSet { return s.cards }

// Render implements Section.
func (s *SkillsSection) Render(width int) string {
	cw := contentWidth(width)
	cols := 1
	if cw >= 60 {
		cols = 2
	}
	cardWidth := columns(cw, cols, 2)
	inner := cardWidth - Styles.Card.GetHorizontalFrameSize()

	var body stack
	body.add(heading(s.number, "Skills", "", cw))
	body.gap()
	for start := 0; start < s.cards.Len(); start += cols {
		end := min(start+cols, s.cards.Len())
		var blocks []string
		var idx []int
		for i := start; i < end; i++ {
			c := s.cards.Item(i)
			card := Styles.SectionLabel.Render(textutil.Tracked(c.Name)) + "\n\n" + tags(c.Skills, inner)
			blocks = append(blocks, renderCard(card, cardWidth, s.cards.Hovered(i), s.cards.Progress(i)))
			idx = append(idx, i)
		}
		r, xs := row(blocks, 2)
		placeCards(s.cards, idx, blocks, xs, body.add(r))
		body.gap()
	}
	return frameSection(body.String())
}
