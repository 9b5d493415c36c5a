package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/content"
	"termfolio/internal/preview"
	"termfolio/internal/reveal"
	"termfolio/internal/ui/textutil"
)

// WorkSection is the project grid. Enter or a click selects a project,
// which opens the project modal.
type WorkSection struct {
	baseSection
	cards  *Cards[content.Project]
	images *imageLoader
}

// NewWorkSection creates the grid for projects.
func NewWorkSection(projects []content.Project, images *imageLoader) *WorkSection {
	return &WorkSection{
		baseSection: newBaseSection("work", "Work", 2),
		cards:       NewCards(projects, reveal.CardThreshold),
		images:      images,
	}
}

// Cards implements Section.
func (s *WorkSection) Cards() CardSet { return s.cards }

// Activate selects project i.
func (s *WorkSection) Activate(i int) tea.Cmd {
	if i < 0 || i >= s.cards.Len() {
		return nil
	}
	id := s.cards.Item(i).ID
	return func() tea.Msg { return SelectProjectMsg{ID: id} }
}

func thumbSize(cardWidth int) preview.Size {
	inner := max(cardWidth-Styles.Card.GetHorizontalFrameSize(), 1)
	return preview.Size{Rows: uint16(max(inner/5, 3)), Cols: uint16(inner)}
}

// Render implements Section.
func (s *WorkSection) Render(width int) string {
	cw := contentWidth(width)
	cols := 1
	if cw >= 80 {
		cols = 2
	}
	cardWidth := columns(cw, cols, 2)

	var body stack
	body.add(heading(s.number, "Selected Work", "Full-stack products, from schema to screen.", cw))
	body.gap()

	for start := 0; start < s.cards.Len(); start += cols {
		end := min(start+cols, s.cards.Len())
		var blocks []string
		var idx []int
		for i := start; i < end; i++ {
			blocks = append(blocks, s.renderProject(i, cardWidth))
			idx = append(idx, i)
		}
		r, xs := row(blocks, 2)
		placeCards(s.cards, idx, blocks, xs, body.add(r))
		body.gap()
	}
	return frameSection(body.String())
}

func (s *WorkSection) renderProject(i, width int) string {
	p := s.cards.Item(i)
	inner := width - Styles.Card.GetHorizontalFrameSize()

	var thumb string
	if len(p.Images) > 0 {
		size := thumbSize(width)
		s.images.Want(p.Images[0], size)
		s.cards.SetLoaded(i, s.images.Loaded(p.Images[0], size))
		thumb = s.images.Render(p.Images[0], size)
	} else {
		thumb = Styles.Empty.Render(textutil.Initials(p.Title, 2))
	}

	title := Styles.Title.Render(textutil.Truncate(p.Title, inner-6))
	year := Styles.Muted.Render(p.Year)
	gap := max(inner-lipgloss.Width(title)-lipgloss.Width(year), 1)
	header := title + lipgloss.NewStyle().Width(gap).Render("") + year

	desc := Styles.Muted.Width(inner).Render(p.Description)
	card := lipgloss.JoinVertical(lipgloss.Left,
		thumb,
		"",
		header,
		desc,
		"",
		tags(p.Tech, inner),
	)
	return renderCard(card, width, s.cards.Hovered(i), s.cards.Progress(i))
}
