package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/content"
	"termfolio/internal/preview"
	"termfolio/internal/reveal"
	"termfolio/internal/ui/textutil"
)

// Gallery rows, in display order.
const (
	slotPortrait = iota // first three portraits, side by side
	slotLandscape
	slotSeries
	slotFeatured // remaining portraits, full width
)

type galleryCard struct {
	entry content.GalleryEntry
	slot  int
}

// GallerySection shows the artwork grid and owns the artwork selection:
// selecting an entry opens the ArtworkModal, deselecting closes it.
type GallerySection struct {
	baseSection
	cards    *Cards[galleryCard]
	images   *imageLoader
	modal    *ArtworkModal
	selected *content.GalleryEntry
}

// NewGallerySection lays out entries and creates the modal on doc.
func NewGallerySection(entries []content.GalleryEntry, doc *Document, images *imageLoader) *GallerySection {
	var portraits, landscapes, series []content.GalleryEntry
	for _, e := range entries {
		switch {
		case e.Kind == content.EntrySeries:
			series = append(series, e)
		case e.Landscape:
			landscapes = append(landscapes, e)
		default:
			portraits = append(portraits, e)
		}
	}

	var ordered []galleryCard
	for i, e := range portraits {
		if i < 3 {
			ordered = append(ordered, galleryCard{entry: e, slot: slotPortrait})
		}
	}
	for _, e := range landscapes {
		ordered = append(ordered, galleryCard{entry: e, slot: slotLandscape})
	}
	for _, e := range series {
		ordered = append(ordered, galleryCard{entry: e, slot: slotSeries})
	}
	for i, e := range portraits {
		if i >= 3 {
			ordered = append(ordered, galleryCard{entry: e, slot: slotFeatured})
		}
	}

	s := &GallerySection{
		baseSection: newBaseSection("gallery", "Gallery", 5),
		cards:       NewCards(ordered, reveal.CardThreshold),
		images:      images,
		modal:       NewArtworkModal(doc, images),
	}
	s.threshold = reveal.GalleryThreshold
	for i, c := range ordered {
		if c.slot == slotFeatured {
			s.cards.SetThreshold(i, reveal.FeaturedThreshold)
		}
	}
	return s
}

// Cards implements Section.
func (s *GallerySection) Cards() CardSet { return s.cards }

// Modal is the artwork modal, open while an entry is selected.
func (s *GallerySection) Modal() *ArtworkModal { return s.modal }

// Selected returns the selected entry, or nil.
func (s *GallerySection) Selected() *content.GalleryEntry { return s.selected }

// Activate selects card i.
func (s *GallerySection) Activate(i int) tea.Cmd {
	if i < 0 || i >= s.cards.Len() {
		return nil
	}
	key := s.cards.Item(i).entry.Key
	return func() tea.Msg { return SelectArtworkMsg{Key: key} }
}

// Select opens the entry with key. Selecting while another entry is open
// replaces it and restarts at its first image.
func (s *GallerySection) Select(key string) bool {
	for _, c := range s.cards.Items() {
		if c.entry.Key == key {
			e := c.entry
			s.selected = &e
			s.modal.Open(e)
			return true
		}
	}
	return false
}

// Deselect clears the selection and closes the modal.
func (s *GallerySection) Deselect() {
	s.selected = nil
	s.modal.Close()
}

// Unmount releases whatever the open modal holds.
func (s *GallerySection) Unmount() {
	s.selected = nil
	s.modal.lightbox.Unmount()
}

func galleryImageSize(inner int, landscape bool) preview.Size {
	rows := min(inner*2/3, 18)
	if landscape {
		rows = min(inner/4, 16)
	}
	return preview.Size{Rows: uint16(max(rows, 3)), Cols: uint16(max(inner, 1))}
}

// Render implements Section.
func (s *GallerySection) Render(width int) string {
	cw := contentWidth(width)

	var body stack
	body.add(heading(s.number, "Creative Work", "Concept art, creature design and illustration.", cw))
	body.gap()

	var portraitRow []int
	for i, c := range s.cards.Items() {
		if c.slot == slotPortrait {
			portraitRow = append(portraitRow, i)
		}
	}
	if len(portraitRow) > 0 {
		n := len(portraitRow)
		if cw < 60 {
			n = 1
		}
		w := columns(cw, n, 2)
		for start := 0; start < len(portraitRow); start += n {
			idx := portraitRow[start:min(start+n, len(portraitRow))]
			blocks := make([]string, len(idx))
			for k, i := range idx {
				blocks[k] = s.renderEntry(i, w)
			}
			r, xs := row(blocks, 2)
			placeCards(s.cards, idx, blocks, xs, body.add(r))
			body.gap()
		}
	}

	for i, c := range s.cards.Items() {
		if c.slot == slotPortrait {
			continue
		}
		block := s.renderEntry(i, cw)
		placeCards(s.cards, []int{i}, []string{block}, []int{0}, body.add(block))
		body.gap()
	}
	return frameSection(body.String())
}

func (s *GallerySection) renderEntry(i, width int) string {
	c := s.cards.Item(i)
	e := c.entry
	inner := width - Styles.Card.GetHorizontalFrameSize()

	var image string
	if len(e.Images) > 0 {
		size := galleryImageSize(inner, e.Landscape || c.slot == slotSeries)
		ref := e.Images[0].Src
		s.images.Want(ref, size)
		s.cards.SetLoaded(i, s.images.Loaded(ref, size))
		image = s.images.Render(ref, size)
	}

	meta := e.Medium
	if e.Year != "" {
		meta += " · " + e.Year
	}
	var badges []string
	if e.Kind == content.EntrySeries {
		badges = append(badges, fmt.Sprintf("%d pieces", len(e.Images)))
	}
	if e.HasTimelapse() {
		badges = append(badges, "▶ time-lapse")
	}
	if c.slot == slotFeatured {
		badges = append(badges, "featured")
	}

	parts := []string{
		image,
		"",
		Styles.Title.Render(textutil.Truncate(e.Title, inner)),
		Styles.Muted.Render(textutil.Truncate(meta, inner)),
	}
	if len(badges) > 0 {
		parts = append(parts, tags(badges, inner))
	}
	return renderCard(lipgloss.JoinVertical(lipgloss.Left, parts...), width, s.cards.Hovered(i), s.cards.Progress(i))
}
