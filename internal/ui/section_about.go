package ui

import (
	"strconv"

	"termfolio/internal/content"
)

// AboutSection shows the profile paragraphs and headline numbers.
type AboutSection struct {
	baseSection
	profile content.Profile
	stats   content.Stats
}

// NewAboutSection creates the about section.
func NewAboutSection(profile content.Profile, stats content.Stats) *AboutSection {
	return &AboutSection{
		baseSection: newBaseSection("about", "About", 1),
		profile:     profile,
		stats:       stats,
	}
}

// Render implements Section.
func (s *AboutSection) Render(width int) string {
	cw := contentWidth(width)

	var body stack
	body.add(heading(s.number, "About", "", cw))
	body.gap()
	for _, para := range s.profile.About {
		body.add(Styles.Normal.Width(min(cw, 80)).Render(para))
		body.gap()
	}

	figures := []struct {
		n     int
		label string
	}{
		{s.stats.Projects, "Projects"},
		{s.stats.Technologies, "Technologies"},
		{s.stats.Artworks, "Artworks"},
	}
	blocks := make([]string, len(figures))
	for i, f := range figures {
		blocks[i] = Styles.Title.Render(strconv.Itoa(f.n)) + "\n" + Styles.Muted.Render(f.label)
	}
	stats, _ := row(blocks, 6)
	body.add(stats)
	if s.profile.Availability != "" {
		body.gap()
		body.add(Styles.Hint.Render("● ") + Styles.Normal.Render(s.profile.Availability))
	}
	return frameSection(body.String())
}
