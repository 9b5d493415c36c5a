package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/content"
	"termfolio/internal/preview"
)

// ProjectModal presents one project: description, highlights, a screenshot
// carousel, technologies and links. The page stays scroll-locked while it
// is open, so the body scrolls in its own viewport.
type ProjectModal struct {
	lightbox *Lightbox[content.Project]
	images   *imageLoader
	body     viewport.Model
	layout   modalLayout
	box      Rect
}

// Ensure ProjectModal implements Overlay.
var _ Overlay = (*ProjectModal)(nil)

// NewProjectModal creates a closed project modal on doc.
func NewProjectModal(doc *Document, images *imageLoader) *ProjectModal {
	m := &ProjectModal{
		lightbox: NewLightbox[content.Project](doc),
		images:   images,
		body:     viewport.New(0, 0),
	}
	m.SetSize(80, 24)
	return m
}

// Open shows p from its first screenshot.
func (m *ProjectModal) Open(p content.Project) {
	m.lightbox.Open(p, len(p.Images))
	m.body.GotoTop()
}

// Close hides the modal and releases the page.
func (m *ProjectModal) Close() {
	m.lightbox.Close()
}

// IsOpen reports whether a project is shown.
func (m *ProjectModal) IsOpen() bool { return m.lightbox.IsOpen() }

// Project returns the shown project.
func (m *ProjectModal) Project() (content.Project, bool) { return m.lightbox.Entity() }

// Index is the current screenshot.
func (m *ProjectModal) Index() int { return m.lightbox.Index() }

// SetSize fits the modal to the terminal.
func (m *ProjectModal) SetSize(width, height int) {
	m.layout = modalLayout{width: width, height: height}
	m.body.Width = m.layout.innerWidth()
	m.body.Height = m.layout.bodyHeight()
}

func (m *ProjectModal) imageSize() preview.Size {
	iw := m.layout.innerWidth()
	return preview.Size{Rows: uint16(min(14, max(iw/4, 4))), Cols: uint16(iw)}
}

// wantImages asks for every screenshot so navigation never waits.
func (m *ProjectModal) wantImages() {
	p, ok := m.Project()
	if !ok {
		return
	}
	for _, ref := range p.Images {
		m.images.Want(ref, m.imageSize())
	}
}

// Init implements View.
func (m *ProjectModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ProjectModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if !m.IsOpen() {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		p, _ := m.Project()
		switch msg.String() {
		case "o":
			if p.Link != "" {
				return m, openLink(p.Link)
			}
			return m, nil
		case "g":
			if p.GitHub != "" {
				return m, openLink(p.GitHub)
			}
			return m, nil
		}
		scrollBody(&m.body, msg)
	case tea.MouseMsg:
		if backdropOrClose(msg, m.box, m.layout) {
			return m, dismissModal
		}
		scrollBody(&m.body, msg)
	}
	return m, nil
}

// View implements View.
func (m *ProjectModal) View() string {
	p, ok := m.Project()
	if !ok {
		return ""
	}
	m.body.SetContent(m.renderBody(p))

	var hints []string
	if m.lightbox.Navigable() {
		hints = append(hints, "←/→ screenshots")
	}
	if p.Link != "" {
		hints = append(hints, "o live site")
	}
	if p.GitHub != "" {
		hints = append(hints, "g source")
	}
	hints = append(hints, "↑/↓ scroll", "esc close")

	box := renderModal(m.layout, strings.Join(p.Tech, " · "), p.Title, m.body.View(), strings.Join(hints, "  ·  "))
	screen, r := placeCenter(m.layout.width, m.layout.height, box)
	m.box = r
	return screen
}

func (m *ProjectModal) renderBody(p content.Project) string {
	iw := m.layout.innerWidth()
	var parts []string

	parts = append(parts, modalLabel("About"), Styles.Normal.Width(iw).Render(p.Description))

	if len(p.Highlights) > 0 {
		parts = append(parts, "", modalLabel("Key Highlights"), bullets(p.Highlights, iw))
	}

	if n := len(p.Images); n > 0 {
		idx := m.lightbox.Index()
		parts = append(parts, "", modalLabel("Screenshots"), m.images.Render(p.Images[idx], m.imageSize()))
		if m.lightbox.Navigable() {
			parts = append(parts, counter(idx, n)+"   "+dots(idx, n))
		}
	}

	if len(p.Tech) > 0 {
		parts = append(parts, "", modalLabel("Technologies"), tags(p.Tech, iw))
	}

	var links []string
	if p.Link != "" {
		links = append(links, Styles.Hint.Render("[o] ")+Styles.Link.Render("View Project ↗"))
	}
	if p.GitHub != "" {
		links = append(links, Styles.Hint.Render("[g] ")+Styles.Link.Render("Source Code ↗"))
	}
	if len(links) > 0 {
		parts = append(parts, "", modalLabel("Links"), strings.Join(links, "    "))
	}
	if p.Year != "" {
		parts = append(parts, "", Styles.Muted.Render(p.Year))
	}
	return strings.Join(parts, "\n")
}
