package ui

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/content"
	"termfolio/internal/preview"
	"termfolio/internal/ui/textutil"
)

// ArtworkModal presents a gallery entry. A series gets a carousel with a
// counter and a thumbnail strip; a single piece with a time-lapse can show
// the time-lapse panel and play the video.
type ArtworkModal struct {
	lightbox      *Lightbox[content.GalleryEntry]
	images        *imageLoader
	body          viewport.Model
	layout        modalLayout
	box           Rect
	showTimelapse bool

	// thumbnail strip position in body content lines, and x spans per thumb
	thumbLine  int
	thumbSpans []Rect
}

// Ensure ArtworkModal implements Overlay.
var _ Overlay = (*ArtworkModal)(nil)

// NewArtworkModal creates a closed artwork modal on doc.
func NewArtworkModal(doc *Document, images *imageLoader) *ArtworkModal {
	m := &ArtworkModal{
		lightbox: NewLightbox[content.GalleryEntry](doc),
		images:   images,
		body:     viewport.New(0, 0),
	}
	m.SetSize(80, 24)
	return m
}

// Open shows e from its first image.
func (m *ArtworkModal) Open(e content.GalleryEntry) {
	m.lightbox.Open(e, len(e.Images))
	m.showTimelapse = false
	m.body.GotoTop()
}

// Close hides the modal and releases the page.
func (m *ArtworkModal) Close() {
	m.lightbox.Close()
	m.showTimelapse = false
}

// IsOpen reports whether an entry is shown.
func (m *ArtworkModal) IsOpen() bool { return m.lightbox.IsOpen() }

// Entry returns the shown gallery entry.
func (m *ArtworkModal) Entry() (content.GalleryEntry, bool) { return m.lightbox.Entity() }

// Index is the current image.
func (m *ArtworkModal) Index() int { return m.lightbox.Index() }

// Len is the number of images.
func (m *ArtworkModal) Len() int { return m.lightbox.Len() }

// TimelapseShown reports whether the time-lapse panel is visible.
func (m *ArtworkModal) TimelapseShown() bool { return m.showTimelapse }

// SetSize fits the modal to the terminal.
func (m *ArtworkModal) SetSize(width, height int) {
	m.layout = modalLayout{width: width, height: height}
	m.body.Width = m.layout.innerWidth()
	m.body.Height = m.layout.bodyHeight()
}

func (m *ArtworkModal) imageSize() preview.Size {
	iw := m.layout.innerWidth()
	rows := max(min(m.layout.bodyHeight()-4, iw/2), 4)
	return preview.Size{Rows: uint16(rows), Cols: uint16(iw)}
}

func (m *ArtworkModal) wantImages() {
	e, ok := m.Entry()
	if !ok {
		return
	}
	for _, img := range e.Images {
		m.images.Want(img.Src, m.imageSize())
	}
}

// Init implements View.
func (m *ArtworkModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ArtworkModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if !m.IsOpen() {
		return m, nil
	}
	e, _ := m.Entry()
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "t":
			if e.Kind == content.EntrySingle && e.HasTimelapse() {
				m.showTimelapse = !m.showTimelapse
				m.body.GotoTop()
			}
			return m, nil
		case "p":
			if e.HasTimelapse() {
				return m, openLink(e.Timelapse)
			}
			return m, nil
		}
		scrollBody(&m.body, msg)
	case tea.MouseMsg:
		if backdropOrClose(msg, m.box, m.layout) {
			return m, dismissModal
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.clickThumb(msg.X, msg.Y)
			return m, nil
		}
		scrollBody(&m.body, msg)
	}
	return m, nil
}

// clickThumb jumps to the thumbnail under screen cell (x, y), if any.
func (m *ArtworkModal) clickThumb(x, y int) {
	body := m.layout.bodyRect().Offset(m.box.X, m.box.Y)
	if !body.Contains(x, y) {
		return
	}
	line := y - body.Y + m.body.YOffset
	if line != m.thumbLine {
		return
	}
	for i, r := range m.thumbSpans {
		if r.Contains(x-body.X, 0) {
			m.lightbox.Jump(i)
			return
		}
	}
}

// View implements View.
func (m *ArtworkModal) View() string {
	e, ok := m.Entry()
	if !ok {
		return ""
	}
	m.body.SetContent(m.renderBody(e))

	hints := []string{}
	if m.lightbox.Navigable() {
		hints = append(hints, "←/→ images", "1-9 jump")
	}
	if e.Kind == content.EntrySingle && e.HasTimelapse() {
		hints = append(hints, "t time-lapse", "p play")
	}
	hints = append(hints, "esc close")

	meta := e.Medium
	if e.Year != "" {
		meta += " · " + e.Year
	}
	box := renderModal(m.layout, meta, e.Title, m.body.View(), strings.Join(hints, "  ·  "))
	screen, r := placeCenter(m.layout.width, m.layout.height, box)
	m.box = r
	return screen
}

func (m *ArtworkModal) renderBody(e content.GalleryEntry) string {
	iw := m.layout.innerWidth()
	var lines []string
	add := func(block string) {
		lines = append(lines, strings.Split(block, "\n")...)
	}

	m.thumbLine = -1
	m.thumbSpans = m.thumbSpans[:0]
	timelapse := e.Kind == content.EntrySingle && e.HasTimelapse()
	if timelapse && m.showTimelapse {
		panel := lipgloss.JoinVertical(lipgloss.Left,
			modalLabel("Time-lapse"),
			Styles.Normal.Render("▶ "+e.Timelapse),
			Styles.Hint.Render("[p] ")+Styles.Link.Render("Play video ↗"),
		)
		add(Styles.Card.Width(iw - Styles.Card.GetHorizontalBorderSize()).Render(panel))
	} else if n := len(e.Images); n > 0 {
		idx := m.lightbox.Index()
		add(m.images.Render(e.Images[idx].Src, m.imageSize()))
		if m.lightbox.Navigable() {
			add(counter(idx, n) + "   " + dots(idx, n))
			m.thumbLine = len(lines)
			add(m.thumbStrip(e, idx, iw))
		}
	}

	if e.Series != "" || e.Exhibition != "" {
		var meta []string
		if e.Series != "" {
			meta = append(meta, "Series: "+e.Series)
		}
		if e.Exhibition != "" {
			meta = append(meta, "Exhibition: "+e.Exhibition)
		}
		add("")
		add(Styles.Muted.Width(iw).Render(strings.Join(meta, "  ·  ")))
	}
	if e.Description != "" {
		add("")
		add(Styles.Normal.Width(iw).Render(e.Description))
	}
	if timelapse {
		add("")
		if m.showTimelapse {
			add(Styles.Hint.Render("[t] ") + Styles.Link.Render("Show artwork"))
		} else {
			add(Styles.Hint.Render("[t] ") + Styles.Link.Render("Watch process"))
		}
	}
	return strings.Join(lines, "\n")
}

// thumbStrip renders one numbered pill per image and records their spans.
func (m *ArtworkModal) thumbStrip(e content.GalleryEntry, idx, width int) string {
	var b strings.Builder
	x := 0
	for i, img := range e.Images {
		label := fmt.Sprintf("[%d %s]", i+1, textutil.Truncate(path.Base(img.Src), 14))
		w := textutil.VisualWidth(label)
		if x+w > width {
			break
		}
		if i == idx {
			b.WriteString(Styles.Selected.Render(label))
		} else {
			b.WriteString(Styles.Muted.Render(label))
		}
		m.thumbSpans = append(m.thumbSpans, Rect{X: x, Y: 0, W: w, H: 1})
		x += w
		if i < len(e.Images)-1 {
			b.WriteString(" ")
			x++
		}
	}
	return b.String()
}
