package ui

import (
	"testing"

	"termfolio/internal/content"
)

func testProject(images int) content.Project {
	p := content.Project{
		ID:          9,
		Title:       "Lantern",
		Tech:        []string{"Go", "SQLite"},
		Description: "A small tool.",
		Highlights:  []string{"Fast startup"},
		GitHub:      "https://github.com/example/lantern",
		Year:        "2025",
	}
	for i := 0; i < images; i++ {
		p.Images = append(p.Images, "/projects/lantern.png")
	}
	return p
}

func openProjectModal(t *testing.T, p content.Project) (*ProjectModal, *Document) {
	t.Helper()
	doc := NewDocument()
	m := NewProjectModal(doc, nil)
	m.SetSize(100, 80)
	m.Open(p)
	return m, doc
}

func TestProjectModal_ScreenshotControls(t *testing.T) {
	tests := []struct {
		name        string
		images      int
		screenshots bool
		counter     bool
	}{
		{"no images", 0, false, false},
		{"one image", 1, true, false},
		{"three images", 3, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := openProjectModal(t, testProject(tt.images))
			view := m.View()
			if got := containsPlain(view, "S C R E E N S H O T S"); got != tt.screenshots {
				t.Errorf("screenshots section shown = %v, want %v", got, tt.screenshots)
			}
			if got := containsPlain(view, "1 / "); got != tt.counter {
				t.Errorf("counter shown = %v, want %v", got, tt.counter)
			}
		})
	}
}

func TestProjectModal_NavigatesWithDocumentKeys(t *testing.T) {
	m, doc := openProjectModal(t, testProject(3))
	doc.DispatchKey(keyMsg("right"))
	if m.Index() != 1 {
		t.Fatalf("Index = %d, want 1", m.Index())
	}
	if !containsPlain(m.View(), "2 / 3") {
		t.Error("counter should follow the carousel")
	}
}

func TestProjectModal_OptionalSections(t *testing.T) {
	p := testProject(0)
	p.Highlights = nil
	m, _ := openProjectModal(t, p)
	view := m.View()
	if containsPlain(view, "K E Y") {
		t.Error("empty highlights should not render a heading")
	}
	if containsPlain(view, "View Project") {
		t.Error("no live link, no View Project")
	}
	if !containsPlain(view, "Source Code") {
		t.Error("GitHub link should render")
	}
}

func TestProjectModal_LinkKeys(t *testing.T) {
	m, _ := openProjectModal(t, testProject(0))

	_, cmd := m.Update(keyMsg("g"))
	msg, ok := msgOf(cmd).(OpenLinkMsg)
	if !ok || msg.Target != "https://github.com/example/lantern" {
		t.Errorf("g produced %v", msgOf(cmd))
	}
	if _, cmd := m.Update(keyMsg("o")); cmd != nil {
		t.Error("o without a live link should do nothing")
	}
}

func TestProjectModal_BackdropAndCloseControl(t *testing.T) {
	m, _ := openProjectModal(t, testProject(2))
	m.View()

	if _, cmd := m.Update(leftClick(0, 0)); msgOf(cmd) != (DismissModalMsg{}) {
		t.Error("backdrop click should dismiss")
	}

	closeBtn := m.layout.closeRect().Offset(m.box.X, m.box.Y)
	if _, cmd := m.Update(leftClick(closeBtn.X+1, closeBtn.Y)); msgOf(cmd) != (DismissModalMsg{}) {
		t.Error("close control should dismiss")
	}

	body := m.layout.bodyRect().Offset(m.box.X, m.box.Y)
	if _, cmd := m.Update(leftClick(body.X+2, body.Y+1)); cmd != nil {
		t.Error("click inside the body should not dismiss")
	}
}

func TestProjectModal_ClosedIgnoresInput(t *testing.T) {
	m, doc := openProjectModal(t, testProject(2))
	m.Close()
	if _, cmd := m.Update(leftClick(0, 0)); cmd != nil {
		t.Error("closed modal should ignore clicks")
	}
	if m.View() != "" {
		t.Error("closed modal renders nothing")
	}
	if doc.ListenerCount() != 0 || doc.ScrollLocked() {
		t.Error("close should release the document")
	}
}

func TestArtworkModal_SeriesThumbnails(t *testing.T) {
	p := testPortfolio(t)
	doc := NewDocument()
	m := NewArtworkModal(doc, nil)
	m.SetSize(100, 40)
	m.Open(galleryEntry(t, p, "story"))

	view := m.View()
	if !containsPlain(view, "1 / 3") {
		t.Fatalf("series should show a counter:\n%s", view)
	}
	if len(m.thumbSpans) != 3 {
		t.Fatalf("thumb spans = %d, want 3", len(m.thumbSpans))
	}

	body := m.layout.bodyRect().Offset(m.box.X, m.box.Y)
	third := m.thumbSpans[2]
	m.Update(leftClick(body.X+third.X, body.Y+m.thumbLine))
	if m.Index() != 2 {
		t.Errorf("clicking the third thumbnail should jump to it, Index = %d", m.Index())
	}
}

func TestArtworkModal_Timelapse(t *testing.T) {
	p := testPortfolio(t)
	var entry content.GalleryEntry
	for _, e := range p.Gallery() {
		if e.Kind == content.EntrySingle && e.HasTimelapse() {
			entry = e
			break
		}
	}
	if entry.Key == "" {
		t.Fatal("fixture needs a single artwork with a time-lapse")
	}

	m := NewArtworkModal(NewDocument(), nil)
	m.SetSize(100, 40)
	m.Open(entry)
	if !containsPlain(m.View(), "Watch process") {
		t.Error("time-lapse prompt missing")
	}

	m.Update(keyMsg("t"))
	if !m.TimelapseShown() {
		t.Fatal("t should show the time-lapse panel")
	}
	view := m.View()
	if !containsPlain(view, "Play video") {
		t.Error("panel should offer playback")
	}
	if containsPlain(view, "░") {
		t.Error("panel should take the image's place")
	}
	if !containsPlain(view, "Show artwork") {
		t.Error("panel should offer a way back to the image")
	}

	_, cmd := m.Update(keyMsg("p"))
	if msg, ok := msgOf(cmd).(OpenLinkMsg); !ok || msg.Target != entry.Timelapse {
		t.Errorf("p produced %v", msgOf(cmd))
	}

	m.Open(entry)
	if m.TimelapseShown() {
		t.Error("reopening should hide the panel")
	}
}

func TestArtworkModal_NoTimelapseKeysOnSeries(t *testing.T) {
	p := testPortfolio(t)
	m := NewArtworkModal(NewDocument(), nil)
	m.Open(galleryEntry(t, p, "story"))
	m.Update(keyMsg("t"))
	if m.TimelapseShown() {
		t.Error("series have no time-lapse panel")
	}
	if _, cmd := m.Update(keyMsg("p")); cmd != nil {
		t.Error("p without a time-lapse should do nothing")
	}
}
