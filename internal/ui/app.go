package ui

import (
	"context"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/anim"
	"termfolio/internal/assets"
	"termfolio/internal/contact"
	"termfolio/internal/content"
	"termfolio/internal/opener"
	"termfolio/internal/preview"
)

// Deps are the collaborators the root model is built from.
type Deps struct {
	Context   context.Context
	Portfolio *content.Portfolio
	Submitter contact.Submitter
	Previews  *preview.Cache
	Assets    *assets.Resolver
	Open      opener.Func
	Logger    *slog.Logger
}

// AppModel is the root model: the NavBar over the scrolling Page, with at
// most one modal drawn in place of both. It owns the project selection;
// the gallery owns the artwork selection.
type AppModel struct {
	Portfolio    *content.Portfolio
	Document     *Document
	Selection    *SelectionStore
	Page         *Page
	NavBar       *NavBar
	Work         *WorkSection
	Gallery      *GallerySection
	Contact      *ContactSection
	ProjectModal *ProjectModal
	KeyHandler   *KeyHandler

	// Status is a one-shot message shown in place of the key hints.
	Status        string
	StatusIsError bool

	width, height int
	images        *imageLoader
	assets        *assets.Resolver
	open          opener.Func
	logger        *slog.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel assembles the page from d.
func NewAppModel(d Deps) *AppModel {
	if d.Context == nil {
		d.Context = context.Background()
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.DiscardHandler)
	}
	if d.Portfolio == nil {
		d.Portfolio = &content.Portfolio{}
	}
	if d.Open == nil {
		d.Open = opener.Open
	}

	p := d.Portfolio
	doc := NewDocument()
	images := newImageLoader(d.Context, d.Previews)

	about := NewAboutSection(p.Profile, p.Stats())
	work := NewWorkSection(p.Projects, images)
	experience := NewExperienceSection(p.Experience)
	skills := NewSkillsSection(p.Skills)
	gallery := NewGallerySection(p.Gallery(), doc, images)
	contactSection := NewContactSection(d.Context, p.Profile, d.Submitter, d.Logger)
	labelled := []Section{about, work, experience, skills, gallery, contactSection}
	footer := NewFooterSection(p.Profile, labelled)

	sections := append([]Section{NewHeroSection(p.Profile)}, labelled...)
	sections = append(sections, footer)

	m := &AppModel{
		Portfolio:    p,
		Document:     doc,
		Selection:    &SelectionStore{},
		Page:         NewPage(doc, sections...),
		NavBar:       NewNavBar(p.Profile.Name, sections),
		Work:         work,
		Gallery:      gallery,
		Contact:      contactSection,
		ProjectModal: NewProjectModal(doc, images),
		images:       images,
		assets:       d.Assets,
		open:         d.Open,
		logger:       d.Logger,
	}
	m.Selection.Subscribe(func(pr *content.Project) {
		if pr == nil {
			m.ProjectModal.Close()
			return
		}
		m.ProjectModal.Open(*pr)
	})
	m.KeyHandler = NewKeyHandler(m.newRegistry())
	return m
}

func (m *AppModel) newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	scrollTo := func(sel string) tea.Cmd {
		return func() tea.Msg { return ScrollToMsg{Selector: sel} }
	}

	reg.BindWithDescForMode("q", tea.Quit, "Quit", ModeBrowse)
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	for k := 1; k <= 6; k++ {
		if sel := m.NavBar.Anchor(k); sel != "" {
			reg.BindWithDescForMode(string(rune('0'+k)), scrollTo(sel), "Go to "+sel, ModeBrowse)
		}
	}
	goTo := []struct{ key, sel, desc string }{
		{"h", "#hero", "Top"},
		{"a", "#about", "About"},
		{"w", "#work", "Work"},
		{"e", "#experience", "Experience"},
		{"s", "#skills", "Skills"},
		{"g", "#gallery", "Gallery"},
		{"c", "#contact", "Contact"},
	}
	for _, g := range goTo {
		reg.BindWithDescForMode("SPC g "+g.key, scrollTo(g.sel), g.desc, ModeBrowse)
	}
	reg.BindWithDescForMode("w", scrollTo("#work"), "View work", ModeBrowse)
	reg.BindWithDescForMode("c", scrollTo("#contact"), "Get in touch", ModeBrowse)
	reg.BindWithDescForMode("i", func() tea.Msg { return FocusContactMsg{} }, "Write a message", ModeBrowse)

	profile := m.Portfolio.Profile
	if profile.Resume != "" {
		reg.BindWithDescForMode("SPC r", openLink(profile.Resume), "Résumé", ModeBrowse)
	}
	if profile.Email != "" {
		reg.BindWithDescForMode("SPC o m", openLink("mailto:"+profile.Email), "Mail", ModeBrowse)
	}
	for _, s := range profile.Socials {
		if s.Label == "" || strings.HasPrefix(s.Href, "mailto:") {
			continue
		}
		seq := "SPC o " + strings.ToLower(s.Label[:1])
		if reg.Lookup(seq) == nil {
			reg.BindWithDescForMode(seq, openLink(s.Href), s.Label, ModeBrowse)
		}
	}
	return reg
}

// Mode is derived from what is open and focused.
func (m *AppModel) Mode() AppMode {
	switch {
	case m.ProjectModal.IsOpen():
		return ModeProjectModal
	case m.Gallery.Modal().IsOpen():
		return ModeArtworkModal
	case m.Contact.Focused():
		return ModeContactForm
	}
	return ModeBrowse
}

// overlay returns the open modal, or nil.
func (m *AppModel) overlay() Overlay {
	if m.ProjectModal.IsOpen() {
		return m.ProjectModal
	}
	if am := m.Gallery.Modal(); am.IsOpen() {
		return am
	}
	return nil
}

// Close releases everything the open modals and the form hold.
func (m *AppModel) Close() {
	m.ProjectModal.lightbox.Unmount()
	m.Gallery.Unmount()
	m.Contact.Unmount()
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(a.Portfolio.Profile.Name), a.Page.Init())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.route(msg)
	return a, tea.Batch(cmd, a.settle())
}

func (a *appModelAdapter) route(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleResize(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		return a.handleMouse(msg)
	case anim.FrameMsg:
		_, cmd := a.Page.Update(msg)
		return cmd

	case SelectProjectMsg:
		if p, ok := a.Portfolio.Project(msg.ID); ok {
			a.Selection.Set(&p)
		}
	case SelectArtworkMsg:
		a.Gallery.Select(msg.Key)
	case DismissModalMsg:
		a.dismissModal()
	case ScrollToMsg:
		if a.Page.ScrollTo(msg.Selector) {
			return a.Page.Animate()
		}
		a.logger.Debug("scroll target not found", "selector", msg.Selector)

	case OpenLinkMsg:
		return openLinkCmd(a.open, a.assets, msg.Target)
	case linkOpenedMsg:
		a.handleLinkOpened(msg)

	case FocusContactMsg:
		a.Page.ScrollTo("#contact")
		return tea.Batch(a.Contact.Focus(msg.Field), a.Page.Animate())
	case SubmitContactMsg:
		return a.Contact.Submit()

	case ImageLoadedMsg:
		a.images.Done(msg.Key)

	default:
		// Form replies, spinner ticks and cursor blinks.
		return a.Contact.Update(msg)
	}
	return nil
}

// settle runs after every message: the page re-lays out (sections ask for
// the images they show), the open modal asks for its images, and every new
// image request is started.
func (a *appModelAdapter) settle() tea.Cmd {
	if a.width == 0 {
		return nil
	}
	layout := a.Page.Layout()
	a.NavBar.SetScroll(a.Page.YOffset())
	if s := a.Page.ActiveSection(); s != nil {
		a.NavBar.SetActive(s.Anchor())
	}
	if a.ProjectModal.IsOpen() {
		a.ProjectModal.wantImages()
	}
	if am := a.Gallery.Modal(); am.IsOpen() {
		am.wantImages()
	}
	return tea.Batch(layout, a.images.Flush())
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.width == 0 {
		return ""
	}
	if ov := a.overlay(); ov != nil {
		return ov.View()
	}

	page := a.Page.View()
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		page = overlayBottom(page, RenderKeybindHelp(a.KeyHandler, a.Mode()))
	}

	status := RenderStatusHints(a.Mode(), a.width)
	if a.Status != "" {
		style := Styles.Muted
		if a.StatusIsError {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger))
		}
		status = style.Padding(0, 2).Render(a.Status)
	}
	return a.NavBar.Render(a.width) + "\n" + page + "\n" + status
}

// overlayBottom replaces the last lines of base with box.
func overlayBottom(base, box string) string {
	if box == "" {
		return base
	}
	lines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")
	start := max(len(lines)-len(boxLines), 0)
	for i, l := range boxLines {
		if start+i < len(lines) {
			lines[start+i] = l
		}
	}
	return strings.Join(lines, "\n")
}
