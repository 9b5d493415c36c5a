package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/contact"
	"termfolio/internal/content"
	"termfolio/internal/reveal"
)

// Contact form controls, in tab order.
const (
	fieldName    = "name"
	fieldEmail   = "email"
	fieldMessage = "message"
	fieldSend    = "send"
)

var errNoSubmitter = errors.New("no form endpoint configured")

const (
	successBanner = "✓ Message sent successfully! I'll get back to you soon."
	errorBanner   = "✗ Failed to send message. Please try again or email me directly."
)

// ContactSection is the contact details plus the message form. Focus is
// entered explicitly (enter or a click on a field) and left with esc; while
// focused the form receives keys before the keybind registry.
type ContactSection struct {
	baseSection
	profile content.Profile

	form    contact.Form
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	spinner spinner.Model
	focus   *FocusManager
	hint    string // first validation failure, cleared on edit
	fields  *Cards[string]
	// tick schedules the banner revert; tea.Tick outside tests.
	tick func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

	ctx       context.Context
	submitter contact.Submitter
	logger    *slog.Logger
}

// NewContactSection creates the form. submitter may be nil, in which case
// every submission fails.
func NewContactSection(ctx context.Context, profile content.Profile, submitter contact.Submitter, logger *slog.Logger) *ContactSection {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	name := textinput.New()
	name.Placeholder = "Your name"
	name.Prompt = ""
	name.CharLimit = 120

	email := textinput.New()
	email.Placeholder = "your@email.com"
	email.Prompt = ""
	email.CharLimit = 254

	message := textarea.New()
	message.Placeholder = "Tell me about your project..."
	message.ShowLineNumbers = false
	message.Prompt = ""
	message.SetHeight(4)

	s := &ContactSection{
		baseSection: newBaseSection("contact", "Contact", 6),
		profile:     profile,
		name:        name,
		email:       email,
		message:     message,
		spinner:     spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(Styles.Selected)),
		fields:      NewCards([]string{fieldName, fieldEmail, fieldMessage, fieldSend}, reveal.CardThreshold),
		tick:        tea.Tick,
		ctx:         ctx,
		submitter:   submitter,
		logger:      logger,
	}
	s.focus = &FocusManager{
		Order:    []string{fieldName, fieldEmail, fieldMessage, fieldSend},
		OnChange: s.applyFocus,
	}
	return s
}

// Cards implements Section. The form controls are the cards.
func (s *ContactSection) Cards() CardSet { return s.fields }

// Activate focuses control i; activating the send control submits.
func (s *ContactSection) Activate(i int) tea.Cmd {
	if i < 0 || i >= s.fields.Len() {
		return nil
	}
	if id := s.fields.Item(i); id != fieldSend {
		return func() tea.Msg { return FocusContactMsg{Field: id} }
	}
	return func() tea.Msg { return SubmitContactMsg{} }
}

// Status is the submission state.
func (s *ContactSection) Status() contact.Status { return s.form.Status() }

// Fields returns the current input values.
func (s *ContactSection) Fields() contact.Fields {
	return contact.Fields{Name: s.name.Value(), Email: s.email.Value(), Message: s.message.Value()}
}

// SetFields replaces the input values.
func (s *ContactSection) SetFields(f contact.Fields) {
	s.name.SetValue(f.Name)
	s.email.SetValue(f.Email)
	s.message.SetValue(f.Message)
}

// Hint is the validation message shown under the form, if any.
func (s *ContactSection) Hint() string { return s.hint }

// Focused reports whether the form has keyboard focus.
func (s *ContactSection) Focused() bool { return s.focus.Current != "" }

// FocusedField is the focused control id, or "".
func (s *ContactSection) FocusedField() string { return s.focus.Current }

// Focus moves keyboard focus to field, or to the first field when field
// is empty or unknown.
func (s *ContactSection) Focus(field string) tea.Cmd {
	if !s.focus.SetFocus(field) {
		s.focus.SetFocus(fieldName)
	}
	return s.cursorCmd()
}

// Blur leaves the form.
func (s *ContactSection) Blur() {
	s.focus.Blur()
}

func (s *ContactSection) applyFocus(from, to string) {
	s.name.Blur()
	s.email.Blur()
	s.message.Blur()
	s.fields.SetHover(s.focus.indexOf(to))
}

func (s *ContactSection) cursorCmd() tea.Cmd {
	switch s.focus.Current {
	case fieldName:
		return s.name.Focus()
	case fieldEmail:
		return s.email.Focus()
	case fieldMessage:
		return s.message.Focus()
	}
	return nil
}

// HandleKey processes a key while the form is focused.
func (s *ContactSection) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.Blur()
		return nil
	case "ctrl+s":
		return s.Submit()
	case "tab":
		s.focus.Next()
		return s.cursorCmd()
	case "shift+tab":
		s.focus.Prev()
		return s.cursorCmd()
	case "enter":
		switch s.focus.Current {
		case fieldName, fieldEmail:
			s.focus.Next()
			return s.cursorCmd()
		case fieldSend:
			return s.Submit()
		}
	}

	if s.focus.Current == fieldSend {
		return nil
	}
	s.hint = ""
	return s.forward(msg)
}

// Submit validates and sends the form. Invalid input stays Idle with a
// hint; a submission already in flight is not repeated.
func (s *ContactSection) Submit() tea.Cmd {
	if s.form.Status() == contact.StatusSubmitting {
		return nil
	}
	fields := s.Fields().Sanitized()
	if err := contact.Validate(fields); err != nil {
		s.hint = err.Error()
		var fe *contact.FieldError
		if errors.As(err, &fe) {
			s.focus.SetFocus(fe.Field)
			return s.cursorCmd()
		}
		return nil
	}
	s.hint = ""
	s.form.Fields = fields
	if !s.form.Begin() {
		return nil
	}
	s.logger.Debug("submitting contact form")

	ctx, submitter := s.ctx, s.submitter
	send := func() tea.Msg {
		if submitter == nil {
			return contactSubmittedMsg{Err: errNoSubmitter}
		}
		return contactSubmittedMsg{Err: submitter.Submit(ctx, fields)}
	}
	return tea.Batch(send, s.spinner.Tick)
}

// complete records the endpoint's verdict and schedules the banner revert.
func (s *ContactSection) complete(err error) tea.Cmd {
	tok := s.form.Complete(err)
	if tok == 0 {
		return nil
	}
	if err != nil {
		s.logger.Warn("contact form submission failed", "error", err)
	} else {
		s.SetFields(contact.Fields{})
	}
	return s.tick(contact.RevertDelay, func(time.Time) tea.Msg {
		return contactRevertMsg{Token: tok}
	})
}

// revert hides the banner when tok is still current.
func (s *ContactSection) revert(tok contact.Token) {
	s.form.Revert(tok)
}

// Update handles the form's own messages.
func (s *ContactSection) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case contactSubmittedMsg:
		return s.complete(msg.Err)
	case contactRevertMsg:
		s.revert(msg.Token)
	case spinner.TickMsg:
		if s.form.Status() != contact.StatusSubmitting {
			return nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd
	}
	return s.forward(msg)
}

// forward hands msg to the focused input (cursor blinks).
func (s *ContactSection) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus.Current {
	case fieldName:
		s.name, cmd = s.name.Update(msg)
	case fieldEmail:
		s.email, cmd = s.email.Update(msg)
	case fieldMessage:
		s.message, cmd = s.message.Update(msg)
	}
	return cmd
}

// Unmount drops any pending banner timer.
func (s *ContactSection) Unmount() {
	s.form.Cancel()
}

// Render implements Section.
func (s *ContactSection) Render(width int) string {
	cw := contentWidth(width)

	var body stack
	body.add(heading(s.number, "Get in Touch",
		"Have a project in mind or want to collaborate? Send a message and I'll get back to you.", cw))
	body.gap()

	details := []string{Styles.Muted.Render("Email    ") + Styles.Link.Render(s.profile.Email)}
	if s.profile.Location != "" {
		details = append(details, Styles.Muted.Render("Based in ")+Styles.Normal.Render(s.profile.Location))
	}
	body.add(strings.Join(details, "\n"))
	body.gap()

	formWidth := min(cw, 72)
	inner := formWidth - Styles.Input.GetHorizontalFrameSize()
	s.name.Width = inner - 1
	s.email.Width = inner - 1
	s.message.SetWidth(inner)

	input := func(id, label, view string) {
		style := Styles.Input
		if s.focus.Focused(id) {
			style = Styles.InputFocused
		}
		block := Styles.Muted.Render(label) + "\n" + style.Width(inner).Render(view)
		y := body.add(block)
		s.fields.SetRect(s.focus.indexOf(id), Rect{X: frameLeft, Y: frameTop + y, W: formWidth, H: lipgloss.Height(block)})
		body.gap()
	}
	input(fieldName, "Name", s.name.View())
	input(fieldEmail, "Email", s.email.View())
	input(fieldMessage, "Message", s.message.View())

	button := Styles.Button
	if s.focus.Focused(fieldSend) || s.fields.Hovered(s.focus.indexOf(fieldSend)) {
		button = Styles.ButtonFocused
	}
	var label string
	switch s.form.Status() {
	case contact.StatusSubmitting:
		label = s.spinner.View() + " Sending..."
		button = Styles.Button.Foreground(lipgloss.Color(ColorMuted))
	case contact.StatusSuccess:
		label = "Message Sent!"
	default:
		label = "Send Message →"
	}
	send := button.Render(label)
	y := body.add(send)
	s.fields.SetRect(s.focus.indexOf(fieldSend), Rect{X: frameLeft, Y: frameTop + y, W: lipgloss.Width(send), H: lipgloss.Height(send)})

	if s.hint != "" {
		body.add(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)).Render("! " + s.hint))
	}
	switch s.form.Status() {
	case contact.StatusSuccess:
		body.gap()
		body.add(Styles.Success.Width(formWidth - 2).Render(successBanner))
	case contact.StatusFailed:
		body.gap()
		body.add(Styles.Error.Width(formWidth - 2).Render(errorBanner))
	}
	if s.Focused() {
		body.gap()
		body.add(Styles.Hint.Render("tab next field · ctrl+s send · esc leave form"))
	}
	return frameSection(body.String())
}
