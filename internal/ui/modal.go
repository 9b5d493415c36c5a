package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/ui/textutil"
)

const (
	closeControl     = "[x]"
	modalHeaderLines = 3 // meta + close control, title, rule
	modalFooterLines = 1 // key hints
)

// modalLayout sizes a modal dialog for a terminal of width×height.
type modalLayout struct {
	width, height int
}

func (l modalLayout) boxWidth() int  { return max(min(l.width-4, 96), 30) }
func (l modalLayout) boxHeight() int { return max(l.height-2, 12) }

func (l modalLayout) innerWidth() int {
	return l.boxWidth() - Styles.Modal.GetHorizontalFrameSize()
}

func (l modalLayout) bodyHeight() int {
	return l.boxHeight() - Styles.Modal.GetVerticalFrameSize() - modalHeaderLines - modalFooterLines
}

// closeRect is the close control, relative to the box.
func (l modalLayout) closeRect() Rect {
	left := Styles.Modal.GetBorderLeftSize() + Styles.Modal.GetPaddingLeft()
	return Rect{X: left + l.innerWidth() - len(closeControl), Y: Styles.Modal.GetBorderTopSize(), W: len(closeControl), H: 1}
}

// bodyRect is the scrolling body, relative to the box.
func (l modalLayout) bodyRect() Rect {
	left := Styles.Modal.GetBorderLeftSize() + Styles.Modal.GetPaddingLeft()
	return Rect{X: left, Y: Styles.Modal.GetBorderTopSize() + modalHeaderLines, W: l.innerWidth(), H: l.bodyHeight()}
}

// renderModal draws the dialog frame around a scrolled body.
func renderModal(l modalLayout, meta, title, body, hints string) string {
	iw := l.innerWidth()
	meta = textutil.Truncate(meta, iw-len(closeControl)-1)
	gap := max(iw-textutil.VisualWidth(meta)-len(closeControl), 1)

	var b strings.Builder
	b.WriteString(Styles.Muted.Render(meta) + strings.Repeat(" ", gap) + Styles.Hint.Render(closeControl))
	b.WriteString("\n")
	b.WriteString(Styles.Title.Render(textutil.Truncate(title, iw)))
	b.WriteString("\n")
	b.WriteString(Styles.Rule.Render(strings.Repeat("─", iw)))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(Styles.Hint.Render(textutil.Truncate(hints, iw)))

	frame := Styles.Modal.GetHorizontalBorderSize()
	return Styles.Modal.
		Width(l.boxWidth() - frame).
		Height(l.boxHeight() - Styles.Modal.GetVerticalBorderSize()).
		Render(b.String())
}

// modalLabel renders a body sub-heading.
func modalLabel(s string) string {
	return Styles.Muted.Render(textutil.Tracked(s))
}

// counter renders "‹  2 / 3  ›".
func counter(index, n int) string {
	return Styles.Hint.Render("‹  ") + Styles.Selected.Render(fmt.Sprintf("%d / %d", index+1, n)) + Styles.Hint.Render("  ›")
}

// dots renders the position indicator "● ○ ○".
func dots(index, n int) string {
	parts := make([]string, n)
	for i := range parts {
		if i == index {
			parts[i] = Styles.Selected.Render("●")
		} else {
			parts[i] = Styles.Empty.Render("○")
		}
	}
	return strings.Join(parts, " ")
}

// scrollBody handles the keys and wheel events that scroll a modal body.
// It reports whether msg was one of them.
func scrollBody(vp *viewport.Model, msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			vp.SetYOffset(vp.YOffset - 1)
		case "down", "j":
			vp.SetYOffset(vp.YOffset + 1)
		case "pgup", "b":
			vp.SetYOffset(vp.YOffset - vp.Height)
		case "pgdown", "f":
			vp.SetYOffset(vp.YOffset + vp.Height)
		case "home":
			vp.GotoTop()
		case "end":
			vp.GotoBottom()
		default:
			return false
		}
		return true
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			vp.SetYOffset(vp.YOffset - 3)
		case tea.MouseButtonWheelDown:
			vp.SetYOffset(vp.YOffset + 3)
		default:
			return false
		}
		return true
	}
	return false
}

// backdropOrClose reports whether a left click at (x, y) landed outside
// box or on its close control.
func backdropOrClose(msg tea.MouseMsg, box Rect, l modalLayout) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	if !box.Contains(msg.X, msg.Y) {
		return true
	}
	return l.closeRect().Offset(box.X, box.Y).Contains(msg.X, msg.Y)
}

func dismissModal() tea.Msg { return DismissModalMsg{} }
