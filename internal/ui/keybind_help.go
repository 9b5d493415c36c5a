package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help box shown after SPC,
// listing the keys that can follow the pending sequence in mode.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler, mode).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := newHelpModel()
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)

	prefix := keyHandler.CurrentSeq()
	if prefix == "" {
		prefix = keyHandler.LeaderSeq
	}
	return boxStyle.Render(Styles.Muted.Render(prefix) + " " + helpModel.ShortHelpView(bindings))
}

// RenderStatusHints is the one-line key reminder at the bottom of the screen.
func RenderStatusHints(mode AppMode, width int) string {
	var pairs [][2]string
	switch mode {
	case ModeProjectModal:
		pairs = [][2]string{{"←/→", "image"}, {"↑/↓", "scroll"}, {"o", "live site"}, {"g", "source"}, {"esc", "close"}}
	case ModeArtworkModal:
		pairs = [][2]string{{"←/→", "image"}, {"1-9", "jump"}, {"t", "time-lapse"}, {"p", "play"}, {"esc", "close"}}
	case ModeContactForm:
		pairs = [][2]string{{"tab", "next field"}, {"ctrl+s", "send"}, {"esc", "leave form"}}
	default:
		pairs = [][2]string{{"↑/↓", "scroll"}, {"←/→", "select"}, {"enter", "open"}, {"1-6", "jump"}, {"SPC", "commands"}, {"q", "quit"}}
	}
	bindings := make([]key.Binding, len(pairs))
	for i, p := range pairs {
		bindings[i] = key.NewBinding(key.WithKeys(p[0]), key.WithHelp(p[0], p[1]))
	}
	h := newHelpModel()
	h.Width = max(width-4, 0)
	return lipgloss.NewStyle().Padding(0, 2).Render(strings.TrimRight(h.ShortHelpView(bindings), " "))
}

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = Styles.Selected
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Empty
	return h
}
