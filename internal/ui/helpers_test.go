package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"termfolio/internal/content"
)

func containsPlain(s, sub string) bool {
	return strings.Contains(ansi.Strip(s), sub)
}

func testPortfolio(t *testing.T) *content.Portfolio {
	t.Helper()
	p, err := content.Load()
	if err != nil {
		t.Fatalf("content.Load: %v", err)
	}
	return p
}

func galleryEntry(t *testing.T, p *content.Portfolio, key string) content.GalleryEntry {
	t.Helper()
	for _, e := range p.Gallery() {
		if e.Key == key {
			return e
		}
	}
	t.Fatalf("no gallery entry %q", key)
	return content.GalleryEntry{}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func hover(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func wheel(down bool) tea.MouseMsg {
	b := tea.MouseButtonWheelUp
	if down {
		b = tea.MouseButtonWheelDown
	}
	return tea.MouseMsg{Action: tea.MouseActionPress, Button: b}
}

// msgOf runs cmd and returns its message, or nil for a nil command.
func msgOf(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
