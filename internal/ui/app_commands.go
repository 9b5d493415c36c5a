package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/assets"
	"termfolio/internal/opener"
)

// openLink returns a command asking the app to open target.
func openLink(target string) tea.Cmd {
	return func() tea.Msg { return OpenLinkMsg{Target: target} }
}

// openLinkCmd opens target off the UI loop. Site-relative references
// (the résumé) are resolved against the asset root first.
func openLinkCmd(open opener.Func, res *assets.Resolver, target string) tea.Cmd {
	return func() tea.Msg {
		path := target
		if !assets.IsExternal(target) && res != nil {
			path = res.Resolve(target)
		}
		return linkOpenedMsg{Target: target, Err: open(path)}
	}
}

// dismissModal clears whichever selection is set. The modal itself may
// already be closed (esc closes the lightbox before this message arrives).
func (a *appModelAdapter) dismissModal() {
	if a.Selection.Project() != nil {
		a.Selection.Set(nil)
	}
	if a.Gallery.Selected() != nil {
		a.Gallery.Deselect()
	}
}

func (a *appModelAdapter) handleLinkOpened(msg linkOpenedMsg) {
	if msg.Err != nil {
		a.logger.Warn("open link failed", "target", msg.Target, "error", msg.Err)
		a.Status = fmt.Sprintf("Could not open %s: %v", msg.Target, msg.Err)
		a.StatusIsError = true
		return
	}
	a.logger.Debug("opened link", "target", msg.Target)
	a.Status = "Opened " + msg.Target
	a.StatusIsError = false
}

func (a *appModelAdapter) handleResize(msg tea.WindowSizeMsg) tea.Cmd {
	a.width, a.height = msg.Width, msg.Height
	// NavBar above, key hints below.
	a.Page.SetSize(msg.Width, max(msg.Height-navHeight-1, 1))
	a.ProjectModal.SetSize(msg.Width, msg.Height)
	a.Gallery.Modal().SetSize(msg.Width, msg.Height)
	return nil
}

// handleKey routes a key: document listeners (the open modal's carousel
// keys) first, then the modal itself, then the focused form, then the
// keybind registry, and finally the page.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	a.Status = ""
	if handled, cmd := a.Document.DispatchKey(msg); handled {
		return cmd
	}
	if ov := a.overlay(); ov != nil {
		_, cmd := ov.Update(msg)
		return cmd
	}
	if a.Contact.Focused() {
		return a.Contact.HandleKey(msg)
	}
	if a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode()); consumed {
			return cmd
		}
	}
	_, cmd := a.Page.Update(msg)
	return cmd
}

// handleMouse sends screen coordinates to the open modal, NavBar clicks to
// scroll-to, and everything else to the page in page coordinates.
func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if ov := a.overlay(); ov != nil {
		_, cmd := ov.Update(msg)
		return cmd
	}
	if msg.Y < navHeight {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if sel := a.NavBar.HitTest(msg.X, msg.Y); sel != "" {
				return func() tea.Msg { return ScrollToMsg{Selector: sel} }
			}
		}
		return nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && a.Contact.Focused() {
		a.Contact.Blur()
	}
	msg.Y -= navHeight
	_, cmd := a.Page.Update(msg)
	return cmd
}
