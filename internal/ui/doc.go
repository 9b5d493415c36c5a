// Package ui renders the portfolio as a Bubble Tea program.
//
// Core abstractions:
//   - View: a screen region with its own model, update and view (Elm-style)
//   - Document: page-wide scroll lock and key listeners, the resources a modal borrows
//   - Scope: acquired resources released together, once, in reverse order
//   - Lightbox: a carousel bound to a Document for as long as it is open
//   - Cards: hover, image-loaded and reveal state shared by every card grid
//   - Page: the sections in one scrolling viewport with anchor navigation
//   - KeybindRegistry / KeyHandler: SPC-leader key sequences filtered by AppMode
//
// All state lives on the Bubble Tea update goroutine. Work that blocks
// (form submission, image rendering, opening links) runs in tea.Cmds and
// reports back with messages.
package ui
