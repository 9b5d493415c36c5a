package ui

import (
	"termfolio/internal/contact"
	"termfolio/internal/preview"
)

// SelectProjectMsg opens the project modal (enter on a Work card).
type SelectProjectMsg struct {
	ID int
}

// SelectArtworkMsg opens the artwork modal for a gallery entry key.
type SelectArtworkMsg struct {
	Key string
}

// DismissModalMsg is sent when the open modal is closed (Esc, backdrop click, close control).
type DismissModalMsg struct{}

// ScrollToMsg scrolls the page to a section anchor such as "#work".
type ScrollToMsg struct {
	Selector string
}

// OpenLinkMsg hands a URL or asset reference to the platform opener.
type OpenLinkMsg struct {
	Target string
}

// linkOpenedMsg reports the opener's result.
type linkOpenedMsg struct {
	Target string
	Err    error
}

// FocusContactMsg moves keyboard focus into the contact form. An empty
// Field focuses the first field.
type FocusContactMsg struct {
	Field string
}

// SubmitContactMsg asks the contact form to validate and send.
type SubmitContactMsg struct{}

// contactSubmittedMsg carries the endpoint's verdict for one submission.
type contactSubmittedMsg struct {
	Err error
}

// contactRevertMsg fires RevertDelay after a submission settles.
type contactRevertMsg struct {
	Token contact.Token
}

// ImageLoadedMsg is sent when a preview finished rendering (or failed).
type ImageLoadedMsg struct {
	Key preview.Key
}
