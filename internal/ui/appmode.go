package ui

// AppMode is the top-level input mode. It decides which keybindings apply
// and which component receives keys first.
type AppMode int

const (
	ModeBrowse AppMode = iota
	ModeProjectModal
	ModeArtworkModal
	ModeContactForm
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeProjectModal:
		return "ProjectModal"
	case ModeArtworkModal:
		return "ArtworkModal"
	case ModeContactForm:
		return "ContactForm"
	default:
		return "Unknown"
	}
}
