package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI. The portfolio is monochrome; color
// is reserved for form status.
const (
	ColorAccent    = "255" // White - titles, hovered borders
	ColorHighlight = "231" // Bright white - selected items, active anchors
	ColorDanger    = "203" // Red - form errors
	ColorSuccess   = "114" // Green - form success
	ColorMuted     = "244" // Gray - secondary text, hints
	ColorText      = "252" // Light gray - body text
	ColorDim       = "239" // Dark gray - resting borders, skeletons
	ColorGhost     = "236" // Near black - oversized section numbers
)

// Styles contains shared style definitions used across sections and modals.
var Styles = struct {
	// Title styles
	Title         lipgloss.Style // Bold accent - names, modal titles
	SectionNumber lipgloss.Style // Oversized dim number before a section heading
	SectionLabel  lipgloss.Style // Spaced uppercase heading
	Rule          lipgloss.Style // Line under headings

	// Box styles
	Modal     lipgloss.Style // Modal dialog frame
	Card      lipgloss.Style // Resting card
	CardHover lipgloss.Style // Hovered card

	// Text styles
	Selected lipgloss.Style // Active anchor, current carousel dot
	Muted    lipgloss.Style // Secondary text
	Normal   lipgloss.Style // Body text
	Hint     lipgloss.Style // Key hints
	Tag      lipgloss.Style // Technology and skill chips
	Empty    lipgloss.Style // Skeleton placeholders
	Link     lipgloss.Style // Openable references
	Error    lipgloss.Style // Form error banner
	Success  lipgloss.Style // Form success banner

	// Chrome
	NavBar         lipgloss.Style // Top bar before scrolling
	NavBarScrolled lipgloss.Style // Compact top bar after scrolling
	Input          lipgloss.Style // Unfocused form field
	InputFocused   lipgloss.Style // Focused form field
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	SectionNumber: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorGhost)),
	SectionLabel: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Rule: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Modal: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 2),
	Card: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	CardHover: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Tag: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Border(lipgloss.NormalBorder(), false, true).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Underline(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(0, 1),
	Success: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorSuccess)).
		Padding(0, 1),
	NavBar: lipgloss.NewStyle().
		Padding(0, 2).
		MarginBottom(1),
	NavBarScrolled: lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.NormalBorder(), false, false, true).
		BorderForeground(lipgloss.Color(ColorDim)),
	Input: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true).
		BorderForeground(lipgloss.Color(ColorDim)),
	InputFocused: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true).
		BorderForeground(lipgloss.Color(ColorAccent)),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 3),
	ButtonFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 3),
}
