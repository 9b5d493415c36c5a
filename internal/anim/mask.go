package anim

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Mask shows the first progress share of content's lines and blanks the
// rest. Blanked lines keep their cell width and the line count is
// unchanged, so layout offsets do not move.
func Mask(content string, progress float64) string {
	if progress >= 1 {
		return content
	}
	lines := strings.Split(content, "\n")
	if progress < 0 {
		progress = 0
	}
	visible := int(math.Ceil(progress * float64(len(lines))))
	for i := visible; i < len(lines); i++ {
		lines[i] = strings.Repeat(" ", ansi.StringWidth(lines[i]))
	}
	return strings.Join(lines, "\n")
}
