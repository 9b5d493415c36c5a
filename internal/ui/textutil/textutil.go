// Package textutil provides unicode-aware text helpers for terminal layout.
package textutil

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// PadRight pads s with spaces to width columns, truncating when longer.
func PadRight(s string, width int) string {
	if VisualWidth(s) > width {
		return Truncate(s, width)
	}
	return runewidth.FillRight(s, width)
}

// Tracked renders s in uppercase with a space between letters, the way
// headings are set with wide tracking. Word gaps become three spaces.
func Tracked(s string) string {
	words := strings.Fields(strings.ToUpper(s))
	for i, w := range words {
		words[i] = strings.Join(strings.Split(w, ""), " ")
	}
	return strings.Join(words, "   ")
}

// Number formats n as a two-digit section number ("01").
func Number(n int) string {
	return fmt.Sprintf("%02d", n)
}

// Initials returns the uppercase first letter of each word, at most n of them.
func Initials(name string, n int) string {
	var out []rune
	for _, w := range strings.Fields(name) {
		if len(out) >= n {
			break
		}
		out = append(out, []rune(strings.ToUpper(w))[0])
	}
	return string(out)
}
