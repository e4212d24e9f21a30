// Package textfit fits strings into fixed-width log columns. Widths are
// counted in runes, not bytes, so multi-byte text never splits mid-character.
package textfit

import (
	"strings"
	"unicode/utf8"
)

const ellipsis = "..."

// Fit pads or left-truncates a string to exactly width runes.
// Truncation keeps the end of the string; padding is appended on the right.
func Fit(s string, width int) string {
	count := utf8.RuneCountInString(s)
	if count <= width {
		return s + strings.Repeat(" ", width-count)
	}

	// Skip count-width leading runes
	skip := count - width
	for i := range s {
		if skip == 0 {
			return s[i:]
		}
		skip--
	}
	return ""
}

// FitPath pads or middle-truncates a path to exactly width runes.
// Truncation keeps the beginning and end, replacing the middle with "...";
// the end gets the larger share since the filename matters most.
// Short strings are right-padded with spaces.
func FitPath(s string, width int) string {
	count := utf8.RuneCountInString(s)
	if count <= width {
		return s + strings.Repeat(" ", width-count)
	}

	available := width - len(ellipsis)
	if available <= 0 {
		// No room for an ellipsis, keep the tail
		return Fit(s, width)
	}
	endLen := (available + 1) / 2
	startLen := available - endLen

	runes := []rune(s)
	return string(runes[:startLen]) + ellipsis + string(runes[count-endLen:])
}
