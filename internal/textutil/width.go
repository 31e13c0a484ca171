package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const DefaultTabWidth = 4

// RuneCount reports the number of code points in text.
func RuneCount(text string) int {
	return utf8.RuneCountInString(text)
}

// DisplayWidth reports the terminal column width of text, measuring grapheme
// clusters so that emoji sequences and combining marks count once.
func DisplayWidth(text string) int {
	return uniseg.StringWidth(text)
}

// RuneWidth reports the terminal column width of a single rune. Combining
// and other zero-width runes report 0.
func RuneWidth(ru rune) int {
	w := runewidth.RuneWidth(ru)
	if w < 0 {
		return 0
	}
	return w
}

// ExpandTabs replaces tab characters with spaces respecting terminal column width.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	builder.Grow(len(text) + tabWidth)
	column := 0
	for _, ru := range text {
		if ru == '\t' {
			spaces := tabWidth - (column % tabWidth)
			builder.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		}
		builder.WriteRune(ru)
		column += max(RuneWidth(ru), 1)
	}
	return builder.String()
}
