package textutil

import "strings"

// trimCutset matches the characters stripped by the classic trim family:
// space, tab, newline, carriage return, NUL and vertical tab.
const trimCutset = " \t\n\r\x00\x0b"

// Trim strips leading and trailing blank characters (see trimCutset).
func Trim(text string) string {
	return strings.Trim(text, trimCutset)
}

// TrimRight strips trailing blank characters (see trimCutset).
func TrimRight(text string) string {
	return strings.TrimRight(text, trimCutset)
}

// IsBlank reports whether text is empty after Trim.
func IsBlank(text string) bool {
	return Trim(text) == ""
}

// IsSpace reports whether b is an ASCII whitespace byte (space, \t, \n, \v, \f, \r).
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// CollapseSpaces reduces every run of space characters to a single space.
// Other whitespace is left alone.
func CollapseSpaces(text string) string {
	if !strings.Contains(text, "  ") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteByte(c)
	}
	return b.String()
}

// NormalizeNewlines converts \r\n and lone \r line endings to \n.
func NormalizeNewlines(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	return strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
}

// FlattenWhitespace turns \r, \n, \t, \v and \f into spaces and then collapses
// space runs, yielding single-line text.
func FlattenWhitespace(text string) string {
	flat := strings.Map(func(r rune) rune {
		switch r {
		case '\r', '\n', '\t', '\v', '\f':
			return ' '
		}
		return r
	}, text)
	return CollapseSpaces(flat)
}
