// Package truncate shortens text to a word or character budget without
// cutting words, appending an end marker only when something was removed.
package truncate

import (
	"strings"
	"unicode/utf8"

	"github.com/kk-code-lab/textproc/internal/textutil"
)

// DefaultEndMarker is the numeric entity for a horizontal ellipsis.
const DefaultEndMarker = "&#8230;"

// Result is the outcome of a limiter. Truncated reports whether any text was
// dropped (and therefore whether the end marker was appended).
type Result struct {
	Text      string
	Truncated bool
}

func (r Result) String() string {
	return r.Text
}

func unchanged(text string) Result {
	return Result{Text: text}
}

// Words keeps at most limit whitespace-separated words from the start of
// text, together with any leading whitespace and the whitespace between
// them. Trailing whitespace is trimmed and end is appended when words were
// dropped. Blank text is returned as is. A limit below one keeps one word.
func Words(text string, limit int, end string) Result {
	if textutil.IsBlank(text) {
		return unchanged(text)
	}
	limit = max(limit, 1)

	i := skipSpace(text, 0)
	for n := 0; n < limit && i < len(text); n++ {
		i = skipWord(text, i)
		i = skipSpace(text, i)
	}

	kept := textutil.TrimRight(text[:i])
	if i == len(text) {
		return unchanged(kept)
	}
	return Result{Text: kept + end, Truncated: true}
}

func skipSpace(s string, i int) int {
	for i < len(s) && textutil.IsSpace(s[i]) {
		i++
	}
	return i
}

func skipWord(s string, i int) int {
	for i < len(s) && !textutil.IsSpace(s[i]) {
		i++
	}
	return i
}

// Characters shortens text to roughly limit characters, counted in code
// points, keeping whole words so the result may run slightly past the limit.
//
// Text shorter than limit is returned untouched. Otherwise line breaks, tabs
// and repeated spaces are flattened to single spaces first; if that brings
// the text within the limit it is returned flattened. Words are then
// collected until the limit is reached, and end is appended unless every
// word made it in.
//
// Trimming can drop NUL bytes at the edges that still counted
// towards the flattened length, so the words may run out before the limit.
// Every word is then kept and end is appended, since the text differs from
// its flattened form.
func Characters(text string, limit int, end string) Result {
	if utf8.RuneCountInString(text) < limit {
		return unchanged(text)
	}

	flat := textutil.FlattenWhitespace(text)
	flatLen := utf8.RuneCountInString(flat)
	if flatLen <= limit {
		return unchanged(flat)
	}

	var out strings.Builder
	outLen := 0
	for _, word := range strings.Split(textutil.Trim(flat), " ") {
		out.WriteString(word)
		out.WriteByte(' ')
		outLen += utf8.RuneCountInString(word) + 1

		if outLen >= limit {
			kept := textutil.Trim(out.String())
			if utf8.RuneCountInString(kept) == flatLen {
				return unchanged(kept)
			}
			return Result{Text: kept + end, Truncated: true}
		}
	}

	return Result{Text: textutil.Trim(out.String()) + end, Truncated: true}
}
