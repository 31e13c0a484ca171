package truncate

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultEllipsis is the named entity for a horizontal ellipsis.
const DefaultEllipsis = "&hellip;"

var markupTag = regexp.MustCompile(`<[^>]*>`)

// Ellipsize strips markup tags from text and, if it is still longer than
// maxLen code points, keeps maxLen of them around an ellipsis. position
// chooses where the cut happens: 1 keeps the head, 0 keeps the tail and 0.5
// keeps both ends equally. Values outside [0, 1] are clamped.
func Ellipsize(text string, maxLen int, position float64, ellipsis string) Result {
	text = strings.TrimSpace(markupTag.ReplaceAllString(text, ""))
	if utf8.RuneCountInString(text) <= maxLen {
		return unchanged(text)
	}

	position = math.Min(math.Max(position, 0), 1)
	maxLen = max(maxLen, 0)
	runes := []rune(text)
	head := int(math.Floor(float64(maxLen) * position))
	tail := maxLen - head
	return Result{
		Text:      string(runes[:head]) + ellipsis + string(runes[len(runes)-tail:]),
		Truncated: true,
	}
}
