// Package wrap breaks text into lines at a column limit while keeping words,
// URLs and explicitly protected spans intact.
//
// Text between {unwrap} and {/unwrap} markers is never wrapped. The markers
// themselves are removed from the output.
package wrap

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kk-code-lab/textproc/internal/textutil"
)

// DefaultWidth is the column limit used when none (or a non-positive one) is given.
const DefaultWidth = 76

// Options controls WrapWith.
type Options struct {
	// Width is the column limit. Non-positive values select DefaultWidth.
	Width int
	// Columns measures each rune by its terminal cell width instead of
	// counting code points.
	Columns bool
}

var (
	unwrapSpan  = regexp.MustCompile(`(?s)\{unwrap\}(.+?)\{/unwrap\}`)
	placeholder = regexp.MustCompile(`\{\{unwrapped(\d+)\}\}`)
	urlLike     = regexp.MustCompile(`\[url.+\]|://|www\.`)
)

// Wrap wraps text at width code points. See WrapWith.
func Wrap(text string, width int) string {
	return WrapWith(text, Options{Width: width})
}

// WrapWith wraps text according to opts:
//
//  1. protected spans are swapped out for placeholders,
//  2. runs of spaces collapse and line endings become \n,
//  3. lines break at the last space that keeps them within the limit,
//  4. any word still longer than the limit is cut into width-1 chunks, one
//     per line, unless the line looks like a URL,
//  5. protected spans are put back verbatim.
//
// Existing line breaks are kept. The result does not gain a trailing newline,
// so wrapping already wrapped text is a no-op.
//
// Callers must not pass text that already contains "{{unwrappedN}}" tokens.
func WrapWith(text string, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	measure := oneColumn
	if opts.Columns {
		measure = textutil.RuneWidth
	}

	var spans []string
	if strings.Contains(text, "{unwrap}") {
		text = unwrapSpan.ReplaceAllStringFunc(text, func(m string) string {
			sub := unwrapSpan.FindStringSubmatch(m)
			spans = append(spans, sub[1])
			return "{{unwrapped" + strconv.Itoa(len(spans)-1) + "}}"
		})
	}

	text = textutil.NormalizeNewlines(textutil.CollapseSpaces(text))
	text = greedyWrap(text, width, measure)

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, splitLongLine(line, width, measure)...)
	}
	text = strings.Join(out, "\n")

	if len(spans) == 0 {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(m string) string {
		idx, err := strconv.Atoi(m[len("{{unwrapped") : len(m)-2])
		if err != nil || idx >= len(spans) {
			return m
		}
		return spans[idx]
	})
}

func oneColumn(rune) int { return 1 }

// greedyWrap replaces spaces with newlines so that no line exceeds width
// unless it consists of a single word. Words are never cut here.
func greedyWrap(text string, width int, measure func(rune) int) string {
	runes := []rune(text)
	// col[i] is the column at which runes[i] starts, counted from the
	// beginning of the text; line lengths are differences of col values.
	col := make([]int, len(runes)+1)
	for i, r := range runes {
		col[i+1] = col[i] + measure(r)
	}

	lastStart, lastSpace := 0, 0
	for cur, r := range runes {
		switch {
		case r == '\n':
			lastStart, lastSpace = cur+1, cur+1
		case r == ' ':
			if col[cur]-col[lastStart] >= width {
				runes[cur] = '\n'
				lastStart = cur + 1
			}
			lastSpace = cur
		case col[cur]-col[lastStart] >= width && lastStart != lastSpace:
			runes[lastSpace] = '\n'
			lastStart = lastSpace + 1
		}
	}
	return string(runes)
}

// splitLongLine cuts an over-long line into chunks of width-1 columns. The
// chunks come first, one per line, followed by the remainder. Lines that
// look like URLs or hold a protected span placeholder are left whole.
func splitLongLine(line string, width int, measure func(rune) int) []string {
	if lineWidth(line, measure) <= width {
		return []string{line}
	}

	var chunks []string
	for lineWidth(line, measure) > width {
		if urlLike.MatchString(line) || placeholder.MatchString(line) {
			break
		}
		head, rest := cut(line, width-1, measure)
		if rest == "" {
			line = head
			break
		}
		chunks = append(chunks, head)
		line = rest
	}
	return append(chunks, line)
}

func lineWidth(line string, measure func(rune) int) int {
	w := 0
	for _, r := range line {
		w += measure(r)
	}
	return w
}

// cut returns the longest prefix of line fitting in limit columns and the
// remainder. At least one rune is always taken so that cutting makes progress.
func cut(line string, limit int, measure func(rune) int) (string, string) {
	w := 0
	for i, r := range line {
		w += measure(r)
		if w > limit && i > 0 {
			return line[:i], line[i:]
		}
	}
	return line, ""
}
