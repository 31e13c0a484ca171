// Package match finds words and phrases in text and either masks them or
// wraps them in marker tags.
//
// Word matching does not rely on \b, which only understands ASCII word
// characters and therefore misses boundaries around letters such as "ü".
// Instead a word counts as whole when it is flanked by a character from
// Delimiters (or the start or end of the text).
package match

import (
	"regexp"
	"strings"

	"github.com/kk-code-lab/textproc/internal/textutil"
)

// Delimiters is the character class treated as a word boundary: ASCII
// punctuation, whitespace and digits.
const Delimiters = "[-_'\"`(){}<>\\[\\]|!?@#%&,.:;^~*+=/ 0-9\\n\\r\\t]"

// MaskChar replaces every byte of a censored word when no replacement is given.
const MaskChar = '#'

// Censorer masks or replaces a fixed list of words. It is safe for
// concurrent use once built.
type Censorer struct {
	patterns    []*regexp.Regexp
	replacement string
}

// NewCensorer compiles the banned words. A '*' in a word matches any run of
// word characters, so "bad*" also catches "badly". Matching ignores case.
// Empty words are ignored.
func NewCensorer(banned []string, replacement string) *Censorer {
	c := &Censorer{replacement: replacement}
	for _, word := range banned {
		if word == "" {
			continue
		}
		body := strings.ReplaceAll(regexp.QuoteMeta(word), `\*`, `\w*?`)
		c.patterns = append(c.patterns, regexp.MustCompile(`(?i)(`+Delimiters+`)(`+body+`)(`+Delimiters+`)`))
	}
	return c
}

// Censor applies every banned word to text in order. With a replacement,
// each whole-word occurrence is swapped for it; without one, the word is
// overwritten with MaskChar, one per byte. The result is trimmed.
//
// Two occurrences separated by a single delimiter share that delimiter, and
// only the first of them is matched in one pass.
func (c *Censorer) Censor(text string) string {
	padded := " " + text + " "
	for _, re := range c.patterns {
		if c.replacement != "" {
			padded = re.ReplaceAllString(padded, "${1}"+strings.ReplaceAll(c.replacement, "$", "$$")+"${3}")
			continue
		}
		padded = mask(padded, re)
	}
	return textutil.Trim(padded)
}

// mask copies text into a new buffer, overwriting the word group of every
// match with MaskChar.
func mask(text string, re *regexp.Regexp) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, m := range matches {
		start, end := m[4], m[5]
		b.WriteString(text[prev:start])
		b.WriteString(strings.Repeat(string(MaskChar), end-start))
		prev = end
	}
	b.WriteString(text[prev:])
	return b.String()
}

// Censor is a one-shot NewCensorer(banned, replacement).Censor(text). A nil
// banned list leaves text untouched.
func Censor(text string, banned []string, replacement string) string {
	if banned == nil {
		return text
	}
	return NewCensorer(banned, replacement).Censor(text)
}
