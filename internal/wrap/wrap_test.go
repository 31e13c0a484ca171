package wrap

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "The quick brown fox jumps over the lazy dog and keeps running through " +
	"the meadow until the evening light fades behind the distant hills."

func TestWrapBreaksAtSpaces(t *testing.T) {
	got := Wrap("The quick brown fox jumps over the lazy dog", 10)
	assert.Equal(t, "The quick\nbrown fox\njumps over\nthe lazy\ndog", got)
}

func TestWrapDefaultsInvalidWidth(t *testing.T) {
	for _, width := range []int{0, -3} {
		assert.Equal(t, Wrap(sample, DefaultWidth), Wrap(sample, width))
	}
	lines := strings.Split(Wrap(sample, 0), "\n")
	require.Len(t, lines, 2)
	assert.LessOrEqual(t, utf8.RuneCountInString(lines[0]), DefaultWidth)
}

func TestWrapNormalizesSpacesAndNewlines(t *testing.T) {
	got := Wrap("one   two\r\nthree\rfour", 76)
	assert.Equal(t, "one two\nthree\nfour", got)
}

func TestWrapHardSplitsLongWords(t *testing.T) {
	got := Wrap("abcdefghijklmnopqrstuvwxyz end", 10)
	assert.Equal(t, "abcdefghi\njklmnopqr\nstuvwxyz\nend", got)
}

func TestWrapLeavesURLsWhole(t *testing.T) {
	urls := []string{
		"https://example.com/a/very/long/path/that/exceeds/the/limit",
		"www.example.com/another-very-long-path-name",
		"[url=http]averyveryverylongbbcodeurl[/url]",
	}
	for _, u := range urls {
		got := Wrap("see "+u, 12)
		assert.Equal(t, "see\n"+u, got)
	}
}

func TestWrapKeepsProtectedSpans(t *testing.T) {
	protected := "do   not\r\ntouch  this   long line at all"
	text := "before {unwrap}" + protected + "{/unwrap} after and more words"

	for _, width := range []int{1, 5, 12, 40, 200} {
		got := Wrap(text, width)
		assert.Contains(t, got, protected, "width %d", width)
		assert.NotContains(t, got, "{unwrap}")
		assert.NotContains(t, got, "{{unwrapped")
	}
}

func TestWrapRestoresRepeatedSpansByPosition(t *testing.T) {
	got := Wrap("{unwrap}A  B{/unwrap} x {unwrap}C  D{/unwrap} y {unwrap}A  B{/unwrap}", 76)
	assert.Equal(t, "A  B x C  D y A  B", got)
}

func TestWrapCountsCodePoints(t *testing.T) {
	// 10 two-byte letters fit a 10 column line.
	word := strings.Repeat("é", 10)
	assert.Equal(t, word+"\n"+word, Wrap(word+" "+word, 10))
}

func TestWrapColumnsMeasuresCellWidth(t *testing.T) {
	got := WrapWith("日本語 日本語 日本語", Options{Width: 8, Columns: true})
	assert.Equal(t, "日本語\n日本語\n日本語", got)

	got = WrapWith("日本語日本語", Options{Width: 5, Columns: true})
	assert.Equal(t, "日本\n語日\n本語", got)
}

func TestWrapLineLengthBound(t *testing.T) {
	text := sample + " supercalifragilisticexpialidocious " + sample
	for width := 1; width <= 40; width++ {
		for _, line := range strings.Split(Wrap(text, width), "\n") {
			assert.LessOrEqual(t, utf8.RuneCountInString(line), width, "width %d line %q", width, line)
		}
	}
}

func TestWrapIsIdempotent(t *testing.T) {
	texts := []string{
		sample,
		"short",
		"line one\n\nline three with   extra spaces\n",
		"averyveryveryverylongwordwithoutanybreaks and then some text",
		"see https://example.com/a/very/long/path for details",
	}
	for _, text := range texts {
		for _, width := range []int{1, 2, 7, 20, 76} {
			once := Wrap(text, width)
			assert.Equal(t, once, Wrap(once, width), "width %d text %q", width, text)
		}
	}
}
