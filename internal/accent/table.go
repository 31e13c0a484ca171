// Package accent transliterates accented and non-Latin letters to plain ASCII
// base sequences. The mapping ships as an embedded TOML resource that is
// parsed once, on first use, and never mutated afterwards.
package accent

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//go:embed foreign_chars.toml
var defaultTableSource string

// Table maps single code points to their transliteration. A Table is
// read-only once built and safe for concurrent use.
type Table struct {
	chars map[rune]string
}

type tableFile struct {
	Chars map[string]string `toml:"chars"`
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in table, parsing the embedded resource on first
// call. A malformed resource yields an empty table so that callers still get
// the mark-stripping fallback.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Load(strings.NewReader(defaultTableSource))
		if err != nil {
			t = &Table{chars: map[rune]string{}}
		}
		defaultTable = t
	})
	return defaultTable
}

// Load parses a TOML document with a [chars] table of "letter" = "base"
// pairs. Keys must be exactly one code point.
func Load(r io.Reader) (*Table, error) {
	var file tableFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode accent table: %w", err)
	}

	chars := make(map[rune]string, len(file.Chars))
	for key, value := range file.Chars {
		ru, size := utf8.DecodeRuneInString(key)
		if ru == utf8.RuneError || size != len(key) {
			return nil, fmt.Errorf("accent table key %q is not a single code point", key)
		}
		chars[ru] = value
	}
	return &Table{chars: chars}, nil
}

// Len reports the number of entries in the table.
func (t *Table) Len() int {
	return len(t.chars)
}

// Lookup returns the transliteration for ru, if the table has one.
func (t *Table) Lookup(ru rune) (string, bool) {
	s, ok := t.chars[ru]
	return s, ok
}

// Convert replaces every accented letter in text with its base sequence,
// keeping the letter case chosen by the table.
func (t *Table) Convert(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, ru := range text {
		b.WriteString(t.transliterate(ru))
	}
	return b.String()
}

// Fold transliterates and lower-cases text for accent-insensitive comparison.
func (t *Table) Fold(text string) string {
	folded, _ := t.FoldIndexed(text)
	return folded
}

// Span is a half-open byte range in the original (unfolded) text.
type Span struct {
	Start int
	End   int
}

// FoldIndexed folds text like Fold and additionally returns, for every byte
// of the folded result, the span of the original rune it was produced from.
// Folding can grow (ß -> ss) or shrink (ъ -> "") the text, so callers that
// match against the folded form use the index to map matches back.
func (t *Table) FoldIndexed(text string) (string, []Span) {
	var b strings.Builder
	b.Grow(len(text))
	index := make([]Span, 0, len(text))
	for i := 0; i < len(text); {
		ru, size := utf8.DecodeRuneInString(text[i:])
		piece := strings.ToLower(t.transliterate(ru))
		span := Span{Start: i, End: i + size}
		i += size
		b.WriteString(piece)
		for range len(piece) {
			index = append(index, span)
		}
	}
	return b.String(), index
}

func (t *Table) transliterate(ru rune) string {
	if ru < utf8.RuneSelf {
		return string(ru)
	}
	if s, ok := t.chars[ru]; ok {
		return s
	}
	return stripMarks(ru)
}

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		)
	},
}

// stripMarks drops combining diacritics from a rune that the table does not
// cover. Letters without a decomposition come back unchanged and a bare
// combining mark folds to nothing.
func stripMarks(ru rune) string {
	t := chainPool.Get().(transform.Transformer)
	defer func() {
		t.Reset()
		chainPool.Put(t)
	}()

	out, _, err := transform.String(t, string(ru))
	if err != nil {
		return string(ru)
	}
	return out
}
