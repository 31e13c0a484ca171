package pipeline

import (
	"github.com/kk-code-lab/textproc/internal/accent"
	"github.com/kk-code-lab/textproc/internal/entity"
	"github.com/kk-code-lab/textproc/internal/match"
	"github.com/kk-code-lab/textproc/internal/truncate"
	"github.com/kk-code-lab/textproc/internal/wrap"
)

// StepFunc adapts a plain function to Step.
type StepFunc struct {
	Label string
	Fn    func(string) string
}

func (s StepFunc) Name() string             { return s.Label }
func (s StepFunc) Apply(text string) string { return s.Fn(text) }

// Encode converts high bytes to numeric entities.
func Encode() Step {
	return StepFunc{Label: "encode", Fn: entity.EncodeString}
}

// Decode converts numeric (and, with named, named) entities back to text.
func Decode(named bool) Step {
	return StepFunc{Label: "decode", Fn: func(s string) string { return entity.Decode(s, named) }}
}

// Wrap wraps text with the given options.
func Wrap(opts wrap.Options) Step {
	return StepFunc{Label: "wrap", Fn: func(s string) string { return wrap.WrapWith(s, opts) }}
}

// Censor masks or replaces the words. The word list is compiled once.
func Censor(words []string, replacement string) Step {
	c := match.NewCensorer(words, replacement)
	return StepFunc{Label: "censor", Fn: c.Censor}
}

// Highlight wraps every occurrence of phrase in the tags.
func Highlight(phrase, open, close string) Step {
	return StepFunc{Label: "highlight", Fn: func(s string) string {
		return match.HighlightPhrase(s, phrase, open, close)
	}}
}

// Keyword highlights keyword ignoring accents.
func Keyword(table *accent.Table, keyword, open, close string) Step {
	return StepFunc{Label: "keyword", Fn: func(s string) string {
		return match.HighlightKeywordWith(table, s, keyword, open, close)
	}}
}

// Transliterate replaces accented letters with their base letters.
func Transliterate(table *accent.Table) Step {
	return StepFunc{Label: "transliterate", Fn: table.Convert}
}

// Words limits text to n words.
func Words(n int, end string) Step {
	return StepFunc{Label: "words", Fn: func(s string) string { return truncate.Words(s, n, end).Text }}
}

// Characters limits text to about n characters.
func Characters(n int, end string) Step {
	return StepFunc{Label: "chars", Fn: func(s string) string { return truncate.Characters(s, n, end).Text }}
}

// Ellipsize keeps n characters around an ellipsis.
func Ellipsize(n int, position float64, ellipsis string) Step {
	return StepFunc{Label: "ellipsize", Fn: func(s string) string {
		return truncate.Ellipsize(s, n, position, ellipsis).Text
	}}
}
