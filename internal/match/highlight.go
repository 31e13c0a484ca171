package match

import (
	"regexp"
	"sort"
	"strings"

	"github.com/kk-code-lab/textproc/internal/accent"
)

const (
	DefaultOpenTag  = "<mark>"
	DefaultCloseTag = "</mark>"
)

// KeywordSeparator splits a multi-word keyword search.
const KeywordSeparator = "%"

// HighlightPhrase wraps every case-insensitive occurrence of phrase in
// openTag and closeTag, keeping the original case of the matched text.
func HighlightPhrase(text, phrase, openTag, closeTag string) string {
	if text == "" || phrase == "" {
		return text
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase))
	return re.ReplaceAllStringFunc(text, func(m string) string {
		return openTag + m + closeTag
	})
}

// HighlightKeyword is HighlightKeywordWith using the built-in accent table.
func HighlightKeyword(text, keyword, openTag, closeTag string) string {
	return HighlightKeywordWith(accent.Default(), text, keyword, openTag, closeTag)
}

// HighlightKeywordWith highlights keyword in text ignoring accents and case.
//
// A keyword found verbatim is handed to HighlightPhrase. Otherwise it is
// split on KeywordSeparator and each part is folded with table and searched
// in a folded copy of text; the original text at every hit is wrapped in the
// tags. Hits that overlap an earlier hit, or text that is already wrapped
// in the tags, are skipped.
func HighlightKeywordWith(table *accent.Table, text, keyword, openTag, closeTag string) string {
	if text == "" || keyword == "" {
		return text
	}
	if strings.Contains(text, keyword) {
		return HighlightPhrase(text, keyword, openTag, closeTag)
	}

	folded, index := table.FoldIndexed(text)
	var hits []accent.Span
	for _, token := range strings.Split(keyword, KeywordSeparator) {
		needle := table.Fold(strings.TrimSpace(token))
		if needle == "" {
			continue
		}
		for from := 0; from < len(folded); {
			at := strings.Index(folded[from:], needle)
			if at < 0 {
				break
			}
			start := from + at
			end := start + len(needle)
			hits = append(hits, accent.Span{Start: index[start].Start, End: index[end-1].End})
			from = end
		}
	}
	if len(hits) == 0 {
		return text
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Start < hits[j].Start })
	hits = acceptSpans(hits, taggedRegions(text, openTag, closeTag))

	var b strings.Builder
	b.Grow(len(text) + len(hits)*(len(openTag)+len(closeTag)))
	prev := 0
	for _, h := range hits {
		b.WriteString(text[prev:h.Start])
		b.WriteString(openTag)
		b.WriteString(text[h.Start:h.End])
		b.WriteString(closeTag)
		prev = h.End
	}
	b.WriteString(text[prev:])
	return b.String()
}

// taggedRegions returns the stretches of text already enclosed in the tags,
// from each opening tag through its closing tag.
func taggedRegions(text, openTag, closeTag string) []accent.Span {
	if openTag == "" {
		return nil
	}
	var spans []accent.Span
	for from := 0; from < len(text); {
		at := strings.Index(text[from:], openTag)
		if at < 0 {
			break
		}
		start := from + at
		end := start + len(openTag)
		if closeTag != "" {
			if c := strings.Index(text[end:], closeTag); c >= 0 {
				end += c + len(closeTag)
			}
		}
		spans = append(spans, accent.Span{Start: start, End: end})
		from = end
	}
	return spans
}

// acceptSpans keeps the hits that overlap neither an earlier kept hit nor a
// blocked span, in one pass. Both slices are sorted by Start and blocked
// spans do not overlap each other.
func acceptSpans(hits, blocked []accent.Span) []accent.Span {
	if len(hits) == 0 {
		return nil
	}
	kept := make([]accent.Span, 0, len(hits))
	prevEnd, b := 0, 0
	for _, h := range hits {
		if h.Start < prevEnd {
			continue
		}
		for b < len(blocked) && blocked[b].End <= h.Start {
			b++
		}
		if b < len(blocked) && blocked[b].Start < h.End {
			continue
		}
		kept = append(kept, h)
		prevEnd = h.End
	}
	return kept
}
