// Package entity converts between raw high-order bytes and decimal numeric
// character references (&#N;).
//
// The codec targets the one, two and three byte UTF-8 forms. Malformed input
// is never rejected: truncated sequences are flushed as best-effort entities
// so the output always reflects every input byte.
package entity

import (
	"regexp"
	"strconv"
	"strings"
)

// byteRun is a multi-byte sequence being assembled by Encode.
type byteRun struct {
	ordinals []int
	want     int
}

func (r *byteRun) reset() {
	r.ordinals = r.ordinals[:0]
	r.want = 1
}

// codepoint applies the UTF-8 continuation arithmetic to a complete run.
func (r *byteRun) codepoint() int {
	o := r.ordinals
	if r.want == 3 {
		return (o[0]%16)*4096 + (o[1]%64)*64 + o[2]%64
	}
	return (o[0]%32)*64 + o[1]%64
}

// Encode converts every byte >= 128 in src into numeric entities. Complete
// two and three byte sequences become a single &#N; holding the decoded code
// point; ASCII bytes are copied through.
//
// Incomplete sequences are handled leniently: a single pending byte
// interrupted by ASCII is emitted as its own entity, while a longer run waits
// for more high bytes. A run still pending at the end of input is emitted
// after everything else as its raw ordinals joined by ';' (for example
// "&#226;130;").
func Encode(src []byte) string {
	var b strings.Builder
	b.Grow(len(src))

	run := byteRun{ordinals: make([]int, 0, 3), want: 1}
	for _, c := range src {
		ordinal := int(c)
		if ordinal < 128 {
			if len(run.ordinals) == 1 {
				writeEntity(&b, run.ordinals[0])
				run.reset()
			}
			b.WriteByte(c)
			continue
		}

		if len(run.ordinals) == 0 {
			run.want = 2
			if ordinal >= 224 {
				run.want = 3
			}
		}
		run.ordinals = append(run.ordinals, ordinal)

		if len(run.ordinals) == run.want {
			writeEntity(&b, run.codepoint())
			run.reset()
		}
	}

	if len(run.ordinals) > 0 {
		b.WriteString("&#")
		for j, o := range run.ordinals {
			if j > 0 {
				b.WriteByte(';')
			}
			b.WriteString(strconv.Itoa(o))
		}
		b.WriteByte(';')
	}
	return b.String()
}

// EncodeString is Encode for string input.
func EncodeString(src string) string {
	return Encode([]byte(src))
}

func writeEntity(b *strings.Builder, n int) {
	b.WriteString("&#")
	b.WriteString(strconv.Itoa(n))
	b.WriteByte(';')
}

var numericEntity = regexp.MustCompile(`&#(\d+);`)

// namedEntities are reversed, in this order, when Decode is asked for all
// entities. Each pair is applied over the whole string before the next, so
// "&amp;lt;" ends up as "<".
var namedEntities = [...][2]string{
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&apos;", "'"},
	{"&#45;", "-"},
}

// Decode replaces every decimal numeric entity with its UTF-8 byte sequence:
// one byte below 128, two below 2048, three otherwise. Values beyond the
// three byte range are truncated to bytes the same way, so they produce
// invalid output rather than an error. Entities whose digits overflow are
// left untouched.
//
// The entities found in src are replaced one distinct reference at a time
// over the whole text, so a reference produced by an earlier replacement
// ("&#38;#65;" becomes "&#65;") is decoded too when it matches a later one.
//
// When all is true the common named entities (&amp; &lt; &gt; &quot; &apos;)
// are reversed as well.
func Decode(src string, all bool) string {
	out := src
	if strings.Contains(src, "&#") {
		seen := make(map[string]struct{})
		for _, m := range numericEntity.FindAllStringSubmatch(src, -1) {
			ref := m[0]
			if _, ok := seen[ref]; ok {
				continue
			}
			seen[ref] = struct{}{}
			n, err := strconv.ParseUint(m[1], 10, 32)
			if err != nil {
				continue
			}
			out = strings.ReplaceAll(out, ref, string(encodeCodepoint(uint32(n))))
		}
	}

	if all {
		for _, pair := range namedEntities {
			out = strings.ReplaceAll(out, pair[0], pair[1])
		}
	}
	return out
}

func encodeCodepoint(n uint32) []byte {
	switch {
	case n < 128:
		return []byte{byte(n)}
	case n < 2048:
		return []byte{byte(192 + n/64), byte(128 + n%64)}
	default:
		return []byte{
			byte(224 + n/4096),
			byte(128 + (n%4096)/64),
			byte(128 + n%64),
		}
	}
}
