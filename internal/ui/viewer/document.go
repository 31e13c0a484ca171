package viewer

import "strings"

// Segment is a run of text on one line, drawn highlighted or not.
type Segment struct {
	Text      string
	Highlight bool
}

// Line is one display line.
type Line []Segment

// Document is the text shown by the viewer.
type Document struct {
	Lines []Line
}

// ParseMarked splits text into lines and turns regions enclosed in openTag
// and closeTag into highlighted segments. The tags are removed. A region may
// span several lines; an unterminated region runs to the end of the text.
// With an empty openTag nothing is highlighted.
func ParseMarked(text, openTag, closeTag string) Document {
	var doc Document
	for _, raw := range strings.Split(text, "\n") {
		doc.Lines = append(doc.Lines, Line{{Text: raw}})
	}
	if openTag == "" || closeTag == "" || !strings.Contains(text, openTag) {
		return doc
	}

	doc.Lines = doc.Lines[:0]
	highlight := false
	for _, raw := range strings.Split(text, "\n") {
		var line Line
		for raw != "" {
			tag := openTag
			if highlight {
				tag = closeTag
			}
			at := strings.Index(raw, tag)
			if at < 0 {
				line = appendSegment(line, raw, highlight)
				break
			}
			line = appendSegment(line, raw[:at], highlight)
			raw = raw[at+len(tag):]
			highlight = !highlight
		}
		doc.Lines = append(doc.Lines, line)
	}
	return doc
}

func appendSegment(line Line, text string, highlight bool) Line {
	if text == "" {
		return line
	}
	return append(line, Segment{Text: text, Highlight: highlight})
}

// PlainText returns the line without highlighting.
func (l Line) PlainText() string {
	var b strings.Builder
	for _, seg := range l {
		b.WriteString(seg.Text)
	}
	return b.String()
}
