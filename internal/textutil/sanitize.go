package textutil

import "strings"

var formattingRuneLabels = map[rune]string{
	0x061C: "⟪ALM⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200D: "⟪ZWJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2028: "⟪LSEP⟫",
	0x2029: "⟪PSEP⟫",
	0x00AD: "⟪SHY⟫",
	0x2060: "⟪WJ⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0xFEFF: "⟪BOM⟫",
}

// SanitizeLine prepares a single line of processed text for drawing on a
// terminal: tabs are expanded, control characters become '?', and bidi or
// zero-width formatting runes are replaced by visible labels so they cannot
// reorder or hide the surrounding text.
func SanitizeLine(line string, tabWidth int) string {
	line = ExpandTabs(line, tabWidth)
	if !needsSanitizing(line) {
		return line
	}

	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if label, ok := formattingRuneLabels[r]; ok {
			b.WriteString(label)
			continue
		}
		if isControl(r) {
			b.WriteByte('?')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func needsSanitizing(line string) bool {
	for _, r := range line {
		if isControl(r) {
			return true
		}
		if _, ok := formattingRuneLabels[r]; ok {
			return true
		}
	}
	return false
}

func isControl(r rune) bool {
	return (r >= 0 && r < 0x20) || r == 0x7f
}
