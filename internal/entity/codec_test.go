package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"ascii passes through", []byte("plain text"), "plain text"},
		{"two byte sequence", []byte("é"), "&#233;"},
		{"three byte sequence", []byte("€5"), "&#8364;5"},
		{"mixed", []byte("Café – ok"), "Caf&#233; &#8211; ok"},
		{"single stray byte before ascii", []byte{0xC3, 'a'}, "&#195;a"},
		{"truncated three byte run at end", []byte{'x', 0xE2, 0x82}, "x&#226;130;"},
		{"lone high byte at end", []byte{'x', 0xC3}, "x&#195;"},
		{"pending run followed by ascii at end", []byte{0xE2, 0x82, 'a'}, "a&#226;130;"},
		{"pending run completed after ascii", []byte{0xE2, 0x82, 'a', 'b', 0xC3}, "ab&#8323;"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.in))
		})
	}
}

func TestEncodeKeepsTwoPendingBytesAcrossASCII(t *testing.T) {
	// Only a single pending byte is flushed by an ASCII byte; a run of two
	// waits for its third byte.
	got := Encode([]byte{0xE2, 0x82, '!', 0xAC})
	assert.Equal(t, "!&#8364;", got)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		all  bool
		want string
	}{
		{"two byte", "&#233;", true, "é"},
		{"three byte", "price &#8364;5", false, "price €5"},
		{"ascii ordinal", "&#65;&#66;", false, "AB"},
		{"repeated entities", "&#233;t&#233;", false, "été"},
		{"named entities kept", "a &amp; b", false, "a &amp; b"},
		{"named entities decoded", "&lt;b&gt; &quot;x&quot; &apos;y&apos; &amp;", true, `<b> "x" 'y' &`},
		{"hyphen entity", "a&#45;b", true, "a-b"},
		{"named entities applied in sequence", "&amp;lt;", true, "<"},
		{"malformed left alone", "&#x41; &#; &#12a;", true, "&#x41; &#; &#12a;"},
		{"reference produced by an earlier replacement", "&#38;#65; &#65;", false, "A A"},
		{"overflowing digits left alone", "&#99999999999999999999;", false, "&#99999999999999999999;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.in, tt.all))
		})
	}
}

func TestDecodeProducesUTF8Bytes(t *testing.T) {
	assert.Equal(t, []byte{0xC3, 0xA9}, []byte(Decode("&#233;", true)))
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"ascii only",
		"Tiếng Việt có dấu",
		"Grüße aus Köln",
		"日本語のテキスト",
		"€ £ ¥ © ® ™ — … «»",
		"mixed ascii\nand ünïcödé\tlines",
	}
	for _, in := range inputs {
		encoded := EncodeString(in)
		for i := 0; i < len(encoded); i++ {
			if encoded[i] >= 128 {
				t.Fatalf("Encode(%q) left a high byte in %q", in, encoded)
			}
		}
		assert.Equal(t, in, Decode(encoded, false), "round trip of %q", in)
	}
}
