// Package fs loads the text that the command line tool transforms.
package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	sniffSize = 4096
	// maxControlPercent is the share of control bytes above which a sample
	// is treated as binary.
	maxControlPercent = 30

	// MaxInputSize caps how much input is read; text filters are meant for
	// display-sized content, not bulk data.
	MaxInputSize = 16 << 20
)

// ErrBinaryInput is returned when the input does not look like text.
var ErrBinaryInput = errors.New("input looks like binary data")

// ErrInputTooLarge is returned when the input exceeds MaxInputSize.
var ErrInputTooLarge = errors.New("input exceeds maximum size")

var byteOrderMarks = [][]byte{
	{0xEF, 0xBB, 0xBF},
	{0xFF, 0xFE},
	{0xFE, 0xFF},
}

// Archives, media and executables; sniffing them is pointless.
var binaryExtensions = map[string]struct{}{
	".7z": {}, ".bin": {}, ".bz2": {}, ".exe": {}, ".gif": {}, ".gz": {},
	".jpeg": {}, ".jpg": {}, ".mp3": {}, ".mp4": {}, ".pdf": {}, ".png": {},
	".so": {}, ".tar": {}, ".wasm": {}, ".xz": {}, ".zip": {},
}

// ReadText reads name ("-" or "" meaning stdin), rejects binary input and
// returns the content as text. See DecodeText for the conversion applied.
func ReadText(name string, stdin io.Reader) (string, error) {
	src := stdin
	if name == "" || name == "-" {
		name = ""
	} else {
		f, err := os.Open(name)
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		src = f
	}

	content, err := io.ReadAll(io.LimitReader(src, MaxInputSize+1))
	switch {
	case err != nil:
		return "", fmt.Errorf("read input: %w", err)
	case len(content) > MaxInputSize:
		return "", ErrInputTooLarge
	case !LooksLikeText(name, content):
		return "", ErrBinaryInput
	}
	return DecodeText(content), nil
}

// LooksLikeText reports whether content is worth transforming as text. A
// byte order mark always means text and a NUL byte never does. Bytes above
// 0x7F count as text even when they are not valid UTF-8, so legacy 8-bit
// input is accepted. When name is given, well-known binary extensions are
// rejected without looking at content.
func LooksLikeText(name string, content []byte) bool {
	if name != "" {
		if _, ok := binaryExtensions[strings.ToLower(filepath.Ext(name))]; ok {
			return false
		}
	}
	if hasByteOrderMark(content) {
		return true
	}

	sample := content[:min(len(content), sniffSize)]
	if len(sample) == 0 {
		return true
	}
	if bytes.IndexByte(sample, 0) >= 0 {
		return false
	}

	controls := 0
	for _, b := range sample {
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' || b == 0x7F {
			controls++
		}
	}
	return controls*100/len(sample) < maxControlPercent
}

func hasByteOrderMark(content []byte) bool {
	for _, bom := range byteOrderMarks {
		if bytes.HasPrefix(content, bom) {
			return true
		}
	}
	return false
}

// DecodeText converts content that starts with a UTF-8 or UTF-16 byte order
// mark to UTF-8 without the mark. Anything else is returned byte for byte,
// invalid UTF-8 included.
func DecodeText(content []byte) string {
	if !hasByteOrderMark(content) {
		return string(content)
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), content)
	if err != nil {
		return string(content)
	}
	return string(out)
}
