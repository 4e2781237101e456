package main

import (
	"errors"
	"unicode"
)

// ErrInvalidEncoding reports a byte sequence that is not valid UTF-8.
// The raw byte/line fast path never decodes and therefore never
// produces it.
var ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

// isSpaceRune reports whether r separates words. Word boundaries follow
// Unicode whitespace: space, tab, newline, carriage return, vertical
// tab, form feed, and the non-ASCII space characters.
func isSpaceRune(r rune) bool {
	return unicode.IsSpace(r)
}

// utf8SequenceLength returns the byte length of the UTF-8 sequence
// started by lead, or ok=false when lead can never start a valid
// sequence (continuation bytes and values above 0xF4).
func utf8SequenceLength(lead byte) (int, bool) {
	switch {
	case lead < 0x80:
		return 1, true
	case lead < 0xC0:
		return 0, false
	case lead < 0xE0:
		return 2, true
	case lead < 0xF0:
		return 3, true
	case lead < 0xF5:
		return 4, true
	default:
		return 0, false
	}
}
