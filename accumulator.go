package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// accumulator carries the per-file counting state while a scan is in
// flight. One accumulator belongs to exactly one counting pass; nothing
// shares it.
//
// Words, chars, and line width are all derived from the same decoded
// rune, so they share a single pass over each line. Decoding failures
// latch into err: the first invalid sequence stops the decode-dependent
// metrics while line tallying continues, keeping the raw counts whole.
type accumulator struct {
	metrics   Metrics
	graphemes bool // count chars as grapheme clusters instead of codepoints
	stripCR   bool // drop one trailing '\r' per line before decoding

	lines   uint64
	words   uint64
	chars   uint64
	maxLine uint64
	err     error
}

// line processes one completed line, terminator excluded. The
// terminator counts toward the line total and the char count.
func (a *accumulator) line(b []byte) {
	a.lines++
	a.scan(b, true)
}

// tail processes the trailing fragment of a stream that ended without a
// terminator. Words, chars, and width are counted; the line count is
// not incremented, matching the reference tool.
func (a *accumulator) tail(b []byte) {
	if len(b) > 0 {
		a.scan(b, false)
	}
}

func (a *accumulator) scan(b []byte, terminated bool) {
	if a.err != nil {
		return
	}
	if a.stripCR && len(b) > 0 && b[len(b)-1] == '\r' {
		b = b[:len(b)-1]
	}

	var width uint64
	inWord := false
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			if _, ok := utf8SequenceLength(b[i]); !ok {
				a.err = fmt.Errorf("byte 0x%02X at line offset %d: %w", b[i], i, ErrInvalidEncoding)
			} else {
				a.err = fmt.Errorf("truncated or malformed sequence at line offset %d: %w", i, ErrInvalidEncoding)
			}
			return
		}
		width++
		if a.metrics.Words {
			if isSpaceRune(r) {
				inWord = false
			} else if !inWord {
				a.words++
				inWord = true
			}
		}
		i += size
	}

	if a.metrics.Chars {
		if a.graphemes {
			// The terminator joins the cluster pass: "\r\n" is a
			// single grapheme, so counting the '\n' separately would
			// overcount CRLF lines.
			s := string(b)
			if terminated {
				s += "\n"
			}
			a.chars += uint64(uniseg.GraphemeClusterCount(s))
		} else {
			a.chars += width
			if terminated {
				a.chars++
			}
		}
	}
	// Ties keep the first maximum; a later equal line changes nothing.
	if a.metrics.MaxLineLength && width > a.maxLine {
		a.maxLine = width
	}
}
