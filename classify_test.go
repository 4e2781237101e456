package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSpaceRune(t *testing.T) {
	for _, r := range " \t\n\r\v\f  " {
		assert.Truef(t, isSpaceRune(r), "%q should separate words", r)
	}
	for _, r := range "aZ0_-é世" {
		assert.Falsef(t, isSpaceRune(r), "%q should not separate words", r)
	}
}

func TestUTF8SequenceLength(t *testing.T) {
	tests := []struct {
		lead byte
		n    int
		ok   bool
	}{
		{0x00, 1, true},
		{'a', 1, true},
		{0x7F, 1, true},
		{0x80, 0, false}, // continuation byte
		{0xBF, 0, false},
		{0xC2, 2, true},
		{0xDF, 2, true},
		{0xE0, 3, true},
		{0xEF, 3, true},
		{0xF0, 4, true},
		{0xF4, 4, true},
		{0xF5, 0, false},
		{0xFF, 0, false},
	}
	for _, tt := range tests {
		n, ok := utf8SequenceLength(tt.lead)
		assert.Equalf(t, tt.ok, ok, "lead byte 0x%02X", tt.lead)
		assert.Equalf(t, tt.n, n, "lead byte 0x%02X", tt.lead)
	}
}
