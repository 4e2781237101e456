package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectLines(chunks ...[]byte) ([]string, string) {
	sc := &lineScanner{}
	var lines []string
	for _, c := range chunks {
		sc.split(c, func(line []byte) {
			lines = append(lines, string(line))
		})
	}
	return lines, string(sc.tail())
}

func TestLineScannerSingleChunk(t *testing.T) {
	lines, tail := collectLines([]byte("one\ntwo\n\nthree"))
	assert.Equal(t, []string{"one", "two", ""}, lines)
	assert.Equal(t, "three", tail)
}

func TestLineScannerNoTerminator(t *testing.T) {
	lines, tail := collectLines([]byte("no newline here"))
	assert.Empty(t, lines)
	assert.Equal(t, "no newline here", tail)
}

func TestLineScannerTrailingTerminator(t *testing.T) {
	lines, tail := collectLines([]byte("done\n"))
	assert.Equal(t, []string{"done"}, lines)
	assert.Empty(t, tail)
}

func TestLineScannerCarryAcrossChunks(t *testing.T) {
	lines, tail := collectLines([]byte("he"), []byte("llo\nwo"), []byte("rld"))
	assert.Equal(t, []string{"hello"}, lines)
	assert.Equal(t, "world", tail)
}

func TestLineScannerTerminatorAtChunkBoundary(t *testing.T) {
	lines, tail := collectLines([]byte("abc\n"), []byte("def\n"))
	assert.Equal(t, []string{"abc", "def"}, lines)
	assert.Empty(t, tail)
}

// Splitting the input at any byte offset must yield the same lines as a
// single whole-input pass.
func TestLineScannerSplitAtEveryOffset(t *testing.T) {
	input := "alpha\nbeta gamma\n\ndélta"
	want := []string{"alpha", "beta gamma", ""}

	for cut := 0; cut <= len(input); cut++ {
		lines, tail := collectLines([]byte(input[:cut]), []byte(input[cut:]))
		assert.Equalf(t, want, lines, "cut at offset %d", cut)
		assert.Equalf(t, "délta", tail, "cut at offset %d", cut)
	}
}

func TestLineScannerEmptyChunks(t *testing.T) {
	lines, tail := collectLines([]byte(""), []byte("a\n"), []byte(""))
	assert.Equal(t, []string{"a"}, lines)
	assert.Empty(t, tail)
}
