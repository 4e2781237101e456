package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// defaultBufferSize is the read chunk size. 64 KiB is where the other
// wc ports settle; anything smaller mostly buys syscall overhead.
const defaultBufferSize = 64 * 1024

// scanConfig carries the tunables for a single counting pass.
type scanConfig struct {
	bufferSize int
	graphemes  bool
	stripCR    bool
}

func (c scanConfig) normalized() scanConfig {
	if c.bufferSize < 1 {
		c.bufferSize = defaultBufferSize
	}
	return c
}

// countFile counts one filesystem path. When only the byte count is
// requested for a regular file the size comes straight from the file
// metadata and the content is never read.
func countFile(path string, m Metrics, cfg scanConfig) (ScanResult, error) {
	if m.Bytes && !m.Lines && !m.NeedsDecode() {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return ScanResult{Bytes: uint64(info.Size())}, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return ScanResult{}, err
	}
	defer f.Close()
	return countReader(f, m, cfg)
}

// countReader streams source in fixed-size chunks and produces the
// requested counts. Byte and line counting works on raw bytes; any
// other metric routes each completed line through one UTF-8 decode
// pass. When decoding fails the rest of the stream is still drained
// raw, so the byte and line counts cover the whole input and are
// returned alongside the error.
func countReader(source io.Reader, m Metrics, cfg scanConfig) (ScanResult, error) {
	cfg = cfg.normalized()
	buf := make([]byte, cfg.bufferSize)
	var res ScanResult

	// Fast path: no decoding, no per-line buffer. Succeeds on files
	// with invalid UTF-8 since it never looks past the byte values.
	if !m.NeedsDecode() {
		for {
			n, err := source.Read(buf)
			if m.Bytes {
				res.Bytes += uint64(n)
			}
			if m.Lines {
				res.Lines += uint64(bytes.Count(buf[:n], lineTerminator))
			}
			if err == io.EOF {
				return res, nil
			}
			if err != nil {
				return res, fmt.Errorf("read: %w", err)
			}
		}
	}

	sc := &lineScanner{}
	acc := &accumulator{metrics: m, graphemes: cfg.graphemes, stripCR: cfg.stripCR}
	var bytesRead uint64

	for {
		n, err := source.Read(buf)
		bytesRead += uint64(n)
		sc.split(buf[:n], acc.line)
		if err == io.EOF {
			break
		}
		if err != nil {
			fillRaw(&res, m, bytesRead, acc.lines)
			return res, fmt.Errorf("read: %w", err)
		}
	}
	acc.tail(sc.tail())

	fillRaw(&res, m, bytesRead, acc.lines)
	if acc.err != nil {
		return res, acc.err
	}
	if m.Words {
		res.Words = acc.words
	}
	if m.Chars {
		res.Chars = acc.chars
	}
	if m.MaxLineLength {
		res.MaxLineLength = acc.maxLine
	}
	return res, nil
}

// fillRaw copies the raw-countable metrics into res, honoring the
// request so unrequested fields stay zero.
func fillRaw(res *ScanResult, m Metrics, bytesRead, lines uint64) {
	if m.Bytes {
		res.Bytes = bytesRead
	}
	if m.Lines {
		res.Lines = lines
	}
}

var lineTerminator = []byte{'\n'}
