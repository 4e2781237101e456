package main

import "bytes"

// lineScanner partitions successive byte chunks into lines terminated
// by '\n'. A partial line at the end of one chunk is carried over and
// completed by the next, so callers can feed read buffers split at any
// offset and see exactly the lines a single whole-file pass would
// produce. '\r' is not special.
type lineScanner struct {
	carry []byte
}

// split invokes fn once per line completed inside chunk, terminator
// excluded. The tail carried from the previous chunk is prepended to
// the first line. The line slice is only valid during the call.
func (s *lineScanner) split(chunk []byte, fn func(line []byte)) {
	for {
		i := bytes.IndexByte(chunk, '\n')
		if i < 0 {
			break
		}
		line := chunk[:i]
		if len(s.carry) > 0 {
			s.carry = append(s.carry, line...)
			line = s.carry
		}
		fn(line)
		s.carry = s.carry[:0]
		chunk = chunk[i+1:]
	}
	s.carry = append(s.carry, chunk...)
}

// tail returns the unterminated final line once the stream is
// exhausted. Empty when the input ended with a terminator.
func (s *lineScanner) tail() []byte {
	return s.carry
}
