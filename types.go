package main

// Metrics selects which counts a scan computes. The zero value selects
// nothing; use defaultMetrics for wc's default of lines, words, and bytes.
type Metrics struct {
	Lines         bool
	Words         bool
	Chars         bool
	Bytes         bool
	MaxLineLength bool
}

// defaultMetrics mirrors the reference tool's behavior when no count
// flag is given.
func defaultMetrics() Metrics {
	return Metrics{Lines: true, Words: true, Bytes: true}
}

// None reports whether no metric is selected.
func (m Metrics) None() bool {
	return !m.Lines && !m.Words && !m.Chars && !m.Bytes && !m.MaxLineLength
}

// NeedsDecode reports whether any selected metric requires UTF-8
// decoding. Bytes and lines are countable on raw bytes alone.
func (m Metrics) NeedsDecode() bool {
	return m.Words || m.Chars || m.MaxLineLength
}

// ScanRequest describes one input to count. Built once per input and
// never mutated afterwards.
type ScanRequest struct {
	Index   int    // position among the inputs, for ordered reporting
	Name    string // display name; "-" for explicit stdin, "" for implicit
	Path    string // filesystem path; empty when reading stdin
	Stdin   bool
	Metrics Metrics
}

// ScanResult holds the counts produced for one input. Only requested
// fields are populated; the rest stay zero.
type ScanResult struct {
	Lines         uint64
	Words         uint64
	Chars         uint64
	Bytes         uint64
	MaxLineLength uint64
}

// add folds other into r. Count metrics sum; the width metric keeps the
// maximum, matching the reference tool's total row. Both operations are
// commutative and associative, so the fold is independent of completion
// order.
func (r *ScanResult) add(other ScanResult) {
	r.Lines += other.Lines
	r.Words += other.Words
	r.Chars += other.Chars
	r.Bytes += other.Bytes
	if other.MaxLineLength > r.MaxLineLength {
		r.MaxLineLength = other.MaxLineLength
	}
}

// FileReport pairs a request with its outcome. Err set means the input
// is reported as a failure and excluded from the total; Result may
// still carry the raw byte and line counts accumulated before the
// failure.
type FileReport struct {
	Index  int
	Name   string
	Result ScanResult
	Err    error
}
