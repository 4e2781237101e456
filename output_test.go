package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderReportsDefaultMetrics(t *testing.T) {
	reports := []FileReport{
		{Index: 0, Name: "a.txt", Result: ScanResult{Lines: 1, Words: 2, Bytes: 12}},
		{Index: 1, Name: "b.txt", Result: ScanResult{Lines: 30, Words: 140, Bytes: 1024}},
	}
	var total ScanResult
	for _, rep := range reports {
		total.add(rep.Result)
	}

	got := renderReports(reports, total, defaultMetrics())
	want := "   1    2   12 a.txt\n" +
		"  30  140 1024 b.txt\n" +
		"  31  142 1036 total\n"
	assert.Equal(t, want, got)
}

func TestRenderReportsSingleFileNoTotal(t *testing.T) {
	reports := []FileReport{
		{Name: "only.txt", Result: ScanResult{Lines: 1, Words: 2, Bytes: 12}},
	}
	got := renderReports(reports, reports[0].Result, defaultMetrics())
	assert.Equal(t, " 1  2 12 only.txt\n", got)
}

func TestRenderReportsStdinHasNoName(t *testing.T) {
	reports := []FileReport{
		{Name: "", Result: ScanResult{Lines: 3, Words: 6, Bytes: 24}},
	}
	got := renderReports(reports, reports[0].Result, defaultMetrics())
	assert.Equal(t, " 3  6 24\n", got)
}

// Columns follow the fixed order lines, words, chars, bytes, max line
// length, independent of flag order.
func TestRenderReportsColumnOrder(t *testing.T) {
	m := allMetrics()
	reports := []FileReport{
		{Name: "f", Result: ScanResult{Lines: 1, Words: 2, Chars: 3, Bytes: 4, MaxLineLength: 5}},
	}
	got := renderReports(reports, reports[0].Result, m)
	assert.Equal(t, "1 2 3 4 5 f\n", got)
}

func TestRenderReportsSubsetMetrics(t *testing.T) {
	m := Metrics{Chars: true, MaxLineLength: true}
	reports := []FileReport{
		{Name: "f", Result: ScanResult{Chars: 90, MaxLineLength: 7}},
	}
	got := renderReports(reports, reports[0].Result, m)
	assert.Equal(t, "90  7 f\n", got)
}

// A failed input gets no numeric row but still triggers the total row,
// which folds only the successes.
func TestRenderReportsSkipsFailures(t *testing.T) {
	reports := []FileReport{
		{Index: 0, Name: "good.txt", Result: ScanResult{Lines: 5, Words: 10, Bytes: 50}},
		{Index: 1, Name: "bad.txt", Err: errors.New("permission denied")},
	}
	total := reports[0].Result

	got := renderReports(reports, total, defaultMetrics())
	want := " 5 10 50 good.txt\n" +
		" 5 10 50 total\n"
	assert.Equal(t, want, got)
}

func TestSelectedMetricsDefault(t *testing.T) {
	origLines, origWords, origBytes := countLines, countWords, countBytes
	t.Cleanup(func() { countLines, countWords, countBytes = origLines, origWords, origBytes })

	countLines, countWords, countBytes = false, false, false
	assert.Equal(t, defaultMetrics(), selectedMetrics())

	countLines = true
	assert.Equal(t, Metrics{Lines: true}, selectedMetrics())
}
