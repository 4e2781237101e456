package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
)

// renderReports produces the wc-style report: one right-aligned row per
// successful input in input order, and a total row when more than one
// input was requested. Columns always appear in the order lines, words,
// chars, bytes, max line length. Failed inputs get no numeric row; they
// are reported on stderr by the caller.
func renderReports(reports []FileReport, total ScanResult, m Metrics) string {
	width := numberWidth(reports, total, m, len(reports) > 1)

	var b strings.Builder
	for _, rep := range reports {
		if rep.Err != nil {
			continue
		}
		writeCounts(&b, rep.Result, m, width, rep.Name)
	}
	if len(reports) > 1 {
		writeCounts(&b, total, m, width, "total")
	}
	return b.String()
}

// numberWidth finds the column width that fits every value to be
// printed, so rows stay aligned like the reference tool's output.
func numberWidth(reports []FileReport, total ScanResult, m Metrics, withTotal bool) int {
	width := 1
	consider := func(r ScanResult) {
		for _, v := range selectedValues(r, m) {
			if n := len(strconv.FormatUint(v, 10)); n > width {
				width = n
			}
		}
	}
	for _, rep := range reports {
		if rep.Err == nil {
			consider(rep.Result)
		}
	}
	if withTotal {
		consider(total)
	}
	return width
}

// selectedValues returns the requested counts in display order.
func selectedValues(r ScanResult, m Metrics) []uint64 {
	vals := make([]uint64, 0, 5)
	if m.Lines {
		vals = append(vals, r.Lines)
	}
	if m.Words {
		vals = append(vals, r.Words)
	}
	if m.Chars {
		vals = append(vals, r.Chars)
	}
	if m.Bytes {
		vals = append(vals, r.Bytes)
	}
	if m.MaxLineLength {
		vals = append(vals, r.MaxLineLength)
	}
	return vals
}

func writeCounts(b *strings.Builder, r ScanResult, m Metrics, width int, name string) {
	sep := ""
	for _, v := range selectedValues(r, m) {
		fmt.Fprintf(b, "%s%*d", sep, width, v)
		sep = " "
	}
	if name != "" {
		fmt.Fprintf(b, " %s", name)
	}
	b.WriteByte('\n')
}

// emit delivers the rendered report to the configured sink: a file, the
// clipboard, or stdout.
func emit(report string) error {
	switch {
	case outputFile != "":
		if err := os.WriteFile(outputFile, []byte(report), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outputFile, err)
		}
	case copyToClipboard:
		if err := clipboard.WriteAll(report); err != nil {
			return fmt.Errorf("writing to clipboard: %w", err)
		}
	default:
		fmt.Print(report)
	}
	return nil
}
