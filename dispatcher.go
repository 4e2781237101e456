package main

import (
	"os"
	"runtime"
	"sync"

	log "github.com/sirupsen/logrus"
)

// runScans counts every request and returns one report per input, in
// input order, plus the fold of all successful results. Standard input
// is always counted synchronously on the calling goroutine; file
// requests run the same way when there is at most one of them, and fan
// out over a bounded worker pool otherwise.
func runScans(requests []ScanRequest, workers int, cfg scanConfig) ([]FileReport, ScanResult) {
	reports := make([]FileReport, len(requests))

	// Stdin requests never reach the pool: the stream has one cursor,
	// and two workers reading it concurrently would interleave chunks
	// and split words between their accumulators. They run here,
	// sequentially, in input order; a repeated "-" operand reads
	// whatever the first one left, normally just EOF.
	var files []ScanRequest
	for _, req := range requests {
		if req.Stdin {
			reports[req.Index] = scanOne(req, cfg)
		} else {
			files = append(files, req)
		}
	}

	if len(files) <= 1 || workers == 1 {
		for _, req := range files {
			reports[req.Index] = scanOne(req, cfg)
		}
	} else {
		if workers <= 0 {
			workers = runtime.NumCPU()
		}
		if workers > len(files) {
			workers = len(files)
		}
		log.Debugf("counting %d inputs on %d workers", len(files), workers)

		jobs := make(chan ScanRequest, len(files))
		results := make(chan FileReport, len(files))
		var wg sync.WaitGroup

		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for req := range jobs {
					results <- scanOne(req, cfg)
				}
			}()
		}

		for _, req := range files {
			jobs <- req
		}
		close(jobs)

		wg.Wait()
		close(results)

		// Reports land at their input index, so output stays in input
		// order no matter which worker finished first.
		for rep := range results {
			reports[rep.Index] = rep
		}
	}

	// Single-threaded fold after all tasks have joined; a failed input
	// contributes nothing rather than zeros.
	var total ScanResult
	for _, rep := range reports {
		if rep.Err == nil {
			total.add(rep.Result)
		}
	}
	return reports, total
}

// scanOne runs one counting task to completion. Each task owns its read
// buffer and accumulator exclusively.
func scanOne(req ScanRequest, cfg scanConfig) FileReport {
	rep := FileReport{Index: req.Index, Name: req.Name}
	if req.Stdin {
		rep.Result, rep.Err = countReader(os.Stdin, req.Metrics, cfg)
	} else {
		log.Debugf("counting %s", req.Path)
		rep.Result, rep.Err = countFile(req.Path, req.Metrics, cfg)
	}
	return rep
}
