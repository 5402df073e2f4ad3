package main

import (
	"fmt"
	"io"

	"cfront/internal/driver"
	"cfront/internal/observ"
)

// printBatchTimings sums per-file phase timings and prints them when
// --timings is on.
func printBatchTimings(out io.Writer, st *settings, batch *driver.BatchResult) {
	if out == nil || !st.timings || batch == nil {
		return
	}
	reports := make([]observ.Report, 0, len(batch.Results))
	cached := 0
	for _, r := range batch.Results {
		if r == nil || r.Timing == nil {
			continue
		}
		reports = append(reports, *r.Timing)
		if r.Cached {
			cached++
		}
	}
	merged := observ.Merge(reports...)
	fmt.Fprintf(out, "%d files, %d from cache\n", len(batch.Results), cached)
	fmt.Fprint(out, merged.Summary())
}
