package driver

import "cfront/internal/source"

// Options configures single-file and batch tokenization.
// The tracer is taken from the context (trace.WithTracer).
type Options struct {
	// Encoding of the files on disk; the zero value is UTF-8.
	Encoding source.Encoding
	// Jobs limits parallel workers in TokenizeFiles; <= 0 means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics bounds the batch Bag; <= 0 means unbounded.
	MaxDiagnostics int
	// Cache, if set, serves and stores token streams of clean files.
	Cache *DiskCache
	// Progress receives per-file events.
	Progress ProgressSink
	// Timings records per-phase durations into TokenizeResult.Timing.
	Timings bool
}
