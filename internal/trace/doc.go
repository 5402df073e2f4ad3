// Package trace is the structured event log of cfront.
//
// Driver code and the scanner emit begin/end spans and point events instead
// of free-form log lines. A disabled tracer costs one interface call.
//
// # Usage
//
//	cfront tokenize --trace=- --trace-level=detail src/
//
// # Implementations
//
//   - Nop: default, drops everything
//   - StreamTracer: writes each event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events in memory for post-mortem dumps
//   - MultiTracer: fan-out
//
// # Levels and scopes
//
// Scope says how fine-grained an event is: Driver (a CLI command), Phase
// (normalize, scan, render), File (one source file in a batch), Token (one
// emitted token). Level picks the finest scope that is still recorded:
// LevelPhase keeps Driver+Phase, LevelDetail adds File, LevelDebug keeps
// everything.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePhase, "scan", 0)
//	defer span.End("")
package trace
