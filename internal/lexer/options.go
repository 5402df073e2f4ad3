package lexer

import (
	"cfront/internal/diag"
	"cfront/internal/trace"
)

// Options configures a Lexer. The zero value is ready to use.
type Options struct {
	// Path is recorded in diagnostics; empty for in-memory sources.
	Path string
	// Reporter additionally receives the failure diagnostic, if any.
	// Может быть nil — тогда диагностика только возвращается из Tokenize.
	Reporter diag.Reporter
	// Tracer records phase spans and, at LevelDebug, one event per token.
	Tracer trace.Tracer
	// ParentSpan is the span the normalize and scan phases nest under (0 = root).
	ParentSpan uint64
	// Normalize replaces the default normalize.Apply. It is called exactly
	// once per Tokenize.
	Normalize func(string) string
}

func (lx *Lexer) report(d *diag.Diagnostic) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(d)
	}
}

func (lx *Lexer) tracer() trace.Tracer {
	if lx.opts.Tracer == nil {
		return trace.Nop
	}
	return lx.opts.Tracer
}
