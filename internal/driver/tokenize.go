package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/afero"

	"cfront/internal/diag"
	"cfront/internal/lexer"
	"cfront/internal/observ"
	"cfront/internal/source"
	"cfront/internal/token"
	"cfront/internal/trace"
)

// TokenizeResult is the outcome for one file. Exactly one of Tokens
// (possibly empty), Diag or Err describes it.
type TokenizeResult struct {
	Path   string
	File   *source.File
	Tokens []token.Token
	// Diag — ошибка сканирования (незакрытый литерал и т.п.)
	Diag *diag.Diagnostic
	// Err — ошибка ввода-вывода или декодирования; заполняется только в пакетном режиме
	Err    error
	Cached bool
	Timing *observ.Report
}

// Failed reports whether the file produced no tokens.
func (r *TokenizeResult) Failed() bool {
	return r == nil || r.Diag != nil || r.Err != nil
}

// Tokenize loads path from fsys and tokenizes it. A scan failure is
// reported in the result's Diag; the error return is reserved for I/O
// and decoding problems.
func Tokenize(ctx context.Context, fsys afero.Fs, path string, opts Options) (*TokenizeResult, error) {
	res := tokenizeFile(ctx, source.NewFileSetFS(fsys), path, opts)
	if res.Err != nil {
		return nil, res.Err
	}
	return res, nil
}

// TokenizeString tokenizes in-memory text registered under name.
func TokenizeString(ctx context.Context, name, text string, opts Options) *TokenizeResult {
	fileSet := source.NewFileSetFS(afero.NewMemMapFs())
	file := fileSet.Get(fileSet.AddVirtual(name, []byte(text)))
	res := &TokenizeResult{Path: name, File: file}
	timer := observ.NewTimer()
	scanFile(ctx, res, timer, opts)
	if opts.Timings {
		report := timer.Report()
		res.Timing = &report
	}
	return res
}

func tokenizeFile(ctx context.Context, fileSet *source.FileSet, path string, opts Options) *TokenizeResult {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "tokenize_file", trace.ParentFromContext(ctx)).
		WithExtra("path", path)
	ctx = trace.WithParent(ctx, span)

	res := &TokenizeResult{Path: path}
	timer := observ.NewTimer()
	started := time.Now()

	emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})
	idx := timer.Begin("load")
	id, err := fileSet.LoadWithEncoding(path, opts.Encoding)
	timer.End(idx, "")
	if err != nil {
		res.Err = fmt.Errorf("load %s: %w", path, err)
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: res.Err, Elapsed: time.Since(started)})
		trace.Failure(tracer, trace.ScopeFile, "load", res.Err.Error())
		span.End("error")
		return res
	}
	res.File = fileSet.Get(id)

	if !lookupCache(ctx, res, timer, opts) {
		scanFile(ctx, res, timer, opts)
	}

	if opts.Timings {
		report := timer.Report()
		res.Timing = &report
	}

	status, detail := StatusDone, "ok"
	switch {
	case res.Diag != nil:
		status, detail = StatusError, res.Diag.Kind().ID()
	case res.Cached:
		status, detail = StatusCached, "cached"
	}
	var evErr error
	if res.Diag != nil {
		evErr = res.Diag
	}
	emit(opts.Progress, Event{File: path, Stage: StageScan, Status: status, Err: evErr, Elapsed: time.Since(started)})
	span.WithExtra("tokens", strconv.Itoa(len(res.Tokens))).End(detail)
	return res
}

func lookupCache(ctx context.Context, res *TokenizeResult, timer *observ.Timer, opts Options) bool {
	if opts.Cache == nil {
		return false
	}
	idx := timer.Begin("cache")
	toks, ok, err := opts.Cache.Get(cacheKey(res.File))
	if err != nil {
		// битый кэш не мешает сканированию
		trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache_miss", err.Error())
		ok = false
	}
	note := "miss"
	if ok {
		note = "hit"
		res.Tokens = toks
		res.Cached = true
	}
	timer.End(idx, note)
	return ok
}

func scanFile(ctx context.Context, res *TokenizeResult, timer *observ.Timer, opts Options) {
	tracer := trace.FromContext(ctx)
	emit(opts.Progress, Event{File: res.Path, Stage: StageScan, Status: StatusWorking})

	idx := timer.Begin("tokenize")
	toks, err := lexer.New(string(res.File.Content), lexer.Options{
		Path:       res.Path,
		Tracer:     tracer,
		ParentSpan: trace.ParentFromContext(ctx),
	}).Tokenize()
	timer.End(idx, strconv.Itoa(len(toks))+" tokens")

	if err != nil {
		var d *diag.Diagnostic
		if !errors.As(err, &d) {
			res.Err = err
			return
		}
		res.Diag = d
		return
	}
	res.Tokens = toks

	if opts.Cache != nil {
		if err := opts.Cache.Put(cacheKey(res.File), res.Path, toks); err != nil {
			trace.Failure(tracer, trace.ScopeFile, "cache_put", err.Error())
		}
	}
}
