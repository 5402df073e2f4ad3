// Package lexer turns C source text into preprocessing tokens.
//
// Tokenize normalizes the text once (trigraphs, then line splicing) and
// scans it left to right, one Unicode scalar at a time. The scan is
// all-or-nothing: the first unterminated character constant, string
// literal or header name aborts it with a *diag.Diagnostic and no tokens.
package lexer

import (
	"strconv"

	"cfront/internal/diag"
	"cfront/internal/normalize"
	"cfront/internal/source"
	"cfront/internal/token"
	"cfront/internal/trace"
)

type Lexer struct {
	raw    string
	opts   Options
	text   *source.Text // нормализованный буфер
	cursor Cursor
	tokens []token.Token

	traceTokens bool
	done        bool
	result      []token.Token
	err         error
}

// New creates a lexer over src. Nothing is scanned until Tokenize.
func New(src string, opts Options) *Lexer {
	return &Lexer{raw: src, opts: opts}
}

// Tokenize scans src with a fresh Lexer.
func Tokenize(src string, opts Options) ([]token.Token, error) {
	return New(src, opts).Tokenize()
}

// Tokenize runs normalization and the scan. On failure the error is a
// *diag.Diagnostic and the token slice is nil. Calling Tokenize again
// returns the first result.
func (lx *Lexer) Tokenize() ([]token.Token, error) {
	if lx.done {
		return lx.result, lx.err
	}
	lx.done = true
	t := lx.tracer()
	lx.traceTokens = t.Enabled() && t.Level() >= trace.LevelDebug

	normSpan := trace.Begin(t, trace.ScopePhase, "normalize", lx.opts.ParentSpan)
	normalized := lx.normalizer()(lx.raw)
	normSpan.End("")

	scanSpan := trace.Begin(t, trace.ScopePhase, "scan", lx.opts.ParentSpan)
	lx.text = source.NewText(normalized)
	lx.cursor = NewCursor(lx.text)
	lx.tokens = make([]token.Token, 0, lx.text.Len()/4)

	if d := lx.scan(); d != nil {
		lx.err = d
		lx.tokens = nil
		lx.report(d)
		trace.Failure(t, trace.ScopePhase, "scan", d.Error())
		scanSpan.End(d.Kind().ID())
		return nil, lx.err
	}

	lx.result = lx.tokens
	scanSpan.WithExtra("tokens", strconv.Itoa(len(lx.result))).End("ok")
	return lx.result, nil
}

// Source returns the normalized text the tokens' positions refer to.
// Empty before Tokenize.
func (lx *Lexer) Source() string {
	if lx.text == nil {
		return ""
	}
	return lx.text.String()
}

func (lx *Lexer) normalizer() func(string) string {
	if lx.opts.Normalize != nil {
		return lx.opts.Normalize
	}
	return normalize.Apply
}

// scan is the main loop; it stops at end of input or at the first failure.
func (lx *Lexer) scan() *diag.Diagnostic {
	for {
		r, ok := lx.cursor.Peek()
		if !ok {
			return nil
		}

		var d *diag.Diagnostic
		switch {
		case isNewline(r):
			// переводы строк значимы для директив — отдаём их токеном
			lx.emit(token.NewOther(lx.cursor.Pos, r))
			lx.cursor.Bump()

		case isBlank(r):
			lx.cursor.Bump()

		case lx.atHeaderName(r):
			d = lx.scanHeaderName()

		case r == '\'':
			d = lx.scanCharConst()

		case r == '"':
			d = lx.scanString()

		case isDigit(r):
			lx.scanNumber()

		case isIdentRune(r):
			lx.scanIdent()

		default:
			lx.scanSpecial()
		}
		if d != nil {
			return d
		}
	}
}

func (lx *Lexer) emit(tok token.Token) {
	lx.tokens = append(lx.tokens, tok)
	if lx.traceTokens {
		trace.Point(lx.tracer(), trace.ScopeToken, tok.Kind.String(), tok.Pos.String()+" "+strconv.Quote(tok.Lexeme()))
	}
}
