package lexer

import (
	"cfront/internal/diag"
	"cfront/internal/source"
	"cfront/internal/token"
)

// scanCharConst scans 'c': exactly one scalar between the quotes.
// Escape sequences are not interpreted.
func (lx *Lexer) scanCharConst() *diag.Diagnostic {
	start := lx.cursor.Pos
	lx.cursor.Bump() // opening '\''

	value, ok := lx.cursor.Bump()
	if !ok {
		return lx.charConstEOF(start)
	}

	closeAt := lx.cursor.Pos
	r, ok := lx.cursor.Peek()
	if !ok {
		return lx.charConstEOF(start)
	}
	if r != '\'' {
		end := start.Column
		if closeAt.Line == start.Line {
			end = closeAt.Column
		}
		return lx.newFailure(diag.UnterminatedCharConstant, start).
			Message("invalid termination of character constant").
			Highlight(start.Column-1, end).
			HighlightMessage("expected ' after a single character").
			Build()
	}
	lx.cursor.Bump()
	lx.emit(token.NewCharConst(start, value))
	return nil
}

func (lx *Lexer) charConstEOF(start source.Position) *diag.Diagnostic {
	return lx.failAt(diag.UnterminatedCharConstant, start,
		"unexpected end of source in character constant",
		"character constant starts here")
}

// scanString scans "..." up to the next double quote. Escapes are not
// interpreted, so \" ends the literal.
func (lx *Lexer) scanString() *diag.Diagnostic {
	start := lx.cursor.Pos
	lx.cursor.Bump() // opening '"'

	body := lx.cursor.Mark()
	for {
		r, ok := lx.cursor.Peek()
		if !ok {
			return lx.failAt(diag.UnterminatedStringLiteral, start,
				"unexpected end of source in string literal",
				"string literal starts here")
		}
		if r == '"' {
			text := lx.cursor.TextFrom(body)
			lx.cursor.Bump()
			lx.emit(token.NewStringLit(start, text))
			return nil
		}
		lx.cursor.Bump()
	}
}
