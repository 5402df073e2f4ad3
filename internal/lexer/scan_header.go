package lexer

import (
	"cfront/internal/diag"
	"cfront/internal/token"
)

// atHeaderName reports whether r opens a header name: the two tokens just
// emitted must be Punctuator("#") and Identifier("include").
func (lx *Lexer) atHeaderName(r rune) bool {
	if r != '"' && r != '<' {
		return false
	}
	n := len(lx.tokens)
	if n < 2 {
		return false
	}
	return lx.tokens[n-2].Is(token.Punctuator, "#") && lx.tokens[n-1].Is(token.Identifier, "include")
}

// scanHeaderName scans "name" or <name>. Newlines do not terminate it;
// only end of input does.
func (lx *Lexer) scanHeaderName() *diag.Diagnostic {
	start := lx.cursor.Pos
	open, _ := lx.cursor.Bump()

	closing, kind := '"', token.HeaderLocal
	if open == '<' {
		closing, kind = '>', token.HeaderIncluded
	}

	body := lx.cursor.Mark()
	for {
		r, ok := lx.cursor.Peek()
		if !ok {
			return lx.failAt(diag.UnterminatedHeaderName, start,
				"unexpected end of source in header name, expected '"+string(closing)+"'",
				"header name starts here")
		}
		if r == closing {
			text := lx.cursor.TextFrom(body)
			lx.cursor.Bump()
			lx.emit(token.NewHeaderName(start, text, kind))
			return nil
		}
		lx.cursor.Bump()
	}
}
