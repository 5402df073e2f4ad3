package lexer

import "cfront/internal/token"

// scanNumber captures a run of decimal digits verbatim. No suffixes,
// fractions or radix prefixes: "0x1f" is Number("0") Identifier("x") ...
func (lx *Lexer) scanNumber() {
	start := lx.cursor.Mark()
	for {
		r, ok := lx.cursor.Peek()
		if !ok || !isDigit(r) {
			break
		}
		lx.cursor.Bump()
	}
	lx.emit(token.NewNumber(start.pos, lx.cursor.TextFrom(start)))
}

// scanIdent captures a run of letters and underscores. Keywords stay
// identifiers at this stage.
func (lx *Lexer) scanIdent() {
	start := lx.cursor.Mark()
	for {
		r, ok := lx.cursor.Peek()
		if !ok || !isIdentRune(r) {
			break
		}
		lx.cursor.Bump()
	}
	lx.emit(token.NewIdentifier(start.pos, lx.cursor.TextFrom(start)))
}
