package lexer

import "cfront/internal/token"

// scanSpecial handles everything that is not whitespace, a literal or a
// word.
//
// A '#' in column 1 is always a single Punctuator("#"), so "##" at the
// start of a line is Punctuator("#") followed by Operator("#").
// Otherwise the longest lexeme wins (3, 2, then 1 scalars); at each length
// the operator table is consulted before the punctuator table. Nothing
// matching yields Other(r).
func (lx *Lexer) scanSpecial() {
	pos := lx.cursor.Pos
	r, _ := lx.cursor.Peek()

	if r == '#' && pos.Column == 1 {
		lx.cursor.Bump()
		lx.emit(token.NewPunctuator(pos, token.PunctPound))
		return
	}

	for n := token.MaxLexemeLen; n >= 1; n-- {
		cand, ok := lx.cursor.Lookahead(n)
		if !ok {
			continue
		}
		if op, ok := token.LookupOperator(cand); ok {
			lx.cursor.BumpN(n)
			lx.emit(token.NewOperator(pos, op))
			return
		}
		if p, ok := token.LookupPunctuator(cand); ok {
			lx.cursor.BumpN(n)
			lx.emit(token.NewPunctuator(pos, p))
			return
		}
	}

	lx.cursor.Bump()
	lx.emit(token.NewOther(pos, r))
}
