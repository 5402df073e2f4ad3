// Package testkit holds checks shared by tests and `cfront check --verify`.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"cfront/internal/source"
	"cfront/internal/token"
)

// CheckTokenInvariants verifies a token stream against the normalized text
// it was scanned from:
// 1) offsets strictly increase and stay inside the text
// 2) line/column agree with the offset
// 3) each token's spelling is found at its position
// 4) header names only follow Punctuator("#") Identifier("include")
func CheckTokenInvariants(normalized string, toks []token.Token) error {
	text := source.NewText(normalized)
	textLen, err := safecast.Conv[uint32](text.Len())
	if err != nil {
		return fmt.Errorf("text length overflow: %w", err)
	}

	// позиции всех скаляров — чтобы сверять line/column по offset
	positions := make([]source.Position, 0, text.Len())
	pos := source.Start()
	for i, n := 0, text.Len(); i < n; i++ {
		positions = append(positions, pos)
		r, _ := text.At(i)
		pos = pos.Advance(r)
	}

	for i, tok := range toks {
		// 1) monotonic, in bounds
		if tok.Pos.Offset >= textLen {
			return fmt.Errorf("token %d %s: offset %d beyond text length %d", i, tok, tok.Pos.Offset, textLen)
		}
		if i > 0 && !toks[i-1].Pos.Before(tok.Pos) {
			return fmt.Errorf("token %d %s at offset %d does not follow offset %d", i, tok, tok.Pos.Offset, toks[i-1].Pos.Offset)
		}

		// 2) line/column
		if want := positions[tok.Pos.Offset]; want != tok.Pos {
			return fmt.Errorf("token %d %s: position %+v, text says %+v", i, tok, tok.Pos, want)
		}

		// 3) spelling
		spelled := spelling(tok)
		start := int(tok.Pos.Offset)
		if got := text.Slice(start, start+len([]rune(spelled))); got != spelled {
			return fmt.Errorf("token %d %s: text at %s is %q, want %q", i, tok, tok.Pos, got, spelled)
		}

		// 4) header lookback
		if tok.Kind == token.HeaderName {
			if i < 2 || !toks[i-2].Is(token.Punctuator, "#") || !toks[i-1].Is(token.Identifier, "include") {
				return fmt.Errorf("token %d %s: header name not preceded by #include", i, tok)
			}
		}
	}
	return nil
}

// spelling returns the exact source text a token was scanned from.
func spelling(tok token.Token) string {
	switch tok.Kind {
	case token.HeaderName:
		if tok.Header == token.HeaderIncluded {
			return "<" + tok.Text + ">"
		}
		return `"` + tok.Text + `"`
	case token.CharConst:
		return "'" + string(tok.Rune) + "'"
	case token.StringLit:
		return `"` + tok.Text + `"`
	default:
		return tok.Lexeme()
	}
}
