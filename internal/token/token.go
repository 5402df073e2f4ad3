package token

import (
	"fmt"

	"cfront/internal/source"
)

// Token is a single preprocessing token. Only the fields relevant to Kind
// are meaningful:
//   - HeaderName: Text, Header
//   - Identifier, Number, StringLit: Text
//   - CharConst, Other: Rune
//   - Operator: Op (Text holds the lexeme)
//   - Punctuator: Punct (Text holds the lexeme)
type Token struct {
	Kind   Kind
	Pos    source.Position
	Text   string
	Rune   rune
	Header HeaderKind
	Op     Op
	Punct  Punct
}

func NewHeaderName(pos source.Position, text string, kind HeaderKind) Token {
	return Token{Kind: HeaderName, Pos: pos, Text: text, Header: kind}
}

func NewIdentifier(pos source.Position, text string) Token {
	return Token{Kind: Identifier, Pos: pos, Text: text}
}

func NewNumber(pos source.Position, raw string) Token {
	return Token{Kind: Number, Pos: pos, Text: raw}
}

func NewCharConst(pos source.Position, r rune) Token {
	return Token{Kind: CharConst, Pos: pos, Rune: r}
}

func NewStringLit(pos source.Position, text string) Token {
	return Token{Kind: StringLit, Pos: pos, Text: text}
}

func NewOperator(pos source.Position, op Op) Token {
	return Token{Kind: Operator, Pos: pos, Text: op.String(), Op: op}
}

func NewPunctuator(pos source.Position, p Punct) Token {
	return Token{Kind: Punctuator, Pos: pos, Text: p.String(), Punct: p}
}

func NewOther(pos source.Position, r rune) Token {
	return Token{Kind: Other, Pos: pos, Rune: r}
}

// Lexeme returns the token payload as text: the scalar for CharConst/Other,
// Text for everything else.
func (t Token) Lexeme() string {
	switch t.Kind {
	case CharConst, Other:
		return string(t.Rune)
	default:
		return t.Text
	}
}

// Is reports whether the token has the given kind and lexeme.
func (t Token) Is(kind Kind, lexeme string) bool {
	return t.Kind == kind && t.Lexeme() == lexeme
}

// IsNewline reports whether the token is the Other('\n') line marker.
func (t Token) IsNewline() bool {
	return t.Kind == Other && t.Rune == '\n'
}

func (t Token) String() string {
	switch t.Kind {
	case HeaderName:
		return fmt.Sprintf("%s(%q, %s)", t.Kind, t.Text, t.Header)
	case CharConst, Other:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Rune)
	default:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	}
}
