package token

// Punct identifies a C89 punctuator.
type Punct uint8

const (
	PunctInvalid Punct = iota
	PunctLBracket
	PunctRBracket
	PunctLParen
	PunctRParen
	PunctLBrace
	PunctRBrace
	PunctAsterisk
	PunctComma
	PunctColon
	PunctEquals
	PunctSemicolon
	PunctEllipsis
	PunctPound
)

var punctuators = map[string]Punct{
	"[":   PunctLBracket,
	"]":   PunctRBracket,
	"(":   PunctLParen,
	")":   PunctRParen,
	"{":   PunctLBrace,
	"}":   PunctRBrace,
	"*":   PunctAsterisk,
	",":   PunctComma,
	":":   PunctColon,
	"=":   PunctEquals,
	";":   PunctSemicolon,
	"...": PunctEllipsis,
	"#":   PunctPound,
}

var punctuatorNames = invert(punctuators)

// LookupPunctuator returns the punctuator spelled exactly as lexeme.
func LookupPunctuator(lexeme string) (Punct, bool) {
	p, ok := punctuators[lexeme]
	return p, ok
}

// String returns the punctuator's spelling.
func (p Punct) String() string {
	if s, ok := punctuatorNames[p]; ok {
		return s
	}
	return "<invalid punctuator>"
}
