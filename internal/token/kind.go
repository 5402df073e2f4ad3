package token

// Kind represents the category of a preprocessing token.
type Kind uint8

const (
	// Invalid is the zero value and never produced by the lexer.
	Invalid Kind = iota
	// HeaderName is the <...> or "..." operand of #include.
	HeaderName
	// Identifier is a run of letters and underscores.
	Identifier
	// Number is an undecoded run of decimal digits.
	Number
	// CharConst is a single-scalar character constant.
	CharConst
	// StringLit is a double-quoted string literal.
	StringLit
	// Operator is a lexeme found in the operator table.
	Operator
	// Punctuator is a lexeme found in the punctuator table.
	Punctuator
	// Other is any single scalar nothing else claimed, newlines included.
	Other
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	HeaderName: "HeaderName",
	Identifier: "Identifier",
	Number:     "Number",
	CharConst:  "CharacterConstant",
	StringLit:  "StringLiteral",
	Operator:   "Operator",
	Punctuator: "Punctuator",
	Other:      "Other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// HeaderKind distinguishes the two spellings of a header name.
type HeaderKind uint8

const (
	// HeaderLocal is the quoted form: #include "foo.h".
	HeaderLocal HeaderKind = iota + 1
	// HeaderIncluded is the angle-bracket form: #include <foo.h>.
	HeaderIncluded
)

func (h HeaderKind) String() string {
	switch h {
	case HeaderLocal:
		return "Local"
	case HeaderIncluded:
		return "Included"
	default:
		return "None"
	}
}
