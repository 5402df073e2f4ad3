package token

// MaxLexemeLen is the length, in scalars, of the longest operator or
// punctuator spelling ("<<=", ">>=", "...").
const MaxLexemeLen = 3

// Op identifies a C89 operator.
type Op uint8

const (
	OpInvalid Op = iota
	OpLBracket
	OpRBracket
	OpLParen
	OpRParen
	OpPeriod
	OpArrow
	OpIncrement
	OpDecrement
	OpAmpersand
	OpAsterisk
	OpPlus
	OpMinus
	OpTilde
	OpExclamation
	OpSizeof
	OpSlash
	OpPercent
	OpShl
	OpShr
	OpLess
	OpGreater
	OpLessEq
	OpGreaterEq
	OpEqual
	OpNotEqual
	OpCaret
	OpPipe
	OpAndAnd
	OpOrOr
	OpQuestion
	OpColon
	OpAssign
	OpMulAssign
	OpDivAssign
	OpModAssign
	OpAddAssign
	OpSubAssign
	OpShlAssign
	OpShrAssign
	OpAndAssign
	OpXorAssign
	OpOrAssign
	OpComma
	OpPound
	OpPaste
)

var operators = map[string]Op{
	"[":      OpLBracket,
	"]":      OpRBracket,
	"(":      OpLParen,
	")":      OpRParen,
	".":      OpPeriod,
	"->":     OpArrow,
	"++":     OpIncrement,
	"--":     OpDecrement,
	"&":      OpAmpersand,
	"*":      OpAsterisk,
	"+":      OpPlus,
	"-":      OpMinus,
	"~":      OpTilde,
	"!":      OpExclamation,
	"sizeof": OpSizeof,
	"/":      OpSlash,
	"%":      OpPercent,
	"<<":     OpShl,
	">>":     OpShr,
	"<":      OpLess,
	">":      OpGreater,
	"<=":     OpLessEq,
	">=":     OpGreaterEq,
	"==":     OpEqual,
	"!=":     OpNotEqual,
	"^":      OpCaret,
	"|":      OpPipe,
	"&&":     OpAndAnd,
	"||":     OpOrOr,
	"?":      OpQuestion,
	":":      OpColon,
	"=":      OpAssign,
	"*=":     OpMulAssign,
	"/=":     OpDivAssign,
	"%=":     OpModAssign,
	"+=":     OpAddAssign,
	"-=":     OpSubAssign,
	"<<=":    OpShlAssign,
	">>=":    OpShrAssign,
	"&=":     OpAndAssign,
	"^=":     OpXorAssign,
	"|=":     OpOrAssign,
	",":      OpComma,
	"#":      OpPound,
	"##":     OpPaste,
}

var operatorNames = invert(operators)

// LookupOperator returns the operator spelled exactly as lexeme.
func LookupOperator(lexeme string) (Op, bool) {
	op, ok := operators[lexeme]
	return op, ok
}

// String returns the operator's spelling.
func (o Op) String() string {
	if s, ok := operatorNames[o]; ok {
		return s
	}
	return "<invalid operator>"
}
