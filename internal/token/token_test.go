package token

import (
	"testing"

	"cfront/internal/source"
)

func TestTokenLexeme(t *testing.T) {
	pos := source.Start()
	tests := []struct {
		tok  Token
		want string
	}{
		{NewIdentifier(pos, "foo"), "foo"},
		{NewNumber(pos, "0123"), "0123"},
		{NewCharConst(pos, 'x'), "x"},
		{NewOther(pos, '\n'), "\n"},
		{NewOperator(pos, OpShlAssign), "<<="},
		{NewPunctuator(pos, PunctEllipsis), "..."},
		{NewHeaderName(pos, "stdio.h", HeaderIncluded), "stdio.h"},
	}
	for _, tt := range tests {
		if got := tt.tok.Lexeme(); got != tt.want {
			t.Errorf("%v.Lexeme() = %q, want %q", tt.tok.Kind, got, tt.want)
		}
	}
}

func TestTokenIs(t *testing.T) {
	pos := source.Start()
	hash := NewPunctuator(pos, PunctPound)
	if !hash.Is(Punctuator, "#") {
		t.Fatalf("expected Punctuator(#)")
	}
	if hash.Is(Operator, "#") {
		t.Fatalf("Punctuator(#) must not match Operator(#)")
	}
	if !NewOther(pos, '\n').IsNewline() {
		t.Fatalf("Other(\\n) should be a newline marker")
	}
}

func TestTokenString(t *testing.T) {
	pos := source.Start()
	got := NewHeaderName(pos, "a.h", HeaderLocal).String()
	if got != `HeaderName("a.h", Local)` {
		t.Fatalf("unexpected String(): %s", got)
	}
	if got := NewOther(pos, '@').String(); got != `Other('@')` {
		t.Fatalf("unexpected String(): %s", got)
	}
}
