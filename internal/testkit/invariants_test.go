package testkit

import (
	"strings"
	"testing"

	"cfront/internal/lexer"
	"cfront/internal/source"
	"cfront/internal/token"
)

func TestLexerOutputSatisfiesInvariants(t *testing.T) {
	sources := []string{
		"",
		"#include <stdio.h>\n#include \"local.h\"\n",
		"int main(void) {\n\tchar c = 'é';\n\treturn c <<= 2 ... ;\n}\n",
		"??=define X(a) a ## b\n\"multi\nline\" 42",
		"foo\\\nbar @ $ `",
		"日本 = '語';",
	}
	for _, src := range sources {
		lx := lexer.New(src, lexer.Options{})
		toks, err := lx.Tokenize()
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", src, err)
		}
		if err := CheckTokenInvariants(lx.Source(), toks); err != nil {
			t.Errorf("source %q: %v", src, err)
		}
	}
}

func TestInvariantViolations(t *testing.T) {
	at := func(line, col, off uint32) source.Position {
		return source.Position{Line: line, Column: col, Offset: off}
	}
	cases := []struct {
		name string
		src  string
		toks []token.Token
		want string
	}{
		{
			name: "order",
			src:  "a b",
			toks: []token.Token{token.NewIdentifier(at(1, 3, 2), "b"), token.NewIdentifier(at(1, 1, 0), "a")},
			want: "does not follow",
		},
		{
			name: "bounds",
			src:  "a",
			toks: []token.Token{token.NewIdentifier(at(1, 5, 4), "a")},
			want: "beyond text length",
		},
		{
			name: "column",
			src:  "a\nb",
			toks: []token.Token{token.NewIdentifier(at(1, 3, 2), "b")},
			want: "text says",
		},
		{
			name: "spelling",
			src:  "abc",
			toks: []token.Token{token.NewIdentifier(at(1, 1, 0), "abd")},
			want: "want \"abd\"",
		},
		{
			name: "header",
			src:  "<a.h>",
			toks: []token.Token{token.NewHeaderName(at(1, 1, 0), "a.h", token.HeaderIncluded)},
			want: "not preceded by #include",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckTokenInvariants(tc.src, tc.toks)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("err = %v, want it to mention %q", err, tc.want)
			}
		})
	}
}
