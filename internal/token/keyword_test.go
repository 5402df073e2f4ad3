package token

import (
	"sync"
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Keyword{
		"auto":     KwAuto,
		"int":      KwInt,
		"sizeof":   KwSizeof,
		"volatile": KwVolatile,
		"while":    KwWhile,
		"typedef":  KwTypedef,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
		if got.String() != lexeme {
			t.Fatalf("Keyword(%d).String() = %q, want %q", got, got.String(), lexeme)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// регистр важен
	notKw := []string{"Int", "WHILE", "include", "define", "inline", "_Bool", ""}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestKeywordTableSize(t *testing.T) {
	if got := KeywordCount(); got != 32 {
		t.Fatalf("C89 has 32 keywords, table has %d", got)
	}
}

func TestOperatorLookup(t *testing.T) {
	cases := map[string]Op{
		"->":  OpArrow,
		"++":  OpIncrement,
		"<<=": OpShlAssign,
		">>=": OpShrAssign,
		"##":  OpPaste,
		"#":   OpPound,
		":":   OpColon,
		"<":   OpLess,
	}
	for lexeme, want := range cases {
		got, ok := LookupOperator(lexeme)
		if !ok || got != want {
			t.Fatalf("LookupOperator(%q) = %v, %v; want %v", lexeme, got, ok, want)
		}
		if got.String() != lexeme {
			t.Fatalf("Op.String() = %q, want %q", got.String(), lexeme)
		}
	}
	for _, s := range []string{"...", "{", ";", "<<<", "=>"} {
		if _, ok := LookupOperator(s); ok {
			t.Fatalf("LookupOperator(%q) should fail", s)
		}
	}
}

func TestPunctuatorLookup(t *testing.T) {
	for _, lexeme := range []string{"[", "]", "(", ")", "{", "}", "*", ",", ":", "=", ";", "...", "#"} {
		p, ok := LookupPunctuator(lexeme)
		if !ok {
			t.Fatalf("LookupPunctuator(%q) failed", lexeme)
		}
		if p.String() != lexeme {
			t.Fatalf("Punct.String() = %q, want %q", p.String(), lexeme)
		}
	}
	if _, ok := LookupPunctuator("##"); ok {
		t.Fatalf("## is an operator, not a punctuator")
	}
}

func TestCatalogLongestLexeme(t *testing.T) {
	longest := 0
	for s := range operators {
		if s == "sizeof" {
			continue
		}
		longest = max(longest, len([]rune(s)))
	}
	for s := range punctuators {
		longest = max(longest, len([]rune(s)))
	}
	if longest != MaxLexemeLen {
		t.Fatalf("MaxLexemeLen = %d, longest symbolic lexeme is %d", MaxLexemeLen, longest)
	}
}

func TestCatalogConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if _, ok := LookupOperator("<<="); !ok {
					t.Error("lookup failed")
					return
				}
				if _, ok := LookupKeyword("struct"); !ok {
					t.Error("lookup failed")
					return
				}
			}
		}()
	}
	wg.Wait()
}
