package lexer

import (
	"testing"

	"cfront/internal/source"
)

// TestCursorSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestCursorSequentialReading(t *testing.T) {
	c := NewCursor(source.NewText("a\nb"))

	want := []struct {
		r    rune
		line uint32
		col  uint32
	}{
		{'a', 1, 1},
		{'\n', 1, 2},
		{'b', 2, 1},
	}
	for i, w := range want {
		if c.EOF() {
			t.Fatalf("step %d: unexpected EOF", i)
		}
		if c.Pos.Line != w.line || c.Pos.Column != w.col {
			t.Errorf("step %d: pos = %s, want %d:%d", i, c.Pos, w.line, w.col)
		}
		r, ok := c.Bump()
		if !ok || r != w.r {
			t.Errorf("step %d: Bump() = %q, %v; want %q", i, r, ok, w.r)
		}
	}
	if !c.EOF() {
		t.Error("expected EOF at end")
	}
	if _, ok := c.Peek(); ok {
		t.Error("Peek at EOF must report false")
	}
	if _, ok := c.Bump(); ok {
		t.Error("Bump at EOF must report false")
	}
	if c.Pos.Offset != 3 {
		t.Errorf("offset = %d, want 3", c.Pos.Offset)
	}
}

func TestCursorLookahead(t *testing.T) {
	c := NewCursor(source.NewText("<<="))
	if s, ok := c.Lookahead(3); !ok || s != "<<=" {
		t.Errorf("Lookahead(3) = %q, %v", s, ok)
	}
	if _, ok := c.Lookahead(4); ok {
		t.Error("Lookahead past the end must fail")
	}
	c.BumpN(2)
	if s, ok := c.Lookahead(1); !ok || s != "=" {
		t.Errorf("Lookahead(1) after BumpN(2) = %q, %v", s, ok)
	}
	if r, ok := c.PeekAt(1); ok {
		t.Errorf("PeekAt(1) = %q, want none", r)
	}
}

func TestCursorMarkResetUnicode(t *testing.T) {
	c := NewCursor(source.NewText("héllo wörld"))
	m := c.Mark()
	c.BumpN(5)
	if got := c.TextFrom(m); got != "héllo" {
		t.Errorf("TextFrom = %q", got)
	}
	if c.Pos.Offset != 5 || c.Pos.Column != 6 {
		t.Errorf("pos after 5 scalars = %+v", c.Pos)
	}
	c.Reset(m)
	if c.Pos != source.Start() {
		t.Errorf("Reset did not restore start: %+v", c.Pos)
	}
	if r, _ := c.Peek(); r != 'h' {
		t.Errorf("Peek after reset = %q", r)
	}
}
