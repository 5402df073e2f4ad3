package diag

import (
	"errors"
	"strings"
	"testing"

	"cfront/internal/source"
)

func TestErrorKindCodes(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		id   string
		desc string
	}{
		{KindNone, "E0000", "No error"},
		{UnterminatedCharConstant, "E0001", "Failed to find end of a character constant"},
		{UnterminatedStringLiteral, "E0002", "Failed to find end of string literal"},
		{UnterminatedHeaderName, "E0003", "Failed to find end of header name"},
	}
	for _, tt := range tests {
		if tt.kind.ID() != tt.id {
			t.Errorf("%v.ID() = %q, want %q", tt.kind.Name(), tt.kind.ID(), tt.id)
		}
		if tt.kind.Description() != tt.desc {
			t.Errorf("%v.Description() = %q, want %q", tt.kind.Name(), tt.kind.Description(), tt.desc)
		}
	}
}

func TestRenderFull(t *testing.T) {
	d := NewBuilder(UnterminatedCharConstant).
		Message("unexpected end of source in character constant").
		Source("int x;\nchar c = 'a", 2).
		Highlight(9, 10).
		HighlightMessage("character constant starts here").
		Build()

	want := "Compilation Error [E0001]: Failed to find end of a character constant\n" +
		" | unexpected end of source in character constant\n" +
		" |\n" +
		"2 | char c = 'a\n" +
		" | " + strings.Repeat(" ", 9) + "^\n" +
		" | " + strings.Repeat(" ", 9) + "character constant starts here\n"

	if got := d.String(); got != want {
		t.Fatalf("unexpected render:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderGutterTracksLineNumberWidth(t *testing.T) {
	src := strings.Repeat("\n", 11) + `"abc`
	d := NewBuilder(UnterminatedStringLiteral).
		Source(src, 12).
		Highlight(0, 4).
		Build()

	want := "Compilation Error [E0002]: Failed to find end of string literal\n" +
		"   |\n" +
		"12 | \"abc\n" +
		"   | ^^^^\n"
	if got := d.String(); got != want {
		t.Fatalf("unexpected render:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderWithoutSource(t *testing.T) {
	d := NewBuilder(UnterminatedHeaderName).Message("missing '>'").Highlight(1, 3).Build()
	want := "Compilation Error [E0003]: Failed to find end of header name\n" +
		" | missing '>'\n"
	if got := d.String(); got != want {
		t.Fatalf("unexpected render:\nwant:\n%q\ngot:\n%q", want, got)
	}
}

func TestRenderHeaderOnly(t *testing.T) {
	d := NewBuilder(UnterminatedStringLiteral).Build()
	if got := d.String(); got != "Compilation Error [E0002]: Failed to find end of string literal\n" {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestBuilderProducesIndependentValues(t *testing.T) {
	b := NewBuilder(UnterminatedCharConstant).Message("first")
	d1 := b.Build()
	b.Message("second").Kind(UnterminatedStringLiteral)
	d2 := b.Build()

	if msg, _ := d1.Message(); msg != "first" {
		t.Fatalf("d1 mutated after Build: %q", msg)
	}
	if d1.Kind() != UnterminatedCharConstant {
		t.Fatalf("d1 kind mutated: %v", d1.Kind())
	}
	if msg, _ := d2.Message(); msg != "second" {
		t.Fatalf("d2 message = %q", msg)
	}
}

func TestDiagnosticIsError(t *testing.T) {
	var err error = NewBuilder(UnterminatedStringLiteral).
		Message("unterminated string literal").
		At("main.c", source.Position{Line: 3, Column: 7, Offset: 20}).
		Build()

	var d *Diagnostic
	if !errors.As(err, &d) {
		t.Fatal("errors.As should find *Diagnostic")
	}
	want := "main.c:3:7: [E0002] Failed to find end of string literal: unterminated string literal"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestBagLimitAndSort(t *testing.T) {
	bag := NewBag(2)
	mk := func(path string, off uint32) *Diagnostic {
		return NewBuilder(UnterminatedStringLiteral).At(path, source.Position{Line: 1, Column: off + 1, Offset: off}).Build()
	}
	if !bag.Add(mk("b.c", 0)) || !bag.Add(mk("a.c", 5)) {
		t.Fatal("expected first two adds to succeed")
	}
	if bag.Add(mk("c.c", 0)) {
		t.Fatal("limit must reject the third diagnostic")
	}
	bag.Sort()
	items := bag.Items()
	if items[0].Path() != "a.c" || items[1].Path() != "b.c" {
		t.Fatalf("unexpected order: %s, %s", items[0].Path(), items[1].Path())
	}
	if !bag.HasErrors() {
		t.Fatal("HasErrors should be true")
	}
}

func TestFormatShort(t *testing.T) {
	diags := []*Diagnostic{
		NewBuilder(UnterminatedHeaderName).Message("missing '>'\nfor include").
			At("./src/b.c", source.Position{Line: 2, Column: 10}).Build(),
		NewBuilder(UnterminatedCharConstant).
			At("src/a.c", source.Position{Line: 1, Column: 1}).Build(),
	}
	want := "src/a.c:1:1: E0001 Failed to find end of a character constant\n" +
		"src/b.c:2:10: E0003 Failed to find end of header name: missing '>' for include"
	if got := FormatShort(diags); got != want {
		t.Fatalf("unexpected short output:\nwant:\n%s\ngot:\n%s", want, got)
	}
	if FormatShort(nil) != "" {
		t.Fatal("empty input must render as empty string")
	}
}
