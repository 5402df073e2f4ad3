package source

import "testing"

func TestPositionAdvance(t *testing.T) {
	p := Start()
	for _, r := range "ab\ncd" {
		p = p.Advance(r)
	}
	want := Position{Line: 2, Column: 3, Offset: 5}
	if p != want {
		t.Fatalf("got %+v, want %+v", p, want)
	}
	if p.String() != "2:3" {
		t.Fatalf("String() = %q", p.String())
	}
}

func TestTextScalarIndexing(t *testing.T) {
	// "é" и "ж" занимают по 2 байта, но по одному скаляру
	txt := NewText("aéжb")
	if txt.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", txt.Len())
	}
	if r, ok := txt.At(2); !ok || r != 'ж' {
		t.Fatalf("At(2) = %q, %v", r, ok)
	}
	if _, ok := txt.At(4); ok {
		t.Fatalf("At(4) must be out of range")
	}
	if got := txt.Slice(1, 3); got != "éж" {
		t.Fatalf("Slice(1,3) = %q", got)
	}
	if got := txt.Slice(3, 10); got != "b" {
		t.Fatalf("Slice clamps to the end, got %q", got)
	}
}

func TestTextLine(t *testing.T) {
	txt := NewText("first\nsecond\n\nfourth")
	tests := []struct {
		n    uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, ""},
		{4, "fourth"},
		{5, ""},
	}
	for _, tt := range tests {
		if got := txt.Line(tt.n); got != tt.want {
			t.Errorf("Line(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
