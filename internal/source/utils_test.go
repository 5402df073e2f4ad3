package source

import "testing"

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		changed bool
	}{
		{"a\nb", "a\nb", false},
		{"a\r\nb\r\n", "a\nb\n", true},
		{"a\\\r\nb", "a\\\nb", true},
		// одиночный \r остаётся
		{"a\rb\r\n", "a\rb\n", true},
		{"a\r", "a\r", false},
	}
	for _, tt := range tests {
		got, changed := normalizeCRLF([]byte(tt.in))
		if string(got) != tt.want || changed != tt.changed {
			t.Errorf("normalizeCRLF(%q) = %q, %v; want %q, %v", tt.in, got, changed, tt.want, tt.changed)
		}
	}
}

func TestRemoveBOM(t *testing.T) {
	got, had := removeBOM([]byte("\xEF\xBB\xBFint x;"))
	if !had || string(got) != "int x;" {
		t.Errorf("removeBOM = %q, %v", got, had)
	}
	got, had = removeBOM([]byte("\xEF\xBB"))
	if had || string(got) != "\xEF\xBB" {
		t.Errorf("short prefix: removeBOM = %q, %v", got, had)
	}
}
