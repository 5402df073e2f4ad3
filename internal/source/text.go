package source

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
)

// Text is a source buffer pre-decoded into Unicode scalars so that
// positional access is O(1).
type Text struct {
	runes []rune
	raw   string
}

// NewText decodes s into a scalar-indexed buffer.
// Invalid UTF-8 bytes decode to utf8.RuneError, one scalar per byte.
func NewText(s string) *Text {
	return &Text{runes: []rune(s), raw: s}
}

// Len returns the number of scalars in the buffer.
func (t *Text) Len() int {
	return len(t.runes)
}

// Len32 is Len as uint32; buffers longer than 4G scalars are not supported.
func (t *Text) Len32() uint32 {
	n, err := safecast.Conv[uint32](len(t.runes))
	if err != nil {
		panic(fmt.Errorf("text length overflow: %w", err))
	}
	return n
}

// At returns the scalar at index i.
func (t *Text) At(i int) (rune, bool) {
	if i < 0 || i >= len(t.runes) {
		return 0, false
	}
	return t.runes[i], true
}

// Slice returns scalars [i, j) as a string, clamped to the buffer.
func (t *Text) Slice(i, j int) string {
	i = max(i, 0)
	j = min(j, len(t.runes))
	if i >= j {
		return ""
	}
	return string(t.runes[i:j])
}

// String returns the buffer as text.
func (t *Text) String() string {
	return t.raw
}

// Line returns line n (1-based) without its terminating newline.
// Out-of-range lines yield "".
func (t *Text) Line(n uint32) string {
	return LineOf(t.raw, n)
}

// LineOf returns line n (1-based) of src without its newline.
func LineOf(src string, n uint32) string {
	if n == 0 {
		return ""
	}
	rest := src
	for i := uint32(1); i < n; i++ {
		nl := strings.IndexByte(rest, '\n')
		if nl < 0 {
			return ""
		}
		rest = rest[nl+1:]
	}
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		return rest[:nl]
	}
	return rest
}
