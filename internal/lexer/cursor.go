package lexer

import "cfront/internal/source"

// Cursor walks a scalar buffer and keeps line/column/offset in step.
type Cursor struct {
	text *source.Text
	idx  int
	Pos  source.Position
}

// NewCursor creates a cursor at the start of text.
func NewCursor(text *source.Text) Cursor {
	return Cursor{text: text, Pos: source.Start()}
}

// EOF проверяет, достигнут ли конец буфера
func (c *Cursor) EOF() bool {
	return c.idx >= c.text.Len()
}

// Peek returns the current scalar without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	return c.text.At(c.idx)
}

// PeekAt returns the scalar n positions ahead (PeekAt(0) == Peek).
func (c *Cursor) PeekAt(n int) (rune, bool) {
	return c.text.At(c.idx + n)
}

// Bump consumes one scalar and advances the position.
func (c *Cursor) Bump() (rune, bool) {
	r, ok := c.text.At(c.idx)
	if !ok {
		return 0, false
	}
	c.idx++
	c.Pos = c.Pos.Advance(r)
	return r, true
}

// BumpN consumes up to n scalars.
func (c *Cursor) BumpN(n int) {
	for i := 0; i < n; i++ {
		if _, ok := c.Bump(); !ok {
			return
		}
	}
}

// Lookahead returns the next n scalars as text, or false if fewer remain.
func (c *Cursor) Lookahead(n int) (string, bool) {
	if c.idx+n > c.text.Len() {
		return "", false
	}
	return c.text.Slice(c.idx, c.idx+n), true
}

// Mark это метка, чтобы быстро получать текст читаемого фрагмента
type Mark struct {
	idx int
	pos source.Position
}

// Mark saves the current cursor state.
func (c *Cursor) Mark() Mark {
	return Mark{idx: c.idx, pos: c.Pos}
}

// TextFrom returns the scalars consumed since m.
func (c *Cursor) TextFrom(m Mark) string {
	return c.text.Slice(m.idx, c.idx)
}

// Reset returns the cursor to m.
func (c *Cursor) Reset(m Mark) {
	c.idx = m.idx
	c.Pos = m.pos
}
