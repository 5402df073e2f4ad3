package diag

import "cfront/internal/source"

// Builder accumulates diagnostic fields. Setters chain; Build returns an
// independent Diagnostic that later setter calls do not affect.
type Builder struct {
	d Diagnostic
}

// NewBuilder starts a diagnostic of the given kind.
func NewBuilder(kind ErrorKind) *Builder {
	return &Builder{d: Diagnostic{kind: kind}}
}

// Kind overrides the error kind.
func (b *Builder) Kind(kind ErrorKind) *Builder {
	b.d.kind = kind
	return b
}

func (b *Builder) Message(msg string) *Builder {
	b.d.message = msg
	b.d.hasMessage = true
	return b
}

// Source attaches the full scanned text and the 1-based line to excerpt.
func (b *Builder) Source(src string, line uint32) *Builder {
	b.d.src = src
	b.d.line = line
	return b
}

// Highlight sets the caret range; columns are 0-based within the line.
func (b *Builder) Highlight(start, end uint32) *Builder {
	b.d.highlight = Range{Start: start, End: end}
	b.d.hasHighlight = true
	return b
}

func (b *Builder) HighlightMessage(msg string) *Builder {
	b.d.highlightMessage = msg
	b.d.hasHighlightMsg = true
	return b
}

// At records the file and position of the failure.
func (b *Builder) At(path string, pos source.Position) *Builder {
	b.d.path = path
	b.d.pos = pos
	return b
}

// Build returns the finished diagnostic.
func (b *Builder) Build() *Diagnostic {
	d := b.d
	return &d
}
