package lexer

import (
	"cfront/internal/diag"
	"cfront/internal/source"
)

// newFailure starts a diagnostic carrying the normalized text as context.
func (lx *Lexer) newFailure(kind diag.ErrorKind, at source.Position) *diag.Builder {
	return diag.NewBuilder(kind).
		Source(lx.text.String(), at.Line).
		At(lx.opts.Path, at)
}

// failAt builds a diagnostic with a one-column highlight at the opening
// delimiter.
func (lx *Lexer) failAt(kind diag.ErrorKind, at source.Position, msg, highlightMsg string) *diag.Diagnostic {
	return lx.newFailure(kind, at).
		Message(msg).
		Highlight(at.Column-1, at.Column).
		HighlightMessage(highlightMsg).
		Build()
}
