package diag

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cfront/internal/source"
)

// Range is a half-open column range [Start, End) measured in scalars from
// the first character of the excerpted line; Start 0 is the first column.
type Range struct {
	Start uint32
	End   uint32
}

// Width returns the number of carets the range renders as.
func (r Range) Width() uint32 {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Diagnostic describes a single scan failure. Build one with Builder.
type Diagnostic struct {
	kind             ErrorKind
	message          string
	hasMessage       bool
	src              string
	line             uint32 // 0 — нет контекста
	highlight        Range
	hasHighlight     bool
	highlightMessage string
	hasHighlightMsg  bool
	path             string
	pos              source.Position
}

func (d *Diagnostic) Kind() ErrorKind { return d.kind }

// Message returns the message and whether one was set.
func (d *Diagnostic) Message() (string, bool) { return d.message, d.hasMessage }

// SourceContext returns the full scanned text and the 1-based line to excerpt.
func (d *Diagnostic) SourceContext() (src string, line uint32, ok bool) {
	return d.src, d.line, d.line > 0
}

// Highlight returns the caret range under the excerpt.
func (d *Diagnostic) Highlight() (Range, bool) { return d.highlight, d.hasHighlight }

// HighlightMessage returns the text printed below the carets.
func (d *Diagnostic) HighlightMessage() (string, bool) {
	return d.highlightMessage, d.hasHighlightMsg
}

// Path returns the file the diagnostic belongs to ("" for in-memory scans).
func (d *Diagnostic) Path() string { return d.path }

// Pos returns the scan position the failure is anchored at.
func (d *Diagnostic) Pos() source.Position { return d.pos }

// Error implements error with a single-line summary.
func (d *Diagnostic) Error() string {
	var b strings.Builder
	if d.path != "" {
		fmt.Fprintf(&b, "%s:%s: ", d.path, d.pos)
	}
	fmt.Fprintf(&b, "[%s] %s", d.kind.ID(), d.kind.Description())
	if d.hasMessage {
		b.WriteString(": ")
		b.WriteString(d.message)
	}
	return b.String()
}

// String returns the full rendered report.
func (d *Diagnostic) String() string {
	var b strings.Builder
	// strings.Builder never fails
	_ = d.Render(&b)
	return b.String()
}

// Render writes the canonical report:
//
//	Compilation Error [E%04d]: <description>
//	<gutter> | <message>
//	<gutter> |
//	<line> | <source line>
//	<gutter> | <pad>^^^
//	<gutter> | <pad><highlight message>
//
// The gutter is as wide as the printed line number. The excerpt block is
// only written when a source context is present.
func (d *Diagnostic) Render(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("Compilation Error [%s]: %s\n", d.kind.ID(), d.kind.Description())

	gutter := ""
	if d.line > 0 {
		gutter = strings.Repeat(" ", len(strconv.FormatUint(uint64(d.line), 10)))
	}

	if d.hasMessage {
		ew.printf("%s | %s\n", gutter, d.message)
	}
	if d.line > 0 {
		ew.printf("%s |\n", gutter)
		ew.printf("%d | %s\n", d.line, source.LineOf(d.src, d.line))
		if d.hasHighlight {
			pad := strings.Repeat(" ", int(d.highlight.Start))
			ew.printf("%s | %s%s\n", gutter, pad, strings.Repeat("^", int(d.highlight.Width())))
			if d.hasHighlightMsg {
				ew.printf("%s | %s%s\n", gutter, pad, d.highlightMessage)
			}
		}
	}
	return ew.err
}

// errWriter remembers the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
