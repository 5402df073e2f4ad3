package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"cfront/internal/diag"
	"cfront/internal/source"
)

// palette — набор цветов для отчёта; при Color=false все выключены.
type palette struct {
	header *color.Color
	gutter *color.Color
	caret  *color.Color
	note   *color.Color
	path   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		header: color.New(color.FgRed, color.Bold),
		gutter: color.New(color.FgBlue, color.Bold),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgRed),
		path:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.header, p.gutter, p.caret, p.note, p.path} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty writes each diagnostic in the canonical report layout, separated
// by blank lines. Plain output is Diagnostic.Render itself, plus the
// locator line when ShowPath is set; with color only escape sequences are
// added to the same layout.
// ShowPath inserts a "--> path:line:col" locator after the header for
// diagnostics that carry a path.
func Pretty(w io.Writer, diags []*diag.Diagnostic, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	for i, d := range diags {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		render := prettyOne
		if !opts.Color {
			render = plainOne
		}
		if err := render(w, d, pal, opts); err != nil {
			return err
		}
	}
	return nil
}

// gutterFor returns the padding that aligns "|" with the printed line number.
func gutterFor(d *diag.Diagnostic) string {
	if _, line, ok := d.SourceContext(); ok {
		return strings.Repeat(" ", len(strconv.FormatUint(uint64(line), 10)))
	}
	return ""
}

// locator возвращает "path:line:col" или "", если путь не показываем.
func locator(d *diag.Diagnostic, opts PrettyOpts) string {
	if !opts.ShowPath {
		return ""
	}
	path := formatPath(d.Path(), opts.PathMode, opts.BaseDir)
	if path == "" {
		return ""
	}
	return path + ":" + d.Pos().String()
}

// plainOne writes Render's output unchanged, splicing the locator in after
// the header line.
func plainOne(w io.Writer, d *diag.Diagnostic, _ palette, opts PrettyOpts) error {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return err
	}
	out := b.String()
	if loc := locator(d, opts); loc != "" {
		cut := strings.IndexByte(out, '\n') + 1
		out = out[:cut] + gutterFor(d) + "--> " + loc + "\n" + out[cut:]
	}
	_, err := io.WriteString(w, out)
	return err
}

func prettyOne(w io.Writer, d *diag.Diagnostic, pal palette, opts PrettyOpts) error {
	var b strings.Builder
	kind := d.Kind()
	b.WriteString(pal.header.Sprintf("Compilation Error [%s]: %s", kind.ID(), kind.Description()))
	b.WriteByte('\n')

	src, line, hasCtx := d.SourceContext()
	gutter := gutterFor(d)
	bar := pal.gutter.Sprint("|")

	if loc := locator(d, opts); loc != "" {
		fmt.Fprintf(&b, "%s%s %s\n", gutter, pal.gutter.Sprint("-->"), pal.path.Sprint(loc))
	}
	if msg, ok := d.Message(); ok {
		fmt.Fprintf(&b, "%s %s %s\n", gutter, bar, msg)
	}
	if hasCtx {
		fmt.Fprintf(&b, "%s %s\n", gutter, bar)
		fmt.Fprintf(&b, "%s %s %s\n", pal.gutter.Sprint(line), bar, source.LineOf(src, line))
		if hl, ok := d.Highlight(); ok {
			pad := strings.Repeat(" ", int(hl.Start))
			fmt.Fprintf(&b, "%s %s %s%s\n", gutter, bar, pad, pal.caret.Sprint(strings.Repeat("^", int(hl.Width()))))
			if hm, ok := d.HighlightMessage(); ok {
				fmt.Fprintf(&b, "%s %s %s%s\n", gutter, bar, pad, pal.note.Sprint(hm))
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
