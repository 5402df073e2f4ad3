package diagfmt

import (
	"encoding/json"
	"io"

	"cfront/internal/diag"
	"cfront/internal/source"
)

// HighlightJSON — подчёркнутый диапазон колонок (с нуля, конец не включается)
type HighlightJSON struct {
	Start   uint32 `json:"start"`
	End     uint32 `json:"end"`
	Message string `json:"message,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Code        string         `json:"code"`
	Kind        string         `json:"kind"`
	Description string         `json:"description"`
	Message     string         `json:"message,omitempty"`
	Path        string         `json:"path,omitempty"`
	Line        uint32         `json:"line"`
	Column      uint32         `json:"column"`
	Offset      uint32         `json:"offset"`
	Source      string         `json:"source,omitempty"`
	Highlight   *HighlightJSON `json:"highlight,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// BuildDiagnosticsOutput converts diagnostics to their JSON shape.
// Count is the number before truncation by opts.Max.
func BuildDiagnosticsOutput(diags []*diag.Diagnostic, opts JSONOpts) DiagnosticsOutput {
	out := DiagnosticsOutput{
		Diagnostics: make([]DiagnosticJSON, 0, len(diags)),
		Count:       len(diags),
	}
	for i, d := range diags {
		if opts.Max > 0 && i >= opts.Max {
			break
		}
		out.Diagnostics = append(out.Diagnostics, diagnosticJSON(d, opts))
	}
	return out
}

func diagnosticJSON(d *diag.Diagnostic, opts JSONOpts) DiagnosticJSON {
	kind := d.Kind()
	pos := d.Pos()
	dj := DiagnosticJSON{
		Code:        kind.ID(),
		Kind:        kind.Name(),
		Description: kind.Description(),
		Path:        formatPath(d.Path(), opts.PathMode, opts.BaseDir),
		Line:        pos.Line,
		Column:      pos.Column,
		Offset:      pos.Offset,
	}
	if msg, ok := d.Message(); ok {
		dj.Message = msg
	}
	if src, line, ok := d.SourceContext(); ok {
		dj.Source = source.LineOf(src, line)
	}
	if hl, ok := d.Highlight(); ok {
		dj.Highlight = &HighlightJSON{Start: hl.Start, End: hl.End}
		if hm, ok := d.HighlightMessage(); ok {
			dj.Highlight.Message = hm
		}
	}
	return dj
}

// JSON пишет диагностики одним документом
func JSON(w io.Writer, diags []*diag.Diagnostic, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(diags, opts))
}
