package diag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// FormatShort renders diagnostics one per line, sorted by path and
// position:
//
//	path:line:col: E0002 Failed to find end of string literal: <message>
//
// Suitable for golden files and editor quickfix lists. Returns "" for an
// empty input.
func FormatShort(diags []*Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}
	sorted := make([]*Diagnostic, 0, len(diags))
	for _, d := range diags {
		if d != nil {
			sorted = append(sorted, d)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i], sorted[j]
		if pi, pj := normalizePath(di.path), normalizePath(dj.path); pi != pj {
			return pi < pj
		}
		if di.pos.Line != dj.pos.Line {
			return di.pos.Line < dj.pos.Line
		}
		if di.pos.Column != dj.pos.Column {
			return di.pos.Column < dj.pos.Column
		}
		return di.kind < dj.kind
	})

	var b strings.Builder
	for i, d := range sorted {
		path := normalizePath(d.path)
		if path == "" {
			path = "<input>"
		}
		fmt.Fprintf(&b, "%s:%d:%d: %s %s", path, d.pos.Line, d.pos.Column, d.kind.ID(), d.kind.Description())
		if d.hasMessage {
			b.WriteString(": ")
			b.WriteString(sanitizeMessage(d.message))
		}
		if i < len(sorted)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func normalizePath(path string) string {
	if path == "" {
		return ""
	}
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
