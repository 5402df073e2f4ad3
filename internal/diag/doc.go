// Package diag defines the diagnostic model produced by the preprocessing
// scanner.
//
// # Data model
//
// Diagnostic is the only failure artifact of a scan. It carries:
//
//   - Kind – closed ErrorKind enum with a fixed numeric code and description.
//   - Message – optional human oriented text.
//   - Source context – the scanned text and the 1-based line to excerpt.
//   - Highlight – optional column range under the excerpt, plus an optional
//     message printed below the carets.
//   - Path / Pos – where the failure happened; used by batch output.
//
// Diagnostics are assembled with Builder and are read-only afterwards.
// Render produces the canonical text report:
//
//	Compilation Error [E0001]: Failed to find end of a character constant
//	  | unexpected end of source in character constant
//	  |
//	12 | char c = 'a
//	  |          ^
//	  |          character constant starts here
//
// The layout is a compatibility surface: tools parse it, so it must not
// drift. Colour and JSON renderings live in internal/diagfmt.
//
// # Batch collection
//
// Scanning is fail-fast, so one file yields at most one Diagnostic. Bag and
// Reporter gather them across files when the driver tokenizes many files.
package diag
