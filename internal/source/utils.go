package source

import "bytes"

var (
	crlf    = []byte("\r\n")
	lf      = []byte("\n")
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}
)

// normalizeCRLF folds CRLF line endings to LF before the text reaches the
// normalizer, so "\\\r\n" splices like "\\\n" and newline tokens are always
// a bare '\n'. A lone '\r' is kept: the scanner treats it as blank.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, crlf) {
		return content, false
	}
	return bytes.ReplaceAll(content, crlf, lf), true
}

// removeBOM drops a leading UTF-8 byte-order mark; otherwise it would scan
// as an Other token at 1:1 and shift every column on the first line.
func removeBOM(content []byte) ([]byte, bool) {
	return bytes.CutPrefix(content, utf8BOM)
}
