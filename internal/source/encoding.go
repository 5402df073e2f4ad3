package source

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrUnsupportedEncoding is returned by ParseEncoding for unknown names.
	ErrUnsupportedEncoding = errors.New("unsupported source encoding")
	// ErrInvalidUTF8 is returned when UTF-8 input contains malformed bytes.
	ErrInvalidUTF8 = errors.New("source is not valid UTF-8")
)

// Encoding names the byte encoding of a source file on disk.
type Encoding uint8

const (
	EncodingUTF8 Encoding = iota
	EncodingLatin1
	EncodingWindows1252
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf-8"
	case EncodingLatin1:
		return "latin1"
	case EncodingWindows1252:
		return "windows-1252"
	default:
		return "unknown"
	}
}

// ParseEncoding converts a user-supplied name ("utf-8", "latin1", "cp1252", ...).
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "latin1", "latin-1", "iso-8859-1":
		return EncodingLatin1, nil
	case "windows-1252", "cp1252":
		return EncodingWindows1252, nil
	default:
		return EncodingUTF8, fmt.Errorf("%w: %q (expected: utf-8|latin1|windows-1252)", ErrUnsupportedEncoding, name)
	}
}

func (e Encoding) decoder() *encoding.Decoder {
	switch e {
	case EncodingLatin1:
		return charmap.ISO8859_1.NewDecoder()
	case EncodingWindows1252:
		return charmap.Windows1252.NewDecoder()
	default:
		return nil
	}
}

// Decode converts content from enc into UTF-8. The bool result reports
// whether any transcoding happened.
func Decode(content []byte, enc Encoding) ([]byte, bool, error) {
	dec := enc.decoder()
	if dec == nil {
		if !utf8.Valid(content) {
			return nil, false, ErrInvalidUTF8
		}
		return content, false, nil
	}
	out, err := dec.Bytes(content)
	if err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", enc, err)
	}
	return out, true, nil
}
