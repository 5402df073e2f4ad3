package diag

import "fmt"

// ErrorKind classifies a scan failure. The numeric value is the printed code.
type ErrorKind uint16

const (
	// KindNone is the zero value; no scan ever fails with it.
	KindNone ErrorKind = 0

	UnterminatedCharConstant  ErrorKind = 1
	UnterminatedStringLiteral ErrorKind = 2
	UnterminatedHeaderName    ErrorKind = 3
)

var kindDescription = map[ErrorKind]string{
	KindNone:                  "No error",
	UnterminatedCharConstant:  "Failed to find end of a character constant",
	UnterminatedStringLiteral: "Failed to find end of string literal",
	UnterminatedHeaderName:    "Failed to find end of header name",
}

var kindName = map[ErrorKind]string{
	KindNone:                  "None",
	UnterminatedCharConstant:  "UnterminatedCharConstant",
	UnterminatedStringLiteral: "UnterminatedStringLiteral",
	UnterminatedHeaderName:    "UnterminatedHeaderName",
}

// Code returns the numeric code.
func (k ErrorKind) Code() int { return int(k) }

// ID returns the printed code, e.g. "E0002".
func (k ErrorKind) ID() string {
	return fmt.Sprintf("E%04d", k.Code())
}

// Description returns the fixed human-readable description.
func (k ErrorKind) Description() string {
	if d, ok := kindDescription[k]; ok {
		return d
	}
	return kindDescription[KindNone]
}

// Name returns the identifier-style name, e.g. "UnterminatedHeaderName".
func (k ErrorKind) Name() string {
	if n, ok := kindName[k]; ok {
		return n
	}
	return fmt.Sprintf("ErrorKind(%d)", k.Code())
}

func (k ErrorKind) String() string {
	return k.Description()
}
