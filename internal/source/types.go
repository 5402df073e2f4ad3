package source

import "fmt"

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedCRLF
	FileTranscoded // прочитан в legacy-кодировке и перекодирован в UTF-8
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   FileFlags
}

// Position is a scan location. Offset counts Unicode scalar values, not bytes.
type Position struct {
	Line   uint32 // 1-based
	Column uint32 // 1-based
	Offset uint32 // 0-based, in scalars
}

// Start returns the position of the first scalar of a buffer.
func Start() Position {
	return Position{Line: 1, Column: 1, Offset: 0}
}

// Advance returns the position following r.
// A newline moves to column 1 of the next line.
func (p Position) Advance(r rune) Position {
	p.Offset++
	if r == '\n' {
		p.Line++
		p.Column = 1
		return p
	}
	p.Column++
	return p
}

// Before reports whether p lies strictly before q in the buffer.
func (p Position) Before(q Position) bool {
	return p.Offset < q.Offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
