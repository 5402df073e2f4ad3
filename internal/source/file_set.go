package source

import (
	"crypto/sha256"
	"fmt"
	"path/filepath"
	"sync"

	"fortio.org/safecast"
	"github.com/spf13/afero"
)

// FileSet manages a collection of loaded source files.
// It is safe for concurrent use; batch tokenization loads files from
// several goroutines.
type FileSet struct {
	mu    sync.RWMutex
	files []File
	index map[string]FileID // path -> id
	fs    afero.Fs
}

// NewFileSet creates an empty FileSet reading from the OS file system.
func NewFileSet() *FileSet {
	return NewFileSetFS(afero.NewOsFs())
}

// NewFileSetFS creates an empty FileSet reading from fsys.
func NewFileSetFS(fsys afero.Fs) *FileSet {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
		fs:    fsys,
	}
}

// Add stores already normalized content and returns a new FileID.
// It always creates a new FileID even if a file with the same path already exists.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	hash := sha256.Sum256(content)
	normalizedPath := normalizePath(path)

	fileSet.mu.Lock()
	defer fileSet.mu.Unlock()

	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		Hash:    hash,
		Flags:   flags,
	})
	// Всегда обновляем индекс на последнюю версию файла
	fileSet.index[normalizedPath] = id
	return id
}

// AddVirtual adds an in-memory file (stdin, test, generated).
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Load reads a UTF-8 file, strips a BOM and folds CRLF.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	return fileSet.LoadWithEncoding(path, EncodingUTF8)
}

// LoadWithEncoding reads path, transcodes it from enc into UTF-8 and
// normalizes BOM/CRLF before calling Add.
func (fileSet *FileSet) LoadWithEncoding(path string, enc Encoding) (FileID, error) {
	raw, err := afero.ReadFile(fileSet.fs, path)
	if err != nil {
		return 0, err
	}

	var flags FileFlags
	content, hadBOM := removeBOM(raw)
	if hadBOM {
		flags |= FileHadBOM
	}
	content, transcoded, err := Decode(content, enc)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if transcoded {
		flags |= FileTranscoded
	}
	content, hadCRLF := normalizeCRLF(content)
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fileSet.Add(path, content, flags), nil
}

// Get returns the file for id, or nil if id is unknown.
func (fileSet *FileSet) Get(id FileID) *File {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	if int(id) >= len(fileSet.files) {
		return nil
	}
	return &fileSet.files[id]
}

// GetByPath возвращает *File по пути, если был загружен в этот FileSet.
func (fileSet *FileSet) GetByPath(path string) (*File, bool) {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	if id, ok := fileSet.index[normalizePath(path)]; ok {
		return &fileSet.files[id], true
	}
	return nil, false
}

// Len returns the number of files added so far.
func (fileSet *FileSet) Len() int {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	return len(fileSet.files)
}

// FS returns the file system the set reads from.
func (fileSet *FileSet) FS() afero.Fs {
	return fileSet.fs
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
