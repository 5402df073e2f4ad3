package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"github.com/vmihailenco/msgpack/v5"

	"cfront/internal/project"
	"cfront/internal/source"
	"cfront/internal/token"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// tokenStreamVersion входит в ключ: смена правил сканирования должна
// инвалидировать старые потоки.
const tokenStreamVersion = "pp-tokens/1"

// DiskCache хранит потоки токенов успешно просканированных файлов,
// по ключу от содержимого файла. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	fs  afero.Fs
	dir string
}

// DiskPayload is the on-disk form of one token stream.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16
	// Path the stream was first produced for (informational)
	Path   string
	Tokens []CachedToken
}

// CachedToken is a flattened token.Token.
type CachedToken struct {
	Kind   uint8
	Line   uint32
	Column uint32
	Offset uint32
	Text   string
	Rune   int32
	Header uint8
	Op     uint8
	Punct  uint8
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(fsys afero.Fs, app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(fsys, filepath.Join(base, app))
}

// NewDiskCache creates a cache rooted at dir on fsys.
func NewDiskCache(fsys afero.Fs, dir string) (*DiskCache, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{fs: fsys, dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства чтения/очистки — подкаталог "tokens" с шардингом по первому байту.
	return filepath.Join(c.dir, "tokens", hexKey[:2], hexKey+".mp")
}

// cacheKey derives the cache key from the decoded file content.
func cacheKey(f *source.File) project.Digest {
	return project.Combine(project.Digest(f.Hash), []byte(tokenStreamVersion))
}

// Put serializes and writes a token stream to the disk cache.
func (c *DiskCache) Put(key project.Digest, path string, toks []token.Token) error {
	if c == nil {
		return nil
	}
	payload := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   path,
		Tokens: make([]CachedToken, len(toks)),
	}
	for i, tok := range toks {
		payload.Tokens[i] = toCached(tok)
	}
	data, err := msgpack.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode cache payload: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := c.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := afero.TempFile(c.fs, filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = c.fs.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = c.fs.Remove(tmp)
		return err
	}
	// Атомарная замена
	if err := c.fs.Rename(tmp, p); err != nil {
		_ = c.fs.Remove(tmp)
		return err
	}
	return nil
}

// Get reads a token stream. A missing entry or a payload written by another
// schema version is a miss, not an error.
func (c *DiskCache) Get(key project.Digest) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := afero.ReadFile(c.fs, c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var payload DiskPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false, fmt.Errorf("decode cache payload: %w", err)
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false, nil
	}
	toks := make([]token.Token, len(payload.Tokens))
	for i, ct := range payload.Tokens {
		toks[i] = fromCached(ct)
	}
	return toks, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.fs.RemoveAll(c.dir); err != nil {
		return err
	}
	return c.fs.MkdirAll(c.dir, 0o755)
}

func toCached(tok token.Token) CachedToken {
	return CachedToken{
		Kind:   uint8(tok.Kind),
		Line:   tok.Pos.Line,
		Column: tok.Pos.Column,
		Offset: tok.Pos.Offset,
		Text:   tok.Text,
		Rune:   tok.Rune,
		Header: uint8(tok.Header),
		Op:     uint8(tok.Op),
		Punct:  uint8(tok.Punct),
	}
}

func fromCached(ct CachedToken) token.Token {
	return token.Token{
		Kind:   token.Kind(ct.Kind),
		Pos:    source.Position{Line: ct.Line, Column: ct.Column, Offset: ct.Offset},
		Text:   ct.Text,
		Rune:   ct.Rune,
		Header: token.HeaderKind(ct.Header),
		Op:     token.Op(ct.Op),
		Punct:  token.Punct(ct.Punct),
	}
}
