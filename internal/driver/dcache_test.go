package driver

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"cfront/internal/project"
	"cfront/internal/token"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cache, err := NewDiskCache(fsys, "/cache/cfront")
	require.NoError(t, err)

	res := TokenizeString(context.Background(), "x.c", "#include <a.h>\nchar c = 'q'; x <<= 2 ...", Options{})
	require.Nil(t, res.Diag)

	key := cacheKey(res.File)
	require.NoError(t, cache.Put(key, "x.c", res.Tokens))

	got, ok, err := cache.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, res.Tokens, got)

	var other project.Digest
	_, ok, err = cache.Get(other)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDiskCacheServesSecondRun(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/s/a.c", []byte("int main;"), 0o644))
	cache, err := NewDiskCache(fsys, "/cache")
	require.NoError(t, err)
	opts := Options{Cache: cache}

	first, err := Tokenize(context.Background(), fsys, "/s/a.c", opts)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := Tokenize(context.Background(), fsys, "/s/a.c", opts)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Tokens, second.Tokens)

	require.NoError(t, cache.DropAll())
	third, err := Tokenize(context.Background(), fsys, "/s/a.c", opts)
	require.NoError(t, err)
	assert.False(t, third.Cached)
}

func TestDiskCacheSkipsFailures(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/s/bad.c", []byte("\"x"), 0o644))
	cache, err := NewDiskCache(fsys, "/cache")
	require.NoError(t, err)

	res, err := Tokenize(context.Background(), fsys, "/s/bad.c", Options{Cache: cache})
	require.NoError(t, err)
	require.NotNil(t, res.Diag)

	_, ok, err := cache.Get(cacheKey(res.File))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDiskCacheIgnoresOtherSchema(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cache, err := NewDiskCache(fsys, "/cache")
	require.NoError(t, err)

	var key project.Digest
	key[0] = 7
	stale, err := msgpack.Marshal(&DiskPayload{
		Schema: diskCacheSchemaVersion + 1,
		Path:   "a.c",
		Tokens: []CachedToken{{Kind: uint8(token.Identifier), Text: "a", Line: 1, Column: 1}},
	})
	require.NoError(t, err)
	require.NoError(t, fsys.MkdirAll(filepath.Dir(cache.pathFor(key)), 0o755))
	require.NoError(t, afero.WriteFile(fsys, cache.pathFor(key), stale, 0o644))

	got, ok, err := cache.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)

	require.NoError(t, afero.WriteFile(fsys, cache.pathFor(key), []byte{0xc1}, 0o644))
	_, _, err = cache.Get(key)
	require.Error(t, err)
}

func TestNilDiskCacheIsNoop(t *testing.T) {
	var c *DiskCache
	var key project.Digest
	require.NoError(t, c.Put(key, "a.c", nil))
	_, ok, err := c.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, c.DropAll())
	assert.Equal(t, "", c.Dir())
}
