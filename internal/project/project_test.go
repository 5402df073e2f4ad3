package project

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverWalksUp(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/proj/src/deep", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/proj/cfront.toml", []byte(`
[output]
format = "json"
color = "off"

[source]
encoding = "latin1"

[run]
jobs = 3
cache = false
`), 0o644))

	m, ok, err := Discover(fsys, "/proj/src/deep")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/proj/cfront.toml", m.Path)
	assert.Equal(t, "/proj", m.Root)
	assert.Equal(t, "json", m.Config.Output.Format)
	assert.Equal(t, "off", m.Config.Output.Color)
	assert.Equal(t, "latin1", m.Config.Source.Encoding)
	assert.Equal(t, 3, m.Config.Run.Jobs)
	require.NotNil(t, m.Config.Run.Cache)
	assert.False(t, *m.Config.Run.Cache)

	root, ok, err := FindProjectRoot(fsys, "/proj/src")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/proj", root)
}

func TestDiscoverMissing(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/empty/dir", 0o755))

	m, ok, err := Discover(fsys, "/empty/dir")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, m)
}

func TestParseConfigRejectsUnknownKeys(t *testing.T) {
	_, err := ParseConfig("cfront.toml", "[output]\nformat = \"pretty\"\nwidth = 80\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys: output.width")
}

func TestParseConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"format", "[output]\nformat = \"xml\"", "output.format"},
		{"color", "[output]\ncolor = \"always\"", "output.color"},
		{"encoding", "[source]\nencoding = \"koi8-r\"", "source.encoding"},
		{"jobs", "[run]\njobs = -1", "run.jobs"},
		{"syntax", "[output\n", "failed to parse TOML"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseConfig("cfront.toml", tc.text)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig("cfront.toml", "")
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestCombineIsOrderSensitive(t *testing.T) {
	var base Digest
	base[0] = 1
	a := Combine(base, []byte("x"), []byte("y"))
	b := Combine(base, []byte("y"), []byte("x"))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, Combine(base, []byte("x"), []byte("y")))
}
