package project

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"cfront/internal/source"
)

// Config mirrors cfront.toml. Every field is optional; zero values mean
// "use the CLI default".
type Config struct {
	Output OutputConfig `toml:"output"`
	Source SourceConfig `toml:"source"`
	Run    RunConfig    `toml:"run"`
}

type OutputConfig struct {
	Format string `toml:"format"` // pretty|json|yaml|short
	Color  string `toml:"color"`  // auto|on|off
}

type SourceConfig struct {
	Encoding string `toml:"encoding"`
}

type RunConfig struct {
	Jobs  int   `toml:"jobs"`
	Cache *bool `toml:"cache"`
}

// Manifest is a loaded cfront.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Discover finds and loads the nearest cfront.toml above startDir.
// ok is false when there is none.
func Discover(fsys afero.Fs, startDir string) (*Manifest, bool, error) {
	path, ok, err := FindConfig(fsys, startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(fsys, path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// LoadConfig decodes and validates a configuration file. Unknown keys are
// rejected.
func LoadConfig(fsys afero.Fs, path string) (Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return ParseConfig(path, string(data))
}

// ParseConfig decodes configuration text; path is used in error messages.
func ParseConfig(path, text string) (Config, error) {
	var cfg Config
	meta, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch c.Output.Format {
	case "", "pretty", "json", "yaml", "short":
	default:
		return fmt.Errorf("output.format: unsupported value %q (expected pretty|json|yaml|short)", c.Output.Format)
	}
	switch c.Output.Color {
	case "", "auto", "on", "off":
	default:
		return fmt.Errorf("output.color: unsupported value %q (expected auto|on|off)", c.Output.Color)
	}
	if c.Source.Encoding != "" {
		if _, err := source.ParseEncoding(c.Source.Encoding); err != nil {
			return fmt.Errorf("source.encoding: %w", err)
		}
	}
	if c.Run.Jobs < 0 {
		return fmt.Errorf("run.jobs: must be >= 0, got %d", c.Run.Jobs)
	}
	return nil
}
