package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"cfront/internal/project"
	"cfront/internal/source"
)

// settings — итоговые параметры запуска: флаги поверх cfront.toml поверх умолчаний.
type settings struct {
	format         string
	color          bool
	encoding       source.Encoding
	jobs           int
	cache          bool
	maxDiagnostics int
	timings        bool
	ui             uiMode
	configPath     string
}

// flagValue returns the flag's value and whether the user set it explicitly.
// Missing flags (not defined on this command) read as unset.
func flagValue(cmd *cobra.Command, name string) (string, bool) {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		return "", false
	}
	return f.Value.String(), f.Changed
}

// loadSettings merges defaults, the nearest cfront.toml and explicit flags.
func loadSettings(cmd *cobra.Command, fsys afero.Fs) (*settings, error) {
	cfg, cfgPath, err := loadProjectConfig(cmd, fsys)
	if err != nil {
		return nil, err
	}

	st := &settings{format: "pretty", configPath: cfgPath}

	// format
	if cfg.Output.Format != "" {
		st.format = cfg.Output.Format
	}
	if v, changed := flagValue(cmd, "format"); changed {
		st.format = strings.ToLower(v)
	}

	// color
	colorMode := "auto"
	if cfg.Output.Color != "" {
		colorMode = cfg.Output.Color
	}
	if v, changed := flagValue(cmd, "color"); changed {
		colorMode = v
	}
	st.color, err = resolveColor(colorMode, isTerminal(os.Stderr))
	if err != nil {
		return nil, err
	}
	color.NoColor = !st.color

	// encoding
	encName := cfg.Source.Encoding
	if v, changed := flagValue(cmd, "encoding"); changed {
		encName = v
	}
	if st.encoding, err = source.ParseEncoding(encName); err != nil {
		return nil, err
	}

	// jobs / cache
	st.jobs = cfg.Run.Jobs
	if cmd.Flags().Changed("jobs") {
		if st.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return nil, err
		}
	}
	if cfg.Run.Cache != nil {
		st.cache = *cfg.Run.Cache
	}
	if cmd.Flags().Changed("cache") {
		if st.cache, err = cmd.Flags().GetBool("cache"); err != nil {
			return nil, err
		}
	}

	// общие флаги
	if st.maxDiagnostics, err = cmd.Flags().GetInt("max-diagnostics"); err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if st.timings, err = cmd.Flags().GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	uiValue, _ := flagValue(cmd, "ui")
	if st.ui, err = readUIMode(uiValue); err != nil {
		return nil, err
	}
	return st, nil
}

// loadProjectConfig reads --config or discovers cfront.toml; absence is not an error.
func loadProjectConfig(cmd *cobra.Command, fsys afero.Fs) (project.Config, string, error) {
	if explicit, _ := flagValue(cmd, "config"); explicit != "" {
		cfg, err := project.LoadConfig(fsys, explicit)
		return cfg, explicit, err
	}
	manifest, ok, err := project.Discover(fsys, ".")
	if err != nil || !ok {
		return project.Config{}, "", err
	}
	return manifest.Config, manifest.Path, nil
}

func resolveColor(mode string, tty bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		return tty && os.Getenv("NO_COLOR") == "", nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}

func checkFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q (expected %s)", format, strings.Join(allowed, "|"))
}
