package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cfront/internal/diag"
	"cfront/internal/diagfmt"
	"cfront/internal/driver"
)

// addBatchFlags registers the flags shared by tokenize, check and watch.
func addBatchFlags(cmd *cobra.Command) {
	cmd.Flags().String("encoding", "utf-8", "source encoding (utf-8|latin1|windows-1252)")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().Bool("cache", false, "reuse token streams from the disk cache")
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

func driverOptions(st *settings) (driver.Options, error) {
	opts := driver.Options{
		Encoding:       st.encoding,
		Jobs:           st.jobs,
		MaxDiagnostics: st.maxDiagnostics,
		Timings:        st.timings,
	}
	if st.cache {
		cache, err := driver.OpenDiskCache(osFs, "cfront")
		if err != nil {
			return opts, fmt.Errorf("open cache: %w", err)
		}
		opts.Cache = cache
	}
	return opts, nil
}

// runBatch expands args and tokenizes every file, with the progress view
// when it applies.
func runBatch(cmd *cobra.Command, st *settings, title string, args []string) (*driver.BatchResult, error) {
	paths, err := driver.ExpandInputs(osFs, args)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no C sources found in %v", args)
	}
	opts, err := driverOptions(st)
	if err != nil {
		return nil, err
	}
	if shouldUseTUI(st.ui, len(paths)) {
		return runBatchWithUI(cmd.Context(), title, paths, opts)
	}
	return driver.TokenizeFiles(cmd.Context(), osFs, paths, opts)
}

// reportFailures prints scan diagnostics and I/O errors to w.
func reportFailures(w io.Writer, st *settings, batch *driver.BatchResult) error {
	for _, r := range batch.Results {
		if r != nil && r.Err != nil {
			fmt.Fprintf(w, "error: %v\n", r.Err)
		}
	}
	items := batch.Bag.Items()
	if len(items) == 0 {
		return nil
	}
	switch st.format {
	case "json":
		return diagfmt.JSON(w, items, diagfmt.JSONOpts{Max: st.maxDiagnostics})
	case "short":
		// одна строка на ошибку — для quickfix-списков редакторов
		_, err := io.WriteString(w, diag.FormatShort(items)+"\n")
		return err
	}
	return diagfmt.Pretty(w, items, diagfmt.PrettyOpts{Color: st.color, ShowPath: true})
}

// printDiagnostic renders a single failure (stdin path) the same way.
func printDiagnostic(st *settings, d *diag.Diagnostic) error {
	if st.format == "json" {
		return diagfmt.JSON(os.Stderr, []*diag.Diagnostic{d}, diagfmt.JSONOpts{})
	}
	return diagfmt.Pretty(os.Stderr, []*diag.Diagnostic{d}, diagfmt.PrettyOpts{Color: st.color, ShowPath: d.Path() != ""})
}
