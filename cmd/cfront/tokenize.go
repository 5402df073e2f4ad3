package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cfront/internal/diagfmt"
	"cfront/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file|dir|->...",
	Short: "Print the preprocessing tokens of C sources",
	Long: `Tokenize normalizes each file (trigraphs, then line splicing) and prints its
preprocessing tokens. Directories expand to their *.c and *.h files; "-" reads stdin.
A file that fails to scan prints its diagnostic and makes the command exit with status 1.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml)")
	tokenizeCmd.Flags().Int("width", 0, "truncate lexemes to this many terminal columns in pretty output (0=off)")
	addBatchFlags(tokenizeCmd)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd, osFs)
	if err != nil {
		return err
	}
	if err := checkFormat(st.format, "pretty", "json", "yaml"); err != nil {
		return err
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}

	if len(args) == 1 && args[0] == "-" {
		return tokenizeStdin(cmd, st, width)
	}

	batch, err := runBatch(cmd, st, "tokenize", args)
	if err != nil {
		return err
	}
	if err := reportFailures(os.Stderr, st, batch); err != nil {
		return err
	}

	files := make([]diagfmt.FileTokens, 0, len(batch.Results))
	for _, r := range batch.Results {
		if r.Failed() {
			continue
		}
		files = append(files, diagfmt.FileTokens{Path: r.Path, Tokens: r.Tokens})
	}
	if err := writeTokens(cmd.OutOrStdout(), st.format, files, width); err != nil {
		return err
	}
	printBatchTimings(os.Stderr, st, batch)

	if batch.Failed() > 0 {
		return errFailed
	}
	return nil
}

func tokenizeStdin(cmd *cobra.Command, st *settings, width int) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	opts, err := driverOptions(st)
	if err != nil {
		return err
	}
	res := driver.TokenizeString(cmd.Context(), "<stdin>", string(data), opts)
	if res.Diag != nil {
		if err := printDiagnostic(st, res.Diag); err != nil {
			return err
		}
		return errFailed
	}
	if res.Err != nil {
		return res.Err
	}
	if err := writeTokens(cmd.OutOrStdout(), st.format, []diagfmt.FileTokens{{Path: res.Path, Tokens: res.Tokens}}, width); err != nil {
		return err
	}
	if st.timings && res.Timing != nil {
		fmt.Fprint(os.Stderr, res.Timing.Summary())
	}
	return nil
}

func writeTokens(w io.Writer, format string, files []diagfmt.FileTokens, width int) error {
	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(w, files)
	case "yaml":
		return diagfmt.FormatTokensYAML(w, files)
	default:
		return diagfmt.FormatTokensPretty(w, files, diagfmt.TokenOpts{Width: width})
	}
}
