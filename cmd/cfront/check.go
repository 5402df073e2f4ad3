package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cfront/internal/driver"
	"cfront/internal/normalize"
	"cfront/internal/testkit"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file|dir>...",
	Short: "Scan C sources and report unterminated literals and header names",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json|short)")
	checkCmd.Flags().Bool("verify", false, "also verify token-stream invariants of clean files")
	addBatchFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd, osFs)
	if err != nil {
		return err
	}
	if err := checkFormat(st.format, "pretty", "json", "short"); err != nil {
		return err
	}
	verify, err := cmd.Flags().GetBool("verify")
	if err != nil {
		return fmt.Errorf("failed to get verify flag: %w", err)
	}

	batch, err := runBatch(cmd, st, "check", args)
	if err != nil {
		return err
	}
	if err := reportFailures(os.Stderr, st, batch); err != nil {
		return err
	}

	failed := batch.Failed()
	if verify {
		failed += verifyBatch(batch)
	}
	printBatchTimings(os.Stderr, st, batch)

	if st.format == "pretty" {
		fmt.Fprintf(cmd.OutOrStdout(), "%d files checked, %d failed\n", len(batch.Results), failed)
	}
	if failed > 0 {
		return errFailed
	}
	return nil
}

// verifyBatch rechecks token invariants of every clean file; it returns
// the number of violations.
func verifyBatch(batch *driver.BatchResult) int {
	bad := 0
	for _, r := range batch.Results {
		if r.Failed() {
			continue
		}
		if err := testkit.CheckTokenInvariants(normalize.Apply(string(r.File.Content)), r.Tokens); err != nil {
			fmt.Fprintf(os.Stderr, "%s: invariant violated: %v\n", r.Path, err)
			bad++
		}
	}
	return bad
}
