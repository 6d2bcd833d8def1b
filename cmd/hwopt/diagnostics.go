package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hwopt/internal/diagfmt"
	"hwopt/internal/driver"
)

// reportDiagnostics prints a parse result's diagnostics to stderr and
// returns whether any were errors.
func reportDiagnostics(cmd *cobra.Command, res *driver.ParseResult) bool {
	if res.Bag.Len() == 0 {
		return false
	}
	res.Bag.Sort()
	diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	})
	return res.Bag.HasErrors()
}

func maxDiagnostics(cmd *cobra.Command) (int, error) {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return n, nil
}
