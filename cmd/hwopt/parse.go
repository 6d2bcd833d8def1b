package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hwopt/internal/diagfmt"
	"hwopt/internal/driver"
	"hwopt/internal/ir"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.hw|directory>",
	Short: "Parse textual hardware IR and dump the tree",
	Long:  `Parse analyzes a .hw file or all .hw files in a directory and dumps the resulting IR`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "text", "output format (text|json)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		res, err := driver.Parse(path, maxDiag)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		if reportDiagnostics(cmd, res) {
			return fmt.Errorf("%s: parse errors", path)
		}
		return dumpCircuit(cmd, res, format)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	results, err := driver.ParseDir(context.Background(), path, jobs, maxDiag)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no %s files under %s", driver.InputExt, path)
	}

	failed := 0
	for _, res := range results {
		if reportDiagnostics(cmd, res) {
			failed++
			continue
		}
		if err := dumpCircuit(cmd, res, format); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files had parse errors", failed, len(results))
	}
	return nil
}

func dumpCircuit(cmd *cobra.Command, res *driver.ParseResult, format string) error {
	switch format {
	case "text":
		return ir.Print(cmd.OutOrStdout(), res.Circuit)
	case "json":
		return diagfmt.CircuitJSON(cmd.OutOrStdout(), res.Circuit)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
