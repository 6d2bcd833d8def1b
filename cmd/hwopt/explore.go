package main

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"hwopt/internal/driver"
	"hwopt/internal/ui"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [flags] <file.hw>",
	Short: "Browse a circuit interactively",
	Long: `Explore opens an interactive tree view of the parsed circuit. Use the
arrow keys to move, enter to fold or unfold an op, and q to quit.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	res, err := driver.Parse(args[0], maxDiag)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if reportDiagnostics(cmd, res) {
		return fmt.Errorf("%s: parse errors", args[0])
	}

	model := ui.NewExplorer(filepath.Base(args[0]), res.Circuit)
	prog := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("explorer failed: %w", err)
	}
	return nil
}
