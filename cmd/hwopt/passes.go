package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hwopt/internal/passes"
)

var passesCmd = &cobra.Command{
	Use:   "passes",
	Short: "List available passes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, name := range passes.Names() {
			fmt.Fprintln(out, name)
		}
	},
}
