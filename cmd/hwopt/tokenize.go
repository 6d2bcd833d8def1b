package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"hwopt/internal/diag"
	"hwopt/internal/lexer"
	"hwopt/internal/source"
	"hwopt/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.hw>",
	Short: "Dump the token stream of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "text", "output format: text or json")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}

	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	id, err := fs.Load(args[0])
	if err != nil {
		return err
	}
	file := fs.Get(id)

	bag := diag.NewBag(maxDiag)
	toks := lexer.Tokenize(file, lexer.DefaultOptions(diag.NewBagReporter(bag)))

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(tokensToJSON(fs, toks))
	}

	for _, tok := range toks {
		start, _ := fs.Resolve(tok.Span)
		fmt.Fprintf(out, "%4d:%-3d %-12s %q\n", start.Line, start.Col, tok.Kind, tok.Text)
	}
	if bag.Len() > 0 {
		fmt.Fprintf(out, "%d diagnostic(s)\n", bag.Len())
	}
	return nil
}

type jsonToken struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

func tokensToJSON(fs *source.FileSet, toks []token.Token) []jsonToken {
	out := make([]jsonToken, 0, len(toks))
	for _, tok := range toks {
		start, _ := fs.Resolve(tok.Span)
		out = append(out, jsonToken{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Line: start.Line,
			Col:  start.Col,
		})
	}
	return out
}
