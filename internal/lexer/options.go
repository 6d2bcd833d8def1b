package lexer

import (
	"hwopt/internal/diag"
	"hwopt/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil; lexing continues
	// either way.
	Reporter diag.Reporter
	// Interner deduplicates identifier text. May be nil; the lexer then
	// owns a private one.
	Interner *source.Interner
	// MaxTokens bounds the token stream. 0 means no limit.
	MaxTokens uint32
	// MaxIdentLen bounds identifier length in bytes. 0 means no limit.
	MaxIdentLen uint32
}

// DefaultOptions returns the limits used by the CLI.
func DefaultOptions(r diag.Reporter) Options {
	return Options{
		Reporter:    r,
		MaxTokens:   1 << 20,
		MaxIdentLen: 512,
	}
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
