// Package driver orchestrates parsing, pass pipelines and caching for the
// CLI commands.
package driver

import (
	"hwopt/internal/diag"
	"hwopt/internal/ir"
	"hwopt/internal/parser"
	"hwopt/internal/source"
)

// ParseResult is the outcome of parsing one file.
type ParseResult struct {
	Path    string
	FileID  source.FileID
	FileSet *source.FileSet
	Circuit *ir.Circuit
	Bag     *diag.Bag
}

// Parse loads and parses a single file.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	c := parser.ParseFile(fs.Get(id), diag.NewBagReporter(bag))
	return &ParseResult{
		Path:    path,
		FileID:  id,
		FileSet: fs,
		Circuit: c,
		Bag:     bag,
	}, nil
}

// ParseBytes parses in-memory content, for stdin and tests.
func ParseBytes(name string, content []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	bag := diag.NewBag(maxDiagnostics)
	c := parser.ParseFile(fs.Get(id), diag.NewBagReporter(bag))
	return &ParseResult{
		Path:    name,
		FileID:  id,
		FileSet: fs,
		Circuit: c,
		Bag:     bag,
	}
}
