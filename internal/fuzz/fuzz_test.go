// Package fuzztests houses Go fuzz harnesses for the source -> lexer ->
// parser pipeline. They guard against panics and hangs on arbitrary input,
// especially around error recovery.
package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hwopt/internal/diag"
	"hwopt/internal/lexer"
	"hwopt/internal/parser"
	"hwopt/internal/source"
	"hwopt/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

// parseTimeout bounds a single parse. An input that takes longer than this
// points at an infinite loop in error recovery.
const parseTimeout = 5 * time.Second

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(_ *testing.T, input []byte) {
		input = clampSeed(input)

		fileSet := source.NewFileSet()
		file := fileSet.Get(fileSet.AddVirtual("fuzz.hw", input))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.DefaultOptions(diag.NewBagReporter(bag)))
		for lx.Next().Kind != token.EOF {
		}
	})
}

func FuzzParserBuildsIR(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fileSet := source.NewFileSet()
		file := fileSet.Get(fileSet.AddVirtual("fuzz.hw", input))

		bag := diag.NewBag(128)
		circuit := parser.ParseFile(file, diag.NewBagReporter(bag))
		if circuit == nil {
			t.Fatal("ParseFile returned nil circuit")
		}
	})
}

// FuzzParserNoHang runs the parser in a goroutine with a deadline to catch
// error-recovery loops that never consume a token.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// Recovery-sensitive shapes: missing braces, misplaced ports, statements
	// that start with block terminators.
	f.Add([]byte("circuit C { module M { wire w: uint<1> } }"))
	f.Add([]byte("circuit C { module M { when w { input p: clock } } }"))
	f.Add([]byte("circuit C { module M { wire w uint<1> } }"))
	f.Add([]byte("circuit C { module M { } } }"))
	f.Add([]byte("circuit C { module M { when a { when b { when c { } } } } }"))
	f.Add([]byte("circuit"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		done := make(chan struct{})
		go func() {
			defer close(done)

			fileSet := source.NewFileSet()
			file := fileSet.Get(fileSet.AddVirtual("fuzz.hw", input))
			bag := diag.NewBag(128)
			_ = parser.ParseFile(file, diag.NewBagReporter(bag))
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang: input (%d bytes): %q",
				len(input), truncateForLog(input, 200))
		}
	})
}

func addCorpusSeeds(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("circuit Top { }\n"))
	f.Add([]byte(`circuit Top {
  module Top {
    input clk: clock
    wire tmp: uint<8>
    reg r: uint<8>, clk
    node n = tmp
    connect r, n
  }
}
`))

	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".hw" {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxFuzzInput {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxFuzzInput]...)
}

func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen], []byte("...")...)
}
