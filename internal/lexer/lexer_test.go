package lexer_test

import (
	"testing"

	"hwopt/internal/diag"
	"hwopt/internal/lexer"
	"hwopt/internal/source"
	"hwopt/internal/token"
)

func lexString(t *testing.T, input string, r diag.Reporter) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.hw", []byte(input))
	return lexer.Tokenize(fs.Get(id), lexer.Options{Reporter: r})
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tk := range toks {
		out = append(out, tk.Kind)
	}
	return out
}

func TestTokenizeWireDecl(t *testing.T) {
	toks := lexString(t, "wire data: uint<8>", nil)

	want := []token.Kind{
		token.KwWire, token.Ident, token.Colon,
		token.KwUint, token.Lt, token.IntLit, token.Gt,
		token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if toks[1].Text != "data" {
		t.Errorf("ident text = %q, want data", toks[1].Text)
	}
	if toks[5].Text != "8" {
		t.Errorf("int text = %q, want 8", toks[5].Text)
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	toks := lexString(t, "Wire wire", nil)
	if toks[0].Kind != token.Ident {
		t.Errorf("Wire lexed as %v, want Ident", toks[0].Kind)
	}
	if toks[1].Kind != token.KwWire {
		t.Errorf("wire lexed as %v, want KwWire", toks[1].Kind)
	}
}

func TestCommentsAndWhitespaceSkipped(t *testing.T) {
	toks := lexString(t, "// header\nmodule Top { // trailing\n}\n", nil)
	want := []token.Kind{token.KwModule, token.Ident, token.LBrace, token.RBrace, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestUnknownCharReported(t *testing.T) {
	bag := diag.NewBag(10)
	toks := lexString(t, "wire @ x", diag.NewBagReporter(bag))

	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("diagnostics: %+v", bag.Items())
	}
	// Lexing continues past the bad byte.
	want := []token.Kind{token.KwWire, token.Ident, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBadNumberReported(t *testing.T) {
	bag := diag.NewBag(10)
	toks := lexString(t, "8abc", diag.NewBagReporter(bag))

	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexBadNumber {
		t.Fatalf("diagnostics: %+v", bag.Items())
	}
	if toks[0].Kind != token.IntLit {
		t.Errorf("recovery token = %v, want IntLit", toks[0].Kind)
	}
}

func TestTokenLimit(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.hw", []byte("a b c d e"))
	bag := diag.NewBag(10)
	toks := lexer.Tokenize(fs.Get(id), lexer.Options{
		Reporter:  diag.NewBagReporter(bag),
		MaxTokens: 3,
	})

	// 3 idents then a forced EOF.
	if len(toks) != 4 || toks[3].Kind != token.EOF {
		t.Fatalf("tokens: %v", kinds(toks))
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexTooManyTokens {
		t.Fatalf("diagnostics: %+v", bag.Items())
	}
}

func TestSpans(t *testing.T) {
	toks := lexString(t, "wire x", nil)
	if toks[0].Span.Start != 0 || toks[0].Span.End != 4 {
		t.Errorf("wire span = %v", toks[0].Span)
	}
	if toks[1].Span.Start != 5 || toks[1].Span.End != 6 {
		t.Errorf("x span = %v", toks[1].Span)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.hw", []byte("wire x"))
	lx := lexer.New(fs.Get(id), lexer.Options{})

	if lx.Peek().Kind != token.KwWire {
		t.Fatal("peek")
	}
	if lx.Next().Kind != token.KwWire {
		t.Fatal("next after peek")
	}
	if lx.Next().Kind != token.Ident {
		t.Fatal("second next")
	}
}
