package lexer

import (
	"fmt"

	"hwopt/internal/diag"
	"hwopt/internal/source"
	"hwopt/internal/token"
)

// Lexer turns file content into a stream of tokens. Whitespace and
// line comments ("//") are skipped.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	opts     Options
	interner *source.Interner
	look     *token.Token // one-token lookahead buffer
	emitted  uint32
}

// New creates a lexer over the given file.
func New(file *source.File, opts Options) *Lexer {
	interner := opts.Interner
	if interner == nil {
		interner = source.NewInterner()
	}
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		opts:     opts,
		interner: interner,
	}
}

// Next returns the next significant token. After EOF it keeps
// returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	return lx.scan()
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		tok := lx.scan()
		lx.look = &tok
	}
	return *lx.look
}

// Tokenize drains the lexer into a slice, EOF token included.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	out := make([]token.Token, 0, 128)
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) scan() token.Token {
	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.cursor.Span(lx.cursor.Off)}
	}
	if lx.opts.MaxTokens != 0 && lx.emitted >= lx.opts.MaxTokens {
		sp := lx.cursor.Span(lx.cursor.Off)
		lx.report(diag.LexTooManyTokens, sp, fmt.Sprintf("token limit %d reached", lx.opts.MaxTokens))
		lx.cursor.Off = lx.cursor.Limit
		return token.Token{Kind: token.EOF, Span: sp}
	}

	var tok token.Token
	var ok bool
	for !ok {
		if lx.cursor.EOF() {
			return token.Token{Kind: token.EOF, Span: lx.cursor.Span(lx.cursor.Off)}
		}
		ch := lx.cursor.Peek()
		switch {
		case isIdentStart(ch):
			tok, ok = lx.scanIdentOrKeyword(), true
		case ch >= '0' && ch <= '9':
			tok, ok = lx.scanInt(), true
		default:
			tok, ok = lx.scanPunct()
		}
		if !ok {
			lx.skipTrivia()
		}
	}
	lx.emitted++
	return tok
}

// skipTrivia consumes whitespace and // comments.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch ch := lx.cursor.Peek(); {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			lx.cursor.Bump()
		case ch == '/' && lx.cursor.PeekAt(1) == '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Off
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.Span(start)
	// Repeated identifiers share one interned backing string.
	text := lx.interner.MustLookup(lx.interner.InternBytes(lx.file.Content[sp.Start:sp.End]))

	if lx.opts.MaxIdentLen != 0 && sp.Len() > lx.opts.MaxIdentLen {
		lx.report(diag.LexBadIdentifier, sp, fmt.Sprintf("identifier longer than %d bytes", lx.opts.MaxIdentLen))
	}
	if kind, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kind, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

func (lx *Lexer) scanInt() token.Token {
	start := lx.cursor.Off
	for !lx.cursor.EOF() && lx.cursor.Peek() >= '0' && lx.cursor.Peek() <= '9' {
		lx.cursor.Bump()
	}
	// A digit run glued to identifier characters is not a number.
	if !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.Span(start)
		lx.report(diag.LexBadNumber, sp, fmt.Sprintf("malformed number %q", string(lx.file.Content[sp.Start:sp.End])))
		return token.Token{Kind: token.IntLit, Span: sp, Text: "0"}
	}
	sp := lx.cursor.Span(start)
	return token.Token{Kind: token.IntLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanPunct scans a punctuation token. On an unknown character it reports,
// consumes the byte, and returns ok=false so the caller resyncs.
func (lx *Lexer) scanPunct() (token.Token, bool) {
	start := lx.cursor.Off
	ch := lx.cursor.Peek()
	lx.cursor.Bump()
	sp := lx.cursor.Span(start)

	var kind token.Kind
	switch ch {
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case ':':
		kind = token.Colon
	case ',':
		kind = token.Comma
	case '=':
		kind = token.Assign
	case '<':
		kind = token.Lt
	case '>':
		kind = token.Gt
	default:
		lx.report(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", ch))
		return token.Token{}, false
	}
	return token.Token{Kind: kind, Span: sp, Text: string(ch)}, true
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}
