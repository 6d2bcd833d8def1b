// Package parser turns textual hardware IR into an ir.Circuit.
package parser

import (
	"fmt"
	"strconv"

	"hwopt/internal/diag"
	"hwopt/internal/ir"
	"hwopt/internal/lexer"
	"hwopt/internal/source"
	"hwopt/internal/token"
)

// Parser builds an ir.Circuit from a token stream. Errors go to the
// reporter; parsing recovers at statement keywords and closing braces, so a
// single mistake does not abort the file.
type Parser struct {
	lx       *lexer.Lexer
	reporter diag.Reporter
	tok      token.Token
}

// New creates a parser over the given file.
func New(file *source.File, r diag.Reporter) *Parser {
	p := &Parser{
		lx:       lexer.New(file, lexer.DefaultOptions(r)),
		reporter: r,
	}
	p.advance()
	return p
}

// ParseFile parses one file into a circuit. The result is non-nil even when
// diagnostics were reported; callers decide what to do with a broken tree.
func ParseFile(file *source.File, r diag.Reporter) *ir.Circuit {
	return New(file, r).Circuit()
}

// Circuit parses `circuit <name> { module* }`.
func (p *Parser) Circuit() *ir.Circuit {
	start := p.tok.Span
	c := &ir.Circuit{}

	if !p.expect(token.KwCircuit) {
		return c
	}
	c.Ident = p.ident()

	ops := []ir.Op{}
	if p.expect(token.LBrace) {
		for p.tok.Kind != token.RBrace && p.tok.Kind != token.EOF {
			if p.tok.Kind != token.KwModule {
				p.errorf(diag.SynTopLevel, p.tok.Span,
					"expected module declaration, found %q", p.tok.Kind)
				p.syncTo(token.KwModule, token.RBrace)
				continue
			}
			ops = append(ops, p.module())
		}
		p.expect(token.RBrace)
	}

	c.Body = ir.BlockOf(ops...)
	c.Span = start.Cover(p.tok.Span)
	return c
}

func (p *Parser) module() *ir.Module {
	start := p.tok.Span
	p.advance() // module
	m := &ir.Module{Ident: p.ident()}

	if !p.expect(token.LBrace) {
		m.Span = start
		return m
	}

	var ops []ir.Op
	for p.tok.Kind != token.RBrace && p.tok.Kind != token.EOF {
		switch p.tok.Kind {
		case token.KwInput, token.KwOutput:
			m.Ports = append(m.Ports, p.port())
		default:
			if op, ok := p.stmt(); ok {
				ops = append(ops, op)
			}
		}
	}
	end := p.tok.Span
	p.expect(token.RBrace)

	m.Body = ir.BlockOf(ops...)
	m.Span = start.Cover(end)
	return m
}

func (p *Parser) port() ir.Port {
	start := p.tok.Span
	dir := ir.Input
	if p.tok.Kind == token.KwOutput {
		dir = ir.Output
	}
	p.advance()
	name := p.ident()
	p.expect(token.Colon)
	typ := p.typ()
	return ir.Port{Dir: dir, Ident: name, Type: typ, Span: start.Cover(p.tok.Span)}
}

// stmt parses one body statement. ok is false when the current token does
// not start a statement; the token is reported and skipped.
func (p *Parser) stmt() (ir.Op, bool) {
	switch p.tok.Kind {
	case token.KwWire:
		return p.wire(), true
	case token.KwReg:
		return p.reg(), true
	case token.KwNode:
		return p.node(), true
	case token.KwInst:
		return p.inst(), true
	case token.KwWhen:
		return p.when(), true
	case token.KwConnect:
		return p.connect(), true
	default:
		p.errorf(diag.SynUnexpectedToken, p.tok.Span,
			"unexpected %q in module body", p.tok.Kind)
		p.advance()
		p.syncTo(token.KwWire, token.KwReg, token.KwNode, token.KwInst,
			token.KwWhen, token.KwConnect, token.KwInput, token.KwOutput, token.RBrace)
		return nil, false
	}
}

func (p *Parser) wire() *ir.Wire {
	start := p.tok.Span
	p.advance() // wire
	w := &ir.Wire{Ident: p.ident()}
	p.expect(token.Colon)
	w.Type = p.typ()
	w.Span = start.Cover(p.tok.Span)
	return w
}

func (p *Parser) reg() *ir.Reg {
	start := p.tok.Span
	p.advance() // reg
	r := &ir.Reg{Ident: p.ident()}
	p.expect(token.Colon)
	r.Type = p.typ()
	p.expect(token.Comma)
	r.Clock = p.ref()
	r.Span = start.Cover(p.tok.Span)
	return r
}

func (p *Parser) node() *ir.Node {
	start := p.tok.Span
	p.advance() // node
	n := &ir.Node{Ident: p.ident()}
	p.expect(token.Assign)
	n.Operand = p.ref()
	n.Span = start.Cover(p.tok.Span)
	return n
}

func (p *Parser) inst() *ir.Instance {
	start := p.tok.Span
	p.advance() // inst
	i := &ir.Instance{Ident: p.ident()}
	p.expect(token.KwOf)
	i.Target = p.ident()
	i.Span = start.Cover(p.tok.Span)
	return i
}

func (p *Parser) when() *ir.When {
	start := p.tok.Span
	p.advance() // when
	w := &ir.When{Cond: p.ref()}

	w.Then = p.blockRegion()
	if p.tok.Kind == token.KwElse {
		p.advance()
		w.Else = p.blockRegion()
	} else {
		w.Else = ir.BlockOf()
	}
	w.Span = start.Cover(p.tok.Span)
	return w
}

func (p *Parser) blockRegion() ir.Region {
	var ops []ir.Op
	if !p.expect(token.LBrace) {
		return ir.BlockOf()
	}
	for p.tok.Kind != token.RBrace && p.tok.Kind != token.EOF {
		if op, ok := p.stmt(); ok {
			ops = append(ops, op)
		}
	}
	p.expect(token.RBrace)
	return ir.BlockOf(ops...)
}

func (p *Parser) connect() *ir.Connect {
	start := p.tok.Span
	p.advance() // connect
	c := &ir.Connect{Dst: p.ref()}
	p.expect(token.Comma)
	c.Src = p.ref()
	c.Span = start.Cover(p.tok.Span)
	return c
}

func (p *Parser) typ() ir.Type {
	switch p.tok.Kind {
	case token.KwClock:
		p.advance()
		return ir.Clock()
	case token.KwReset:
		p.advance()
		return ir.Reset()
	case token.KwUint, token.KwSint:
		kind := ir.TypeUInt
		if p.tok.Kind == token.KwSint {
			kind = ir.TypeSInt
		}
		p.advance()
		p.expect(token.Lt)
		width := p.intLit()
		p.expect(token.Gt)
		return ir.Type{Kind: kind, Width: width}
	default:
		p.errorf(diag.SynExpectType, p.tok.Span,
			"expected type, found %q", p.tok.Kind)
		p.advance()
		return ir.Type{}
	}
}

func (p *Parser) ref() ir.Ref {
	sp := p.tok.Span
	return ir.Ref{Ident: p.ident(), Span: sp}
}

// ident consumes an identifier and returns its text, or "" after reporting.
func (p *Parser) ident() string {
	if p.tok.Kind != token.Ident {
		p.errorf(diag.SynExpectIdent, p.tok.Span,
			"expected identifier, found %q", p.tok.Kind)
		return ""
	}
	text := p.tok.Text
	p.advance()
	return text
}

func (p *Parser) intLit() uint32 {
	if p.tok.Kind != token.IntLit {
		p.errorf(diag.SynExpectInt, p.tok.Span,
			"expected integer, found %q", p.tok.Kind)
		return 0
	}
	v, err := strconv.ParseUint(p.tok.Text, 10, 32)
	if err != nil {
		p.errorf(diag.SynExpectInt, p.tok.Span, "integer %q out of range", p.tok.Text)
		v = 0
	}
	p.advance()
	return uint32(v)
}

// expect consumes a token of the given kind, reporting if it is absent.
func (p *Parser) expect(kind token.Kind) bool {
	if p.tok.Kind != kind {
		code := diag.SynUnexpectedToken
		if kind == token.RBrace {
			code = diag.SynUnclosedBrace
		}
		p.errorf(code, p.tok.Span, "expected %q, found %q", kind, p.tok.Kind)
		return false
	}
	p.advance()
	return true
}

// syncTo skips tokens until one of the given kinds (or EOF) is current.
func (p *Parser) syncTo(kinds ...token.Kind) {
	for p.tok.Kind != token.EOF {
		for _, k := range kinds {
			if p.tok.Kind == k {
				return
			}
		}
		p.advance()
	}
}

func (p *Parser) advance() {
	p.tok = p.lx.Next()
}

func (p *Parser) errorf(code diag.Code, sp source.Span, format string, args ...any) {
	diag.Errorf(p.reporter, code, sp, fmt.Sprintf(format, args...))
}
