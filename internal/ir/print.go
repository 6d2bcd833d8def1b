package ir

import (
	"fmt"
	"io"
	"strings"
)

// Print writes the textual form of a circuit. The output is deterministic
// (structural order, no sorting) and parses back into an equivalent circuit.
func Print(w io.Writer, c *Circuit) error {
	if w == nil || c == nil {
		return nil
	}
	p := printer{w: w}
	p.printf("circuit %s {\n", c.Ident)
	for _, m := range c.Modules() {
		p.module(m, 1)
	}
	p.printf("}\n")
	return p.err
}

// Sprint returns the textual form of a circuit as a string.
func Sprint(c *Circuit) string {
	var b strings.Builder
	_ = Print(&b, c)
	return b.String()
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) indent(depth int) {
	p.printf("%s", strings.Repeat("  ", depth))
}

func (p *printer) module(m *Module, depth int) {
	p.indent(depth)
	p.printf("module %s {\n", m.Ident)
	for _, port := range m.Ports {
		p.indent(depth + 1)
		p.printf("%s %s: %s\n", port.Dir, port.Ident, port.Type)
	}
	p.block(m.Body.Ops(), depth+1)
	p.indent(depth)
	p.printf("}\n")
}

func (p *printer) block(ops []Op, depth int) {
	for _, op := range ops {
		switch op := op.(type) {
		case *Wire:
			p.indent(depth)
			p.printf("wire %s: %s\n", op.Ident, op.Type)
		case *Reg:
			p.indent(depth)
			p.printf("reg %s: %s, %s\n", op.Ident, op.Type, op.Clock.Ident)
		case *Node:
			p.indent(depth)
			p.printf("node %s = %s\n", op.Ident, op.Operand.Ident)
		case *Instance:
			p.indent(depth)
			p.printf("inst %s of %s\n", op.Ident, op.Target)
		case *Connect:
			p.indent(depth)
			p.printf("connect %s, %s\n", op.Dst.Ident, op.Src.Ident)
		case *When:
			p.indent(depth)
			p.printf("when %s {\n", op.Cond.Ident)
			p.block(op.Then.Ops(), depth+1)
			if len(op.Else.Ops()) > 0 {
				p.indent(depth)
				p.printf("} else {\n")
				p.block(op.Else.Ops(), depth+1)
			}
			p.indent(depth)
			p.printf("}\n")
		}
	}
}
