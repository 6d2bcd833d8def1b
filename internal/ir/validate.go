package ir

import (
	"fmt"

	"hwopt/internal/diag"
	"hwopt/internal/source"
)

// Validate checks circuit invariants and reports violations:
//  1. module names are unique within the circuit
//  2. instance targets resolve to declared modules
//  3. declared names are unique within their scope
//  4. references resolve to a name declared earlier in an enclosing scope
//  5. integer types have non-zero width
//
// Validation never mutates the circuit.
func Validate(c *Circuit, r diag.Reporter) {
	if c == nil {
		return
	}

	modules := make(map[string]source.Span)
	for _, m := range c.Modules() {
		if prev, ok := modules[m.Ident]; ok {
			r.Report(diag.VerifyDuplicateModule, diag.SevError, m.Span,
				fmt.Sprintf("module %q redeclared", m.Ident),
				[]diag.Note{{Span: prev, Msg: "previously declared here"}})
			continue
		}
		modules[m.Ident] = m.Span
	}

	for _, m := range c.Modules() {
		v := &validator{reporter: r, modules: modules}
		v.module(m)
	}
}

type scope struct {
	parent *scope
	names  map[string]source.Span
}

func (s *scope) lookup(name string) (source.Span, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if sp, ok := cur.names[name]; ok {
			return sp, true
		}
	}
	return source.Span{}, false
}

type validator struct {
	reporter diag.Reporter
	modules  map[string]source.Span
}

func (v *validator) module(m *Module) {
	top := &scope{names: make(map[string]source.Span, len(m.Ports))}
	for _, p := range m.Ports {
		v.checkType(p.Type, p.Span)
		v.declare(top, p.Ident, p.Span)
	}
	v.block(top, m.Body.Ops())
}

func (v *validator) block(sc *scope, ops []Op) {
	for _, op := range ops {
		switch op := op.(type) {
		case *Wire:
			v.checkType(op.Type, op.Span)
			v.declare(sc, op.Ident, op.Span)
		case *Reg:
			v.checkType(op.Type, op.Span)
			v.ref(sc, op.Clock)
			v.declare(sc, op.Ident, op.Span)
		case *Node:
			v.ref(sc, op.Operand)
			v.declare(sc, op.Ident, op.Span)
		case *Instance:
			if _, ok := v.modules[op.Target]; !ok {
				diag.Errorf(v.reporter, diag.VerifyUnknownModule, op.Span,
					fmt.Sprintf("instance %q refers to unknown module %q", op.Ident, op.Target))
			}
			v.declare(sc, op.Ident, op.Span)
		case *Connect:
			v.ref(sc, op.Dst)
			v.ref(sc, op.Src)
		case *When:
			v.ref(sc, op.Cond)
			v.block(&scope{parent: sc, names: map[string]source.Span{}}, op.Then.Ops())
			v.block(&scope{parent: sc, names: map[string]source.Span{}}, op.Else.Ops())
		}
	}
}

func (v *validator) declare(sc *scope, name string, sp source.Span) {
	if prev, ok := sc.names[name]; ok {
		v.reporter.Report(diag.VerifyDuplicateName, diag.SevError, sp,
			fmt.Sprintf("name %q redeclared in the same scope", name),
			[]diag.Note{{Span: prev, Msg: "previously declared here"}})
		return
	}
	sc.names[name] = sp
}

func (v *validator) ref(sc *scope, ref Ref) {
	if _, ok := sc.lookup(ref.Ident); !ok {
		diag.Errorf(v.reporter, diag.VerifyUndefinedName, ref.Span,
			fmt.Sprintf("reference to undefined name %q", ref.Ident))
	}
}

func (v *validator) checkType(t Type, sp source.Span) {
	if (t.Kind == TypeUInt || t.Kind == TypeSInt) && t.Width == 0 {
		diag.Errorf(v.reporter, diag.VerifyZeroWidth, sp,
			fmt.Sprintf("%s has zero width", t))
	}
}
