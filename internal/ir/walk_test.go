package ir_test

import (
	"reflect"
	"testing"

	"hwopt/internal/ir"
)

// buildNested returns a module whose body is, in textual order:
// wire a, when (wire b inside then, wire c inside else), wire d, inst s.
func buildNested() *ir.Module {
	return &ir.Module{
		Ident: "Top",
		Body: ir.BlockOf(
			&ir.Wire{Ident: "a", Type: ir.UInt(8)},
			&ir.When{
				Cond: ir.Ref{Ident: "a"},
				Then: ir.BlockOf(&ir.Wire{Ident: "b", Type: ir.UInt(1)}),
				Else: ir.BlockOf(&ir.Wire{Ident: "c", Type: ir.UInt(1)}),
			},
			&ir.Wire{Ident: "d", Type: ir.UInt(4)},
			&ir.Instance{Ident: "s", Target: "Sub"},
		),
	}
}

func TestWalkPreOrder(t *testing.T) {
	m := buildNested()

	var kinds []ir.OpKind
	ir.WalkAll(m, func(op ir.Op) {
		kinds = append(kinds, op.Kind())
	})

	want := []ir.OpKind{
		ir.OpModule,
		ir.OpWire,     // a
		ir.OpWhen,     // when
		ir.OpWire,     // b (then region, before later siblings)
		ir.OpWire,     // c (else region)
		ir.OpWire,     // d
		ir.OpInstance, // s
	}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("visit order = %v, want %v", kinds, want)
	}
}

func TestWalkNestedBeforeSibling(t *testing.T) {
	m := buildNested()

	var names []string
	ir.WalkType(m, func(w *ir.Wire) { names = append(names, w.Ident) })

	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("wire order = %v, want %v", names, want)
	}
}

func TestWalkSkipChildren(t *testing.T) {
	m := buildNested()

	var names []string
	ir.Walk(m, func(op ir.Op) ir.Action {
		if op.Kind() == ir.OpWhen {
			return ir.SkipChildren
		}
		if w, ok := op.(*ir.Wire); ok {
			names = append(names, w.Ident)
		}
		return ir.Continue
	})

	want := []string{"a", "d"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("wires outside when = %v, want %v", names, want)
	}
}

func TestWalkStop(t *testing.T) {
	m := buildNested()

	visited := 0
	got := ir.Walk(m, func(op ir.Op) ir.Action {
		visited++
		if op.Kind() == ir.OpWhen {
			return ir.Stop
		}
		return ir.Continue
	})

	if got != ir.Stop {
		t.Errorf("Walk = %v, want Stop", got)
	}
	// module, wire a, when
	if visited != 3 {
		t.Errorf("visited = %d, want 3", visited)
	}
}

func TestCountType(t *testing.T) {
	m := buildNested()
	if n := ir.CountType[*ir.Wire](m); n != 4 {
		t.Errorf("CountType[*Wire] = %d, want 4", n)
	}
	if n := ir.CountType[*ir.Instance](m); n != 1 {
		t.Errorf("CountType[*Instance] = %d, want 1", n)
	}
	if n := ir.CountType[*ir.Reg](m); n != 0 {
		t.Errorf("CountType[*Reg] = %d, want 0", n)
	}
}

func TestWalkEmptyModule(t *testing.T) {
	m := &ir.Module{Ident: "Empty"}

	visited := 0
	ir.WalkAll(m, func(ir.Op) { visited++ })
	if visited != 1 {
		t.Errorf("visited = %d, want 1 (the module itself)", visited)
	}
}
