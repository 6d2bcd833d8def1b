package ir_test

import (
	"testing"

	"hwopt/internal/ir"
)

func TestSprint(t *testing.T) {
	c := &ir.Circuit{
		Ident: "Top",
		Body: ir.BlockOf(
			&ir.Module{Ident: "Sub"},
			&ir.Module{
				Ident: "Top",
				Ports: []ir.Port{
					{Dir: ir.Input, Ident: "clk", Type: ir.Clock()},
					{Dir: ir.Output, Ident: "out", Type: ir.UInt(8)},
				},
				Body: ir.BlockOf(
					&ir.Wire{Ident: "a", Type: ir.UInt(8)},
					&ir.Reg{Ident: "r", Type: ir.SInt(4), Clock: ir.Ref{Ident: "clk"}},
					&ir.Node{Ident: "n", Operand: ir.Ref{Ident: "a"}},
					&ir.Instance{Ident: "s", Target: "Sub"},
					&ir.When{
						Cond: ir.Ref{Ident: "a"},
						Then: ir.BlockOf(&ir.Wire{Ident: "b", Type: ir.UInt(1)}),
						Else: ir.BlockOf(&ir.Wire{Ident: "c", Type: ir.UInt(1)}),
					},
					&ir.Connect{Dst: ir.Ref{Ident: "out"}, Src: ir.Ref{Ident: "a"}},
				),
			},
		),
	}

	want := `circuit Top {
  module Sub {
  }
  module Top {
    input clk: clock
    output out: uint<8>
    wire a: uint<8>
    reg r: sint<4>, clk
    node n = a
    inst s of Sub
    when a {
      wire b: uint<1>
    } else {
      wire c: uint<1>
    }
    connect out, a
  }
}
`
	if got := ir.Sprint(c); got != want {
		t.Errorf("Sprint:\n%s\nwant:\n%s", got, want)
	}
}

func TestSprintWhenWithoutElse(t *testing.T) {
	c := &ir.Circuit{
		Ident: "C",
		Body: ir.BlockOf(&ir.Module{
			Ident: "M",
			Ports: []ir.Port{{Dir: ir.Input, Ident: "en", Type: ir.UInt(1)}},
			Body: ir.BlockOf(&ir.When{
				Cond: ir.Ref{Ident: "en"},
				Then: ir.BlockOf(&ir.Wire{Ident: "w", Type: ir.UInt(1)}),
			}),
		}),
	}

	want := `circuit C {
  module M {
    input en: uint<1>
    when en {
      wire w: uint<1>
    }
  }
}
`
	if got := ir.Sprint(c); got != want {
		t.Errorf("Sprint:\n%s\nwant:\n%s", got, want)
	}
}
