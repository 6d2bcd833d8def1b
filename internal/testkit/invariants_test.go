package testkit_test

import (
	"testing"

	"hwopt/internal/ir"
	"hwopt/internal/testkit"
)

func TestCheckWalkInvariants(t *testing.T) {
	m := &ir.Module{
		Ident: "Top",
		Body: ir.BlockOf(
			&ir.Wire{Ident: "a", Type: ir.UInt(1)},
			&ir.When{
				Cond: ir.Ref{Ident: "a"},
				Then: ir.BlockOf(&ir.Wire{Ident: "b", Type: ir.UInt(1)}),
			},
		),
	}
	if err := testkit.CheckWalkInvariants(m); err != nil {
		t.Error(err)
	}
}

func TestCheckWalkInvariantsNil(t *testing.T) {
	if err := testkit.CheckWalkInvariants(nil); err == nil {
		t.Error("nil root accepted")
	}
}
