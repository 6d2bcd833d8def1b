// Package testkit holds invariant checks shared by tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"hwopt/internal/ir"
	"hwopt/internal/source"
)

// CheckWalkInvariants runs structural traversal invariants over an op tree:
// 1) every reachable op is visited exactly once
// 2) a parent op is visited before any op in its regions
// 3) block order is preserved among siblings
func CheckWalkInvariants(root ir.Op) error {
	if root == nil {
		return fmt.Errorf("nil root")
	}

	order := make(map[ir.Op]int)
	idx := 0
	ir.WalkAll(root, func(op ir.Op) {
		if _, seen := order[op]; seen {
			return
		}
		order[op] = idx
		idx++
	})

	count := 0
	ir.WalkAll(root, func(ir.Op) { count++ })
	if count != len(order) {
		return fmt.Errorf("op visited twice: %d visits for %d distinct ops", count, len(order))
	}

	var err error
	ir.WalkAll(root, func(parent ir.Op) {
		if err != nil {
			return
		}
		prev := -1
		for _, region := range parent.Regions() {
			for _, block := range region.Blocks {
				for _, child := range block.Ops {
					if order[child] <= order[parent] {
						err = fmt.Errorf("child %s visited at %d, before parent %s at %d",
							child.Kind(), order[child], parent.Kind(), order[parent])
						return
					}
					if order[child] <= prev {
						err = fmt.Errorf("sibling order violated at %s", child.Kind())
						return
					}
					prev = order[child]
				}
			}
		}
	})
	return err
}

// CheckSpanInvariants verifies every op span lies within its file content.
func CheckSpanInvariants(root ir.Op, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil root or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("content length overflow: %w", err)
	}

	var fail error
	ir.WalkAll(root, func(op ir.Op) {
		if fail != nil {
			return
		}
		sp := op.Loc()
		if sp.Empty() {
			return
		}
		if sp.File != sf.ID {
			fail = fmt.Errorf("%s span points to file %d, want %d", op.Kind(), sp.File, sf.ID)
			return
		}
		if sp.End > lenContent {
			fail = fmt.Errorf("%s span end %d beyond content length %d", op.Kind(), sp.End, lenContent)
		}
	})
	return fail
}
