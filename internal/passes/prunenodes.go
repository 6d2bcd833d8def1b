package passes

import (
	"hwopt/internal/diag"
	"hwopt/internal/ir"
)

func init() {
	Register("prune-nodes", func() Pass { return &PruneNodes{} })
}

// PruneNodes removes node ops whose name is never referenced by any other
// op in the same module. Wires, regs and instances are kept regardless:
// they describe hardware, a node only names a value.
type PruneNodes struct{}

// Name implements Pass.
func (*PruneNodes) Name() string { return "prune-nodes" }

// Run implements Pass.
func (*PruneNodes) Run(c *ir.Circuit, _ *diag.Bag) {
	for _, m := range c.Modules() {
		pruneModuleNodes(m)
	}
}

func pruneModuleNodes(m *ir.Module) {
	// Phase 1: collect every referenced name.
	used := make(map[string]bool)
	mark := func(r ir.Ref) { used[r.Ident] = true }
	ir.WalkAll(m, func(op ir.Op) {
		switch op := op.(type) {
		case *ir.Reg:
			mark(op.Clock)
		case *ir.Node:
			mark(op.Operand)
		case *ir.Connect:
			mark(op.Dst)
			mark(op.Src)
		case *ir.When:
			mark(op.Cond)
		}
	})

	// Phase 2: drop unreferenced nodes from every block.
	ir.WalkAll(m, func(op ir.Op) {
		for _, region := range op.Regions() {
			for _, block := range region.Blocks {
				kept := block.Ops[:0]
				for _, inner := range block.Ops {
					if n, ok := inner.(*ir.Node); ok && !used[n.Ident] {
						continue
					}
					kept = append(kept, inner)
				}
				block.Ops = kept
			}
		}
	})
}
