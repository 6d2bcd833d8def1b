package passes

import (
	"strconv"

	"hwopt/internal/diag"
	"hwopt/internal/ir"
)

// wirePrefix is the prefix of generated wire names.
const wirePrefix = "foo_"

func init() {
	Register("rename-wires", func() Pass { return &RenameWires{} })
}

// RenameWires renames every wire in each module to a synthetic identifier
// derived from the wire's pre-order position: the i-th wire encountered
// becomes "foo_<i>", counting from zero. Existing names, duplicates
// included, are overwritten unconditionally. Non-wire ops are traversed but
// never touched, so running the pass twice yields the same names.
type RenameWires struct{}

// Name implements Pass.
func (*RenameWires) Name() string { return "rename-wires" }

// Run implements Pass. Each module gets its own counter.
func (*RenameWires) Run(c *ir.Circuit, _ *diag.Bag) {
	for _, m := range c.Modules() {
		RenameWiresInModule(m)
	}
}

// RenameWiresInModule renames all wires nested anywhere in m and returns
// how many were renamed. The counter lives on the stack of this call;
// concurrent invocations over different modules are independent.
func RenameWiresInModule(m *ir.Module) int {
	n := 0
	ir.WalkType(m, func(w *ir.Wire) {
		w.SetName(wirePrefix + strconv.Itoa(n))
		n++
	})
	return n
}
