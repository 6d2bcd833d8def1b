package passes

import (
	"hwopt/internal/diag"
	"hwopt/internal/ir"
)

func init() {
	Register("verify", func() Pass { return &Verify{} })
}

// Verify runs the IR validator as a pipeline pass. It mutates nothing;
// violations land in the bag as errors and stop the pipeline.
type Verify struct{}

// Name implements Pass.
func (*Verify) Name() string { return "verify" }

// Run implements Pass.
func (*Verify) Run(c *ir.Circuit, bag *diag.Bag) {
	ir.Validate(c, diag.NewBagReporter(bag))
}
