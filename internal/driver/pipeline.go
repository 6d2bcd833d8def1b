package driver

import (
	"hwopt/internal/diag"
	"hwopt/internal/ir"
	"hwopt/internal/observ"
	"hwopt/internal/passes"
)

// DefaultPipeline is used when neither --passes nor a manifest specifies one.
var DefaultPipeline = []string{"verify"}

// RunPipeline resolves and runs a comma-separated pass pipeline over the
// circuit. timer may be nil. Reports the number of passes that ran.
func RunPipeline(c *ir.Circuit, spec string, bag *diag.Bag, timer *observ.Timer) int {
	ps := passes.ParsePipeline(spec, bag)
	if bag.HasErrors() {
		return 0
	}
	return passes.NewManager(ps, timer).Run(c, bag)
}
