package passes

import (
	"hwopt/internal/diag"
	"hwopt/internal/ir"
	"hwopt/internal/observ"
)

// Manager runs an ordered pass pipeline over one circuit.
type Manager struct {
	passes []Pass
	timer  *observ.Timer
}

// NewManager creates a manager for the given pipeline. timer may be nil.
func NewManager(passes []Pass, timer *observ.Timer) *Manager {
	return &Manager{passes: passes, timer: timer}
}

// Run executes the pipeline in order. Execution stops after the first pass
// that leaves errors in the bag; later passes must not see a broken circuit.
// Reports the number of passes that ran.
func (m *Manager) Run(c *ir.Circuit, bag *diag.Bag) int {
	ran := 0
	for _, p := range m.passes {
		var phase int
		if m.timer != nil {
			phase = m.timer.Begin(observ.PhasePass, p.Name())
		}
		p.Run(c, bag)
		if m.timer != nil {
			m.timer.End(phase, "")
		}
		ran++
		if bag.HasErrors() {
			break
		}
	}
	return ran
}
