package observ_test

import (
	"strings"
	"testing"

	"hwopt/internal/observ"
)

func TestTimerPhases(t *testing.T) {
	timer := observ.NewTimer()
	idx := timer.Begin(observ.PhaseParse, "top.hw")
	timer.End(idx, "1 file")
	idx = timer.Begin(observ.PhasePass, "verify")
	timer.End(idx, "")

	report := timer.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(report.Phases))
	}
	if report.Phases[0].Kind != "parse" || report.Phases[0].Name != "top.hw" || report.Phases[0].Note != "1 file" {
		t.Errorf("phase 0: %+v", report.Phases[0])
	}
	if report.Phases[1].Kind != "pass" || report.Phases[1].Name != "verify" {
		t.Errorf("phase 1: %+v", report.Phases[1])
	}
}

func TestTimerEndOutOfRange(t *testing.T) {
	timer := observ.NewTimer()
	timer.End(-1, "")
	timer.End(5, "")
	if len(timer.Report().Phases) != 0 {
		t.Error("phantom phases recorded")
	}
}

func TestPhaseLabel(t *testing.T) {
	cases := []struct {
		phase observ.Phase
		want  string
	}{
		{observ.Phase{Kind: observ.PhasePass, Name: "rename-wires"}, "pass:rename-wires"},
		{observ.Phase{Kind: observ.PhaseParse}, "parse"},
		{observ.Phase{Kind: observ.PhaseCache, Name: "store"}, "cache:store"},
	}
	for _, tc := range cases {
		if got := tc.phase.Label(); got != tc.want {
			t.Errorf("Label = %q, want %q", got, tc.want)
		}
	}
}

func TestSummaryContainsTotalAndSubtotal(t *testing.T) {
	timer := observ.NewTimer()
	idx := timer.Begin(observ.PhaseParse, "top.hw")
	timer.End(idx, "")
	idx = timer.Begin(observ.PhasePass, "verify")
	timer.End(idx, "")
	idx = timer.Begin(observ.PhasePass, "rename-wires")
	timer.End(idx, "")

	s := timer.Summary()
	if !strings.Contains(s, "parse:top.hw") || !strings.Contains(s, "total") {
		t.Errorf("summary: %q", s)
	}
	// Two pass phases ran, so the pass kind gets a subtotal line.
	if !strings.Contains(s, "pass subtotal") {
		t.Errorf("missing pass subtotal in %q", s)
	}
	if strings.Contains(s, "parse subtotal") {
		t.Errorf("spurious subtotal for a single-phase kind in %q", s)
	}
}

func TestReportSubtotals(t *testing.T) {
	timer := observ.NewTimer()
	idx := timer.Begin(observ.PhasePass, "verify")
	timer.End(idx, "")
	idx = timer.Begin(observ.PhasePass, "prune-nodes")
	timer.End(idx, "")

	report := timer.Report()
	if _, ok := report.Subtotals["pass"]; !ok {
		t.Errorf("subtotals = %v, want a pass entry", report.Subtotals)
	}
}
