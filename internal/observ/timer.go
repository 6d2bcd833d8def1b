// Package observ provides lightweight phase timing for --timings output.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// PhaseKind classifies what a timed step spent its time on.
type PhaseKind uint8

const (
	// PhaseParse covers loading and parsing one input file.
	PhaseParse PhaseKind = iota
	// PhasePass covers one pass of the pipeline.
	PhasePass
	// PhaseCache covers disk cache probes and writes.
	PhaseCache
)

func (k PhaseKind) String() string {
	switch k {
	case PhaseParse:
		return "parse"
	case PhasePass:
		return "pass"
	case PhaseCache:
		return "cache"
	}
	return "other"
}

// Phase records the duration and metadata of one timed step.
type Phase struct {
	Kind  PhaseKind
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Label renders the phase for display, e.g. "pass:rename-wires".
func (p Phase) Label() string {
	if p.Name == "" {
		return p.Kind.String()
	}
	return p.Kind.String() + ":" + p.Name
}

// Timer tracks the execution time of multiple phases.
type Timer struct {
	phases []Phase
}

// NewTimer creates an empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 8)} }

// Begin starts a new phase and returns its index.
func (t *Timer) Begin(kind PhaseKind, name string) int {
	t.phases = append(t.phases, Phase{Kind: kind, Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End finishes a phase by its index.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Note = note
}

// Summary returns a human-readable summary: one line per phase, a subtotal
// per kind that ran more than once, and the total.
func (t *Timer) Summary() string {
	var b strings.Builder
	b.WriteString("timings:\n")

	kindDur := make(map[PhaseKind]time.Duration)
	kindCount := make(map[PhaseKind]int)
	var total time.Duration
	for _, p := range t.phases {
		fmt.Fprintf(&b, "  %-24s %7.2f ms", p.Label(), durationToMillis(p.Dur))
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteString("\n")
		kindDur[p.Kind] += p.Dur
		kindCount[p.Kind]++
		total += p.Dur
	}
	for kind := PhaseParse; kind <= PhaseCache; kind++ {
		if kindCount[kind] > 1 {
			fmt.Fprintf(&b, "  %-24s %7.2f ms  (%d phases)\n",
				kind.String()+" subtotal", durationToMillis(kindDur[kind]), kindCount[kind])
		}
	}
	fmt.Fprintf(&b, "  %-24s %7.2f ms\n", "total", durationToMillis(total))
	return b.String()
}

// PhaseReport is the serializable form of one phase.
type PhaseReport struct {
	Kind       string  `json:"kind"`
	Name       string  `json:"name,omitempty"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates all phases with per-kind subtotals and a total, in
// milliseconds.
type Report struct {
	TotalMS   float64            `json:"total_ms"`
	Subtotals map[string]float64 `json:"subtotals,omitempty"`
	Phases    []PhaseReport      `json:"phases"`
}

// Report builds the aggregated view of all phases.
func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{
		Phases:    make([]PhaseReport, len(t.phases)),
		Subtotals: make(map[string]float64),
	}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Subtotals[phase.Kind.String()] += durationToMillis(phase.Dur)
		report.Phases[i] = PhaseReport{
			Kind:       phase.Kind.String(),
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Note:       phase.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
