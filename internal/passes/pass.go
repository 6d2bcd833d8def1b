// Package passes hosts the circuit transformation passes and the
// machinery that runs them.
package passes

import (
	"fmt"
	"sort"
	"strings"

	"hwopt/internal/diag"
	"hwopt/internal/ir"
)

// Pass is one self-contained transformation over a circuit. A pass mutates
// the circuit in place and reports problems through the bag; it must not
// retain the circuit after Run returns.
type Pass interface {
	Name() string
	Run(c *ir.Circuit, bag *diag.Bag)
}

// Factory produces a fresh pass instance. Passes are cheap to construct;
// a new instance per pipeline keeps pass state invocation-local.
type Factory func() Pass

var registry = map[string]Factory{}

// Register adds a pass factory under its name. Called from init;
// duplicate names are a programming error.
func Register(name string, f Factory) {
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("pass %q registered twice", name))
	}
	registry[name] = f
}

// Lookup returns the factory for a pass name.
func Lookup(name string) (Factory, bool) {
	f, ok := registry[name]
	return f, ok
}

// Names returns all registered pass names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ParsePipeline resolves a comma-separated pass list ("verify,rename-wires")
// into pass instances. Unknown names and empty pipelines are reported to the
// bag; the returned slice holds only the passes that resolved.
func ParsePipeline(spec string, bag *diag.Bag) []Pass {
	names := splitPipeline(spec)
	if len(names) == 0 {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.PipelineEmpty,
			Message:  "empty pass pipeline",
		})
		return nil
	}

	out := make([]Pass, 0, len(names))
	for _, name := range names {
		f, ok := Lookup(name)
		if !ok {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.PassUnknown,
				Message:  fmt.Sprintf("unknown pass %q (available: %s)", name, strings.Join(Names(), ", ")),
			})
			continue
		}
		out = append(out, f())
	}
	return out
}

func splitPipeline(spec string) []string {
	parts := strings.Split(spec, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
