package source_test

import (
	"testing"

	"hwopt/internal/source"
)

func TestInternDedup(t *testing.T) {
	in := source.NewInterner()

	a := in.Intern("clk")
	b := in.Intern("clk")
	if a != b {
		t.Errorf("same string interned twice: %d != %d", a, b)
	}
	if a == source.NoStringID {
		t.Error("non-empty string got NoStringID")
	}

	s, ok := in.Lookup(a)
	if !ok || s != "clk" {
		t.Errorf("Lookup = %q,%v", s, ok)
	}
}

func TestInternEmpty(t *testing.T) {
	in := source.NewInterner()
	if got := in.Intern(""); got != source.NoStringID {
		t.Errorf("Intern(\"\") = %d, want %d", got, source.NoStringID)
	}
}

func TestInternNormalizes(t *testing.T) {
	in := source.NewInterner()
	// U+00E9 vs e + U+0301: same identifier after NFC.
	composed := in.Intern("café")
	decomposed := in.Intern("café")
	if composed != decomposed {
		t.Errorf("NFC-equal identifiers interned separately: %d != %d", composed, decomposed)
	}
}

func TestLookupUnknown(t *testing.T) {
	in := source.NewInterner()
	if _, ok := in.Lookup(99); ok {
		t.Error("Lookup(99) succeeded on empty interner")
	}
}
