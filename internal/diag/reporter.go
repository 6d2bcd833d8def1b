package diag

import "hwopt/internal/source"

// Reporter is the minimal contract for phases that emit diagnostics.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// BagReporter stores reported diagnostics into a Bag.
type BagReporter struct {
	Bag *Bag
}

// NewBagReporter wraps a bag in the Reporter interface.
func NewBagReporter(bag *Bag) *BagReporter {
	return &BagReporter{Bag: bag}
}

// Report implements Reporter.
func (r *BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r == nil || r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

// NopReporter discards everything.
type NopReporter struct{}

// Report implements Reporter.
func (NopReporter) Report(Code, Severity, source.Span, string, []Note) {}

// Errorf reports an error diagnostic without notes.
func Errorf(r Reporter, code Code, primary source.Span, msg string) {
	if r == nil {
		return
	}
	r.Report(code, SevError, primary, msg, nil)
}

// Warnf reports a warning diagnostic without notes.
func Warnf(r Reporter, code Code, primary source.Span, msg string) {
	if r == nil {
		return
	}
	r.Report(code, SevWarning, primary, msg, nil)
}
