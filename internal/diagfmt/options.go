// Package diagfmt renders diagnostics for humans and tools.
package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	// MaxWidth truncates context lines. 0 means no limit.
	MaxWidth int
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludeNotes bool
}
