package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"hwopt/internal/diag"
	"hwopt/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	posColor  = color.New(color.Bold)
)

// Pretty renders a bag in a human-readable form:
//
//	<path>:<line>:<col>: <SEVERITY> <CODE>: <message>
//	  <context line>
//	  <caret underline>
//
// Call bag.Sort() beforehand for deterministic order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printOne(w, d, fs, opts)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				printHeader(w, fs, note.Span, diag.SevInfo, 0, note.Msg, opts)
				printContext(w, fs, note.Span, opts)
			}
		}
	}
}

func printOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	printHeader(w, fs, d.Primary, d.Severity, d.Code, d.Message, opts)
	printContext(w, fs, d.Primary, opts)
}

func printHeader(w io.Writer, fs *source.FileSet, sp source.Span, sev diag.Severity, code diag.Code, msg string, opts PrettyOpts) {
	pos := "<unknown>"
	if fs != nil && fs.Len() > int(sp.File) {
		start, _ := fs.Resolve(sp)
		pos = fmt.Sprintf("%s:%d:%d", fs.Get(sp.File).Path, start.Line, start.Col)
	}

	sevText := sev.String()
	if code != diag.UnknownCode {
		sevText += " " + code.String()
	}
	if opts.Color {
		pos = posColor.Sprint(pos)
		sevText = sevColor(sev).Sprint(sevText)
	}
	fmt.Fprintf(w, "%s: %s: %s\n", pos, sevText, msg)
}

// printContext prints the source line and a caret underline sized by the
// display width of the spanned text.
func printContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	if fs == nil || fs.Len() <= int(sp.File) || sp.Empty() {
		return
	}
	start, end := fs.Resolve(sp)
	line := fs.Get(sp.File).Line(start.Line)
	if line == "" {
		return
	}
	if opts.MaxWidth > 0 {
		line = runewidth.Truncate(line, opts.MaxWidth, "...")
	}

	prefix := line[:min(int(start.Col-1), len(line))]
	pad := runewidth.StringWidth(prefix)

	spanned := line
	if int(start.Col-1) < len(line) {
		spanned = line[start.Col-1:]
	}
	width := runewidth.StringWidth(spanned)
	if start.Line == end.Line && int(end.Col-start.Col) < len(spanned) {
		width = runewidth.StringWidth(spanned[:end.Col-start.Col])
	}
	if width < 1 {
		width = 1
	}

	caret := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		caret = errColor.Sprint(caret)
	}
	fmt.Fprintf(w, "  %s\n  %s%s\n", line, strings.Repeat(" ", pad), caret)
}

func sevColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}
