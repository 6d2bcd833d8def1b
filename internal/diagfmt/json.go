package diagfmt

import (
	"encoding/json"
	"io"

	"hwopt/internal/diag"
	"hwopt/internal/source"
)

type jsonPosition struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

type jsonNote struct {
	Message string        `json:"message"`
	Pos     *jsonPosition `json:"pos,omitempty"`
}

type jsonDiagnostic struct {
	Severity string        `json:"severity"`
	Code     string        `json:"code"`
	Message  string        `json:"message"`
	Path     string        `json:"path,omitempty"`
	Pos      *jsonPosition `json:"pos,omitempty"`
	Notes    []jsonNote    `json:"notes,omitempty"`
}

// JSON renders a bag as a JSON array, one object per diagnostic.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	out := make([]jsonDiagnostic, 0, bag.Len())
	for _, d := range bag.Items() {
		jd := jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Message:  d.Message,
		}
		if fs != nil && fs.Len() > int(d.Primary.File) {
			jd.Path = fs.Get(d.Primary.File).Path
			jd.Pos = position(fs, d.Primary)
		}
		if opts.IncludeNotes {
			for _, note := range d.Notes {
				jn := jsonNote{Message: note.Msg}
				if fs != nil && fs.Len() > int(note.Span.File) {
					jn.Pos = position(fs, note.Span)
				}
				jd.Notes = append(jd.Notes, jn)
			}
		}
		out = append(out, jd)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func position(fs *source.FileSet, sp source.Span) *jsonPosition {
	start, _ := fs.Resolve(sp)
	return &jsonPosition{Line: start.Line, Col: start.Col}
}
