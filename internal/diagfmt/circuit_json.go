package diagfmt

import (
	"encoding/json"
	"io"

	"hwopt/internal/ir"
)

type jsonOp struct {
	Kind    string   `json:"kind"`
	Name    string   `json:"name,omitempty"`
	Type    string   `json:"type,omitempty"`
	Target  string   `json:"target,omitempty"`
	Operand string   `json:"operand,omitempty"`
	Dst     string   `json:"dst,omitempty"`
	Src     string   `json:"src,omitempty"`
	Cond    string   `json:"cond,omitempty"`
	Ports   []string `json:"ports,omitempty"`
	Body    []jsonOp `json:"body,omitempty"`
	Then    []jsonOp `json:"then,omitempty"`
	Else    []jsonOp `json:"else,omitempty"`
}

// CircuitJSON dumps a circuit as JSON, mirroring the tree structure.
func CircuitJSON(w io.Writer, c *ir.Circuit) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(opToJSON(c))
}

func opToJSON(op ir.Op) jsonOp {
	out := jsonOp{Kind: op.Kind().String()}
	switch op := op.(type) {
	case *ir.Circuit:
		out.Name = op.Ident
		out.Body = opsToJSON(op.Body.Ops())
	case *ir.Module:
		out.Name = op.Ident
		for _, p := range op.Ports {
			out.Ports = append(out.Ports, p.Dir.String()+" "+p.Ident+": "+p.Type.String())
		}
		out.Body = opsToJSON(op.Body.Ops())
	case *ir.Wire:
		out.Name = op.Ident
		out.Type = op.Type.String()
	case *ir.Reg:
		out.Name = op.Ident
		out.Type = op.Type.String()
		out.Operand = op.Clock.Ident
	case *ir.Node:
		out.Name = op.Ident
		out.Operand = op.Operand.Ident
	case *ir.Instance:
		out.Name = op.Ident
		out.Target = op.Target
	case *ir.Connect:
		out.Dst = op.Dst.Ident
		out.Src = op.Src.Ident
	case *ir.When:
		out.Cond = op.Cond.Ident
		out.Then = opsToJSON(op.Then.Ops())
		out.Else = opsToJSON(op.Else.Ops())
	}
	return out
}

func opsToJSON(ops []ir.Op) []jsonOp {
	if len(ops) == 0 {
		return nil
	}
	out := make([]jsonOp, 0, len(ops))
	for _, op := range ops {
		out = append(out, opToJSON(op))
	}
	return out
}
