package ir

import "hwopt/internal/source"

// OpKind enumerates op kinds.
type OpKind uint8

const (
	// OpCircuit is the root op holding module definitions.
	OpCircuit OpKind = iota
	// OpModule is a hardware module definition.
	OpModule
	// OpWire is a local named wire declaration.
	OpWire
	// OpReg is a clocked register declaration.
	OpReg
	// OpNode is a named alias of an operand.
	OpNode
	// OpInstance instantiates another module.
	OpInstance
	// OpConnect drives a destination from a source.
	OpConnect
	// OpWhen is a conditional with then/else regions.
	OpWhen
)

var opKindNames = [...]string{
	OpCircuit:  "circuit",
	OpModule:   "module",
	OpWire:     "wire",
	OpReg:      "reg",
	OpNode:     "node",
	OpInstance: "inst",
	OpConnect:  "connect",
	OpWhen:     "when",
}

func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "unknown"
}

// Op is a node of the IR tree. Ops that contain nested ops expose them
// through Regions; leaf ops return nil.
type Op interface {
	Kind() OpKind
	Loc() source.Span
	Regions() []*Region
}

// Named is implemented by ops carrying a renameable identifier.
// SetName is the only mutation the pass framework performs on ops it does
// not own.
type Named interface {
	Op
	Name() string
	SetName(string)
}

// Region is an ordered list of blocks owned by one op.
type Region struct {
	Blocks []*Block
}

// Block is an ordered list of ops.
type Block struct {
	Ops []Op
}

// BlockOf builds a single-block region from ops, in order.
func BlockOf(ops ...Op) Region {
	return Region{Blocks: []*Block{{Ops: ops}}}
}

// Ops returns the ops of the region's sole block. It is a convenience for
// the common single-block case; a nil or empty region yields nil.
func (r *Region) Ops() []Op {
	if r == nil || len(r.Blocks) == 0 {
		return nil
	}
	return r.Blocks[0].Ops
}

// Ref is a by-name reference to a previously declared value.
type Ref struct {
	Ident string
	Span  source.Span
}

// PortDir is the direction of a module port.
type PortDir uint8

const (
	// Input marks a port driven from outside the module.
	Input PortDir = iota
	// Output marks a port driven by the module.
	Output
)

func (d PortDir) String() string {
	if d == Input {
		return "input"
	}
	return "output"
}

// Port is a module boundary signal. Ports are attributes of a module,
// not body ops.
type Port struct {
	Dir   PortDir
	Ident string
	Type  Type
	Span  source.Span
}

// Circuit is the root op. Its body region holds module definitions.
type Circuit struct {
	Ident string
	Body  Region
	Span  source.Span
}

func (c *Circuit) Kind() OpKind       { return OpCircuit }
func (c *Circuit) Loc() source.Span   { return c.Span }
func (c *Circuit) Regions() []*Region { return []*Region{&c.Body} }
func (c *Circuit) Name() string       { return c.Ident }
func (c *Circuit) SetName(s string)   { c.Ident = s }

// Modules returns the module definitions in declaration order.
func (c *Circuit) Modules() []*Module {
	ops := c.Body.Ops()
	out := make([]*Module, 0, len(ops))
	for _, op := range ops {
		if m, ok := op.(*Module); ok {
			out = append(out, m)
		}
	}
	return out
}

// FindModule returns the module with the given name, if declared.
func (c *Circuit) FindModule(name string) (*Module, bool) {
	for _, m := range c.Modules() {
		if m.Ident == name {
			return m, true
		}
	}
	return nil, false
}

// Module is a hardware module definition.
type Module struct {
	Ident string
	Ports []Port
	Body  Region
	Span  source.Span
}

func (m *Module) Kind() OpKind       { return OpModule }
func (m *Module) Loc() source.Span   { return m.Span }
func (m *Module) Regions() []*Region { return []*Region{&m.Body} }
func (m *Module) Name() string       { return m.Ident }
func (m *Module) SetName(s string)   { m.Ident = s }

// Wire is a local named wire declaration.
type Wire struct {
	Ident string
	Type  Type
	Span  source.Span
}

func (w *Wire) Kind() OpKind       { return OpWire }
func (w *Wire) Loc() source.Span   { return w.Span }
func (w *Wire) Regions() []*Region { return nil }
func (w *Wire) Name() string       { return w.Ident }
func (w *Wire) SetName(s string)   { w.Ident = s }

// Reg is a register declaration clocked by Clock.
type Reg struct {
	Ident string
	Type  Type
	Clock Ref
	Span  source.Span
}

func (r *Reg) Kind() OpKind       { return OpReg }
func (r *Reg) Loc() source.Span   { return r.Span }
func (r *Reg) Regions() []*Region { return nil }
func (r *Reg) Name() string       { return r.Ident }
func (r *Reg) SetName(s string)   { r.Ident = s }

// Node names the value of its operand.
type Node struct {
	Ident   string
	Operand Ref
	Span    source.Span
}

func (n *Node) Kind() OpKind       { return OpNode }
func (n *Node) Loc() source.Span   { return n.Span }
func (n *Node) Regions() []*Region { return nil }
func (n *Node) Name() string       { return n.Ident }
func (n *Node) SetName(s string)   { n.Ident = s }

// Instance instantiates the module named Target.
type Instance struct {
	Ident  string
	Target string
	Span   source.Span
}

func (i *Instance) Kind() OpKind       { return OpInstance }
func (i *Instance) Loc() source.Span   { return i.Span }
func (i *Instance) Regions() []*Region { return nil }
func (i *Instance) Name() string       { return i.Ident }
func (i *Instance) SetName(s string)   { i.Ident = s }

// Connect drives Dst from Src.
type Connect struct {
	Dst  Ref
	Src  Ref
	Span source.Span
}

func (c *Connect) Kind() OpKind       { return OpConnect }
func (c *Connect) Loc() source.Span   { return c.Span }
func (c *Connect) Regions() []*Region { return nil }

// When is a conditional region op. The else region may be empty.
type When struct {
	Cond Ref
	Then Region
	Else Region
	Span source.Span
}

func (w *When) Kind() OpKind       { return OpWhen }
func (w *When) Loc() source.Span   { return w.Span }
func (w *When) Regions() []*Region { return []*Region{&w.Then, &w.Else} }
