package token

// Kind enumerates token kinds of the textual hardware IR.
type Kind uint8

const (
	// EOF marks the end of input.
	EOF Kind = iota
	// Ident is an identifier.
	Ident
	// IntLit is a decimal integer literal.
	IntLit

	// Keywords
	KwCircuit
	KwModule
	KwInput
	KwOutput
	KwWire
	KwReg
	KwNode
	KwInst
	KwOf
	KwWhen
	KwElse
	KwConnect
	KwClock
	KwReset
	KwUint
	KwSint

	// Punctuation
	LBrace
	RBrace
	Colon
	Comma
	Assign
	Lt
	Gt
)

var kindNames = map[Kind]string{
	EOF:       "EOF",
	Ident:     "Ident",
	IntLit:    "IntLit",
	KwCircuit: "circuit",
	KwModule:  "module",
	KwInput:   "input",
	KwOutput:  "output",
	KwWire:    "wire",
	KwReg:     "reg",
	KwNode:    "node",
	KwInst:    "inst",
	KwOf:      "of",
	KwWhen:    "when",
	KwElse:    "else",
	KwConnect: "connect",
	KwClock:   "clock",
	KwReset:   "reset",
	KwUint:    "uint",
	KwSint:    "sint",
	LBrace:    "{",
	RBrace:    "}",
	Colon:     ":",
	Comma:     ",",
	Assign:    "=",
	Lt:        "<",
	Gt:        ">",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
