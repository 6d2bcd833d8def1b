package token

var keywords = map[string]Kind{
	"circuit": KwCircuit,
	"module":  KwModule,
	"input":   KwInput,
	"output":  KwOutput,
	"wire":    KwWire,
	"reg":     KwReg,
	"node":    KwNode,
	"inst":    KwInst,
	"of":      KwOf,
	"when":    KwWhen,
	"else":    KwElse,
	"connect": KwConnect,
	"clock":   KwClock,
	"reset":   KwReset,
	"uint":    KwUint,
	"sint":    KwSint,
}

// LookupKeyword maps an identifier to its keyword kind, if it is one.
// Keywords are case sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
