package ir

// Action controls traversal from a visit callback.
type Action uint8

const (
	// Continue proceeds into the op's regions and on to its siblings.
	Continue Action = iota
	// SkipChildren skips the op's regions but continues with siblings.
	SkipChildren
	// Stop aborts the whole traversal.
	Stop
)

// Walk visits root and every op nested anywhere inside it in
// deterministic pre-order: an op is visited before its regions, regions in
// declared order, blocks in order, and block ops in order, each fully
// (including its own nested regions) before the next sibling.
func Walk(root Op, visit func(Op) Action) Action {
	switch visit(root) {
	case Stop:
		return Stop
	case SkipChildren:
		return Continue
	}
	for _, region := range root.Regions() {
		for _, block := range region.Blocks {
			for _, op := range block.Ops {
				if Walk(op, visit) == Stop {
					return Stop
				}
			}
		}
	}
	return Continue
}

// WalkAll is Walk without flow control.
func WalkAll(root Op, visit func(Op)) {
	Walk(root, func(op Op) Action {
		visit(op)
		return Continue
	})
}

// WalkType visits, in pre-order, every nested op of concrete type T.
// It is the typed-visitor form of Walk: kind dispatch happens here once,
// not in every pass.
func WalkType[T Op](root Op, visit func(T)) {
	Walk(root, func(op Op) Action {
		if t, ok := op.(T); ok {
			visit(t)
		}
		return Continue
	})
}

// CountType returns the number of nested ops of concrete type T.
func CountType[T Op](root Op) int {
	n := 0
	WalkType(root, func(T) { n++ })
	return n
}
