package set

// Kind identifies the shape of a set node (spec §3.3).
type Kind uint8

const (
	// KindNothing is the empty set.
	KindNothing Kind = iota
	// KindEverything is the universal set.
	KindEverything
	// KindPrim is a single primitive, interpreted as {x : primitive(x) <= 0}.
	KindPrim
	// KindUnion is a binary ∪ interior node.
	KindUnion
	// KindIntersection is a binary ∩ interior node.
	KindIntersection
)

// String renders the kind's name.
func (k Kind) String() string {
	switch k {
	case KindNothing:
		return "nothing"
	case KindEverything:
		return "everything"
	case KindPrim:
		return "prim"
	case KindUnion:
		return "union"
	case KindIntersection:
		return "intersection"
	default:
		return "unknown"
	}
}
