package set

import (
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/report"
)

const site = "set"

// Complement returns ¬s: primitives negated at leaves, ∪/∩ swapped at
// interior nodes (De Morgan). The result is cached on both s's node and
// the result's node (spec §4.2: "computed lazily and then cached on both
// partners so subsequent complements are O(1)"), so complementing twice
// returns the original node rather than rebuilding it.
func Complement(s Set) Set {
	if s.zero() {
		report.Warn(site, "Complement: %v", ErrNilSet)
		return s
	}
	n := s.node()
	if n.complement != nil {
		return wrap(n.complement)
	}
	var result *node
	switch n.kind {
	case KindNothing:
		result = everythingNode
	case KindEverything:
		result = nothingNode
	case KindPrim:
		result = &node{id: nextID.Add(1), kind: KindPrim, leaf: prim.Neg(n.leaf)}
	case KindUnion:
		result = &node{id: nextID.Add(1), kind: KindIntersection, ch0: Complement(n.ch0), ch1: Complement(n.ch1)}
	case KindIntersection:
		result = &node{id: nextID.Add(1), kind: KindUnion, ch0: Complement(n.ch0), ch1: Complement(n.ch1)}
	default:
		report.CorruptReport(site, "Complement: %v: %v", ErrUnknownKind, n.kind)
		return s
	}
	n.complement = result
	result.complement = n
	return wrap(result)
}
