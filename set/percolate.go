package set

import "github.com/svlis-go/svlis/prim"

// Percolate rebuilds s with duplicate or complementary sibling leaves
// merged via the absorption identities A∪A=A, A∩A=A, A∪¬A=EVERYTHING,
// A∩¬A=NOTHING (spec §4.2: "pushes negations down to leaves and merges
// duplicate leaves"). Negations are already pushed to leaves by
// construction — Complement never introduces an explicit wrapper node, it
// rebuilds the De Morgan-dual tree directly — so Percolate's remaining job
// is this sibling-level simplification pass; it does not attempt whole-
// tree common-subexpression elimination.
func Percolate(s Set) Set {
	if s.zero() {
		return s
	}
	n := s.node()
	switch n.kind {
	case KindNothing, KindEverything, KindPrim:
		return s
	case KindUnion:
		a, b := Percolate(n.ch0), Percolate(n.ch1)
		switch siblingVerdict(a, b) {
		case prim.VerdictEQ:
			return a
		case prim.VerdictComplement:
			return Everything()
		default:
			return Union(a, b)
		}
	case KindIntersection:
		a, b := Percolate(n.ch0), Percolate(n.ch1)
		switch siblingVerdict(a, b) {
		case prim.VerdictEQ:
			return a
		case prim.VerdictComplement:
			return Nothing()
		default:
			return Intersection(a, b)
		}
	default:
		return s
	}
}

// siblingVerdict reports how two sibling sets' primitives relate, or
// VerdictNE if either isn't a single-primitive leaf.
func siblingVerdict(a, b Set) prim.Verdict {
	if a.Kind() != KindPrim || b.Kind() != KindPrim {
		return prim.VerdictNE
	}
	return prim.Same(a.Primitive(), b.Primitive())
}
