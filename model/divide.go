package model

import (
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/scalar"
	"github.com/svlis-go/svlis/set"
)

// Divide builds the full subdivision of leaf under limits, using decision
// to pick each split (spec §4.3). leaf itself is not mutated; the returned
// *Model replaces it in the caller's tree.
func Divide(leaf *Model, limits Limits, decision DecisionFunc) *Model {
	if leaf == nil {
		return nil
	}
	if leaf.kind == KindLeaf {
		leaf = &Model{kind: KindLeaf, box: leaf.box, setList: pruneSetList(leaf.setList, leaf.box)}
	}
	return divide(leaf, limits, decision, 0)
}

func divide(m *Model, limits Limits, decision DecisionFunc, depth int) *Model {
	if m.kind != KindLeaf {
		return m
	}
	if isTrivial(m.setList) {
		return m
	}
	if depth >= limits.DepthLimit {
		return m
	}
	if m.box.Volume() < limits.MinVolume {
		return m
	}
	if livePrimCount(m.setList, m.box) < limits.MinPrimCount {
		return m
	}
	if !anyStraddles(m.setList, m.box) {
		return m
	}

	axis, cut := decision(m.box, m.setList)
	loBox, hiBox := m.box.Split(axis, cut)
	loList := pruneSetList(m.setList, loBox)
	hiList := pruneSetList(m.setList, hiBox)

	low := divide(&Model{kind: KindLeaf, box: loBox, setList: loList}, limits, decision, depth+1)
	high := divide(&Model{kind: KindLeaf, box: hiBox, setList: hiList}, limits, decision, depth+1)
	return newInterior(m.box, axis, cut, low, high)
}

// isTrivial reports whether setList is already a single constant set
// (spec §4.3 step 1/4: "set-list reduced to a single constant set").
func isTrivial(setList []set.Set) bool {
	if len(setList) != 1 {
		return false
	}
	k := setList[0].Kind()
	return k == set.KindNothing || k == set.KindEverything
}

// anyStraddles reports whether any live primitive's range over box is
// ambiguous (spec §4.3 step 4: "no primitive's interval straddles 0").
func anyStraddles(setList []set.Set, box scalar.Box) bool {
	found := false
	set.Walk(combine(setList), func(p prim.Primitive) bool {
		if straddles(p, box) {
			found = true
			return false
		}
		return true
	})
	return found
}

// livePrimCount counts primitives whose range over box is still ambiguous
// — the primitives pruning has not yet resolved (spec §4.3 step 4: "pruned
// primitive count below a configured threshold").
func livePrimCount(setList []set.Set, box scalar.Box) int {
	n := 0
	set.Walk(combine(setList), func(p prim.Primitive) bool {
		if straddles(p, box) {
			n++
		}
		return true
	})
	return n
}

// pruneSetList prunes every set in setList against box and simplifies the
// result (spec §4.3 step 3).
func pruneSetList(setList []set.Set, box scalar.Box) []set.Set {
	pruned := make([]set.Set, len(setList))
	for i, s := range setList {
		pruned[i] = pruneSet(s, box)
	}
	return simplifySetList(pruned)
}

// pruneSet replaces every primitive leaf in s whose range over box is
// unambiguous with NOTHING or EVERYTHING, and folds the result via
// Union/Intersection's own identities.
//
// A primitive is interpreted as {x : value(x) <= 0} (spec §3.3). If its
// range over box is entirely <= 0, the primitive holds everywhere in box,
// so it prunes to EVERYTHING; if entirely >= 0, it never holds (other than
// possibly on a measure-zero boundary), so it prunes to NOTHING.
func pruneSet(s set.Set, box scalar.Box) set.Set {
	switch s.Kind() {
	case set.KindNothing, set.KindEverything:
		return s
	case set.KindPrim:
		r := s.Primitive().Range(box)
		switch {
		case r.Hi <= 0:
			return set.Everything()
		case r.Lo >= 0:
			return set.Nothing()
		default:
			return s
		}
	case set.KindUnion:
		return set.Union(pruneSet(s.Child(0), box), pruneSet(s.Child(1), box))
	case set.KindIntersection:
		return set.Intersection(pruneSet(s.Child(0), box), pruneSet(s.Child(1), box))
	default:
		return s
	}
}

// simplifySetList applies the set-list-level identity that a single
// NOTHING member collapses the whole AND to NOTHING, and drops EVERYTHING
// members outright (spec §4.3 step 3: "Simplify ∪/∩ using NOTHING/
// EVERYTHING identities", read up one level — a set-list is implicitly
// ANDed together).
func simplifySetList(setList []set.Set) []set.Set {
	out := make([]set.Set, 0, len(setList))
	for _, s := range setList {
		switch s.Kind() {
		case set.KindNothing:
			return []set.Set{set.Nothing()}
		case set.KindEverything:
			continue
		default:
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return []set.Set{set.Everything()}
	}
	return out
}
