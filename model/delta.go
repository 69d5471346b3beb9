package model

import "github.com/svlis-go/svlis/set"

// Delta records which leaves a Redivide call actually touched, so a
// consumer like facet.Refacet can regenerate only the affected polygons
// instead of the whole model (spec.md §4.3: "refacet is the analogous
// operation").
type Delta struct {
	Touched []*Model
}

// RedivideTracked behaves like Redivide but also returns a Delta of the
// leaves whose set-list changed kind/arity from the corresponding leaf in
// the original tree (a coarse but cheap proxy for "did this leaf's
// geometry change").
func RedivideTracked(m *Model, newSetList []set.Set, limits Limits, decision DecisionFunc) (*Model, Delta) {
	var delta Delta
	result := redivideTracked(m, newSetList, limits, decision, &delta)
	return result, delta
}

func redivideTracked(m *Model, newSetList []set.Set, limits Limits, decision DecisionFunc, delta *Delta) *Model {
	if m == nil {
		return nil
	}
	pruned := pruneSetList(newSetList, m.box)

	if isTrivial(pruned) {
		leaf := &Model{kind: KindLeaf, box: m.box, setList: pruned}
		if m.kind != KindLeaf || !sameShape(m.setList, pruned) {
			delta.Touched = append(delta.Touched, leaf)
		}
		return leaf
	}

	if m.kind == KindLeaf {
		leaf := divide(&Model{kind: KindLeaf, box: m.box, setList: pruned}, limits, decision, 0)
		if !sameShape(m.setList, pruned) {
			collectLeaves(leaf, delta)
		}
		return leaf
	}

	axis := kindAxis(m.kind)
	low := redivideTracked(m.low, pruned, limits, decision, delta)
	high := redivideTracked(m.high, pruned, limits, decision, delta)
	return newInterior(m.box, axis, m.cut, low, high)
}

func collectLeaves(m *Model, delta *Delta) {
	if m == nil {
		return
	}
	if m.kind == KindLeaf {
		delta.Touched = append(delta.Touched, m)
		return
	}
	collectLeaves(m.low, delta)
	collectLeaves(m.high, delta)
}

func sameShape(a, b []set.Set) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind() != b[i].Kind() {
			return false
		}
	}
	return true
}
