package model

import "github.com/svlis-go/svlis/set"

// Redivide reuses m's existing subdivision shape to incorporate
// newSetList (spec §4.3: "at each node it re-prunes the new set-list
// against that node's box; if a sub-tree's node becomes constant it is
// collapsed; otherwise the children are redivided in place"). Descends
// along m's existing splits; a leaf whose re-pruned list is still
// ambiguous is handed back to divide so it can refine further if limits
// allow.
func Redivide(m *Model, newSetList []set.Set, limits Limits, decision DecisionFunc) *Model {
	if m == nil {
		return nil
	}
	pruned := pruneSetList(newSetList, m.box)

	if isTrivial(pruned) {
		return &Model{kind: KindLeaf, box: m.box, setList: pruned}
	}

	if m.kind == KindLeaf {
		return divide(&Model{kind: KindLeaf, box: m.box, setList: pruned}, limits, decision, 0)
	}

	axis := kindAxis(m.kind)
	low := Redivide(m.low, pruned, limits, decision)
	high := Redivide(m.high, pruned, limits, decision)
	return newInterior(m.box, axis, m.cut, low, high)
}
