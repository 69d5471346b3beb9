package model

import (
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/scalar"
	"github.com/svlis-go/svlis/set"
)

// Locate descends m to the leaf whose box contains point, following the
// cut comparisons an interior node encodes.
func Locate(m *Model, point scalar.Point) *Model {
	for m.kind != KindLeaf {
		if coordOf(point, kindAxis(m.kind)) <= m.cut {
			m = m.low
		} else {
			m = m.high
		}
	}
	return m
}

// Member classifies point against m's subdivision (spec §4.3 invariant:
// "the leaf's pruned set-list evaluates to the same membership verdict as
// the original set-list at p").
func Member(m *Model, point scalar.Point) (set.Verdict, prim.Primitive) {
	leaf := Locate(m, point)
	return set.Member(combine(leaf.setList), point)
}
