package model

import (
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/scalar"
	"github.com/svlis-go/svlis/set"
)

// DefaultDecision tentatively bisects the box along each axis and counts,
// per axis, how many live primitives' ranges stop straddling zero in at
// least one of the two halves (spec §4.3 step 2: "axis of greatest spread
// among primitive zero-crossings, and bisects"). The axis that resolves
// the most primitives is chosen, ties broken by the box's own raw width;
// the cut is always the midpoint.
func DefaultDecision(box scalar.Box, setList []set.Set) (scalar.SplitAxis, scalar.Real) {
	var prims []prim.Primitive
	set.Walk(combine(setList), func(p prim.Primitive) bool {
		prims = append(prims, p)
		return true
	})

	axes := []scalar.SplitAxis{scalar.AxisX, scalar.AxisY, scalar.AxisZ}
	best := box.WidestAxis()
	bestScore := -1
	for _, a := range axes {
		cut := box.Interval(a).Mid()
		lo, hi := box.Split(a, cut)
		score := 0
		for _, p := range prims {
			if straddles(p, box) && !(straddles(p, lo) && straddles(p, hi)) {
				score++
			}
		}
		if score > bestScore || (score == bestScore && box.Interval(a).Width() > box.Interval(best).Width()) {
			bestScore, best = score, a
		}
	}
	return best, box.Interval(best).Mid()
}

// straddles reports whether p's range over box is ambiguous — neither
// entirely inside (≤0) nor entirely outside (≥0) — the same test divide
// uses to decide whether a primitive is prunable (spec §4.3 step 3).
func straddles(p prim.Primitive, box scalar.Box) bool {
	r := p.Range(box)
	return r.Hi > 0 && r.Lo < 0
}

// combine folds a set-list (interpreted as an AND of its members) into a
// single Set for traversal purposes, reusing Intersection's own NOTHING/
// EVERYTHING folding.
func combine(setList []set.Set) set.Set {
	if len(setList) == 0 {
		return set.Everything()
	}
	acc := setList[0]
	for _, s := range setList[1:] {
		acc = set.Intersection(acc, s)
	}
	return acc
}
