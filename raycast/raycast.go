package raycast

import (
	"math"
	"sort"

	"github.com/svlis-go/svlis/model"
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/report"
	"github.com/svlis-go/svlis/scalar"
	"github.com/svlis-go/svlis/set"
)

const bisectSteps = 40

// frontierItem is one entry of the ray-march frontier: a model node and the
// sub-range of the caller's parameter interval during which the ray
// occupies that node's box.
type frontierItem struct {
	node *model.Model
	tlo  scalar.Real
	thi  scalar.Real
}

// FireRay intersects ln with m's subdivision over interval, returning the
// first leaf's combined set (as a witness) where the potential crosses
// zero, the crossing parameter t, and ok. Grounded on bfs's frontier-walk
// shape: a frontier of (node, param-range) is expanded and kept ordered by
// entry parameter, so the first hit popped is the nearest along the ray.
func FireRay(m *model.Model, ln scalar.Line, interval scalar.Interval) (hit set.Set, t scalar.Real, ok bool) {
	if m == nil {
		report.Warn(site, "FireRay: %v", ErrNilModel)
		return set.Set{}, 0, false
	}
	if ln.Dir.Mod2() == 0 {
		report.Warn(site, "FireRay: %v", ErrDegenerateDirection)
		return set.Set{}, 0, false
	}

	t0, t1, in := clipLineToBox(ln, m.Box(), interval)
	if !in {
		return set.Set{}, 0, false
	}

	frontier := []frontierItem{{node: m, tlo: t0, thi: t1}}
	for len(frontier) > 0 {
		sort.Slice(frontier, func(i, j int) bool { return frontier[i].tlo < frontier[j].tlo })
		cur := frontier[0]
		frontier = frontier[1:]

		if cur.node.Kind() == model.KindLeaf {
			if s, tc, found := bisectLeaf(cur.node, ln, cur.tlo, cur.thi); found {
				return s, tc, true
			}
			continue
		}

		axis := cur.node.Axis()
		cut := cur.node.Cut()
		p0, p1 := coordAt(ln, axis, cur.tlo), coordAt(ln, axis, cur.thi)
		switch {
		case p0 <= cut && p1 <= cut:
			frontier = append(frontier, frontierItem{cur.node.Low(), cur.tlo, cur.thi})
		case p0 >= cut && p1 >= cut:
			frontier = append(frontier, frontierItem{cur.node.High(), cur.tlo, cur.thi})
		default:
			tCross := crossingParam(ln, axis, cut, cur.tlo, cur.thi)
			first, second := cur.node.Low(), cur.node.High()
			if p0 > p1 {
				first, second = second, first
			}
			frontier = append(frontier,
				frontierItem{first, cur.tlo, tCross},
				frontierItem{second, tCross, cur.thi},
			)
		}
	}
	return set.Set{}, 0, false
}

func coordAt(ln scalar.Line, axis scalar.SplitAxis, t scalar.Real) scalar.Real {
	p := ln.At(t)
	switch axis {
	case scalar.AxisX:
		return p.X
	case scalar.AxisY:
		return p.Y
	default:
		return p.Z
	}
}

func crossingParam(ln scalar.Line, axis scalar.SplitAxis, cut, tlo, thi scalar.Real) scalar.Real {
	plo, phi := coordAt(ln, axis, tlo), coordAt(ln, axis, thi)
	if phi == plo {
		return tlo
	}
	frac := (cut - plo) / (phi - plo)
	return tlo + frac*(thi-tlo)
}

// bisectLeaf evaluates the leaf's combined set-list potential at the two
// ends of [tlo, thi]; if it changes sign, bisects to a root.
func bisectLeaf(m *model.Model, ln scalar.Line, tlo, thi scalar.Real) (set.Set, scalar.Real, bool) {
	combined := combine(m.SetList())
	if k := combined.Kind(); k == set.KindNothing || k == set.KindEverything {
		// A constant leaf holds no surface.
		return set.Set{}, 0, false
	}
	vlo, vhi := surfaceValue(combined, ln.At(tlo)), surfaceValue(combined, ln.At(thi))
	if vlo == 0 {
		return combined, tlo, true
	}
	if (vlo > 0) == (vhi > 0) {
		return set.Set{}, 0, false
	}
	lo, hi := tlo, thi
	for i := 0; i < bisectSteps; i++ {
		mid := (lo + hi) / 2
		vmid := surfaceValue(combined, ln.At(mid))
		if (vmid > 0) == (vlo > 0) {
			lo, vlo = mid, vmid
		} else {
			hi = mid
		}
	}
	return combined, (lo + hi) / 2, true
}

// surfaceValue evaluates the representative potential of a combined
// set-list at a point, by walking to the first primitive leaf reached.
// This mirrors member's own convention of returning a single witness
// primitive for a boundary crossing.
func surfaceValue(s set.Set, p scalar.Point) scalar.Real {
	var v scalar.Real = math.NaN()
	set.Walk(s, func(prm prim.Primitive) bool {
		if math.IsNaN(v) {
			v = prm.Value(p)
		}
		return math.IsNaN(v)
	})
	if math.IsNaN(v) {
		return 0
	}
	return v
}

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

// clipLineToBox intersects ln with box via the slab method, clipped to
// interval, returning the entry/exit parameters and whether the
// intersection is non-empty.
func clipLineToBox(ln scalar.Line, box scalar.Box, interval scalar.Interval) (t0, t1 scalar.Real, ok bool) {
	t0, t1 = interval.Lo, interval.Hi
	axes := []scalar.SplitAxis{scalar.AxisX, scalar.AxisY, scalar.AxisZ}
	dir := []scalar.Real{ln.Dir.X, ln.Dir.Y, ln.Dir.Z}
	origin := []scalar.Real{ln.Origin.X, ln.Origin.Y, ln.Origin.Z}
	for i, axis := range axes {
		iv := box.Interval(axis)
		d := dir[i]
		o := origin[i]
		if d == 0 {
			if o < iv.Lo || o > iv.Hi {
				return 0, 0, false
			}
			continue
		}
		a, b := (iv.Lo-o)/d, (iv.Hi-o)/d
		if a > b {
			a, b = b, a
		}
		if a > t0 {
			t0 = a
		}
		if b < t1 {
			t1 = b
		}
		if t0 > t1 {
			return 0, 0, false
		}
	}
	return t0, t1, true
}
