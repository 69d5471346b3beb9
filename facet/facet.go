package facet

import (
	"github.com/svlis-go/svlis/model"
	"github.com/svlis-go/svlis/scalar"
	"github.com/svlis-go/svlis/set"
)

// boxEdges lists the 12 edges of a box as pairs of scalar.Box.Corner
// indices differing in exactly one bit.
var boxEdges = [12][2]int{
	{0, 1}, {0, 2}, {0, 4}, {1, 3},
	{1, 5}, {2, 3}, {2, 6}, {3, 7},
	{4, 5}, {4, 6}, {5, 7}, {6, 7},
}

// Facet walks m's leaves and emits one simplified polygon per leaf whose
// combined set-list potential changes sign across at least one box edge
// (spec §6: facet). This is a simplified marching-cubes pass: instead of
// the full 256-case topology table, each leaf's zero-crossing edge points
// are emitted as one polygon in box-edge order (closed for three or more
// points, a polyline for two); the points are not sorted around the
// crossing loop and no triangulation is done (see DESIGN.md).
func Facet(m *model.Model) []Polygon {
	var polys []Polygon
	var walk func(n *model.Model)
	walk = func(n *model.Model) {
		if n == nil {
			return
		}
		if n.Kind() != model.KindLeaf {
			walk(n.Low())
			walk(n.High())
			return
		}
		if p, ok := facetLeaf(n); ok {
			polys = append(polys, p)
		}
	}
	walk(m)
	return polys
}

// Refacet regenerates polygons only for the touched leaves. Replacing
// prev's stale entries positionally is not meaningful across a changed
// tree shape, so Refacet instead returns everything in prev whose source
// box is not exactly the box of a touched leaf, followed by the freshly
// computed polygons of those touched leaves whose box is exactly a leaf box
// of root (spec.md §4.3: "refacet is the analogous operation").
func Refacet(prev []Polygon, touched []*model.Model, root *model.Model) []Polygon {
	fresh := make(map[scalar.Box]Polygon, len(touched))
	for _, leaf := range touched {
		if p, ok := facetLeaf(leaf); ok {
			fresh[leaf.Box()] = p
		}
	}
	touchedBoxes := make(map[scalar.Box]bool, len(touched))
	for _, leaf := range touched {
		touchedBoxes[leaf.Box()] = true
	}

	out := make([]Polygon, 0, len(prev)+len(fresh))
	for _, p := range prev {
		if p.sourceBox != (scalar.Box{}) && touchedBoxes[p.sourceBox] {
			continue
		}
		out = append(out, p)
	}
	var all []Polygon
	walkLeaves(root, func(n *model.Model) {
		if p, ok := fresh[n.Box()]; ok {
			all = append(all, p)
		}
	})
	return append(out, all...)
}

func walkLeaves(m *model.Model, visit func(*model.Model)) {
	if m == nil {
		return
	}
	if m.Kind() == model.KindLeaf {
		visit(m)
		return
	}
	walkLeaves(m.Low(), visit)
	walkLeaves(m.High(), visit)
}

func facetLeaf(n *model.Model) (Polygon, bool) {
	box := n.Box()
	combined := combine(n.SetList())
	values := make([]scalar.Real, 8)
	for i := 0; i < 8; i++ {
		values[i] = cornerValue(combined, box.Corner(i))
	}

	var crossings []scalar.Point
	for _, e := range boxEdges {
		v0, v1 := values[e[0]], values[e[1]]
		if (v0 > 0) == (v1 > 0) {
			continue
		}
		p0, p1 := box.Corner(e[0]), box.Corner(e[1])
		frac := v0 / (v0 - v1)
		crossings = append(crossings, p0.Add(p1.Sub(p0).Scale(frac)))
	}

	switch {
	case len(crossings) >= 3:
		return Polygon{Kind: KindClosed, Points: crossings, sourceBox: box}, true
	case len(crossings) == 2:
		return Polygon{Kind: KindPolyline, Points: crossings, sourceBox: box}, true
	default:
		return Polygon{}, false
	}
}

// cornerValue reduces a corner's membership verdict to a signed scalar
// suitable for linear edge interpolation: negative inside, positive
// outside, zero on (or undetermined at) the boundary.
func cornerValue(s set.Set, p scalar.Point) scalar.Real {
	v, _ := set.Member(s, p)
	switch v {
	case set.VerdictIN:
		return -1
	case set.VerdictOUT:
		return 1
	default:
		return 0
	}
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
