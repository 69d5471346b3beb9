package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/svlis-go/svlis/model"
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/scalar"
	"github.com/svlis-go/svlis/set"
)

func unitCube() scalar.Box {
	return scalar.NewBox(
		scalar.NewInterval(-2, 2),
		scalar.NewInterval(-2, 2),
		scalar.NewInterval(-2, 2),
	)
}

func cubeSetList() []set.Set {
	sphere := prim.Sphere(scalar.Point{}, 1)
	return []set.Set{set.FromPrimitive(sphere)}
}

func TestDivide_SubdivisionCorrectness(t *testing.T) {
	box := unitCube()
	leaf := model.NewLeaf(box, cubeSetList())
	limits := model.NewLimits(model.WithDepthLimit(4))
	tree := model.Divide(leaf, limits, model.DefaultDecision)

	before := set.FromPrimitive(prim.Sphere(scalar.Point{}, 1))
	pts := []scalar.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1.5, Y: 0, Z: 0},
		{X: 0, Y: -1.9, Z: 0},
	}
	for _, p := range pts {
		want, _ := set.Member(before, p)
		got, _ := model.Member(tree, p)
		require.Equal(t, want, got, "membership mismatch at %+v", p)
	}
}

func TestDivide_LeafBoxesPartitionRoot(t *testing.T) {
	box := unitCube()
	leaf := model.NewLeaf(box, cubeSetList())
	limits := model.NewLimits(model.WithDepthLimit(3))
	tree := model.Divide(leaf, limits, model.DefaultDecision)

	var vol scalar.Real
	var rec func(m *model.Model)
	rec = func(m *model.Model) {
		if m.Kind() == model.KindLeaf {
			vol += m.Box().Volume()
			return
		}
		rec(m.Low())
		rec(m.High())
	}
	rec(tree)
	require.InDelta(t, box.Volume(), vol, 1e-6)
}

func TestDivide_UnambiguousBoxStopsRecursion(t *testing.T) {
	// A box entirely outside the unit sphere never straddles; divide
	// should hand back a single leaf collapsed to NOTHING.
	box := scalar.NewBox(
		scalar.NewInterval(10, 12),
		scalar.NewInterval(10, 12),
		scalar.NewInterval(10, 12),
	)
	leaf := model.NewLeaf(box, cubeSetList())
	tree := model.Divide(leaf, model.DefaultLimits(), model.DefaultDecision)

	require.Equal(t, model.KindLeaf, tree.Kind())
	require.Len(t, tree.SetList(), 1)
	require.Equal(t, set.KindNothing, tree.SetList()[0].Kind())
}

func TestDivide_UnitCubeSixPlanes(t *testing.T) {
	// Unit cube as intersection of six half-spaces (spec scenario 3).
	mk := func(n scalar.Point, d scalar.Real) set.Set {
		return set.FromPrimitive(prim.NewPlaneLeaf(scalar.Plane{Normal: n, D: d}))
	}
	cube := set.Intersection(
		set.Intersection(mk(scalar.Point{X: 1}, -1), mk(scalar.Point{X: -1}, -1)),
		set.Intersection(
			set.Intersection(mk(scalar.Point{Y: 1}, -1), mk(scalar.Point{Y: -1}, -1)),
			set.Intersection(mk(scalar.Point{Z: 1}, -1), mk(scalar.Point{Z: -1}, -1)),
		),
	)
	box := unitCube()
	leaf := model.NewLeaf(box, []set.Set{cube})
	limits := model.NewLimits(model.WithDepthLimit(4))
	tree := model.Divide(leaf, limits, model.DefaultDecision)

	var sawConst, sawStraddling bool
	var rec func(m *model.Model)
	rec = func(m *model.Model) {
		if m.Kind() != model.KindLeaf {
			rec(m.Low())
			rec(m.High())
			return
		}
		if len(m.SetList()) == 1 {
			switch m.SetList()[0].Kind() {
			case set.KindNothing, set.KindEverything:
				sawConst = true
			default:
				sawStraddling = true
			}
		}
	}
	rec(tree)
	require.True(t, sawConst, "expected some leaves fully inside/outside the cube")
	require.True(t, sawStraddling, "expected some leaves straddling a face")
}

func TestRedivide_ReusesShapeOutsideChangedRegion(t *testing.T) {
	box := unitCube()
	leaf := model.NewLeaf(box, cubeSetList())
	limits := model.NewLimits(model.WithDepthLimit(3))
	tree := model.Divide(leaf, limits, model.DefaultDecision)

	extra := set.FromPrimitive(prim.NewPlaneLeaf(scalar.Plane{Normal: scalar.Point{X: 1}, D: -5}))
	newList := append(append([]set.Set{}, cubeSetList()...), extra)
	redone := model.Redivide(tree, newList, limits, model.DefaultDecision)

	require.Equal(t, tree.Kind(), redone.Kind())
}

func TestParallelDivide_MatchesSequentialMembership(t *testing.T) {
	box := unitCube()
	limits := model.NewLimits(model.WithDepthLimit(3))

	seq := model.Divide(model.NewLeaf(box, cubeSetList()), limits, model.DefaultDecision)
	par := model.ParallelDivide(model.NewLeaf(box, cubeSetList()), limits, model.DefaultDecision, 2)

	for _, p := range []scalar.Point{{X: 0}, {X: 1.9}, {Y: -1.9}} {
		wantV, _ := model.Member(seq, p)
		gotV, _ := model.Member(par, p)
		require.Equal(t, wantV, gotV)
	}
}

func TestWalkStats_CountsLeavesAndDepth(t *testing.T) {
	box := unitCube()
	leaf := model.NewLeaf(box, cubeSetList())
	limits := model.NewLimits(model.WithDepthLimit(3))
	tree := model.Divide(leaf, limits, model.DefaultDecision)

	stats := model.WalkStats(tree)
	require.Greater(t, stats.Leaves, 0)
	require.LessOrEqual(t, stats.MaxDepth, 3)
}
