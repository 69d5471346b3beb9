package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/svlis-go/svlis/builder"
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/scalar"
)

func TestSphere_MatchesPrimSphere(t *testing.T) {
	centre := scalar.Point{X: 1, Y: 2, Z: 3}
	got := builder.Sphere(centre, 5)
	want := prim.Sphere(centre, 5)
	require.Equal(t, want.Kind(), got.Kind())
	require.Equal(t, prim.VerdictEQ, prim.Same(want, got))
}

func TestCylinder_MatchesPrimCylinder(t *testing.T) {
	axis := scalar.NewLine(scalar.Point{Z: 1}, scalar.Origin)
	got := builder.Cylinder(axis, 2)
	require.Equal(t, prim.KindCylinder, got.Kind())
}

func TestCone_MatchesPrimCone(t *testing.T) {
	got := builder.Cone(scalar.Origin, scalar.Point{Z: 1}, 0.5)
	require.Equal(t, prim.KindCone, got.Kind())
}

func TestTorus_MatchesPrimTorus(t *testing.T) {
	axis := scalar.NewLine(scalar.Point{Z: 1}, scalar.Origin)
	got := builder.Torus(axis, 3, 1)
	require.Equal(t, prim.KindTorus, got.Kind())
}

func TestCyclide_MatchesPrimCyclide(t *testing.T) {
	pxy, err := scalar.NewPlane(scalar.Point{X: 1, Y: 1}, 0)
	require.NoError(t, err)
	pyz, err := scalar.NewPlane(scalar.Point{Y: 1, Z: 1}, 0)
	require.NoError(t, err)
	planes := [5]scalar.Plane{
		{Normal: scalar.Point{X: 1}, D: 0},
		{Normal: scalar.Point{Y: 1}, D: 0},
		{Normal: scalar.Point{Z: 1}, D: 0},
		pxy,
		pyz,
	}
	got := builder.Cyclide(planes, [3]scalar.Real{1, 1, 0})
	require.Equal(t, prim.KindCyclide, got.Kind())
}

func TestBlock_BuildsBlockLeaf(t *testing.T) {
	box := scalar.BoxFromCorners(scalar.Point{X: -1, Y: -1, Z: -1}, scalar.Point{X: 1, Y: 1, Z: 1})
	got := builder.Block(box)
	require.Equal(t, prim.KindBlock, got.Kind())
	require.Equal(t, box, got.BlockValue())
}

func TestBlock_EmptyBoxDegradesToZeroVolumeBlock(t *testing.T) {
	empty := scalar.Box{X: scalar.Interval{Lo: 1, Hi: -1}}
	got := builder.Block(empty)
	require.Equal(t, prim.KindBlock, got.Kind())
	require.Equal(t, scalar.Box{}, got.BlockValue())
}
