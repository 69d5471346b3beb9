package prim_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/scalar"
)

func TestParameters_SphereRoundTrips(t *testing.T) {
	centre := scalar.Point{X: 1, Y: -2, Z: 3}
	sphere := prim.Sphere(centre, 5)

	got, ok := prim.Parameters(sphere)
	require.True(t, ok)
	require.Equal(t, prim.KindSphere, got.Kind)
	require.Len(t, got.Reals, 1)
	require.InDelta(t, 5, got.Reals[0], 1e-9)
	require.True(t, got.Point.Equal(centre, 1e-9))
	require.Equal(t, "identity", got.Status)
}

func TestParameters_CylinderRoundTrips(t *testing.T) {
	axis := scalar.NewLine(scalar.Point{Z: 1}, scalar.Point{X: 1, Y: 2})
	cyl := prim.Cylinder(axis, 3)

	got, ok := prim.Parameters(cyl)
	require.True(t, ok)
	require.Equal(t, prim.KindCylinder, got.Kind)
	require.InDelta(t, 3, got.Reals[0], 1e-9)
}

func TestParameters_ConeRoundTrips(t *testing.T) {
	apex := scalar.Point{X: 1, Y: 1, Z: 1}
	cone := prim.Cone(apex, scalar.Point{Z: 1}, 0.4)

	got, ok := prim.Parameters(cone)
	require.True(t, ok)
	require.Equal(t, prim.KindCone, got.Kind)
	require.InDelta(t, 0.4, got.Reals[0], 1e-9)
	require.True(t, got.Point.Equal(apex, 1e-9))
}

func TestParameters_TorusRoundTrips(t *testing.T) {
	axis := scalar.NewLine(scalar.Point{Z: 1}, scalar.Origin)
	torus := prim.Torus(axis, 4, 1)

	got, ok := prim.Parameters(torus)
	require.True(t, ok)
	require.Equal(t, prim.KindTorus, got.Kind)
	require.InDelta(t, 4, got.Reals[0], 1e-9)
	require.InDelta(t, 1, got.Reals[1], 1e-9)
}

func TestParameters_CyclideRoundTrips(t *testing.T) {
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
	consts := [3]prim.Real{2, 1, 0.5}
	cyclide := prim.Cyclide(planes, consts)

	got, ok := prim.Parameters(cyclide)
	require.True(t, ok)
	require.Equal(t, prim.KindCyclide, got.Kind)
	require.InDelta(t, consts[0], got.Reals[0], 1e-9)
	require.InDelta(t, consts[1], got.Reals[1], 1e-9)
	require.InDelta(t, consts[2], got.Reals[2], 1e-9)
}

func TestParameters_NonNamedShapeFails(t *testing.T) {
	generic := prim.Add(planeX(1), prim.Sin(planeX(2)))
	_, ok := prim.Parameters(generic)
	require.False(t, ok)
}

func TestParameters_ComplementStatusReflectsNegation(t *testing.T) {
	sphere := prim.Sphere(scalar.Origin, 2)
	complement := prim.Neg(sphere)

	got, ok := prim.Parameters(complement)
	require.True(t, ok)
	require.Equal(t, "complement", got.Status)
}
