package prim_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/scalar"
)

func TestGrad_LinearityOfAdd(t *testing.T) {
	at := scalar.Point{X: 1, Y: 2, Z: 3}
	a := planeX(1)
	b := prim.NewPlaneLeaf(scalar.Plane{Normal: scalar.Point{Y: 1}, D: -4})
	sum := prim.Add(a, b)

	ga := a.GradAt(at)
	gb := b.GradAt(at)
	gs := sum.GradAt(at)

	require.InDelta(t, ga.X+gb.X, gs.X, 1e-9)
	require.InDelta(t, ga.Y+gb.Y, gs.Y, 1e-9)
	require.InDelta(t, ga.Z+gb.Z, gs.Z, 1e-9)
}

func TestGrad_ScalarMultipleScalesGradient(t *testing.T) {
	at := scalar.Point{X: 1, Y: -2, Z: 0.5}
	a := planeX(2)
	scaled := prim.Mul(prim.NewReal(3), a)

	ga := a.GradAt(at)
	gs := scaled.GradAt(at)

	require.InDelta(t, 3*ga.X, gs.X, 1e-9)
	require.InDelta(t, 3*ga.Y, gs.Y, 1e-9)
	require.InDelta(t, 3*ga.Z, gs.Z, 1e-9)
}

func TestGrad_PlaneLeafGradientIsItsNormal(t *testing.T) {
	pl := scalar.Plane{Normal: scalar.Point{X: 0.6, Y: 0, Z: 0.8}, D: 1}
	p := prim.NewPlaneLeaf(pl)

	g := p.GradAt(scalar.Point{X: 10, Y: 10, Z: 10})
	require.InDelta(t, pl.Normal.X, g.X, 1e-9)
	require.InDelta(t, pl.Normal.Y, g.Y, 1e-9)
	require.InDelta(t, pl.Normal.Z, g.Z, 1e-9)
}

func TestGrad_SphereGradientPointsOutward(t *testing.T) {
	centre := scalar.Origin
	sphere := prim.Sphere(centre, 3)
	at := scalar.Point{X: 4, Y: 0, Z: 0}

	g := sphere.GradAt(at)
	require.Greater(t, g.X, prim.Real(0))
	require.InDelta(t, 0, g.Y, 1e-9)
	require.InDelta(t, 0, g.Z, 1e-9)
}
