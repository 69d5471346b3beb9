package prim_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/scalar"
)

func planeX(d prim.Real) prim.Primitive {
	return prim.NewPlaneLeaf(scalar.Plane{Normal: scalar.Point{X: 1}, D: d})
}

func TestValue_LinearityOfAdd(t *testing.T) {
	at := scalar.Point{X: 2, Y: -1, Z: 3}
	a := planeX(1)
	b := planeX(-5)
	sum := prim.Add(a, b)

	require.InDelta(t, a.Value(at)+b.Value(at), sum.Value(at), 1e-9)
}

func TestValue_ProductRule(t *testing.T) {
	at := scalar.Point{X: 2, Y: -1, Z: 3}
	a := planeX(1)
	b := planeX(-5)
	prod := prim.Mul(a, b)

	require.InDelta(t, a.Value(at)*b.Value(at), prod.Value(at), 1e-9)
}

func TestValue_SubIsAntisymmetric(t *testing.T) {
	at := scalar.Point{X: 1, Y: 1, Z: 1}
	a := planeX(2)
	b := planeX(7)

	require.InDelta(t, -prim.Sub(a, b).Value(at), prim.Sub(b, a).Value(at), 1e-9)
}

func TestValue_SphereSurfaceIsZero(t *testing.T) {
	centre := scalar.Point{X: 1, Y: 2, Z: 3}
	sphere := prim.Sphere(centre, 5)
	onSurface := centre.Add(scalar.Point{X: 5})

	require.InDelta(t, 0, sphere.Value(onSurface), 1e-9)
	require.Less(t, sphere.Value(centre), prim.Real(0))
	require.Greater(t, sphere.Value(centre.Add(scalar.Point{X: 100})), prim.Real(0))
}
