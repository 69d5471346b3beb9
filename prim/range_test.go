package prim_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/scalar"
)

// randPointIn samples a uniformly random point inside box b.
func randPointIn(r *rand.Rand, b scalar.Box) scalar.Point {
	lerp := func(iv scalar.Interval) scalar.Real {
		return iv.Lo + r.Float64()*(iv.Hi-iv.Lo)
	}
	return scalar.Point{X: lerp(b.X), Y: lerp(b.Y), Z: lerp(b.Z)}
}

func TestRange_ContainsValueEverywhereInBox(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	box := scalar.BoxFromCorners(scalar.Point{X: -4, Y: -4, Z: -4}, scalar.Point{X: 4, Y: 4, Z: 4})

	shapes := []prim.Primitive{
		prim.Sphere(scalar.Point{X: 1, Y: -1, Z: 0.5}, 2),
		prim.Cylinder(scalar.NewLine(scalar.Point{Z: 1}, scalar.Origin), 1.5),
		prim.Cone(scalar.Origin, scalar.Point{Z: 1}, 0.6),
		prim.Torus(scalar.NewLine(scalar.Point{Z: 1}, scalar.Origin), 2, 0.5),
		prim.Add(planeX(1), prim.Sin(planeX(2))),
		prim.Mul(planeX(1), prim.Abs(planeX(-3))),
	}

	for _, p := range shapes {
		iv := p.Range(box)
		for i := 0; i < 200; i++ {
			at := randPointIn(r, box)
			v := p.Value(at)
			require.True(t, iv.Contains(v), "Range must contain Value: iv=%v value=%v", iv, v)
		}
	}
}

func TestRange_DegenerateForRealLeaf(t *testing.T) {
	box := scalar.BoxFromCorners(scalar.Point{X: -1}, scalar.Point{X: 1})
	r := prim.NewReal(7)
	iv := r.Range(box)
	require.Equal(t, scalar.Degenerate(7), iv)
}

func TestRange_SubIsInclusionMonotone(t *testing.T) {
	box := scalar.BoxFromCorners(scalar.Point{X: -2, Y: -2, Z: -2}, scalar.Point{X: 2, Y: 2, Z: 2})
	a := planeX(3)
	b := planeX(-1)
	sub := prim.Sub(a, b)

	iv := sub.Range(box)
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		at := randPointIn(r, box)
		require.True(t, iv.Contains(sub.Value(at)))
	}
}
