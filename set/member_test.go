package set_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/scalar"
	"github.com/svlis-go/svlis/set"
)

func TestMember_NothingIsAlwaysOut(t *testing.T) {
	v, w := set.Member(set.Nothing(), scalar.Origin)
	require.Equal(t, set.VerdictOUT, v)
	require.True(t, w.Zero())
}

func TestMember_EverythingIsAlwaysIn(t *testing.T) {
	v, w := set.Member(set.Everything(), scalar.Point{X: 1e9})
	require.Equal(t, set.VerdictIN, v)
	require.True(t, w.Zero())
}

func TestMember_SinglePrimitive_InOnOut(t *testing.T) {
	sphere := set.FromPrimitive(prim.Sphere(scalar.Origin, 2))

	v, _ := set.Member(sphere, scalar.Origin)
	require.Equal(t, set.VerdictIN, v)

	v, w := set.Member(sphere, scalar.Point{X: 2})
	require.Equal(t, set.VerdictON, v)
	require.False(t, w.Zero())

	v, _ = set.Member(sphere, scalar.Point{X: 100})
	require.Equal(t, set.VerdictOUT, v)
}

func TestMember_UserPrimitiveNonFiniteIsAir(t *testing.T) {
	const airTag = prim.UserTagThreshold + 1
	prim.RegisterUser(airTag, prim.UserCallbacks{
		Value: func(int, scalar.Point) prim.Real { return math.NaN() },
	})
	s := set.FromPrimitive(prim.NewUser(airTag))

	v, w := set.Member(s, scalar.Origin)
	require.Equal(t, set.VerdictAIR, v)
	require.False(t, w.Zero())
}

func TestMember_Union_INDominates(t *testing.T) {
	in := set.FromPrimitive(prim.Sphere(scalar.Origin, 2))
	out := set.FromPrimitive(prim.Sphere(scalar.Point{X: 100}, 1))
	u := set.Union(in, out)

	v, _ := set.Member(u, scalar.Origin)
	require.Equal(t, set.VerdictIN, v)
}

func TestMember_Union_BothOutIsOut(t *testing.T) {
	a := set.FromPrimitive(prim.Sphere(scalar.Point{X: 100}, 1))
	b := set.FromPrimitive(prim.Sphere(scalar.Point{X: -100}, 1))
	u := set.Union(a, b)

	v, _ := set.Member(u, scalar.Origin)
	require.Equal(t, set.VerdictOUT, v)
}

func TestMember_Intersection_OUTDominates(t *testing.T) {
	in := set.FromPrimitive(prim.Sphere(scalar.Origin, 2))
	out := set.FromPrimitive(prim.Sphere(scalar.Point{X: 100}, 1))
	i := set.Intersection(in, out)

	v, _ := set.Member(i, scalar.Origin)
	require.Equal(t, set.VerdictOUT, v)
}

func TestMember_Intersection_BothInIsIn(t *testing.T) {
	a := set.FromPrimitive(prim.Sphere(scalar.Origin, 2))
	b := set.FromPrimitive(prim.Sphere(scalar.Point{X: 0.5}, 2))
	i := set.Intersection(a, b)

	v, _ := set.Member(i, scalar.Origin)
	require.Equal(t, set.VerdictIN, v)
}
