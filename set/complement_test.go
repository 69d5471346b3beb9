package set_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/scalar"
	"github.com/svlis-go/svlis/set"
)

func TestComplement_OfNothingIsEverything(t *testing.T) {
	require.Equal(t, set.KindEverything, set.Complement(set.Nothing()).Kind())
}

func TestComplement_OfEverythingIsNothing(t *testing.T) {
	require.Equal(t, set.KindNothing, set.Complement(set.Everything()).Kind())
}

func TestComplement_FlipsUnionToIntersection(t *testing.T) {
	a := set.FromPrimitive(prim.Sphere(scalar.Origin, 1))
	b := set.FromPrimitive(prim.Sphere(scalar.Point{X: 3}, 1))
	u := set.Union(a, b)

	require.Equal(t, set.KindIntersection, set.Complement(u).Kind())
}

func TestComplement_CachedBackPointerIsReused(t *testing.T) {
	s := set.FromPrimitive(prim.Sphere(scalar.Origin, 1))

	c1 := set.Complement(s)
	c2 := set.Complement(s)
	require.Equal(t, c1.ID(), c2.ID(), "complementing the same set twice must return the same cached node")
}

func TestComplement_DoubleComplementReturnsOriginalNode(t *testing.T) {
	s := set.FromPrimitive(prim.Sphere(scalar.Origin, 1))

	c := set.Complement(s)
	back := set.Complement(c)
	require.Equal(t, s.ID(), back.ID(), "complementing twice must return the original node, not rebuild it")
}

func TestComplement_ClassifiesOppositeOfOriginal(t *testing.T) {
	s := set.FromPrimitive(prim.Sphere(scalar.Origin, 2))
	c := set.Complement(s)

	inside := scalar.Origin
	vs, _ := set.Member(s, inside)
	vc, _ := set.Member(c, inside)
	require.Equal(t, set.VerdictIN, vs)
	require.Equal(t, set.VerdictOUT, vc)

	outside := scalar.Point{X: 100}
	vs, _ = set.Member(s, outside)
	vc, _ = set.Member(c, outside)
	require.Equal(t, set.VerdictOUT, vs)
	require.Equal(t, set.VerdictIN, vc)
}
