package prim_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/scalar"
)

func TestSame_DoubleComplementIsEqual(t *testing.T) {
	x := prim.Sphere(scalar.Point{X: 1, Y: 2, Z: 3}, 4)
	doubleNeg := prim.Neg(prim.Neg(x))

	require.Equal(t, prim.VerdictEQ, prim.Same(doubleNeg, x))
}

func TestSame_SingleComplementIsComplement(t *testing.T) {
	x := planeX(1)
	require.Equal(t, prim.VerdictComplement, prim.Same(prim.Neg(x), x))
}

func TestSame_AbsIsIdempotent(t *testing.T) {
	x := planeX(-3)
	onceAbs := prim.Abs(x)
	twiceAbs := prim.Abs(onceAbs)

	require.Equal(t, prim.VerdictAbs, prim.Same(onceAbs, x))
	require.Equal(t, prim.VerdictEQ, prim.Same(twiceAbs, onceAbs))
}

func TestSame_AbsOfComplementIsAbsOfOriginal(t *testing.T) {
	x := planeX(2)
	require.Equal(t, prim.VerdictEQ, prim.Same(prim.Abs(prim.Neg(x)), prim.Abs(x)))
}

func TestSame_UnrelatedPrimitivesAreNE(t *testing.T) {
	a := planeX(1)
	b := prim.NewPlaneLeaf(scalar.Plane{Normal: scalar.Point{Y: 1}, D: 1})
	require.Equal(t, prim.VerdictNE, prim.Same(a, b))
}

func TestSame_CommutativeAddMatchesSwappedChildren(t *testing.T) {
	// Sin/Cos of plane leaves never constant-fold or combine the way two
	// bare planes do, so Add here stays a genuine general OpAdd node and
	// exercises sameCore's commutative-swap retry rather than the plane-
	// combining fast path in NewBinary.
	a := prim.Sin(planeX(1))
	b := prim.Cos(planeX(2))
	lhs := prim.Add(a, b)
	rhs := prim.Add(b, a)
	require.Equal(t, prim.VerdictEQ, prim.Same(lhs, rhs))
}
