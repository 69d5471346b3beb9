package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/svlis-go/svlis/linalg"
	"github.com/svlis-go/svlis/scalar"
)

func TestRodrigues_QuarterTurnAroundZAxis(t *testing.T) {
	r, err := linalg.Rodrigues(scalar.Point{Z: 1}, math.Pi/2)
	require.NoError(t, err)

	got, err := linalg.RotatePoint(r, scalar.Point{X: 1, Y: 0, Z: 0})
	require.NoError(t, err)
	require.True(t, got.Equal(scalar.Point{X: 0, Y: 1, Z: 0}, 1e-9), "got %v", got)
}

func TestRodrigues_ZeroAngleIsIdentity(t *testing.T) {
	r, err := linalg.Rodrigues(scalar.Point{X: 0.6, Y: 0.8, Z: 0}, 0)
	require.NoError(t, err)

	p := scalar.Point{X: 3, Y: -1, Z: 4}
	got, err := linalg.RotatePoint(r, p)
	require.NoError(t, err)
	require.True(t, got.Equal(p, 1e-9), "got %v", got)
}

func TestRodrigues_PreservesVectorLength(t *testing.T) {
	axis, err := (scalar.Point{X: 1, Y: 1, Z: 1}).Normalise()
	require.NoError(t, err)

	r, err := linalg.Rodrigues(axis, 0.77)
	require.NoError(t, err)

	p := scalar.Point{X: 2, Y: -3, Z: 5}
	got, err := linalg.RotatePoint(r, p)
	require.NoError(t, err)
	require.InDelta(t, p.Mod(), got.Mod(), 1e-9)
}

func TestRodrigues_FixesPointOnAxis(t *testing.T) {
	axis := scalar.Point{Z: 1}
	r, err := linalg.Rodrigues(axis, 1.1)
	require.NoError(t, err)

	got, err := linalg.RotatePoint(r, scalar.Point{Z: 5})
	require.NoError(t, err)
	require.True(t, got.Equal(scalar.Point{Z: 5}, 1e-9), "got %v", got)
}

func TestRodrigues_FullTurnIsIdentity(t *testing.T) {
	r, err := linalg.Rodrigues(scalar.Point{Y: 1}, 2*math.Pi)
	require.NoError(t, err)

	p := scalar.Point{X: 3, Y: 4, Z: -2}
	got, err := linalg.RotatePoint(r, p)
	require.NoError(t, err)
	require.True(t, got.Equal(p, 1e-9), "got %v", got)
}
