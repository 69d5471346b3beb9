package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/svlis-go/svlis/scalar"
)

func TestPoint_RotateAbout_QuarterTurnAroundZAxis(t *testing.T) {
	axis := scalar.NewLine(scalar.Point{Z: 1}, scalar.Origin)
	p := scalar.Point{X: 1, Y: 0, Z: 5}

	got := p.RotateAbout(axis, math.Pi/2)
	require.True(t, got.Equal(scalar.Point{X: 0, Y: 1, Z: 5}, 1e-9), "got %v", got)
}

func TestPoint_RotateAbout_FullTurnIsIdentity(t *testing.T) {
	axis := scalar.NewLine(scalar.Point{X: 0.6, Y: 0.8, Z: 0}, scalar.Point{X: 1, Y: 1, Z: 1})
	p := scalar.Point{X: 3, Y: -2, Z: 7}

	got := p.RotateAbout(axis, 2*math.Pi)
	require.True(t, got.Equal(p, 1e-9), "got %v", got)
}

func TestPoint_RotateAbout_PreservesDistanceFromAxis(t *testing.T) {
	axis := scalar.NewLine(scalar.Point{Z: 1}, scalar.Origin)
	p := scalar.Point{X: 3, Y: 4, Z: 9}

	got := p.RotateAbout(axis, 1.234)
	require.InDelta(t, p.Z, got.Z, 1e-9)
	require.InDelta(t, math.Hypot(p.X, p.Y), math.Hypot(got.X, got.Y), 1e-9)
}

func TestPoint_ReflectIn_MirrorsAcrossPlaneThroughOrigin(t *testing.T) {
	pl := scalar.Plane{Normal: scalar.Point{X: 1}, D: 0}
	p := scalar.Point{X: 3, Y: 5, Z: -2}

	got := p.ReflectIn(pl)
	require.True(t, got.Equal(scalar.Point{X: -3, Y: 5, Z: -2}, 1e-9), "got %v", got)
}

func TestPoint_ReflectIn_PointOnPlaneIsFixed(t *testing.T) {
	pl := scalar.Plane{Normal: scalar.Point{X: 1}, D: -2}
	p := scalar.Point{X: 2, Y: 7, Z: -9}

	got := p.ReflectIn(pl)
	require.True(t, got.Equal(p, 1e-9), "got %v", got)
}

func TestPoint_ReflectIn_IsInvolution(t *testing.T) {
	pl := scalar.Plane{Normal: scalar.Point{X: 0.6, Y: 0.8, Z: 0}, D: 1.5}
	p := scalar.Point{X: 1, Y: -1, Z: 4}

	once := p.ReflectIn(pl)
	twice := once.ReflectIn(pl)
	require.True(t, twice.Equal(p, 1e-9), "got %v", twice)
}

func TestPoint_Normalise_ZeroVectorReportsError(t *testing.T) {
	_, err := scalar.Origin.Normalise()
	require.ErrorIs(t, err, scalar.ErrZeroVector)
}

func TestPoint_Normalise_UnitLength(t *testing.T) {
	n, err := scalar.Point{X: 3, Y: 4, Z: 0}.Normalise()
	require.NoError(t, err)
	require.InDelta(t, 1, n.Mod(), 1e-9)
}
