package raycast_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/svlis-go/svlis/model"
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/raycast"
	"github.com/svlis-go/svlis/scalar"
	"github.com/svlis-go/svlis/set"
)

func sphereModel(t *testing.T) *model.Model {
	t.Helper()
	box := scalar.NewBox(scalar.NewInterval(-3, 3), scalar.NewInterval(-3, 3), scalar.NewInterval(-3, 3))
	sphere := set.FromPrimitive(prim.Sphere(scalar.Point{}, 1))
	leaf := model.NewLeaf(box, []set.Set{sphere})
	return model.Divide(leaf, model.NewLimits(model.WithDepthLimit(5)), model.DefaultDecision)
}

func TestFireRay_HitsUnitSphereAlongX(t *testing.T) {
	m := sphereModel(t)
	ln := scalar.NewLine(scalar.Point{X: 1}, scalar.Point{X: -3})
	_, tHit, ok := raycast.FireRay(m, ln, scalar.NewInterval(0, 10))
	require.True(t, ok)
	require.InDelta(t, 2.0, tHit, 0.05)
}

func TestFireRay_MissesWhenLineDoesNotTouchBox(t *testing.T) {
	m := sphereModel(t)
	ln := scalar.NewLine(scalar.Point{X: 1}, scalar.Point{Y: 100})
	_, _, ok := raycast.FireRay(m, ln, scalar.NewInterval(0, 10))
	require.False(t, ok)
}

func TestFireRay_DegenerateDirection(t *testing.T) {
	m := sphereModel(t)
	ln := scalar.NewLine(scalar.Point{}, scalar.Point{})
	_, _, ok := raycast.FireRay(m, ln, scalar.NewInterval(0, 10))
	require.False(t, ok)
}
