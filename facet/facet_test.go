package facet_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/svlis-go/svlis/facet"
	"github.com/svlis-go/svlis/model"
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/scalar"
	"github.com/svlis-go/svlis/set"
)

func TestFacet_UnitSphereProducesPolygons(t *testing.T) {
	box := scalar.NewBox(scalar.NewInterval(-2, 2), scalar.NewInterval(-2, 2), scalar.NewInterval(-2, 2))
	sphere := set.FromPrimitive(prim.Sphere(scalar.Point{}, 1))
	leaf := model.NewLeaf(box, []set.Set{sphere})
	tree := model.Divide(leaf, model.NewLimits(model.WithDepthLimit(4)), model.DefaultDecision)

	polys := facet.Facet(tree)
	require.NotEmpty(t, polys)
	for _, p := range polys {
		require.GreaterOrEqual(t, len(p.Points), 2)
	}
}

func TestFacet_EntirelyInsideOrOutsideProducesNoPolygons(t *testing.T) {
	box := scalar.NewBox(scalar.NewInterval(10, 12), scalar.NewInterval(10, 12), scalar.NewInterval(10, 12))
	sphere := set.FromPrimitive(prim.Sphere(scalar.Point{}, 1))
	leaf := model.NewLeaf(box, []set.Set{sphere})
	tree := model.Divide(leaf, model.DefaultLimits(), model.DefaultDecision)

	require.Empty(t, facet.Facet(tree))
}
