package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/svlis-go/svlis/builder"
	"github.com/svlis-go/svlis/scalar"
	"github.com/svlis-go/svlis/set"
)

func TestPlatonicSolid_CentreIsIn(t *testing.T) {
	for _, name := range []builder.PlatonicName{
		builder.Tetrahedron, builder.Cube, builder.Octahedron,
		builder.Dodecahedron, builder.Icosahedron,
	} {
		centre := scalar.Point{X: 1, Y: -2, Z: 0.5}
		solid := builder.PlatonicSolid(name, centre, 3)

		verdict, _ := set.Member(solid, centre)
		require.Equal(t, set.VerdictIN, verdict, "centre of %v must classify IN", name)

		far := centre.Add(scalar.Point{X: 1000})
		verdict, _ = set.Member(solid, far)
		require.Equal(t, set.VerdictOUT, verdict, "far point from %v must classify OUT", name)
	}
}

func TestPlatonicSolid_UnknownNameDegradesToNothing(t *testing.T) {
	solid := builder.PlatonicSolid(builder.PlatonicName(99), scalar.Origin, 1)
	require.Equal(t, set.Nothing().Kind(), solid.Kind())
}

func TestPlatonicSolid_NonPositiveScaleDegradesToNothing(t *testing.T) {
	solid := builder.PlatonicSolid(builder.Cube, scalar.Origin, 0)
	require.Equal(t, set.Nothing().Kind(), solid.Kind())

	solid = builder.PlatonicSolid(builder.Cube, scalar.Origin, -1)
	require.Equal(t, set.Nothing().Kind(), solid.Kind())
}

func TestPlatonicSolid_String(t *testing.T) {
	require.Equal(t, "Tetrahedron", builder.Tetrahedron.String())
	require.Equal(t, "Icosahedron", builder.Icosahedron.String())
	require.Equal(t, "Unknown", builder.PlatonicName(99).String())
}
