package builder

import (
	"math"

	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/report"
	"github.com/svlis-go/svlis/scalar"
	"github.com/svlis-go/svlis/set"
)

// PlatonicName enumerates the five Platonic solids (spec.md §4.1's named
// shapes; supplemented per SPEC_FULL.md §4.7 from the teacher's
// builder/variants_platonic.go enum of the same name and ordering).
type PlatonicName int

// The five solids, in the teacher's ordering.
const (
	Tetrahedron PlatonicName = iota
	Cube
	Octahedron
	Dodecahedron
	Icosahedron
)

// String renders the solid's name.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

var phi = (1 + math.Sqrt(5)) / 2

func unitPoints(raw [][3]scalar.Real) []scalar.Point {
	out := make([]scalar.Point, 0, len(raw))
	for _, r := range raw {
		p := scalar.Point{X: r[0], Y: r[1], Z: r[2]}
		n, err := p.Normalise()
		if err != nil {
			report.CorruptReport(site, "unitPoints: %v", err)
			continue
		}
		out = append(out, n)
	}
	return out
}

// signedOctant returns the 8 sign combinations of (x, y, z).
func signedOctant(x, y, z scalar.Real) [][3]scalar.Real {
	out := make([][3]scalar.Real, 0, 8)
	for _, sx := range []scalar.Real{x, -x} {
		for _, sy := range []scalar.Real{y, -y} {
			for _, sz := range []scalar.Real{z, -z} {
				out = append(out, [3]scalar.Real{sx, sy, sz})
			}
		}
	}
	return out
}

// icosahedronVertexRaw returns the 12 canonical icosahedron vertex
// directions, used here as the dodecahedron's 12 face normals (duality).
func icosahedronVertexRaw() [][3]scalar.Real {
	var out [][3]scalar.Real
	for _, s1 := range []scalar.Real{1, -1} {
		for _, s2 := range []scalar.Real{1, -1} {
			out = append(out,
				[3]scalar.Real{0, s1, s2 * phi},
				[3]scalar.Real{s1, s2 * phi, 0},
				[3]scalar.Real{s1 * phi, 0, s2},
			)
		}
	}
	return out
}

// dodecahedronVertexRaw returns the 20 canonical dodecahedron vertex
// directions, used here as the icosahedron's 20 face normals (duality).
func dodecahedronVertexRaw() [][3]scalar.Real {
	out := signedOctant(1, 1, 1)
	for _, s1 := range []scalar.Real{1, -1} {
		for _, s2 := range []scalar.Real{1, -1} {
			out = append(out,
				[3]scalar.Real{0, s1 / phi, s2 * phi},
				[3]scalar.Real{s1 / phi, s2 * phi, 0},
				[3]scalar.Real{s1 * phi, 0, s2 / phi},
			)
		}
	}
	return out
}

// platonicFaceNormals is the face-plane analogue of the teacher's
// platonicEdgeSets (builder/variants_platonic.go): the same canonical data
// keyed by PlatonicName, transformed from "vertex+edge graph" into
// "half-space normal per face" — a solid is the intersection of the
// half-spaces tangent to its insphere along each listed normal. Faces and
// vertices trade places between dual pairs (cube/octahedron,
// dodecahedron/icosahedron); the tetrahedron is self-dual.
var platonicFaceNormals = map[PlatonicName][]scalar.Point{
	Tetrahedron: unitPoints([][3]scalar.Real{
		{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
	}),
	Cube: unitPoints([][3]scalar.Real{
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
	}),
	Octahedron:   unitPoints(signedOctant(1, 1, 1)),
	Dodecahedron: unitPoints(icosahedronVertexRaw()),
	Icosahedron:  unitPoints(dodecahedronVertexRaw()),
}

// PlatonicSolid builds one of the five Platonic solids centred at centre,
// as the intersection of half-spaces tangent to an insphere of radius
// scale along each face's canonical normal (SPEC_FULL.md §4.7's "exact
// transformation of the vertex+edge canonical table into a face-plane
// canonical table, both keyed by PlatonicName"). An unknown name or a
// non-positive scale reports a WARNING and degrades to set.Nothing(),
// following prim's report-then-defensive-value convention rather than an
// error return, since every other named-shape constructor in this package
// does the same.
func PlatonicSolid(name PlatonicName, centre scalar.Point, scale scalar.Real) set.Set {
	normals, ok := platonicFaceNormals[name]
	if !ok {
		report.Warn(site, "PlatonicSolid: %v: %v", ErrUnknownSolid, name)
		return set.Nothing()
	}
	if scale <= 0 {
		report.Warn(site, "PlatonicSolid: %v", ErrNonPositiveScale)
		return set.Nothing()
	}

	solid := set.Everything()
	for _, n := range normals {
		pl := scalar.Plane{Normal: n, D: -n.Dot(centre) - scale}
		solid = set.Intersection(solid, set.FromPrimitive(prim.NewPlaneLeaf(pl)))
	}
	return solid
}
