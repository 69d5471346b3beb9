package builder

import "errors"

const site = "builder"

// ErrUnknownSolid is reported when PlatonicSolid is asked for a name outside
// the closed {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron} set
// (mirrors the teacher's ErrOptionViolation for an unrecognised enum value).
var ErrUnknownSolid = errors.New("builder: unknown platonic solid")

// ErrNonPositiveScale is reported when PlatonicSolid or Block is asked to
// build a shape with a non-positive size.
var ErrNonPositiveScale = errors.New("builder: non-positive scale")
