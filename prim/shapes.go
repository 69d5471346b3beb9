package prim

import (
	"math"

	"github.com/svlis-go/svlis/report"
	"github.com/svlis-go/svlis/scalar"
)

// sq returns a^2 via the general Pow path (not constant-folded since a is
// never a real leaf for the shape constructors below).
func sq(a Primitive) Primitive { return NewBinary(OpPow, a, NewReal(2)) }

func retag(p Primitive, kind Kind) Primitive {
	p.node().kind = kind
	return p
}

// SetKind overrides p's advisory shape tag in place and returns p. Exported
// for serial's reader, which rebuilds a tree node by node via the ordinary
// constructors (so constant folding stays consistent) and then needs to
// restore whatever named-shape tag the writer recorded, since folding alone
// cannot always re-derive it.
func SetKind(p Primitive, kind Kind) Primitive {
	return retag(p, kind)
}

// planeThrough builds the plane with unit normal n through point q:
// Value(x) = n.(x - q).
func planeThrough(n, q scalar.Point) scalar.Plane {
	return scalar.Plane{Normal: n, D: -n.Dot(q)}
}

// Sphere builds the canonical sphere primitive centred at centre with
// radius r: (x-cx)^2 + (y-cy)^2 + (z-cz)^2 - r^2, tagged KindSphere (spec
// §4.1 "three orthogonal plane leaves and a radius^2 constant").
func Sphere(centre scalar.Point, r Real) Primitive {
	px := NewPlaneLeaf(planeThrough(scalar.Point{X: 1}, centre))
	py := NewPlaneLeaf(planeThrough(scalar.Point{Y: 1}, centre))
	pz := NewPlaneLeaf(planeThrough(scalar.Point{Z: 1}, centre))
	sum := Add(Add(sq(px), sq(py)), sq(pz))
	return retag(Sub(sum, NewReal(r*r)), KindSphere)
}

// Cylinder builds the canonical infinite cylinder of radius r around axis,
// tagged KindCylinder (spec §4.1 "two orthogonal plane leaves intersecting
// in the axis, a radius^2 constant").
func Cylinder(axis scalar.Line, r Real) Primitive {
	u, v := axis.Dir.Perp()
	pu := NewPlaneLeaf(planeThrough(u, axis.Origin))
	pv := NewPlaneLeaf(planeThrough(v, axis.Origin))
	sum := Add(sq(pu), sq(pv))
	return retag(Sub(sum, NewReal(r*r)), KindCylinder)
}

// Cone builds the canonical infinite cone with apex apex, axis direction
// axis (normalised) and half-angle halfAngle, tagged KindCone.
func Cone(apex scalar.Point, axis scalar.Point, halfAngle Real) Primitive {
	dir, err := axis.Normalise()
	if err != nil {
		report.Warn(site, "Cone: %v", err)
		return NewReal(0)
	}
	u, v := dir.Perp()
	pu := NewPlaneLeaf(planeThrough(u, apex))
	pv := NewPlaneLeaf(planeThrough(v, apex))
	pz := NewPlaneLeaf(planeThrough(dir, apex))
	tan2 := math.Tan(halfAngle) * math.Tan(halfAngle)
	radial := Add(sq(pu), sq(pv))
	axial := Mul(NewReal(tan2), sq(pz))
	return retag(Sub(radial, axial), KindCone)
}

// Torus builds the canonical torus around axis with major radius rMajor
// and minor radius rMinor, tagged KindTorus (spec §4.1 "as cylinder plus
// inner radius constant and an s_sqrt spine").
func Torus(axis scalar.Line, rMajor, rMinor Real) Primitive {
	u, v := axis.Dir.Perp()
	pu := NewPlaneLeaf(planeThrough(u, axis.Origin))
	pv := NewPlaneLeaf(planeThrough(v, axis.Origin))
	pz := NewPlaneLeaf(planeThrough(axis.Dir, axis.Origin))
	spine := SSqrt(Add(sq(pu), sq(pv)))
	ring := sq(Sub(spine, NewReal(rMajor)))
	sum := Add(ring, sq(pz))
	return retag(Sub(sum, NewReal(rMinor*rMinor)), KindTorus)
}

// Cyclide builds a structural stand-in for a Dupin cyclide from five plane
// leaves and three real constants (spec §4.1). This is not a physically
// exact cyclide parametrisation — it exists so the named
// kind, its parameters() recovery, and its serialisation round-trip all
// have a concrete fifth shape to exercise.
func Cyclide(planes [5]scalar.Plane, consts [3]Real) Primitive {
	p := [5]Primitive{}
	for i, pl := range planes {
		p[i] = NewPlaneLeaf(pl)
	}
	sum4 := Add(Add(sq(p[0]), sq(p[1])), Add(sq(p[2]), sq(p[3])))
	inner := sq(Sub(sum4, NewReal(consts[0])))
	rest := Add(Mul(NewReal(consts[1]), sq(p[4])), NewReal(consts[2]))
	return retag(Sub(inner, rest), KindCyclide)
}
