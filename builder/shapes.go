package builder

import (
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/report"
	"github.com/svlis-go/svlis/scalar"
)

// Sphere is sugar for prim.Sphere, named at the builder surface spec.md
// §4.1 describes as a top-level shape rather than a prim-package detail.
func Sphere(centre scalar.Point, r scalar.Real) prim.Primitive {
	return prim.Sphere(centre, r)
}

// Cylinder is sugar for prim.Cylinder.
func Cylinder(axis scalar.Line, r scalar.Real) prim.Primitive {
	return prim.Cylinder(axis, r)
}

// Cone is sugar for prim.Cone.
func Cone(apex, axis scalar.Point, halfAngle scalar.Real) prim.Primitive {
	return prim.Cone(apex, axis, halfAngle)
}

// Torus is sugar for prim.Torus.
func Torus(axis scalar.Line, rMajor, rMinor scalar.Real) prim.Primitive {
	return prim.Torus(axis, rMajor, rMinor)
}

// Cyclide is sugar for prim.Cyclide.
func Cyclide(planes [5]scalar.Plane, consts [3]scalar.Real) prim.Primitive {
	return prim.Cyclide(planes, consts)
}

// Block builds a box primitive (original_source/include/prim.h names this
// shape; spec.md's distillation dropped it, SPEC_FULL.md §4.7 restores it
// as builder sugar over prim.NewBlock). An empty box reports a WARNING and
// degrades to a zero-volume box at the origin, following prim's own
// report-then-defensive-value convention rather than returning an error.
func Block(box scalar.Box) prim.Primitive {
	if box.Empty() {
		report.Warn(site, "Block: %v", ErrNonPositiveScale)
		return prim.NewBlock(scalar.Box{})
	}
	return prim.NewBlock(box)
}
