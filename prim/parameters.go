package prim

import (
	"math"

	"github.com/svlis-go/svlis/scalar"
)

// ShapeParams is the recovered constructor-argument bundle returned by
// Parameters (spec §4.1/§6: "parameters(...) -> (kind, reals, planes,
// point, line, status)").
type ShapeParams struct {
	Kind   Kind
	Reals  []Real
	Planes []scalar.Plane
	Point  scalar.Point
	Line   scalar.Line
	// Status describes how the named shape was wrapped when recovered:
	// one of "identity", "complement", "abs", or a combination joined
	// with "+" (e.g. "complement+abs").
	Status string
}

// Parameters walks p's canonical expression shape and recovers the
// arguments its named-shape constructor was built from (spec §4.1). It
// returns ok=false for a primitive with no recognised named-shape core,
// per the conservative false-negative-permitted contract Same also uses.
func Parameters(p Primitive) (ShapeParams, bool) {
	if p.zero() {
		return ShapeParams{}, false
	}
	sp := dumpScales(p)
	if !isNamedShape(sp.core.Kind()) {
		return ShapeParams{}, false
	}
	out, ok := recognizeShape(sp.core)
	if !ok {
		return ShapeParams{}, false
	}
	status := "identity"
	if sp.neg && sp.abs {
		status = "complement+abs"
	} else if sp.neg {
		status = "complement"
	} else if sp.abs {
		status = "abs"
	}
	out.Status = status
	return out, true
}

// flattenAdd recursively unpacks a chain of OpAdd nodes into its leaf
// addends, in left-to-right construction order.
func flattenAdd(p Primitive) []Primitive {
	if !p.zero() && p.Arity() == 2 && p.Op() == OpAdd {
		left := flattenAdd(p.Child(0))
		right := flattenAdd(p.Child(1))
		return append(left, right...)
	}
	return []Primitive{p}
}

// asPlaneSquared reports whether p is exactly Pow(plane, 2), returning the
// plane if so.
func asPlaneSquared(p Primitive) (scalar.Plane, bool) {
	if p.zero() || p.Arity() != 2 || p.Op() != OpPow {
		return scalar.Plane{}, false
	}
	base, exp := p.Child(0), p.Child(1)
	if !isPlane(base) || !isReal(exp) {
		return scalar.Plane{}, false
	}
	if math.Abs(exp.RealValue()-2) > tol {
		return scalar.Plane{}, false
	}
	return base.PlaneValue(), true
}

// pointFromPlane recovers the point on the plane closest to the origin,
// which for an orthonormal family of planes through a common point is
// exactly that point's component along the plane's normal.
func pointFromPlane(pl scalar.Plane) scalar.Point {
	return pl.Normal.Scale(-pl.D)
}

func recognizeShape(core Primitive) (ShapeParams, bool) {
	switch core.Kind() {
	case KindSphere:
		return recognizeSphere(core)
	case KindCylinder:
		return recognizeCylinder(core)
	case KindCone:
		return recognizeCone(core)
	case KindTorus:
		return recognizeTorus(core)
	case KindCyclide:
		return recognizeCyclide(core)
	default:
		return ShapeParams{}, false
	}
}

// recognizeSphere reverses Sphere: Sub(Add(Add(px^2,py^2),pz^2), r^2).
func recognizeSphere(core Primitive) (ShapeParams, bool) {
	if core.Arity() != 2 || core.Op() != OpSub {
		return ShapeParams{}, false
	}
	rNode := core.Child(1)
	if !isReal(rNode) {
		return ShapeParams{}, false
	}
	terms := flattenAdd(core.Child(0))
	if len(terms) != 3 {
		return ShapeParams{}, false
	}
	centre := scalar.Origin
	planes := make([]scalar.Plane, 0, 3)
	for _, t := range terms {
		pl, ok := asPlaneSquared(t)
		if !ok {
			return ShapeParams{}, false
		}
		planes = append(planes, pl)
		centre = centre.Add(pointFromPlane(pl))
	}
	r2 := rNode.RealValue()
	if r2 < 0 {
		return ShapeParams{}, false
	}
	return ShapeParams{
		Kind:   KindSphere,
		Reals:  []Real{math.Sqrt(r2)},
		Planes: planes,
		Point:  centre,
	}, true
}

// recognizeCylinder reverses Cylinder: Sub(Add(pu^2,pv^2), r^2).
func recognizeCylinder(core Primitive) (ShapeParams, bool) {
	if core.Arity() != 2 || core.Op() != OpSub {
		return ShapeParams{}, false
	}
	rNode := core.Child(1)
	if !isReal(rNode) {
		return ShapeParams{}, false
	}
	terms := flattenAdd(core.Child(0))
	if len(terms) != 2 {
		return ShapeParams{}, false
	}
	pu, ok := asPlaneSquared(terms[0])
	if !ok {
		return ShapeParams{}, false
	}
	pv, ok := asPlaneSquared(terms[1])
	if !ok {
		return ShapeParams{}, false
	}
	r2 := rNode.RealValue()
	if r2 < 0 {
		return ShapeParams{}, false
	}
	axisDir, err := pu.Normal.Cross(pv.Normal).Normalise()
	if err != nil {
		return ShapeParams{}, false
	}
	origin := pointFromPlane(pu).Add(pointFromPlane(pv))
	return ShapeParams{
		Kind:   KindCylinder,
		Reals:  []Real{math.Sqrt(r2)},
		Planes: []scalar.Plane{pu, pv},
		Line:   scalar.NewLine(axisDir, origin),
	}, true
}

// recognizeCone reverses Cone: Sub(Add(pu^2,pv^2), tan2*pz^2).
func recognizeCone(core Primitive) (ShapeParams, bool) {
	if core.Arity() != 2 || core.Op() != OpSub {
		return ShapeParams{}, false
	}
	terms := flattenAdd(core.Child(0))
	if len(terms) != 2 {
		return ShapeParams{}, false
	}
	pu, ok := asPlaneSquared(terms[0])
	if !ok {
		return ShapeParams{}, false
	}
	pv, ok := asPlaneSquared(terms[1])
	if !ok {
		return ShapeParams{}, false
	}
	axial := core.Child(1)
	if axial.zero() || axial.Arity() != 2 || axial.Op() != OpMul {
		return ShapeParams{}, false
	}
	coeff, pz2 := axial.Child(0), axial.Child(1)
	if !isReal(coeff) {
		coeff, pz2 = axial.Child(1), axial.Child(0)
	}
	if !isReal(coeff) {
		return ShapeParams{}, false
	}
	pz, ok := asPlaneSquared(pz2)
	if !ok {
		return ShapeParams{}, false
	}
	tan2 := coeff.RealValue()
	if tan2 < 0 {
		return ShapeParams{}, false
	}
	apex := pointFromPlane(pu).Add(pointFromPlane(pv)).Add(pointFromPlane(pz))
	return ShapeParams{
		Kind:   KindCone,
		Reals:  []Real{math.Atan(math.Sqrt(tan2))},
		Planes: []scalar.Plane{pu, pv, pz},
		Line:   scalar.NewLine(pz.Normal, apex),
		Point:  apex,
	}, true
}

// recognizeTorus reverses Torus: Sub(Add((s_sqrt(pu^2+pv^2) - R)^2, pz^2), r^2).
func recognizeTorus(core Primitive) (ShapeParams, bool) {
	if core.Arity() != 2 || core.Op() != OpSub {
		return ShapeParams{}, false
	}
	rMinor2Node := core.Child(1)
	if !isReal(rMinor2Node) {
		return ShapeParams{}, false
	}
	sumTerms := flattenAdd(core.Child(0))
	if len(sumTerms) != 2 {
		return ShapeParams{}, false
	}
	ring, pz2 := sumTerms[0], sumTerms[1]
	pz, ok := asPlaneSquared(pz2)
	if !ok {
		ring, pz2 = sumTerms[1], sumTerms[0]
		pz, ok = asPlaneSquared(pz2)
		if !ok {
			return ShapeParams{}, false
		}
	}
	if ring.zero() || ring.Arity() != 2 || ring.Op() != OpPow {
		return ShapeParams{}, false
	}
	expNode := ring.Child(1)
	if !isReal(expNode) || math.Abs(expNode.RealValue()-2) > tol {
		return ShapeParams{}, false
	}
	spineMinusR := ring.Child(0)
	if spineMinusR.zero() || spineMinusR.Arity() != 2 || spineMinusR.Op() != OpSub {
		return ShapeParams{}, false
	}
	spine := spineMinusR.Child(0)
	rMajorNode := spineMinusR.Child(1)
	if !isReal(rMajorNode) {
		return ShapeParams{}, false
	}
	if spine.zero() || spine.Arity() != 1 || spine.Op() != OpSSqrt {
		return ShapeParams{}, false
	}
	radialTerms := flattenAdd(spine.Child(0))
	if len(radialTerms) != 2 {
		return ShapeParams{}, false
	}
	pu, ok := asPlaneSquared(radialTerms[0])
	if !ok {
		return ShapeParams{}, false
	}
	pv, ok := asPlaneSquared(radialTerms[1])
	if !ok {
		return ShapeParams{}, false
	}
	rMinor2 := rMinor2Node.RealValue()
	if rMinor2 < 0 {
		return ShapeParams{}, false
	}
	axisDir, err := pu.Normal.Cross(pv.Normal).Normalise()
	if err != nil {
		return ShapeParams{}, false
	}
	origin := pointFromPlane(pu).Add(pointFromPlane(pv)).Add(pointFromPlane(pz))
	return ShapeParams{
		Kind:   KindTorus,
		Reals:  []Real{rMajorNode.RealValue(), math.Sqrt(rMinor2)},
		Planes: []scalar.Plane{pu, pv, pz},
		Line:   scalar.NewLine(axisDir, origin),
	}, true
}

// recognizeCyclide reverses Cyclide: Sub((p0^2+p1^2+p2^2+p3^2-k0)^2, k1*p4^2+k2).
func recognizeCyclide(core Primitive) (ShapeParams, bool) {
	if core.Arity() != 2 || core.Op() != OpSub {
		return ShapeParams{}, false
	}
	inner := core.Child(0)
	if inner.zero() || inner.Arity() != 2 || inner.Op() != OpPow {
		return ShapeParams{}, false
	}
	innerBase := inner.Child(0)
	if innerBase.zero() || innerBase.Arity() != 2 || innerBase.Op() != OpSub {
		return ShapeParams{}, false
	}
	sum4, k0Node := innerBase.Child(0), innerBase.Child(1)
	if !isReal(k0Node) {
		return ShapeParams{}, false
	}
	terms4 := flattenAdd(sum4)
	if len(terms4) != 4 {
		return ShapeParams{}, false
	}
	planes := make([]scalar.Plane, 0, 5)
	for _, t := range terms4 {
		pl, ok := asPlaneSquared(t)
		if !ok {
			return ShapeParams{}, false
		}
		planes = append(planes, pl)
	}
	rest := core.Child(1)
	if rest.zero() || rest.Arity() != 2 || rest.Op() != OpAdd {
		return ShapeParams{}, false
	}
	k1Term, k2Node := rest.Child(0), rest.Child(1)
	if !isReal(k2Node) {
		return ShapeParams{}, false
	}
	if k1Term.zero() || k1Term.Arity() != 2 || k1Term.Op() != OpMul {
		return ShapeParams{}, false
	}
	k1Node, p4sq := k1Term.Child(0), k1Term.Child(1)
	if !isReal(k1Node) {
		k1Node, p4sq = k1Term.Child(1), k1Term.Child(0)
	}
	if !isReal(k1Node) {
		return ShapeParams{}, false
	}
	p4, ok := asPlaneSquared(p4sq)
	if !ok {
		return ShapeParams{}, false
	}
	planes = append(planes, p4)
	return ShapeParams{
		Kind:   KindCyclide,
		Reals:  []Real{k0Node.RealValue(), k1Node.RealValue(), k2Node.RealValue()},
		Planes: planes,
	}, true
}

// compareShapeParams compares two already-dump-scaled, same-kind named
// shapes by recovered geometric parameters rather than raw tree shape
// (spec §4.1 step 3), so equivalent shapes built with differently ordered
// but equal plane triples still compare equal. It only ever returns
// VerdictEQ or VerdictNE: any enclosing sign/abs wrapper was already
// peeled by dumpScales before sameCore called this.
func compareShapeParams(a, b Primitive) (Verdict, bool) {
	pa, ok := recognizeShape(a)
	if !ok {
		return VerdictNE, false
	}
	pb, ok := recognizeShape(b)
	if !ok {
		return VerdictNE, false
	}
	if len(pa.Reals) != len(pb.Reals) {
		return VerdictNE, true
	}
	for i := range pa.Reals {
		if math.Abs(pa.Reals[i]-pb.Reals[i]) > tol {
			return VerdictNE, true
		}
	}
	switch a.Kind() {
	case KindSphere:
		if !pa.Point.Equal(pb.Point, tol) {
			return VerdictNE, true
		}
	case KindCyclide:
		// Reals already compared above (k0, k1, k2); the five defining
		// planes carry independent directional information a point/line
		// summary can't capture, so compare them directly.
		if len(pa.Planes) != len(pb.Planes) {
			return VerdictNE, true
		}
		for i := range pa.Planes {
			if comparePlanes(pa.Planes[i], pb.Planes[i]) != VerdictEQ {
				return VerdictNE, true
			}
		}
	case KindCylinder, KindTorus:
		if !linesEqual(pa.Line, pb.Line) {
			return VerdictNE, true
		}
	case KindCone:
		if !pa.Point.Equal(pb.Point, tol) || !pa.Line.Dir.Equal(pb.Line.Dir, tol) {
			return VerdictNE, true
		}
	}
	return VerdictEQ, true
}

// linesEqual reports whether two infinite lines coincide: same direction
// up to sign, and one's origin lies on the other.
func linesEqual(l1, l2 scalar.Line) bool {
	if !l1.Dir.Equal(l2.Dir, tol) && !l1.Dir.Equal(l2.Dir.Neg(), tol) {
		return false
	}
	delta := l2.Origin.Sub(l1.Origin)
	along := delta.Dot(l1.Dir)
	perp := delta.Sub(l1.Dir.Scale(along))
	return perp.Mod() <= tol
}
