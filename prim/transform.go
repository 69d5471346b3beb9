package prim

import (
	"github.com/svlis-go/svlis/linalg"
	"github.com/svlis-go/svlis/report"
	"github.com/svlis-go/svlis/scalar"
)

// planeTransform rebuilds a plane leaf's payload under one rigid-motion or
// scaling rule; blockTransform maps the eight corners of a block leaf
// through the same motion and re-bounds them (rotating or
// scaling an axis-aligned box exactly would need an oriented box, which
// the kernel does not model, so the result is the tightest enclosing AABB
// rather than an exact transform).
type planeTransform func(scalar.Plane) Primitive
type pointTransform func(scalar.Point) scalar.Point

// walkTransform rebuilds p by structural recursion: plane leaves go
// through leafFn, block leaves are re-bounded via cornerFn, reals are
// fixed points, and interior nodes are rebuilt by re-applying the same
// operator to transformed children (spec §4.1).
func walkTransform(p Primitive, leafFn planeTransform, cornerFn pointTransform) Primitive {
	if p.zero() {
		return p
	}
	n := p.node()
	switch n.arity {
	case 0:
		switch n.kind {
		case KindReal:
			return p
		case KindPlane:
			return leafFn(n.plane)
		case KindBlock:
			return NewBlock(transformBox(n.block, cornerFn))
		case KindUser:
			report.Warn(site, "transform: user primitive tag %d has no matching callback for this transform", n.userTag)
			return p
		default:
			report.CorruptReport(site, "transform: leaf with kind %v", n.kind)
			return p
		}
	case 1:
		child := walkTransform(n.ch0, leafFn, cornerFn)
		return NewUnary(n.op, child)
	default:
		c0 := walkTransform(n.ch0, leafFn, cornerFn)
		c1 := walkTransform(n.ch1, leafFn, cornerFn)
		return NewBinary(n.op, c0, c1)
	}
}

// transformBox re-bounds a box after its eight corners pass through f.
func transformBox(b scalar.Box, f pointTransform) scalar.Box {
	lo, hi := f(b.Corner(0)), f(b.Corner(0))
	for i := 1; i < 8; i++ {
		c := f(b.Corner(i))
		lo = scalar.Point{X: min(lo.X, c.X), Y: min(lo.Y, c.Y), Z: min(lo.Z, c.Z)}
		hi = scalar.Point{X: max(hi.X, c.X), Y: max(hi.Y, c.Y), Z: max(hi.Z, c.Z)}
	}
	return scalar.BoxFromCorners(lo, hi)
}

// Translate rebuilds p as if every point were shifted by delta, preserving
// named-shape kind (spec §4.1). Reals are fixed points; plane leaves shift
// their offset by n·delta.
func (p Primitive) Translate(delta scalar.Point) Primitive {
	if p.zero() {
		return p
	}
	kind := p.Kind()
	leaf := func(pl scalar.Plane) Primitive {
		return NewPlaneLeaf(scalar.Plane{Normal: pl.Normal, D: pl.D - pl.Normal.Dot(delta)})
	}
	corner := func(q scalar.Point) scalar.Point { return q.Add(delta) }
	out := walkTransform(p, leaf, corner)
	if isNamedShape(kind) {
		out = retag(out, kind)
	}
	return out
}

// Spin rebuilds p as if rotated by angle radians about line ln, preserving
// named-shape kind.
func (p Primitive) Spin(ln scalar.Line, angle Real) Primitive {
	if p.zero() {
		return p
	}
	kind := p.Kind()
	rot, err := linalg.Rodrigues(ln.Dir, angle)
	if err != nil {
		report.Warn(site, "Spin: %v", err)
		return p
	}
	leaf := func(pl scalar.Plane) Primitive {
		nr, err := linalg.RotatePoint(rot, pl.Normal)
		if err != nil {
			report.CorruptReport(site, "Spin: %v", err)
			nr = pl.Normal
		}
		d := pl.D + pl.Normal.Dot(ln.Origin) - nr.Dot(ln.Origin)
		return NewPlaneLeaf(scalar.Plane{Normal: nr, D: d})
	}
	corner := func(q scalar.Point) scalar.Point { return q.RotateAbout(ln, angle) }
	out := walkTransform(p, leaf, corner)
	if isNamedShape(kind) {
		out = retag(out, kind)
	}
	return out
}

// Mirror rebuilds p reflected in plane m, preserving named-shape kind.
func (p Primitive) Mirror(m scalar.Plane) Primitive {
	if p.zero() {
		return p
	}
	kind := p.Kind()
	leaf := func(pl scalar.Plane) Primitive {
		k := pl.Normal.Dot(m.Normal)
		nr := pl.Normal.Sub(m.Normal.Scale(2 * k))
		d := pl.D - 2*m.D*k
		return NewPlaneLeaf(scalar.Plane{Normal: nr, D: d})
	}
	corner := func(q scalar.Point) scalar.Point { return q.ReflectIn(m) }
	out := walkTransform(p, leaf, corner)
	if isNamedShape(kind) {
		out = retag(out, kind)
	}
	return out
}

// ScaleUniform rebuilds p as if scaled by factor s about centre, preserving
// named-shape kind. A zero scale factor is an argument error (spec §4.1):
// it is reported as a WARNING and p is returned unchanged.
func (p Primitive) ScaleUniform(centre scalar.Point, s Real) Primitive {
	if p.zero() {
		return p
	}
	if s == 0 {
		report.Warn(site, "ScaleUniform: %v", ErrZeroScale)
		return p
	}
	kind := p.Kind()
	leaf := func(pl scalar.Plane) Primitive {
		nc := pl.Normal.Dot(centre)
		dp := s*(nc+pl.D) - nc
		scaled := NewPlaneLeaf(scalar.Plane{Normal: pl.Normal, D: dp})
		// Divide the potential by s so it keeps measuring signed distance
		// along the (unchanged) unit normal after the space itself has
		// been stretched by s (spec §4.1).
		return Div(scaled, NewReal(s))
	}
	corner := func(q scalar.Point) scalar.Point {
		return centre.Add(q.Sub(centre).Scale(s))
	}
	out := walkTransform(p, leaf, corner)
	if isNamedShape(kind) {
		out = retag(out, kind)
	}
	return out
}

// Scale1D rebuilds p as if stretched by factor s along line ln only,
// leaving the two perpendicular directions unchanged. This breaks
// canonical shape form even for a plane (the scaled plane is still a
// plane, but a sphere/cylinder/etc. built from several such planes no
// longer satisfies its named-shape's structural pattern), so the result
// is always tagged KindGeneral (spec §4.1: "replaced by general after
// scale_1D").
func (p Primitive) Scale1D(ln scalar.Line, s Real) Primitive {
	if p.zero() {
		return p
	}
	if s == 0 {
		report.Warn(site, "Scale1D: %v", ErrZeroScale)
		return p
	}
	k := ln.Dir
	leaf := func(pl scalar.Plane) Primitive {
		c := (1/s - 1) * pl.Normal.Dot(k)
		nr := pl.Normal.Add(k.Scale(c))
		dr := pl.D - c*ln.Origin.Dot(k)
		mag := nr.Mod()
		if mag == 0 {
			// The plane is exactly perpendicular to the scale axis in a
			// degenerate way; fall back to the unscaled offset as a real
			// constant rather than dividing by zero.
			return NewReal(dr)
		}
		scaled := NewPlaneLeaf(scalar.Plane{Normal: nr.Scale(1 / mag), D: dr / mag})
		return Div(Mul(NewReal(mag), scaled), NewReal(s))
	}
	corner := func(q scalar.Point) scalar.Point {
		along := q.Sub(ln.Origin).Dot(k)
		return q.Add(k.Scale((s - 1) * along))
	}
	return walkTransform(p, leaf, corner)
}
