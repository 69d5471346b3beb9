package scalar

import "math"

// Point is a real 3-tuple, used both as a position and a free vector.
type Point struct {
	X, Y, Z Real
}

// Origin is the zero point.
var Origin = Point{0, 0, 0}

// NewPoint builds a Point from its three components.
func NewPoint(x, y, z Real) Point { return Point{x, y, z} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Neg returns -p.
func (p Point) Neg() Point { return Point{-p.X, -p.Y, -p.Z} }

// Scale returns p scaled by s.
func (p Point) Scale(s Real) Point { return Point{p.X * s, p.Y * s, p.Z * s} }

// Dot returns the scalar (dot) product p * q.
func (p Point) Dot(q Point) Real { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }

// Cross returns the vector (cross) product p ^ q.
func (p Point) Cross(q Point) Point {
	return Point{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

// Mod returns the Euclidean modulus (length) of p.
func (p Point) Mod() Real { return math.Sqrt(p.Dot(p)) }

// Mod2 returns the squared modulus, avoiding a sqrt when only comparisons
// are needed.
func (p Point) Mod2() Real { return p.Dot(p) }

// Normalise returns p scaled to unit length. Reports ErrZeroVector for a
// zero-length p, mirroring the argument-error taxonomy in spec §7 (WARNING,
// defensive value returned to let recursions complete): the zero point
// itself is returned alongside the error.
func (p Point) Normalise() (Point, error) {
	m := p.Mod()
	if m == 0 {
		return Origin, ErrZeroVector
	}
	return p.Scale(1 / m), nil
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) Real { return p.Sub(q).Mod() }

// RotateAbout rotates p by angle radians about the line ln (direction
// assumed unit length) using Rodrigues' rotation formula.
func (p Point) RotateAbout(ln Line, angle Real) Point {
	k := ln.Dir
	v := p.Sub(ln.Origin)
	cosT, sinT := math.Cos(angle), math.Sin(angle)
	term1 := v.Scale(cosT)
	term2 := k.Cross(v).Scale(sinT)
	term3 := k.Scale(k.Dot(v) * (1 - cosT))
	return ln.Origin.Add(term1).Add(term2).Add(term3)
}

// ReflectIn reflects p in the plane pl.
func (p Point) ReflectIn(pl Plane) Point {
	d := pl.Value(p)
	return p.Sub(pl.Normal.Scale(2 * d))
}

// Equal reports whether p and q are identical within tol.
func (p Point) Equal(q Point, tol Real) bool {
	return p.Sub(q).Mod() <= tol
}

// Perp returns an arbitrary right-handed orthonormal basis (u, v) such that
// {u, v, p} is orthonormal, assuming p is already unit length. Used to
// build the two perpendicular half-space planes of a cylinder/cone axis.
func (p Point) Perp() (u, v Point) {
	ref := Point{1, 0, 0}
	if math.Abs(p.Dot(ref)) > 0.9 {
		ref = Point{0, 1, 0}
	}
	u, _ = p.Cross(ref).Normalise()
	v = p.Cross(u)
	return u, v
}
