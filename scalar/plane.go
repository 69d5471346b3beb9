package scalar

// Plane is (Normal, D): the potential at q is Normal.q + D. Normal is
// expected unit length; constructors that need an un-normalised plane
// (e.g. intermediate constant folding in prim) build a Plane struct
// directly rather than going through NewPlane.
type Plane struct {
	Normal Point
	D      Real
}

// NewPlane builds a Plane from a (not necessarily normalised) normal and
// offset, normalising the normal and rescaling D to match so Value keeps
// its signed-distance-like meaning. Returns ErrZeroVector for a zero
// normal.
func NewPlane(normal Point, d Real) (Plane, error) {
	n, err := normal.Normalise()
	if err != nil {
		return Plane{}, err
	}
	scale := normal.Mod()
	return Plane{Normal: n, D: d / scale}, nil
}

// Value returns the signed potential of the plane at q: Normal.q + D.
func (pl Plane) Value(q Point) Real {
	return pl.Normal.Dot(q) + pl.D
}

// Range returns an inclusion-monotone interval for the plane's value over
// box b, computed from the box's diagonal extremes along Normal.
func (pl Plane) Range(b Box) Interval {
	lo, hi := Real(0), Real(0)
	for i := 0; i < 8; i++ {
		v := pl.Value(b.Corner(i))
		if i == 0 {
			lo, hi = v, v
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return Interval{lo, hi}
}
