package scalar

// Line is a directed line: Dir is expected to be unit length, Origin is a
// point the line passes through.
type Line struct {
	Dir    Point
	Origin Point
}

// NewLine builds a Line from a direction and an origin point. The caller is
// responsible for normalising dir; NewLine does not normalise, mirroring
// Plane's "unit normal expected, not enforced" contract in spec §3.1.
func NewLine(dir, origin Point) Line {
	return Line{Dir: dir, Origin: origin}
}

// At returns the point at parameter t along the line.
func (ln Line) At(t Real) Point {
	return ln.Origin.Add(ln.Dir.Scale(t))
}
