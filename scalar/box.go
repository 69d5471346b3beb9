package scalar

// Box is an axis-aligned cuboid: an interval triple.
type Box struct {
	X, Y, Z Interval
}

// NewBox builds a Box from its three coordinate intervals.
func NewBox(x, y, z Interval) Box {
	return Box{X: x, Y: y, Z: z}
}

// BoxFromCorners builds the box spanning lo and hi.
func BoxFromCorners(lo, hi Point) Box {
	return Box{
		X: Interval{lo.X, hi.X},
		Y: Interval{lo.Y, hi.Y},
		Z: Interval{lo.Z, hi.Z},
	}
}

// Empty reports whether any axis interval is empty.
func (b Box) Empty() bool {
	return b.X.Empty() || b.Y.Empty() || b.Z.Empty()
}

// Corner returns one of the 8 corners of the box, selected by a 3-bit index
// (bit 0 -> X: lo/hi, bit 1 -> Y, bit 2 -> Z).
func (b Box) Corner(i int) Point {
	x := b.X.Lo
	if i&1 != 0 {
		x = b.X.Hi
	}
	y := b.Y.Lo
	if i&2 != 0 {
		y = b.Y.Hi
	}
	z := b.Z.Lo
	if i&4 != 0 {
		z = b.Z.Hi
	}
	return Point{x, y, z}
}

// Centre returns the box's midpoint.
func (b Box) Centre() Point {
	return Point{b.X.Mid(), b.Y.Mid(), b.Z.Mid()}
}

// Volume returns the (non-negative) volume of the box, 0 if empty.
func (b Box) Volume() Real {
	if b.Empty() {
		return 0
	}
	return b.X.Width() * b.Y.Width() * b.Z.Width()
}

// SplitAxis identifies which coordinate axis a model split divides along.
type SplitAxis int

// The three axis-aligned split directions.
const (
	AxisX SplitAxis = iota
	AxisY
	AxisZ
)

// String renders the axis as its conventional letter.
func (a SplitAxis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// Interval returns the interval of b along axis a.
func (b Box) Interval(a SplitAxis) Interval {
	switch a {
	case AxisX:
		return b.X
	case AxisY:
		return b.Y
	default:
		return b.Z
	}
}

// Split partitions b into two sub-boxes along axis a at value cut: the low
// child has its a-interval clamped to [lo, cut], the high child to
// [cut, hi]; the other two axes are unchanged. This is the partition
// invariant spec §3.4 requires of every model interior node.
func (b Box) Split(a SplitAxis, cut Real) (low, high Box) {
	low, high = b, b
	switch a {
	case AxisX:
		low.X = Interval{b.X.Lo, cut}
		high.X = Interval{cut, b.X.Hi}
	case AxisY:
		low.Y = Interval{b.Y.Lo, cut}
		high.Y = Interval{cut, b.Y.Hi}
	case AxisZ:
		low.Z = Interval{b.Z.Lo, cut}
		high.Z = Interval{cut, b.Z.Hi}
	}
	return low, high
}

// WidestAxis returns the axis along which b has the greatest extent.
func (b Box) WidestAxis() SplitAxis {
	axis := AxisX
	best := b.X.Width()
	if b.Y.Width() > best {
		axis, best = AxisY, b.Y.Width()
	}
	if b.Z.Width() > best {
		axis = AxisZ
	}
	return axis
}
