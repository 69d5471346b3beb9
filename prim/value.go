package prim

import (
	"math"

	"github.com/svlis-go/svlis/report"
	"github.com/svlis-go/svlis/scalar"
)

// UserCallbacks holds the externally registered behaviour for a user
// primitive tag (spec §3.2's "User primitive": value, range, translate,
// spin, scale, mirror, complement and I/O delegated to callbacks).
type UserCallbacks struct {
	Value     func(tag int, p scalar.Point) Real
	RangeFn   func(tag int, b scalar.Box) scalar.Interval
	Translate func(tag int, delta scalar.Point) Primitive
	Spin      func(tag int, ln scalar.Line, angle Real) Primitive
	Mirror    func(tag int, pl scalar.Plane) Primitive
	ScaleFn   func(tag int, centre scalar.Point, s Real) Primitive
	Complement func(tag int) Primitive
	Write     func(tag int) string
	// Gradient is left nil-checked rather than required: spec §9 leaves
	// user-primitive gradients an open question, so most registrations
	// omit it and Grad falls back to reporting a WARNING and returning
	// zero (see grad.go).
	Gradient func(tag int) (gx, gy, gz Primitive)
}

var userRegistry = map[int]UserCallbacks{}

// RegisterUser installs callbacks for a user-primitive tag. Tags below
// UserTagThreshold are reserved for the built-in kinds.
func RegisterUser(tag int, cb UserCallbacks) {
	userRegistry[tag] = cb
}

// UserTagThreshold is the lowest integer tag value consumers may register
// as a user primitive (spec §3.2: "an integer tag >= a reserved
// threshold").
const UserTagThreshold = 1 << 16

// Value evaluates the primitive at point p (spec §4.1).
func (p Primitive) Value(at scalar.Point) Real {
	if p.zero() {
		report.CorruptReport(site, "Value: nil primitive")
		return 0
	}
	n := p.node()
	switch n.arity {
	case 0:
		switch n.kind {
		case KindReal:
			return n.real
		case KindPlane:
			return n.plane.Value(at)
		case KindBlock:
			return blockValue(n.block, at)
		case KindUser:
			cb, ok := userRegistry[n.userTag]
			if !ok || cb.Value == nil {
				report.Warn(site, "Value: %v (tag %d)", ErrUnknownUserTag, n.userTag)
				return 0
			}
			return cb.Value(n.userTag, at)
		default:
			report.CorruptReport(site, "Value: leaf with kind %v", n.kind)
			return 0
		}
	case 1:
		cv := n.ch0.Value(at)
		switch n.op {
		case OpNeg:
			return -cv
		case OpAbs:
			return math.Abs(cv)
		case OpSin:
			return math.Sin(cv)
		case OpCos:
			return math.Cos(cv)
		case OpExp:
			return math.Exp(cv)
		case OpSSqrt:
			return sSqrt(cv)
		case OpSign:
			return signOf(cv)
		default:
			report.CorruptReport(site, "Value: %v: %v", ErrUnknownOperator, n.op)
			return cv
		}
	default:
		a := n.ch0.Value(at)
		b := n.ch1.Value(at)
		switch n.op {
		case OpAdd:
			return a + b
		case OpSub:
			return a - b
		case OpMul:
			return a * b
		case OpDiv:
			if b == 0 {
				report.Warn(site, "Value: division by zero")
				return 0
			}
			return a / b
		case OpPow:
			return math.Pow(a, math.Round(b))
		default:
			report.CorruptReport(site, "Value: %v: %v", ErrUnknownOperator, n.op)
			return a
		}
	}
}

// blockValue is the max-of-axis-distances potential for a block leaf:
// negative strictly inside the box, zero on the surface, positive outside.
func blockValue(b scalar.Box, at scalar.Point) Real {
	dx := math.Max(b.X.Lo-at.X, at.X-b.X.Hi)
	dy := math.Max(b.Y.Lo-at.Y, at.Y-b.Y.Hi)
	dz := math.Max(b.Z.Lo-at.Z, at.Z-b.Z.Hi)
	return math.Max(dx, math.Max(dy, dz))
}
