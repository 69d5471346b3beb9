package prim

import (
	"math"

	"github.com/svlis-go/svlis/report"
	"github.com/svlis-go/svlis/scalar"
)

// Range returns an inclusion-monotone overestimate of the primitive's
// value range over box b (spec §4.1): for every point q in b,
// p.Value(q) lies within p.Range(b). Real children are injected inline
// (degenerate [r, r] handled exactly by Interval arithmetic, so there is
// no empty-sentinel risk from rounding, per spec's explicit callout).
func (p Primitive) Range(b scalar.Box) scalar.Interval {
	if p.zero() {
		report.CorruptReport(site, "Range: nil primitive")
		return scalar.Interval{}
	}
	n := p.node()
	switch n.arity {
	case 0:
		switch n.kind {
		case KindReal:
			return scalar.Degenerate(n.real)
		case KindPlane:
			return n.plane.Range(b)
		case KindBlock:
			return blockRange(n.block, b)
		case KindUser:
			cb, ok := userRegistry[n.userTag]
			if !ok || cb.RangeFn == nil {
				report.Warn(site, "Range: %v (tag %d)", ErrUnknownUserTag, n.userTag)
				return scalar.Interval{}
			}
			return cb.RangeFn(n.userTag, b)
		default:
			report.CorruptReport(site, "Range: leaf with kind %v", n.kind)
			return scalar.Interval{}
		}
	case 1:
		cv := n.ch0.Range(b)
		switch n.op {
		case OpNeg:
			return cv.Neg()
		case OpAbs:
			return cv.Abs()
		case OpSin:
			return cv.Sin()
		case OpCos:
			return cv.Cos()
		case OpExp:
			return cv.Exp()
		case OpSSqrt:
			return cv.SSqrt()
		case OpSign:
			return cv.Sign()
		default:
			report.CorruptReport(site, "Range: %v: %v", ErrUnknownOperator, n.op)
			return cv
		}
	default:
		a := n.ch0.Range(b)
		bb := n.ch1.Range(b)
		switch n.op {
		case OpAdd:
			return a.Add(bb)
		case OpSub:
			return a.Sub(bb)
		case OpMul:
			return a.Mul(bb)
		case OpDiv:
			if bb.StraddlesZero() {
				// Construction already guaranteed the divisor reduces to a
				// real constant; a straddling range here means the box
				// itself crosses a removable discontinuity in the divisor
				// sub-expression. Spec §4.1: "a / by non-real interval is a
				// corruption error."
				report.CorruptReport(site, "Range: divisor interval straddles zero")
				return scalar.Interval{Lo: math.Inf(-1), Hi: math.Inf(1)}
			}
			return a.Div(bb)
		case OpPow:
			exp := int(math.Round(n.ch1.RealValue()))
			return a.Pow(exp)
		default:
			report.CorruptReport(site, "Range: %v: %v", ErrUnknownOperator, n.op)
			return a
		}
	}
}

// blockRange returns the interval range of the block's max-of-axis-
// distances potential over box b, computed per axis then combined with
// the same max() interval logic as blockValue.
func blockRange(block, b scalar.Box) scalar.Interval {
	axisRange := func(blo, bhi, lo, hi scalar.Real) scalar.Interval {
		// dAxis(x) = max(blo - x, x - bhi); x ranges over [lo, hi].
		left := scalar.Interval{blo - hi, blo - lo}
		right := scalar.Interval{lo - bhi, hi - bhi}
		return scalar.Interval{math.Max(left.Lo, right.Lo), math.Max(left.Hi, right.Hi)}
	}
	dx := axisRange(block.X.Lo, block.X.Hi, b.X.Lo, b.X.Hi)
	dy := axisRange(block.Y.Lo, block.Y.Hi, b.Y.Lo, b.Y.Hi)
	dz := axisRange(block.Z.Lo, block.Z.Hi, b.Z.Lo, b.Z.Hi)
	return scalar.Interval{
		Lo: math.Max(dx.Lo, math.Max(dy.Lo, dz.Lo)),
		Hi: math.Max(dx.Hi, math.Max(dy.Hi, dz.Hi)),
	}
}
